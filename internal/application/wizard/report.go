package wizard

import (
	"time"

	"smartpid/internal/domain/matching"
	"smartpid/internal/domain/mockdata"
	"smartpid/internal/domain/navigation"
	"smartpid/internal/infrastructure/spreadsheet"
)

// Report собирает выгрузку по выбранным блокам.
// Для листа без сохраненного выбора выбранными считаются обязательные позиции.
func (a *App) Report(now time.Time) spreadsheet.Report {
	a.mu.Lock()
	defer a.mu.Unlock()

	state := a.deps.Navigation.Snapshot()
	report := spreadsheet.Report{
		Division:    a.deps.Catalog.DivisionName(state.SelectedDivisionID),
		Product:     a.deps.Catalog.ProductName(state.SelectedDivisionID, state.SelectedProductID),
		GeneratedAt: now.UTC(),
		Blocks:      make([]spreadsheet.BlockReport, 0, len(state.SelectedPfdBlockIDs)),
	}
	if active, ok := a.deps.Revisions.Active(); ok {
		report.Revision = active.Name + " (" + active.Label + ")"
	}

	for _, blockID := range state.SelectedPfdBlockIDs {
		saved, hasSaved := a.deps.Session.BlockConfiguration(blockID)
		block := spreadsheet.BlockReport{
			BlockID:      blockID,
			BlockName:    a.deps.Catalog.BlockName(state.SelectedDivisionID, state.SelectedProductID, blockID),
			IsConfigured: hasSaved && saved.IsConfigured,
			LastSavedUTC: saved.LastSavedUTC,
		}

		for _, sheetName := range a.deps.MockData.SheetNames(blockID) {
			items := a.deps.MockData.SpreadsheetItems(blockID, sheetName)
			detection := a.deps.MockData.SheetDetection(blockID, sheetName)
			matched := matchedIDs(matching.Match(items, &detection))

			_, sheetSaved := saved.SheetConfigurations[sheetName]
			selected := saved.SelectedIDs(sheetName)

			sheet := spreadsheet.SheetReport{SheetName: sheetName, Items: make([]spreadsheet.ItemReport, 0, len(items))}
			for _, item := range items {
				isSelected := item.IsMandatory
				if sheetSaved {
					isSelected = isSelected || selected[item.ItemID]
				}
				sheet.Items = append(sheet.Items, spreadsheet.ItemReport{
					ItemID:      item.ItemID,
					ItemName:    item.ItemName,
					MatchText:   item.MatchText,
					IsMandatory: item.IsMandatory,
					IsSelected:  isSelected,
					IsMatched:   matched[item.ItemID],
				})
			}
			block.Sheets = append(block.Sheets, sheet)
		}
		report.Blocks = append(report.Blocks, block)
	}
	return report
}

func matchedIDs(result matching.MatchResult) map[string]bool {
	ids := make(map[string]bool, len(result.Matched))
	for _, m := range result.Matched {
		ids[m.ItemID] = true
	}
	return ids
}

// ImportSheets устанавливает листы блока и перемонтирует открытую конфигурацию этого блока
func (a *App) ImportSheets(blockID string, sheets []mockdata.Sheet) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.deps.MockData.ImportSheets(blockID, sheets); err != nil {
		return err
	}
	if cfg, ok := a.current.(*BlockConfigurationController); ok && cfg.blockID == blockID {
		return a.mount(a.ctx, navigation.BlockConfiguration)
	}
	return nil
}
