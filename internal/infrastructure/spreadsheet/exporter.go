package spreadsheet

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

// Имена листов отчета
const (
	SummarySheet = "Summary"
	ItemsSheet   = "Items"
)

// Report конфигурация мастера для выгрузки
type Report struct {
	Division    string
	Product     string
	Revision    string
	GeneratedAt time.Time
	Blocks      []BlockReport
}

// BlockReport блок и его листы
type BlockReport struct {
	BlockID      string
	BlockName    string
	IsConfigured bool
	LastSavedUTC time.Time
	Sheets       []SheetReport
}

// SheetReport позиции одного листа
type SheetReport struct {
	SheetName string
	Items     []ItemReport
}

// ItemReport строка выгрузки
type ItemReport struct {
	ItemID      string
	ItemName    string
	MatchText   string
	IsMandatory bool
	IsSelected  bool
	IsMatched   bool
}

// WriteReport записывает отчет в xlsx: сводка по блокам и построчный перечень позиций
func WriteReport(w io.Writer, report Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(ItemsSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	// Стиль заголовков
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#0078D4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeSummary(f, report, headerStyle); err != nil {
		return err
	}
	if err := writeItems(f, report, headerStyle); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, report Report, headerStyle int) error {
	meta := [][]any{
		{"Division", report.Division},
		{"Product", report.Product},
		{"Revision", report.Revision},
		{"Generated", report.GeneratedAt.Format(time.RFC3339)},
	}
	for i, row := range meta {
		cellName, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SummarySheet, cellName, &row); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}

	headerRow := len(meta) + 2
	headers := []string{"Block ID", "Block Name", "Status", "Sheets", "Selected Items", "Last Saved (UTC)"}
	writeHeader(f, SummarySheet, headerRow, headers, headerStyle)

	for i, block := range report.Blocks {
		status := "Pending"
		lastSaved := ""
		if block.IsConfigured {
			status = "Configured"
			lastSaved = block.LastSavedUTC.Format(time.RFC3339)
		}
		selected := 0
		for _, sheet := range block.Sheets {
			for _, item := range sheet.Items {
				if item.IsSelected {
					selected++
				}
			}
		}

		row := []any{block.BlockID, block.BlockName, status, len(block.Sheets), selected, lastSaved}
		cellName, _ := excelize.CoordinatesToCellName(1, headerRow+1+i)
		if err := f.SetSheetRow(SummarySheet, cellName, &row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	setWidths(f, SummarySheet, len(headers), 20)
	return nil
}

func writeItems(f *excelize.File, report Report, headerStyle int) error {
	headers := []string{"Block ID", "Sheet", "Item ID", "Item Name", "Match Text", "Mandatory", "Selected", "Found On Drawing"}
	writeHeader(f, ItemsSheet, 1, headers, headerStyle)

	rowIdx := 2
	for _, block := range report.Blocks {
		for _, sheet := range block.Sheets {
			for _, item := range sheet.Items {
				row := []any{
					block.BlockID, sheet.SheetName, item.ItemID, item.ItemName, item.MatchText,
					yesNo(item.IsMandatory), yesNo(item.IsSelected), yesNo(item.IsMatched),
				}
				cellName, _ := excelize.CoordinatesToCellName(1, rowIdx)
				if err := f.SetSheetRow(ItemsSheet, cellName, &row); err != nil {
					return fmt.Errorf("failed to write item row: %w", err)
				}
				rowIdx++
			}
		}
	}

	setWidths(f, ItemsSheet, len(headers), 18)
	return nil
}

func writeHeader(f *excelize.File, sheet string, row int, headers []string, style int) {
	for i, header := range headers {
		cellName, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cellName, header)
		f.SetCellStyle(sheet, cellName, cellName, style)
	}
}

func setWidths(f *excelize.File, sheet string, columns int, width float64) {
	for i := 0; i < columns; i++ {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, width)
	}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
