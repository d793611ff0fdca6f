package session

import "time"

// SheetConfiguration выбранные позиции одного листа
type SheetConfiguration struct {
	SheetName       string   `json:"sheetName"`
	SelectedItemIDs []string `json:"selectedItemIds"`
}

// BlockConfiguration сохраненная конфигурация блока.
// Перезаписывается целиком при каждом сохранении.
type BlockConfiguration struct {
	BlockID             string                        `json:"blockId"`
	BlockName           string                        `json:"blockName"`
	IsConfigured        bool                          `json:"isConfigured"`
	LastSavedUTC        time.Time                     `json:"lastSavedUtc"`
	SheetConfigurations map[string]SheetConfiguration `json:"sheetConfigurations"`
}

// SelectedCount общее число выбранных позиций по всем листам
func (c BlockConfiguration) SelectedCount() int {
	n := 0
	for _, sheet := range c.SheetConfigurations {
		n += len(sheet.SelectedItemIDs)
	}
	return n
}

// SelectedIDs множество выбранных позиций листа
func (c BlockConfiguration) SelectedIDs(sheetName string) map[string]bool {
	out := make(map[string]bool)
	for _, id := range c.SheetConfigurations[sheetName].SelectedItemIDs {
		out[id] = true
	}
	return out
}

func (c BlockConfiguration) clone() BlockConfiguration {
	out := c
	out.SheetConfigurations = make(map[string]SheetConfiguration, len(c.SheetConfigurations))
	for name, sheet := range c.SheetConfigurations {
		out.SheetConfigurations[name] = SheetConfiguration{
			SheetName:       sheet.SheetName,
			SelectedItemIDs: append([]string{}, sheet.SelectedItemIDs...),
		}
	}
	return out
}
