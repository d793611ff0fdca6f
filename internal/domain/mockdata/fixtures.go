package mockdata

import (
	"bytes"
	"encoding/json"
	"fmt"

	"smartpid/internal/domain/matching"
)

// Sheet лист с позициями в порядке исходного файла
type Sheet struct {
	Name  string                     `json:"name"`
	Items []matching.SpreadsheetItem `json:"items"`
}

// textractFixture содержимое textract-results.json
type textractFixture struct {
	pfd    *matching.DetectionResult
	sheets map[string]map[string]matching.DetectionResult
}

func parseTextractFixture(raw []byte) (*textractFixture, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, err
	}

	fixture := &textractFixture{sheets: make(map[string]map[string]matching.DetectionResult)}
	for key, value := range top {
		if key == "pfd" {
			var pfd matching.DetectionResult
			if err := json.Unmarshal(value, &pfd); err != nil {
				return nil, fmt.Errorf("pfd: %w", err)
			}
			fixture.pfd = &pfd
			continue
		}

		var perSheet map[string]matching.DetectionResult
		if err := json.Unmarshal(value, &perSheet); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		fixture.sheets[key] = perSheet
	}
	return fixture, nil
}

// parseItemsFixture разбирает excel-items.json, сохраняя порядок листов.
// Формат: {"<blockId>": {"<sheet>": [SpreadsheetItem...]}}
func parseItemsFixture(raw []byte) (map[string][]Sheet, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, err
	}

	out := make(map[string][]Sheet, len(top))
	for blockID, value := range top {
		sheets, err := decodeOrderedSheets(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", blockID, err)
		}
		out[blockID] = sheets
	}
	return out, nil
}

// decodeOrderedSheets читает объект лист → позиции потоково,
// т.к. map теряет порядок ключей
func decodeOrderedSheets(raw json.RawMessage) ([]Sheet, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object of sheets")
	}

	var sheets []Sheet
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}

		var items []matching.SpreadsheetItem
		if err := dec.Decode(&items); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", name, err)
		}
		sheets = append(sheets, Sheet{Name: name, Items: items})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return sheets, nil
}
