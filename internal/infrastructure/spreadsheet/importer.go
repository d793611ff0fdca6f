// Package spreadsheet читает перечни позиций из xlsx и выгружает конфигурацию в xlsx.
package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"smartpid/internal/domain/mandatory"
	"smartpid/internal/domain/matching"
	"smartpid/internal/domain/mockdata"
)

// ErrNoItems в книге нет ни одного листа с позициями
var ErrNoItems = errors.New("workbook contains no items")

// ImportOptions параметры импорта
type ImportOptions struct {
	// Classifier определяет обязательность по тегу, только если в листе нет колонки Mandatory.
	// Это единственная точка, где классификатор влияет на данные мастера: экраны
	// берут IsMandatory из позиций как есть. nil оставляет такие позиции необязательными.
	Classifier *mandatory.Classifier
}

// columnAliases допустимые заголовки колонок (в нижнем регистре, без пробелов)
var columnAliases = map[string][]string{
	"id":        {"itemid", "id", "item"},
	"name":      {"itemname", "name", "description"},
	"match":     {"matchtext", "tag", "tagnumber", "match"},
	"mandatory": {"ismandatory", "mandatory", "required"},
}

type columnIndices struct {
	id, name, match, mandatory int
}

// ParseWorkbook читает все листы книги. Первая строка листа заголовок.
// Листы без колонки с id позиции пропускаются.
// Обязательность берется из колонки Mandatory, а при ее отсутствии из opts.Classifier.
func ParseWorkbook(r io.Reader, opts ImportOptions) ([]mockdata.Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	var sheets []mockdata.Sheet
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("failed to get rows of %s: %w", sheetName, err)
		}
		if len(rows) < 2 {
			continue
		}

		cols := findColumns(rows[0])
		if cols.id < 0 {
			continue
		}

		items := make([]matching.SpreadsheetItem, 0, len(rows)-1)
		for _, row := range rows[1:] {
			// Пропускаем пустые строки
			id := cell(row, cols.id)
			if id == "" {
				continue
			}

			item := matching.SpreadsheetItem{
				ItemID:    id,
				ItemName:  cell(row, cols.name),
				MatchText: cell(row, cols.match),
			}
			switch {
			case cols.mandatory >= 0:
				item.IsMandatory = parseBool(cell(row, cols.mandatory))
			case opts.Classifier != nil:
				item.IsMandatory = opts.Classifier.IsMandatory(item.MatchText)
			}
			items = append(items, item)
		}

		if len(items) > 0 {
			sheets = append(sheets, mockdata.Sheet{Name: sheetName, Items: items})
		}
	}

	if len(sheets) == 0 {
		return nil, ErrNoItems
	}
	return sheets, nil
}

func findColumns(header []string) columnIndices {
	cols := columnIndices{id: -1, name: -1, match: -1, mandatory: -1}
	for i, h := range header {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "")
		for field, aliases := range columnAliases {
			for _, alias := range aliases {
				if key != alias {
					continue
				}
				switch field {
				case "id":
					if cols.id < 0 {
						cols.id = i
					}
				case "name":
					if cols.name < 0 {
						cols.name = i
					}
				case "match":
					if cols.match < 0 {
						cols.match = i
					}
				case "mandatory":
					if cols.mandatory < 0 {
						cols.mandatory = i
					}
				}
			}
		}
	}
	return cols
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "y", "x", "✓":
		return true
	}
	return false
}
