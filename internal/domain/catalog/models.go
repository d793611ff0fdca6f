package catalog

import "slices"

// Document корневой объект файла каталога
type Document struct {
	Divisions []Division `json:"divisions"`
}

// Division подразделение
type Division struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Products    []Product `json:"products"`
}

func (d Division) clone() Division {
	if d.Products != nil {
		products := make([]Product, len(d.Products))
		for i, p := range d.Products {
			products[i] = p.clone()
		}
		d.Products = products
	}
	return d
}

// Product продуктовая линейка подразделения
type Product struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	PfdBlocks []PfdBlock `json:"pfdBlocks"`
}

func (p Product) clone() Product {
	p.PfdBlocks = slices.Clone(p.PfdBlocks)
	return p
}

// PfdBlock блок PFD. Обязательный блок нельзя снять с выбора.
type PfdBlock struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IsMandatory bool   `json:"is_mandatory"`
}

// LoadResult результат загрузки каталога
type LoadResult struct {
	IsSuccess bool   `json:"isSuccess"`
	Error     string `json:"error,omitempty"`
}

// Заглушки для отображения при отсутствии записи
const (
	PlaceholderDivision = "Division"
	PlaceholderProduct  = "Product"
	PlaceholderBlock    = "Unknown Block"
)

// DefaultIconColor цвет иконки по умолчанию
const DefaultIconColor = "#0078D4"

var iconColors = map[string]string{
	"factory": "#0078D4",
	"leaf":    "#6CCB5F",
	"water":   "#4FC3F7",
}

// IconColor цвет для имени иконки
func IconColor(icon string) string {
	if c, ok := iconColors[icon]; ok {
		return c
	}
	return DefaultIconColor
}
