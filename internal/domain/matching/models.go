package matching

import "smartpid/internal/domain/geometry"

// DetectedTextItem одно срабатывание распознавания текста на изображении
type DetectedTextItem struct {
	Text        string               `json:"text"`
	BoundingBox geometry.BoundingBox `json:"boundingBox"`
	Confidence  float64              `json:"confidence"`
}

// Box реализует geometry.Positioned
func (d DetectedTextItem) Box() *geometry.BoundingBox {
	box := d.BoundingBox
	return &box
}

// DetectionResult результат распознавания для одного изображения
type DetectionResult struct {
	Items []DetectedTextItem `json:"items"`
}

// SpreadsheetItem строка листа с оборудованием/приборами.
// MatchText пустой, если ключ сопоставления не задан.
type SpreadsheetItem struct {
	ItemID      string `json:"itemId"`
	ItemName    string `json:"itemName"`
	MatchText   string `json:"matchText,omitempty"`
	IsMandatory bool   `json:"isMandatory"`
}

// MatchedItem строка листа, найденная на изображении
type MatchedItem struct {
	ItemID      string               `json:"itemId"`
	ItemName    string               `json:"itemName"`
	IsMandatory bool                 `json:"isMandatory"`
	MatchText   string               `json:"matchText"`
	BoundingBox geometry.BoundingBox `json:"boundingBox"`
	Confidence  float64              `json:"confidence"`
}

// Box реализует geometry.Positioned
func (m MatchedItem) Box() *geometry.BoundingBox {
	box := m.BoundingBox
	return &box
}

// MatchResult разбиение строк листа на найденные и ненайденные
type MatchResult struct {
	Matched   []MatchedItem     `json:"matchedItems"`
	Unmatched []SpreadsheetItem `json:"unmatchedExcelItems"`
}
