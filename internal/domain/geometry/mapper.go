// Package geometry переводит нормализованные рамки распознанного текста
// в пиксельные координаты области просмотра.
package geometry

// CheckboxHorizontalOffset отступ элемента управления справа от рамки (px при zoom=1)
const CheckboxHorizontalOffset = 6.0

// BoundingBox нормализованная рамка (все значения в диапазоне 0..1 относительно изображения)
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IsEmpty возвращает true для нулевой рамки (элемент не найден на изображении)
func (b BoundingBox) IsEmpty() bool {
	return b.X == 0 && b.Y == 0 && b.Width == 0 && b.Height == 0
}

// ViewerCoordinates пиксельные координаты рамки и точка привязки чекбокса/кнопки
type ViewerCoordinates struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	CheckboxX float64 `json:"checkbox_x"`
	CheckboxY float64 `json:"checkbox_y"`
}

// IsZero сообщает, что оверлей в этой точке рисовать не нужно
func (c ViewerCoordinates) IsZero() bool {
	return c == ViewerCoordinates{}
}

// Positioned элемент, у которого есть нормализованная рамка
type Positioned interface {
	Box() *BoundingBox
}

// MappedItem элемент вместе с вычисленными координатами
type MappedItem[T Positioned] struct {
	Item   T                 `json:"item"`
	Coords ViewerCoordinates `json:"coords"`
}

// MapToViewer переводит нормализованную рамку в координаты области просмотра с учетом масштаба.
// Для nil рамки или неположительных размеров/масштаба возвращается нулевой результат.
func MapToViewer(box *BoundingBox, docWidth, docHeight, zoom float64) ViewerCoordinates {
	if box == nil || docWidth <= 0 || docHeight <= 0 || zoom <= 0 {
		return ViewerCoordinates{}
	}

	viewerX := box.X * docWidth * zoom
	viewerY := box.Y * docHeight * zoom
	viewerWidth := box.Width * docWidth * zoom
	viewerHeight := box.Height * docHeight * zoom

	return ViewerCoordinates{
		X:         viewerX,
		Y:         viewerY,
		Width:     viewerWidth,
		Height:    viewerHeight,
		CheckboxX: viewerX + viewerWidth + CheckboxHorizontalOffset*zoom,
		CheckboxY: viewerY + viewerHeight/2,
	}
}

// MapAll вычисляет координаты для списка элементов, сохраняя порядок
func MapAll[T Positioned](items []T, docWidth, docHeight, zoom float64) []MappedItem[T] {
	if len(items) == 0 {
		return []MappedItem[T]{}
	}

	mapped := make([]MappedItem[T], 0, len(items))
	for _, item := range items {
		mapped = append(mapped, MappedItem[T]{
			Item:   item,
			Coords: MapToViewer(item.Box(), docWidth, docHeight, zoom),
		})
	}
	return mapped
}
