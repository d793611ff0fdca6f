package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testItem struct {
	name string
	box  *BoundingBox
}

func (i testItem) Box() *BoundingBox { return i.box }

func TestMapToViewer(t *testing.T) {
	box := &BoundingBox{X: 0.1, Y: 0.2, Width: 0.3, Height: 0.05}

	tests := []struct {
		name string
		zoom float64
		want ViewerCoordinates
	}{
		{
			name: "zoom 1",
			zoom: 1,
			want: ViewerCoordinates{X: 100, Y: 100, Width: 300, Height: 25, CheckboxX: 406, CheckboxY: 112.5},
		},
		{
			name: "zoom 2",
			zoom: 2,
			want: ViewerCoordinates{X: 200, Y: 200, Width: 600, Height: 50, CheckboxX: 812, CheckboxY: 225},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapToViewer(box, 1000, 500, tt.zoom)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
			assert.InDelta(t, tt.want.Width, got.Width, 1e-9)
			assert.InDelta(t, tt.want.Height, got.Height, 1e-9)
			assert.InDelta(t, tt.want.CheckboxX, got.CheckboxX, 1e-9)
			assert.InDelta(t, tt.want.CheckboxY, got.CheckboxY, 1e-9)
		})
	}
}

func TestMapToViewerScalesLinearly(t *testing.T) {
	box := &BoundingBox{X: 0.25, Y: 0.4, Width: 0.1, Height: 0.02}
	base := MapToViewer(box, 800, 600, 1)

	for _, zoom := range []float64{0.5, 1.5, 3} {
		got := MapToViewer(box, 800, 600, zoom)
		assert.InDelta(t, base.Width*zoom, got.Width, 1e-9)
		assert.InDelta(t, base.Height*zoom, got.Height, 1e-9)
		assert.InDelta(t, base.X*zoom, got.X, 1e-9)
		assert.InDelta(t, base.Y*zoom, got.Y, 1e-9)
		assert.InDelta(t, got.Y+got.Height/2, got.CheckboxY, 1e-9, "checkbox must be vertically centered")
	}
}

func TestMapToViewerDegenerateInput(t *testing.T) {
	box := &BoundingBox{X: 0.5, Y: 0.5, Width: 0.1, Height: 0.1}

	tests := []struct {
		name          string
		box           *BoundingBox
		width, height float64
		zoom          float64
	}{
		{"nil box", nil, 100, 100, 1},
		{"zero zoom", box, 100, 100, 0},
		{"negative zoom", box, 100, 100, -1},
		{"zero width", box, 0, 100, 1},
		{"negative height", box, 100, -5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapToViewer(tt.box, tt.width, tt.height, tt.zoom)
			assert.True(t, got.IsZero())
		})
	}
}

func TestMapAll(t *testing.T) {
	assert.Empty(t, MapAll[testItem](nil, 100, 100, 1))
	assert.Empty(t, MapAll([]testItem{}, 100, 100, 1))

	items := []testItem{
		{name: "a", box: &BoundingBox{X: 0.1, Y: 0.1, Width: 0.1, Height: 0.1}},
		{name: "b", box: nil},
	}
	mapped := MapAll(items, 100, 100, 1)

	assert.Len(t, mapped, 2)
	assert.Equal(t, "a", mapped[0].Item.name)
	assert.InDelta(t, 10.0, mapped[0].Coords.X, 1e-9)
	assert.Equal(t, "b", mapped[1].Item.name)
	assert.True(t, mapped[1].Coords.IsZero())
}
