package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"smartpid/internal/domain/matching"
	"smartpid/internal/domain/mockdata"
)

func TestFindLabel(t *testing.T) {
	hub := newMainHub(&Deps{})
	items := []struct {
		name  string
		found bool
		text  string
	}{
		{"Steam Drum", true, "STEAM DRUM"},
		{"  steam drum unit ", true, "STEAM DRUM"},
		{"Pumps", true, "BFW PUMPS"},
		{"Superheater", false, ""},
		{"", false, ""},
	}

	detection := mockdata.NewStore("", nil).PfdDetection().Items
	for _, tt := range items {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := hub.findLabel(tt.name, detection)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.text, got.Text)
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, percent(3, 0))
	assert.Equal(t, 67, percent(2, 3))
	assert.Equal(t, 100, percent(4, 4))
}

func TestFindLabelSkipsBlankText(t *testing.T) {
	hub := newMainHub(&Deps{})
	detection := []matching.DetectedTextItem{
		{Text: "   "},
		{Text: "STEAM DRUM", Confidence: 98.5},
	}

	got, ok := hub.findLabel("Steam Drum", detection)
	assert.True(t, ok)
	assert.Equal(t, "STEAM DRUM", got.Text)

	_, ok = hub.findLabel("Economizer", detection[:1])
	assert.False(t, ok)
}
