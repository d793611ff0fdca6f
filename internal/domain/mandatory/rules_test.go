package mandatory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMandatory(t *testing.T) {
	c := Default()

	tests := []struct {
		text string
		want bool
	}{
		{"V-101", true},
		{"PSV-204A", true},
		{"TANK-12", true},
		{"tank12", true},
		{"  p-401b ", true},
		{"SIS-LOOP-3", true},
		{"E-301", true},
		{"LI-101", false},
		{"random note", false},
		{"", false},
		{"   ", false},
		{"XV-101", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsMandatory(tt.text))
		})
	}
}

func TestNewClassifierExtraPatterns(t *testing.T) {
	c, err := NewClassifier(`^XV-\d+`)
	require.NoError(t, err)

	assert.True(t, c.IsMandatory("XV-101"))
	assert.Len(t, c.Patterns(), len(defaultPatterns)+1)
	assert.Equal(t, `^P-\d+[A-Z]?`, c.Patterns()[0])

	_, err = NewClassifier(`(`)
	assert.Error(t, err)
}

func TestWithKeepsConfiguredPatterns(t *testing.T) {
	base, err := NewClassifier(`^FV-\d+`)
	require.NoError(t, err)

	extended, err := base.With(`^XX-`)
	require.NoError(t, err)

	assert.True(t, extended.IsMandatory("FV-100"))
	assert.True(t, extended.IsMandatory("xx-1"))
	assert.True(t, extended.IsMandatory("P-101"))
	assert.False(t, base.IsMandatory("XX-1"))

	patterns := extended.Patterns()
	assert.Len(t, patterns, len(base.Patterns())+1)
	assert.Equal(t, `^XX-`, patterns[len(patterns)-1])

	_, err = base.With("(")
	assert.Error(t, err)
}
