package wizard

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetImagesReadsHeader(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "images"), 0o755))

	f, err := os.Create(filepath.Join(root, "images", "sheet-steam_drum-0.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 40, 25))))
	require.NoError(t, f.Close())

	sizer := NewAssetImages(root)

	w, h := sizer.ImageSize(SheetImagePath("steam_drum", 0))
	assert.Equal(t, 40, w)
	assert.Equal(t, 25, h)

	w, h = sizer.ImageSize(PfdImagePath)
	assert.Equal(t, DefaultImageWidth, w)
	assert.Equal(t, DefaultImageHeight, h)
}
