package wizard

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"smartpid/internal/infrastructure/cache"
)

// Пути к изображениям, отдаваемым как статика
const (
	AssetsURLPrefix = "assets/"
	PfdImagePath    = "assets/images/pfd-bidrum-boilers.png"
)

// Размер изображения, если файл недоступен
const (
	DefaultImageWidth  = 1600
	DefaultImageHeight = 1000
)

// SheetImagePath путь к изображению листа блока
func SheetImagePath(blockID string, sheetIndex int) string {
	return fmt.Sprintf("assets/images/sheet-%s-%d.png", blockID, sheetIndex)
}

// ImageSizer сообщает натуральный размер изображения по его пути
type ImageSizer interface {
	ImageSize(path string) (width, height int)
}

// imageSizeTTL время жизни закэшированного размера
const imageSizeTTL = 10 * time.Minute

// AssetImages читает размер из заголовка файла в каталоге ассетов.
// Размер перечитывается после замены файла.
type AssetImages struct {
	root  string
	sizes *cache.FileCache[[2]int]
}

// NewAssetImages создает ImageSizer поверх каталога ассетов
func NewAssetImages(root string) *AssetImages {
	return &AssetImages{root: root, sizes: cache.NewFileCache[[2]int](imageSizeTTL)}
}

// ImageSize возвращает размер изображения или размер по умолчанию
func (a *AssetImages) ImageSize(path string) (int, int) {
	file := a.file(path)
	size := a.sizes.Get(file, func() [2]int {
		if cfg, err := decodeConfig(file); err == nil && cfg.Width > 0 && cfg.Height > 0 {
			return [2]int{cfg.Width, cfg.Height}
		}
		return [2]int{DefaultImageWidth, DefaultImageHeight}
	})
	return size[0], size[1]
}

// file путь к файлу на диске по пути ассета
func (a *AssetImages) file(path string) string {
	rel := filepath.FromSlash(strings.TrimPrefix(path, AssetsURLPrefix))
	return filepath.Join(a.root, rel)
}

func decodeConfig(file string) (image.Config, error) {
	f, err := os.Open(file)
	if err != nil {
		return image.Config{}, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	return cfg, err
}

// fixedSize ImageSizer с постоянным размером
type fixedSize struct{ width, height int }

func (f fixedSize) ImageSize(string) (int, int) { return f.width, f.height }
