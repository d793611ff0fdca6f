package wizard

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"smartpid/internal/domain/catalog"
	"smartpid/internal/domain/geometry"
	"smartpid/internal/domain/matching"
	"smartpid/internal/domain/navigation"
)

// Статусы блока в хабе
const (
	StatusConfigured = "Configured"
	StatusPending    = "Pending"
)

var (
	hubCapacities   = []string{"50 TPH", "75 TPH", "100 TPH", "120 TPH", "150 TPH"}
	hubPressures    = []string{"45 kg/cm²", "66 kg/cm²", "87 kg/cm²", "110 kg/cm²"}
	hubTemperatures = []string{"485°C", "510°C", "540°C"}
)

// HubBlock строка списка блоков хаба
type HubBlock struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	IsMandatory  bool        `json:"isMandatory"`
	IsConfigured bool        `json:"isConfigured"`
	Status       string      `json:"status"`
	SheetCount   int         `json:"sheetCount"`
	Details      BlockDetail `json:"details"`
}

// BlockDetail сводка по позициям блока
type BlockDetail struct {
	Sheets         []string `json:"sheets"`
	TotalItems     int      `json:"totalItems"`
	MandatoryItems int      `json:"mandatoryItems"`
	SelectedItems  int      `json:"selectedItems"`
	CompletionPct  int      `json:"completionPct"`
	MandatoryPct   int      `json:"mandatoryPct"`
	ConfigPct      int      `json:"configPct"`
	ReadyPct       int      `json:"readyPct"`
	Capacity       string   `json:"capacity"`
	Pressure       string   `json:"pressure"`
	Temperature    string   `json:"temperature"`
	FuelType       string   `json:"fuelType"`
}

// ConfigureButton кнопка конфигурации поверх схемы PFD
type ConfigureButton struct {
	BlockID      string                     `json:"blockId"`
	BlockName    string                     `json:"blockName"`
	BoundingBox  geometry.BoundingBox       `json:"boundingBox"`
	Confidence   float64                    `json:"confidence"`
	IsConfigured bool                       `json:"isConfigured"`
	Coords       geometry.ViewerCoordinates `json:"coords"`
}

// HubProgress прогресс конфигурации блоков
type HubProgress struct {
	Configured int    `json:"configured"`
	Total      int    `json:"total"`
	Percent    int    `json:"percent"`
	Summary    string `json:"summary"`
}

// HubView представление четвертого шага
type HubView struct {
	Title       string            `json:"title"`
	Breadcrumb  []string          `json:"breadcrumb"`
	ImagePath   string            `json:"imagePath"`
	ImageWidth  int               `json:"imageWidth"`
	ImageHeight int               `json:"imageHeight"`
	Blocks      []HubBlock        `json:"blocks"`
	Buttons     []ConfigureButton `json:"buttons"`
	Progress    HubProgress       `json:"progress"`
	CanGenerate bool              `json:"canGenerate"`
}

// MainHubController шаг 4: обзор PFD и прогресс по блокам
type MainHubController struct {
	deps  *Deps
	upper cases.Caser
}

func newMainHub(deps *Deps) *MainHubController {
	return &MainHubController{deps: deps, upper: cases.Upper(language.Und)}
}

// Screen экран контроллера
func (c *MainHubController) Screen() navigation.Screen {
	return navigation.MainHub
}

// Mount без выбранных блоков возвращает на шаг выбора блоков
func (c *MainHubController) Mount(context.Context) error {
	if len(c.deps.Navigation.SelectedPfdBlockIDs()) == 0 {
		c.deps.Logger.Warn("main hub without pfd blocks, redirecting")
		return c.deps.Navigation.NavigateTo(navigation.PfdBlockSelection)
	}
	return nil
}

// blocks выбранные блоки в порядке выбора. Отсутствующие в каталоге пропускаются.
func (c *MainHubController) blocks() []catalog.PfdBlock {
	state := c.deps.Navigation.Snapshot()
	out := make([]catalog.PfdBlock, 0, len(state.SelectedPfdBlockIDs))
	for _, id := range state.SelectedPfdBlockIDs {
		if b, ok := c.deps.Catalog.PfdBlock(state.SelectedDivisionID, state.SelectedProductID, id); ok {
			out = append(out, *b)
		}
	}
	return out
}

// View список блоков, кнопки на схеме и прогресс. Считается заново при каждом вызове.
func (c *MainHubController) View() any {
	state := c.deps.Navigation.Snapshot()
	blocks := c.blocks()
	width, height := c.deps.Images.ImageSize(PfdImagePath)

	view := HubView{
		Title: "PFD Overview",
		Breadcrumb: []string{
			c.deps.Catalog.DivisionName(state.SelectedDivisionID),
			c.deps.Catalog.ProductName(state.SelectedDivisionID, state.SelectedProductID),
		},
		ImagePath:   PfdImagePath,
		ImageWidth:  width,
		ImageHeight: height,
		Blocks:      make([]HubBlock, 0, len(blocks)),
		Buttons:     c.buttons(blocks, float64(width), float64(height)),
		CanGenerate: len(blocks) > 0,
	}

	for _, b := range blocks {
		configured := c.deps.Session.IsBlockConfigured(b.ID)
		status := StatusPending
		if configured {
			status = StatusConfigured
			view.Progress.Configured++
		}
		details := c.details(b.ID, configured)
		view.Blocks = append(view.Blocks, HubBlock{
			ID:           b.ID,
			Name:         b.Name,
			IsMandatory:  b.IsMandatory,
			IsConfigured: configured,
			Status:       status,
			SheetCount:   len(details.Sheets),
			Details:      details,
		})
	}

	view.Progress.Total = len(blocks)
	view.Progress.Percent = percent(view.Progress.Configured, view.Progress.Total)
	view.Progress.Summary = fmt.Sprintf("%d of %d configured", view.Progress.Configured, view.Progress.Total)
	return view
}

// buttons ищет подпись каждого блока среди распознанного текста схемы
func (c *MainHubController) buttons(blocks []catalog.PfdBlock, width, height float64) []ConfigureButton {
	detection := c.deps.MockData.PfdDetection()
	out := make([]ConfigureButton, 0, len(blocks))

	for _, b := range blocks {
		detected, ok := c.findLabel(b.Name, detection.Items)
		if !ok {
			continue
		}
		box := detected.BoundingBox
		out = append(out, ConfigureButton{
			BlockID:      b.ID,
			BlockName:    b.Name,
			BoundingBox:  box,
			Confidence:   detected.Confidence,
			IsConfigured: c.deps.Session.IsBlockConfigured(b.ID),
			Coords:       geometry.MapToViewer(&box, width, height, 1),
		})
	}
	return out
}

// findLabel совпадение без учета регистра: равенство или вхождение в любую сторону
func (c *MainHubController) findLabel(name string, items []matching.DetectedTextItem) (matching.DetectedTextItem, bool) {
	normalizedName := c.upper.String(strings.TrimSpace(name))
	if normalizedName == "" {
		return matching.DetectedTextItem{}, false
	}

	for _, item := range items {
		normalizedText := c.upper.String(strings.TrimSpace(item.Text))
		// пустая подпись входит в любое имя, такие подписи не сопоставляются
		if normalizedText == "" {
			continue
		}
		if normalizedName == normalizedText ||
			strings.Contains(normalizedName, normalizedText) ||
			strings.Contains(normalizedText, normalizedName) {
			return item, true
		}
	}
	return matching.DetectedTextItem{}, false
}

// details метрики блока по всем его листам.
// Для листа без сохраненного выбора выбранными считаются обязательные позиции.
func (c *MainHubController) details(blockID string, configured bool) BlockDetail {
	sheets := c.deps.MockData.SheetNames(blockID)
	saved, hasSaved := c.deps.Session.BlockConfiguration(blockID)

	d := BlockDetail{Sheets: sheets}
	for _, sheet := range sheets {
		items := c.deps.MockData.SpreadsheetItems(blockID, sheet)
		mandatory := 0
		for _, item := range items {
			if item.IsMandatory {
				mandatory++
			}
		}
		d.TotalItems += len(items)
		d.MandatoryItems += mandatory

		if sheetCfg, ok := saved.SheetConfigurations[sheet]; hasSaved && ok {
			d.SelectedItems += len(sheetCfg.SelectedItemIDs)
		} else {
			d.SelectedItems += mandatory
		}
	}

	d.CompletionPct = percent(d.SelectedItems, d.TotalItems)
	d.MandatoryPct = percent(d.MandatoryItems, d.TotalItems)
	if configured {
		d.ConfigPct = 100
		d.ReadyPct = 100
	} else {
		d.ConfigPct = int(math.Round(float64(d.CompletionPct) * 0.6))
	}

	hash := idHash(blockID)
	d.Capacity = hubCapacities[hash%len(hubCapacities)]
	d.Pressure = hubPressures[hash%len(hubPressures)]
	d.Temperature = hubTemperatures[hash%len(hubTemperatures)]
	d.FuelType = "Multi-fuel"
	if hash%2 == 0 {
		d.FuelType = "Biomass"
	}
	return d
}

// ConfigureBlock делает блок активным и открывает его конфигурацию
func (c *MainHubController) ConfigureBlock(blockID string) error {
	if !slices.Contains(c.deps.Navigation.SelectedPfdBlockIDs(), blockID) {
		return fmt.Errorf("%w: %q", ErrUnknownBlock, blockID)
	}
	c.deps.Navigation.SetSelectedPfdBlock(blockID)
	return c.deps.Navigation.NavigateTo(navigation.BlockConfiguration)
}

// Generate начинает конфигурацию с первого выбранного блока
func (c *MainHubController) Generate() error {
	ids := c.deps.Navigation.SelectedPfdBlockIDs()
	if len(ids) == 0 {
		return ErrNoBlocksSelected
	}
	return c.ConfigureBlock(ids[0])
}

// StartOver очищает сессию и возвращает на первый шаг
func (c *MainHubController) StartOver(ctx context.Context) {
	c.deps.Session.ClearAll(ctx)
	c.deps.Navigation.Reset()
}

// percent округленный процент, 0 при пустом знаменателе
func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
