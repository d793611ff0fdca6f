package wizard

import (
	"context"
	"fmt"

	"smartpid/internal/domain/catalog"
	"smartpid/internal/domain/geometry"
	"smartpid/internal/domain/matching"
	"smartpid/internal/domain/navigation"
	"smartpid/internal/domain/session"
)

// Пределы масштаба изображения листа
const (
	MinZoom = 0.25
	MaxZoom = 4.0
)

// SelectionItem позиция листа с состоянием выбора.
// Обязательная позиция всегда выбрана, подсветка не сохраняется.
type SelectionItem struct {
	ID            string               `json:"id"`
	Text          string               `json:"text"`
	MatchText     string               `json:"matchText"`
	IsMandatory   bool                 `json:"isMandatory"`
	IsSelected    bool                 `json:"isSelected"`
	IsHighlighted bool                 `json:"isHighlighted"`
	IsMatched     bool                 `json:"isMatched"`
	Confidence    float64              `json:"confidence"`
	BoundingBox   geometry.BoundingBox `json:"boundingBox"`
	SheetName     string               `json:"sheetName"`
}

// Box реализует geometry.Positioned
func (i SelectionItem) Box() *geometry.BoundingBox {
	box := i.BoundingBox
	return &box
}

// Sheet лист блока
type Sheet struct {
	Name  string          `json:"name"`
	Items []SelectionItem `json:"items"`
}

// SheetTab вкладка листа
type SheetTab struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// BlockConfigView представление пятого шага
type BlockConfigView struct {
	Title        string                               `json:"title"`
	Breadcrumb   []string                             `json:"breadcrumb"`
	BlockID      string                               `json:"blockId"`
	BlockName    string                               `json:"blockName"`
	Tabs         []SheetTab                           `json:"tabs"`
	ActiveSheet  int                                  `json:"activeSheet"`
	ImagePath    string                               `json:"imagePath"`
	ImageWidth   int                                  `json:"imageWidth"`
	ImageHeight  int                                  `json:"imageHeight"`
	Zoom         float64                              `json:"zoom"`
	Items        []SelectionItem                      `json:"items"`
	Overlays     []geometry.MappedItem[SelectionItem] `json:"overlays"`
	ItemCount    int                                  `json:"itemCount"`
	Summary      string                               `json:"summary"`
	IsConfigured bool                                 `json:"isConfigured"`

	// Detail карточка подсвеченной позиции, nil без подсветки
	Detail *ItemDetail `json:"detail,omitempty"`
}

// BlockConfigurationController шаг 5: выбор позиций блока по листам
type BlockConfigurationController struct {
	deps *Deps

	blockID     string
	blockName   string
	sheets      []Sheet
	activeSheet int
	zoom        float64
	// imageSize размер, сообщенный клиентом для активного листа
	imageSize [2]int
}

func newBlockConfiguration(deps *Deps) *BlockConfigurationController {
	return &BlockConfigurationController{deps: deps, zoom: 1}
}

// Screen экран контроллера
func (c *BlockConfigurationController) Screen() navigation.Screen {
	return navigation.BlockConfiguration
}

// Mount строит листы активного блока и восстанавливает сохраненный выбор
func (c *BlockConfigurationController) Mount(context.Context) error {
	state := c.deps.Navigation.Snapshot()
	if state.SelectedPfdBlockID == "" {
		c.deps.Logger.Warn("block configuration without active block, redirecting")
		return c.deps.Navigation.NavigateTo(navigation.MainHub)
	}

	c.blockID = state.SelectedPfdBlockID
	c.blockName = catalog.PlaceholderBlock
	if b, ok := c.deps.Catalog.PfdBlock(state.SelectedDivisionID, state.SelectedProductID, c.blockID); ok {
		c.blockName = b.Name
	}

	c.loadSheets()
	c.restoreSelections()
	c.deps.Logger.Debug("block configuration mounted", "block_id", c.blockID, "sheets", len(c.sheets))
	return nil
}

// loadSheets сопоставляет позиции каждого листа: сначала найденные, затем ненайденные
func (c *BlockConfigurationController) loadSheets() {
	names := c.deps.MockData.SheetNames(c.blockID)
	c.sheets = make([]Sheet, 0, len(names))

	for _, name := range names {
		items := c.deps.MockData.SpreadsheetItems(c.blockID, name)
		detection := c.deps.MockData.SheetDetection(c.blockID, name)
		result := matching.Match(items, &detection)

		sheet := Sheet{Name: name, Items: make([]SelectionItem, 0, len(items))}
		for _, m := range result.Matched {
			sheet.Items = append(sheet.Items, SelectionItem{
				ID:          m.ItemID,
				Text:        m.ItemName,
				MatchText:   m.MatchText,
				IsMandatory: m.IsMandatory,
				IsSelected:  m.IsMandatory,
				IsMatched:   true,
				Confidence:  m.Confidence,
				BoundingBox: m.BoundingBox,
				SheetName:   name,
			})
		}
		for _, u := range result.Unmatched {
			sheet.Items = append(sheet.Items, SelectionItem{
				ID:          u.ItemID,
				Text:        u.ItemName,
				MatchText:   u.MatchText,
				IsMandatory: u.IsMandatory,
				IsSelected:  u.IsMandatory,
				SheetName:   name,
			})
		}
		c.sheets = append(c.sheets, sheet)
	}
}

// restoreSelections применяет сохраненный выбор к необязательным позициям
func (c *BlockConfigurationController) restoreSelections() {
	saved, ok := c.deps.Session.BlockConfiguration(c.blockID)
	if !ok {
		return
	}
	for si := range c.sheets {
		if _, ok := saved.SheetConfigurations[c.sheets[si].Name]; !ok {
			continue
		}
		selected := saved.SelectedIDs(c.sheets[si].Name)
		for ii := range c.sheets[si].Items {
			item := &c.sheets[si].Items[ii]
			if !item.IsMandatory {
				item.IsSelected = selected[item.ID]
			}
		}
	}
}

func (c *BlockConfigurationController) active() *Sheet {
	if c.activeSheet < 0 || c.activeSheet >= len(c.sheets) {
		return nil
	}
	return &c.sheets[c.activeSheet]
}

// View активный лист с наложениями
func (c *BlockConfigurationController) View() any {
	state := c.deps.Navigation.Snapshot()
	imagePath := SheetImagePath(c.blockID, c.activeSheet)
	width, height := c.imageSize[0], c.imageSize[1]
	if width <= 0 || height <= 0 {
		width, height = c.deps.Images.ImageSize(imagePath)
	}

	view := BlockConfigView{
		Title: c.blockName,
		Breadcrumb: []string{
			c.deps.Catalog.DivisionName(state.SelectedDivisionID),
			c.deps.Catalog.ProductName(state.SelectedDivisionID, state.SelectedProductID),
			"Configure",
			c.blockName,
		},
		BlockID:      c.blockID,
		BlockName:    c.blockName,
		Tabs:         make([]SheetTab, len(c.sheets)),
		ActiveSheet:  c.activeSheet,
		ImagePath:    imagePath,
		ImageWidth:   width,
		ImageHeight:  height,
		Zoom:         c.zoom,
		Items:        []SelectionItem{},
		Overlays:     []geometry.MappedItem[SelectionItem]{},
		IsConfigured: c.deps.Session.IsBlockConfigured(c.blockID),
	}
	for i, s := range c.sheets {
		view.Tabs[i] = SheetTab{Index: i, Name: s.Name, IsActive: i == c.activeSheet}
	}

	sheet := c.active()
	if sheet == nil {
		view.Summary = summary(nil)
		return view
	}

	view.Items = append(view.Items, sheet.Items...)
	view.ItemCount = len(sheet.Items)
	view.Summary = summary(sheet.Items)
	for _, item := range sheet.Items {
		if item.IsHighlighted {
			detail := NewItemDetail(item)
			view.Detail = &detail
			break
		}
	}

	placed := make([]SelectionItem, 0, len(sheet.Items))
	for _, item := range sheet.Items {
		if item.BoundingBox.X == 0 && item.BoundingBox.Y == 0 {
			continue
		}
		placed = append(placed, item)
	}
	view.Overlays = geometry.MapAll(placed, float64(width), float64(height), c.zoom)
	return view
}

// summary строка вида "2 mandatory ✓ | 1 of 3 optional selected"
func summary(items []SelectionItem) string {
	mandatory, optional, optionalSelected := 0, 0, 0
	for _, item := range items {
		switch {
		case item.IsMandatory:
			mandatory++
		case item.IsSelected:
			optional++
			optionalSelected++
		default:
			optional++
		}
	}
	return fmt.Sprintf("%d mandatory ✓ | %d of %d optional selected", mandatory, optionalSelected, optional)
}

// SelectSheet делает лист активным и снимает подсветку
func (c *BlockConfigurationController) SelectSheet(index int) error {
	if index < 0 || index >= len(c.sheets) {
		return fmt.Errorf("%w: index %d", ErrUnknownSheet, index)
	}
	c.clearHighlight()
	c.activeSheet = index
	c.imageSize = [2]int{}
	return nil
}

// ToggleItem переключает необязательную позицию активного листа
func (c *BlockConfigurationController) ToggleItem(itemID string) error {
	item, err := c.item(itemID)
	if err != nil {
		return err
	}
	if item.IsMandatory {
		return fmt.Errorf("%w: %q", ErrMandatoryLocked, itemID)
	}
	item.IsSelected = !item.IsSelected
	return nil
}

// HighlightItem подсвечивает одну позицию активного листа. Пустой id снимает подсветку.
func (c *BlockConfigurationController) HighlightItem(itemID string) error {
	if itemID == "" {
		c.clearHighlight()
		return nil
	}
	target, err := c.item(itemID)
	if err != nil {
		return err
	}
	c.clearHighlight()
	target.IsHighlighted = true
	return nil
}

func (c *BlockConfigurationController) clearHighlight() {
	for si := range c.sheets {
		for ii := range c.sheets[si].Items {
			c.sheets[si].Items[ii].IsHighlighted = false
		}
	}
}

func (c *BlockConfigurationController) item(itemID string) (*SelectionItem, error) {
	sheet := c.active()
	if sheet != nil {
		for i := range sheet.Items {
			if sheet.Items[i].ID == itemID {
				return &sheet.Items[i], nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownItem, itemID)
}

// SetZoom задает масштаб, ограниченный MinZoom..MaxZoom
func (c *BlockConfigurationController) SetZoom(zoom float64) error {
	if zoom <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidZoom, zoom)
	}
	c.zoom = min(max(zoom, MinZoom), MaxZoom)
	return nil
}

// SetImageSize запоминает натуральный размер изображения активного листа
func (c *BlockConfigurationController) SetImageSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidImageSize, width, height)
	}
	c.imageSize = [2]int{width, height}
	return nil
}

// Save сохраняет выбранные позиции всех листов
func (c *BlockConfigurationController) Save(ctx context.Context) (session.BlockConfiguration, error) {
	sheets := make([]session.SheetConfiguration, 0, len(c.sheets))
	for _, s := range c.sheets {
		selected := make([]string, 0, len(s.Items))
		for _, item := range s.Items {
			if item.IsSelected {
				selected = append(selected, item.ID)
			}
		}
		sheets = append(sheets, session.SheetConfiguration{SheetName: s.Name, SelectedItemIDs: selected})
	}
	return c.deps.Session.SaveBlockConfiguration(ctx, c.blockID, c.blockName, sheets)
}

// SaveAndContinue сохраняет и открывает следующий ненастроенный блок или хаб.
// Смена активного блока перемонтирует экран через App.
func (c *BlockConfigurationController) SaveAndContinue(ctx context.Context) error {
	if _, err := c.Save(ctx); err != nil {
		return err
	}

	next, ok := c.deps.Session.NextPendingBlockID()
	if !ok {
		return c.deps.Navigation.NavigateTo(navigation.MainHub)
	}
	c.deps.Navigation.SetSelectedPfdBlock(next)
	return c.deps.Navigation.NavigateTo(navigation.BlockConfiguration)
}
