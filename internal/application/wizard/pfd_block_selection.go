package wizard

import (
	"context"
	"fmt"

	"smartpid/internal/domain/navigation"
)

// BlockChoice блок PFD на экране выбора
type BlockChoice struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IsMandatory bool   `json:"isMandatory"`
	IsSelected  bool   `json:"isSelected"`
}

// BlockSelectionView представление третьего шага
type BlockSelectionView struct {
	Title          string        `json:"title"`
	Breadcrumb     []string      `json:"breadcrumb"`
	Blocks         []BlockChoice `json:"blocks"`
	SelectedCount  int           `json:"selectedCount"`
	MandatoryCount int           `json:"mandatoryCount"`
	TotalCount     int           `json:"totalCount"`
	CanContinue    bool          `json:"canContinue"`
}

// PfdBlockSelectionController шаг 3: выбор блоков PFD.
// Обязательные блоки отмечены сразу и не снимаются.
type PfdBlockSelectionController struct {
	deps       *Deps
	divisionID string
	productID  string
	blocks     []BlockChoice
}

func newPfdBlockSelection(deps *Deps) *PfdBlockSelectionController {
	return &PfdBlockSelectionController{deps: deps}
}

// Screen экран контроллера
func (c *PfdBlockSelectionController) Screen() navigation.Screen {
	return navigation.PfdBlockSelection
}

// Mount строит список блоков. Ранее выбранные блоки остаются отмеченными.
func (c *PfdBlockSelectionController) Mount(context.Context) error {
	state := c.deps.Navigation.Snapshot()
	if state.SelectedDivisionID == "" || state.SelectedProductID == "" {
		c.deps.Logger.Warn("block selection without division or product, redirecting")
		return c.deps.Navigation.NavigateTo(navigation.ProductSelection)
	}
	c.divisionID = state.SelectedDivisionID
	c.productID = state.SelectedProductID

	previous := make(map[string]bool, len(state.SelectedPfdBlockIDs))
	for _, id := range state.SelectedPfdBlockIDs {
		previous[id] = true
	}

	catalogBlocks := c.deps.Catalog.PfdBlocks(c.divisionID, c.productID)
	c.blocks = make([]BlockChoice, 0, len(catalogBlocks))
	for _, b := range catalogBlocks {
		c.blocks = append(c.blocks, BlockChoice{
			ID:          b.ID,
			Name:        b.Name,
			IsMandatory: b.IsMandatory,
			IsSelected:  b.IsMandatory || previous[b.ID],
		})
	}
	return nil
}

// View блоки и счетчики
func (c *PfdBlockSelectionController) View() any {
	view := BlockSelectionView{
		Title: "Select PFD Blocks",
		Breadcrumb: []string{
			c.deps.Catalog.DivisionName(c.divisionID),
			c.deps.Catalog.ProductName(c.divisionID, c.productID),
		},
		Blocks:     append([]BlockChoice{}, c.blocks...),
		TotalCount: len(c.blocks),
	}
	for _, b := range c.blocks {
		if b.IsSelected {
			view.SelectedCount++
		}
		if b.IsMandatory {
			view.MandatoryCount++
		}
	}
	view.CanContinue = view.SelectedCount > 0
	return view
}

// ToggleBlock переключает необязательный блок
func (c *PfdBlockSelectionController) ToggleBlock(blockID string) error {
	for i := range c.blocks {
		if c.blocks[i].ID != blockID {
			continue
		}
		if c.blocks[i].IsMandatory {
			return fmt.Errorf("%w: %q", ErrMandatoryLocked, blockID)
		}
		c.blocks[i].IsSelected = !c.blocks[i].IsSelected
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownBlock, blockID)
}

// Continue сохраняет выбранные блоки в порядке каталога и открывает хаб
func (c *PfdBlockSelectionController) Continue() error {
	selected := make([]string, 0, len(c.blocks))
	for _, b := range c.blocks {
		if b.IsSelected {
			selected = append(selected, b.ID)
		}
	}
	if len(selected) == 0 {
		return ErrNoBlocksSelected
	}

	c.deps.Navigation.SetSelectedPfdBlocks(selected)
	return c.deps.Navigation.NavigateTo(navigation.MainHub)
}
