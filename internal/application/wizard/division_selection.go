package wizard

import (
	"context"
	"fmt"

	"smartpid/internal/domain/catalog"
	"smartpid/internal/domain/navigation"
)

// DivisionCard карточка подразделения
type DivisionCard struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	IconColor    string `json:"iconColor"`
	ProductCount int    `json:"productCount"`
}

// DivisionView представление первого шага
type DivisionView struct {
	Title      string         `json:"title"`
	Divisions  []DivisionCard `json:"divisions"`
	LoadError  string         `json:"loadError,omitempty"`
	SelectedID string         `json:"selectedId,omitempty"`
}

// DivisionSelectionController шаг 1: выбор подразделения
type DivisionSelectionController struct {
	deps      *Deps
	loadError string
}

func newDivisionSelection(deps *Deps) *DivisionSelectionController {
	return &DivisionSelectionController{deps: deps}
}

// Screen экран контроллера
func (c *DivisionSelectionController) Screen() navigation.Screen {
	return navigation.DivisionSelection
}

// Mount загружает каталог, если он еще не загружен
func (c *DivisionSelectionController) Mount(ctx context.Context) error {
	if c.deps.Catalog.IsLoaded() {
		return nil
	}
	return c.Reload(ctx)
}

// Reload повторяет загрузку каталога. Ошибка загрузки попадает в представление.
func (c *DivisionSelectionController) Reload(ctx context.Context) error {
	result := c.deps.Catalog.Load(ctx)
	c.loadError = result.Error
	if !result.IsSuccess {
		c.deps.Logger.Warn("catalog unavailable on division screen", "error", result.Error)
	}
	return nil
}

// View карточки подразделений или ошибка загрузки
func (c *DivisionSelectionController) View() any {
	view := DivisionView{
		Title:      "Select Division",
		Divisions:  []DivisionCard{},
		LoadError:  c.loadError,
		SelectedID: c.deps.Navigation.SelectedDivisionID(),
	}
	for _, d := range c.deps.Catalog.Divisions() {
		view.Divisions = append(view.Divisions, DivisionCard{
			ID:           d.ID,
			Name:         d.Name,
			Description:  d.Description,
			Icon:         d.Icon,
			IconColor:    catalog.IconColor(d.Icon),
			ProductCount: len(d.Products),
		})
	}
	return view
}

// SelectDivision выбирает подразделение и переходит к продуктам
func (c *DivisionSelectionController) SelectDivision(divisionID string) error {
	if _, ok := c.deps.Catalog.Division(divisionID); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDivision, divisionID)
	}
	c.deps.Navigation.SetSelectedDivision(divisionID)
	return c.deps.Navigation.NavigateTo(navigation.ProductSelection)
}
