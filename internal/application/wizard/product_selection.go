package wizard

import (
	"context"
	"fmt"

	"smartpid/internal/domain/navigation"
)

// ProductCard карточка продукта. Продукт без блоков недоступен.
type ProductCard struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	BlockCount     int    `json:"blockCount"`
	MandatoryCount int    `json:"mandatoryCount"`
	Disabled       bool   `json:"disabled"`
}

// ProductView представление второго шага
type ProductView struct {
	Title        string        `json:"title"`
	Breadcrumb   []string      `json:"breadcrumb"`
	DivisionID   string        `json:"divisionId"`
	DivisionName string        `json:"divisionName"`
	Products     []ProductCard `json:"products"`
	IsEmpty      bool          `json:"isEmpty"`
}

// ProductSelectionController шаг 2: выбор продукта
type ProductSelectionController struct {
	deps       *Deps
	divisionID string
}

func newProductSelection(deps *Deps) *ProductSelectionController {
	return &ProductSelectionController{deps: deps}
}

// Screen экран контроллера
func (c *ProductSelectionController) Screen() navigation.Screen {
	return navigation.ProductSelection
}

// Mount без выбранного подразделения возвращает на первый шаг
func (c *ProductSelectionController) Mount(context.Context) error {
	c.divisionID = c.deps.Navigation.SelectedDivisionID()
	if c.divisionID == "" {
		c.deps.Logger.Warn("product selection without division, redirecting")
		return c.deps.Navigation.NavigateTo(navigation.DivisionSelection)
	}
	return nil
}

// View продукты выбранного подразделения
func (c *ProductSelectionController) View() any {
	divisionName := c.deps.Catalog.DivisionName(c.divisionID)
	view := ProductView{
		Title:        "Select Product",
		Breadcrumb:   []string{divisionName},
		DivisionID:   c.divisionID,
		DivisionName: divisionName,
		Products:     []ProductCard{},
	}

	for _, p := range c.deps.Catalog.Products(c.divisionID) {
		mandatory := 0
		for _, b := range p.PfdBlocks {
			if b.IsMandatory {
				mandatory++
			}
		}
		view.Products = append(view.Products, ProductCard{
			ID:             p.ID,
			Name:           p.Name,
			BlockCount:     len(p.PfdBlocks),
			MandatoryCount: mandatory,
			Disabled:       len(p.PfdBlocks) == 0,
		})
	}
	view.IsEmpty = len(view.Products) == 0
	return view
}

// SelectProduct выбирает продукт и переходит к блокам PFD
func (c *ProductSelectionController) SelectProduct(productID string) error {
	product, ok := c.deps.Catalog.Product(c.divisionID, productID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProduct, productID)
	}
	if len(product.PfdBlocks) == 0 {
		return fmt.Errorf("%w: %q", ErrProductDisabled, productID)
	}
	c.deps.Navigation.SetSelectedProduct(productID)
	return c.deps.Navigation.NavigateTo(navigation.PfdBlockSelection)
}
