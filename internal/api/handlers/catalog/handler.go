// Package catalog HTTP обработчики справочника подразделений, продуктов и блоков PFD.
package catalog

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartpid/internal/api/handlers/common"
	domain "smartpid/internal/domain/catalog"
)

// Handler обработчик каталога
type Handler struct {
	baseHandler *common.BaseHandler
	store       *domain.Store
}

// NewHandler создает обработчик каталога
func NewHandler(baseHandler *common.BaseHandler, store *domain.Store) *Handler {
	return &Handler{
		baseHandler: baseHandler,
		store:       store,
	}
}

// DivisionSummary подразделение без вложенных продуктов
type DivisionSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	IconColor    string `json:"iconColor"`
	ProductCount int    `json:"productCount"`
}

// DivisionsResponse список подразделений
type DivisionsResponse struct {
	Loaded    bool              `json:"loaded"`
	Divisions []DivisionSummary `json:"divisions"`
	Total     int               `json:"total"`
}

// ProductSummary продукт без вложенных блоков
type ProductSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	BlockCount int    `json:"blockCount"`
}

// ProductsResponse продукты подразделения
type ProductsResponse struct {
	DivisionID string           `json:"divisionId"`
	Products   []ProductSummary `json:"products"`
	Total      int              `json:"total"`
}

// BlocksResponse блоки PFD продукта
type BlocksResponse struct {
	DivisionID string            `json:"divisionId"`
	ProductID  string            `json:"productId"`
	Blocks     []domain.PfdBlock `json:"blocks"`
	Total      int               `json:"total"`
}

// GetDivisions список подразделений
// @Summary Получить подразделения
// @Description Возвращает подразделения каталога с количеством продуктов
// @Tags catalog
// @Produce json
// @Success 200 {object} DivisionsResponse
// @Router /catalog/divisions [get]
func (h *Handler) GetDivisions(c *gin.Context) {
	divisions := h.store.Divisions()
	out := make([]DivisionSummary, 0, len(divisions))
	for _, d := range divisions {
		out = append(out, DivisionSummary{
			ID:           d.ID,
			Name:         d.Name,
			Description:  d.Description,
			Icon:         d.Icon,
			IconColor:    domain.IconColor(d.Icon),
			ProductCount: len(d.Products),
		})
	}

	h.baseHandler.WriteJSON(c, http.StatusOK, DivisionsResponse{
		Loaded:    h.store.IsLoaded(),
		Divisions: out,
		Total:     len(out),
	})
}

// GetProducts продукты подразделения
// @Summary Получить продукты подразделения
// @Tags catalog
// @Produce json
// @Param divisionId path string true "ID подразделения"
// @Success 200 {object} ProductsResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /catalog/divisions/{divisionId}/products [get]
func (h *Handler) GetProducts(c *gin.Context) {
	divisionID := c.Param("divisionId")
	if _, ok := h.store.Division(divisionID); !ok {
		h.baseHandler.NotFound(c, fmt.Sprintf("division %q not found", divisionID))
		return
	}

	products := h.store.Products(divisionID)
	out := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		out = append(out, ProductSummary{ID: p.ID, Name: p.Name, BlockCount: len(p.PfdBlocks)})
	}

	h.baseHandler.WriteJSON(c, http.StatusOK, ProductsResponse{
		DivisionID: divisionID,
		Products:   out,
		Total:      len(out),
	})
}

// GetBlocks блоки PFD продукта
// @Summary Получить блоки PFD продукта
// @Tags catalog
// @Produce json
// @Param divisionId path string true "ID подразделения"
// @Param productId path string true "ID продукта"
// @Success 200 {object} BlocksResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /catalog/divisions/{divisionId}/products/{productId}/blocks [get]
func (h *Handler) GetBlocks(c *gin.Context) {
	divisionID := c.Param("divisionId")
	productID := c.Param("productId")
	if _, ok := h.store.Product(divisionID, productID); !ok {
		h.baseHandler.NotFound(c, fmt.Sprintf("product %q not found in division %q", productID, divisionID))
		return
	}

	blocks := h.store.PfdBlocks(divisionID, productID)
	h.baseHandler.WriteJSON(c, http.StatusOK, BlocksResponse{
		DivisionID: divisionID,
		ProductID:  productID,
		Blocks:     blocks,
		Total:      len(blocks),
	})
}
