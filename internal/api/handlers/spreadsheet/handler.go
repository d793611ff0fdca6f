// Package spreadsheet HTTP обработчики импорта листов блока и выгрузки конфигурации в xlsx.
package spreadsheet

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smartpid/internal/api/handlers/common"
	"smartpid/internal/application/wizard"
	"smartpid/internal/domain/mandatory"
	"smartpid/internal/infrastructure/spreadsheet"
)

// MaxUploadSize предельный размер загружаемой книги
const MaxUploadSize = 10 << 20

// ContentTypeXLSX MIME тип книги Excel
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler обработчик импорта и выгрузки
type Handler struct {
	baseHandler *common.BaseHandler
	app         *wizard.App
	classifier  *mandatory.Classifier
	now         func() time.Time
}

// NewHandler создает обработчик. nil classifier заменяется стандартным.
func NewHandler(baseHandler *common.BaseHandler, wizardApp *wizard.App, classifier *mandatory.Classifier) *Handler {
	if classifier == nil {
		classifier = mandatory.Default()
	}
	return &Handler{
		baseHandler: baseHandler,
		app:         wizardApp,
		classifier:  classifier,
		now:         time.Now,
	}
}

// ImportedSheet сводка по импортированному листу
type ImportedSheet struct {
	Name           string `json:"name"`
	ItemCount      int    `json:"itemCount"`
	MandatoryCount int    `json:"mandatoryCount"`
}

// ImportResponse результат импорта
type ImportResponse struct {
	BlockID string          `json:"blockId"`
	Sheets  []ImportedSheet `json:"sheets"`
}

// ImportSheets загрузка листов блока из xlsx
// @Summary Импортировать листы блока
// @Description Каждый лист книги с колонкой Item ID становится листом блока. Без колонки Mandatory обязательность определяется по тегу.
// @Tags spreadsheet
// @Accept multipart/form-data
// @Produce json
// @Param blockId path string true "ID блока"
// @Param file formData file true "Книга xlsx"
// @Success 200 {object} ImportResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /blocks/{blockId}/sheets [post]
func (h *Handler) ImportSheets(c *gin.Context) {
	blockID := c.Param("blockId")

	header, err := c.FormFile("file")
	if err != nil {
		h.baseHandler.BadRequest(c, "file is required", err)
		return
	}
	if header.Size > MaxUploadSize {
		h.baseHandler.BadRequest(c, fmt.Sprintf("file exceeds %d bytes", MaxUploadSize), nil)
		return
	}

	file, err := header.Open()
	if err != nil {
		h.baseHandler.BadRequest(c, "failed to read upload", err)
		return
	}
	defer file.Close()

	sheets, err := spreadsheet.ParseWorkbook(file, spreadsheet.ImportOptions{Classifier: h.classifier})
	if err != nil {
		h.baseHandler.BadRequest(c, "invalid workbook", err)
		return
	}
	if err := h.app.ImportSheets(blockID, sheets); err != nil {
		h.baseHandler.HandleError(c, err)
		return
	}

	resp := ImportResponse{BlockID: blockID, Sheets: make([]ImportedSheet, 0, len(sheets))}
	for _, sheet := range sheets {
		summary := ImportedSheet{Name: sheet.Name, ItemCount: len(sheet.Items)}
		for _, item := range sheet.Items {
			if item.IsMandatory {
				summary.MandatoryCount++
			}
		}
		resp.Sheets = append(resp.Sheets, summary)
	}

	slog.Info("workbook imported",
		"block_id", blockID,
		"file", header.Filename,
		"sheets", len(sheets),
	)
	h.baseHandler.WriteJSON(c, http.StatusOK, resp)
}

// ExportConfiguration выгрузка конфигурации выбранных блоков
// @Summary Выгрузить конфигурацию в xlsx
// @Tags spreadsheet
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} middleware.ErrorResponse
// @Router /export [get]
func (h *Handler) ExportConfiguration(c *gin.Context) {
	now := h.now()
	report := h.app.Report(now)

	var buf bytes.Buffer
	if err := spreadsheet.WriteReport(&buf, report); err != nil {
		h.baseHandler.HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("smartpid-configuration-%s.xlsx", now.UTC().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, ContentTypeXLSX, buf.Bytes())
}
