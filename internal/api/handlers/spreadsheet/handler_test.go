package spreadsheet

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"smartpid/internal/api/handlers/common"
	"smartpid/internal/application/wizard"
	"smartpid/internal/domain/catalog"
	"smartpid/internal/domain/mockdata"
	"smartpid/internal/domain/navigation"
	"smartpid/internal/domain/revision"
	"smartpid/internal/domain/session"
	"smartpid/internal/events"
	"smartpid/internal/infrastructure/persistence"
	"smartpid/internal/infrastructure/spreadsheet"
)

func setup(t *testing.T) (*gin.Engine, *wizard.App) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	bus := events.NewBus(nil)
	kv := persistence.NewMemoryStore()
	nav := navigation.NewStateMachine(bus, nil)
	cat := catalog.NewStore("", nil)
	require.True(t, cat.Load(ctx).IsSuccess)

	wizardApp := wizard.New(wizard.Deps{
		Catalog:    cat,
		MockData:   mockdata.NewStore("", nil),
		Session:    session.NewStore(nav, kv, bus, nil),
		Navigation: nav,
		Revisions:  revision.NewStore(kv, bus, nil),
		Bus:        bus,
	})
	require.NoError(t, wizardApp.Start(ctx))
	t.Cleanup(wizardApp.Stop)

	h := NewHandler(common.NewBaseHandler(), wizardApp, nil)
	h.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }

	router := gin.New()
	router.POST("/api/blocks/:blockId/sheets", h.ImportSheets)
	router.GET("/api/export", h.ExportConfiguration)
	return router, wizardApp
}

func workbook(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Coils"))
	rows := [][]any{
		{"Item ID", "Item Name", "Match Text"},
		{"E-1", "Economizer coil", "E-101"},
		{"E-2", "Vent", "VT-1"},
	}
	for i, row := range rows {
		cellName, _ := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, f.SetSheetRow("Coils", cellName, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func upload(t *testing.T, router *gin.Engine, path string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if content != nil {
		part, err := mw.CreateFormFile("file", "items.xlsx")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	router.ServeHTTP(w, req)
	return w
}

func TestImportAndExport(t *testing.T) {
	router, wizardApp := setup(t)

	w := upload(t, router, "/api/blocks/economizer/sheets", workbook(t))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp ImportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "economizer", resp.BlockID)
	assert.Equal(t, []ImportedSheet{{Name: "Coils", ItemCount: 2, MandatoryCount: 1}}, resp.Sheets)

	require.NoError(t, wizardApp.SelectDivision("boilers"))
	require.NoError(t, wizardApp.SelectProduct("single_drum"))
	require.NoError(t, wizardApp.ToggleBlock("economizer"))
	require.NoError(t, wizardApp.Continue())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/export", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ContentTypeXLSX, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "smartpid-configuration-20260301-100000.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(spreadsheet.ItemsSheet)
	require.NoError(t, err)

	var coil []string
	for _, row := range rows {
		if len(row) > 2 && row[0] == "economizer" && row[2] == "E-1" {
			coil = row
		}
	}
	require.NotNil(t, coil)
	assert.Equal(t, "Coils", coil[1])
	assert.Equal(t, "Yes", coil[5])
	assert.Equal(t, "Yes", coil[6])
}

func TestImportErrors(t *testing.T) {
	router, _ := setup(t)

	assert.Equal(t, http.StatusBadRequest, upload(t, router, "/api/blocks/economizer/sheets", nil).Code)
	assert.Equal(t, http.StatusBadRequest, upload(t, router, "/api/blocks/economizer/sheets", []byte("not a workbook")).Code)
}
