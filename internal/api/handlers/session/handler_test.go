package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartpid/internal/api/handlers/common"
	"smartpid/internal/domain/navigation"
	domain "smartpid/internal/domain/session"
	"smartpid/internal/events"
	"smartpid/internal/infrastructure/persistence"
)

func TestSessionEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	bus := events.NewBus(nil)
	nav := navigation.NewStateMachine(bus, nil)
	nav.SetSelectedDivision("boilers")
	nav.SetSelectedProduct("single_drum")
	nav.SetSelectedPfdBlocks([]string{"steam_drum", "economizer"})

	store := domain.NewStore(nav, persistence.NewMemoryStore(), bus, nil)
	_, err := store.SaveBlockConfiguration(ctx, "steam_drum", "Steam Drum", []domain.SheetConfiguration{
		{SheetName: "Instruments", SelectedItemIDs: []string{"SD-001"}},
	})
	require.NoError(t, err)

	h := NewHandler(common.NewBaseHandler(), store)
	router := gin.New()
	router.GET("/api/session", h.GetSession)
	router.GET("/api/session/blocks/:blockId", h.GetBlock)
	router.DELETE("/api/session", h.ClearSession)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/session", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ConfiguredBlocks)
	assert.Equal(t, 2, resp.TotalBlocks)
	assert.False(t, resp.AllConfigured)
	assert.Equal(t, "economizer", resp.NextPendingBlock)
	assert.Contains(t, resp.Configurations, "steam_drum")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/session/blocks/steam_drum", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var cfg domain.BlockConfiguration
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.Equal(t, []string{"SD-001"}, cfg.SheetConfigurations["Instruments"].SelectedItemIDs)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/session/blocks/economizer", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/session", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, store.ConfiguredBlockCount())
}
