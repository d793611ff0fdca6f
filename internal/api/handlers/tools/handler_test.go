package tools

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartpid/internal/api/handlers/common"
	"smartpid/internal/domain/geometry"
	"smartpid/internal/domain/mandatory"
	"smartpid/internal/domain/matching"
)

func setupRouter() *gin.Engine {
	return setupRouterWith(nil)
}

func setupRouterWith(classifier *mandatory.Classifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(common.NewBaseHandler(), classifier)

	router := gin.New()
	router.POST("/api/tools/map", h.MapCoordinates)
	router.POST("/api/tools/match", h.MatchItems)
	router.POST("/api/tools/classify", h.Classify)
	router.GET("/api/tools/patterns", h.GetPatterns)
	return router
}

func post(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestMapCoordinates(t *testing.T) {
	router := setupRouter()

	w := post(router, "/api/tools/map", `{"boundingBox":{"x":0.5,"y":0.25,"width":0.1,"height":0.05},"docWidth":1000,"docHeight":800,"zoom":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	var coords geometry.ViewerCoordinates
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &coords))
	assert.InDelta(t, 1000, coords.X, 1e-9)
	assert.InDelta(t, 400, coords.Y, 1e-9)
	assert.InDelta(t, 200, coords.Width, 1e-9)
	assert.InDelta(t, 80, coords.Height, 1e-9)
	assert.InDelta(t, 1212, coords.CheckboxX, 1e-9)
	assert.InDelta(t, 440, coords.CheckboxY, 1e-9)

	w = post(router, "/api/tools/map", `{"docWidth":1000,"docHeight":800,"zoom":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &coords))
	assert.True(t, coords.IsZero())
}

func TestMatchItems(t *testing.T) {
	w := post(setupRouter(), "/api/tools/match", `{
		"items":[
			{"itemId":"1","itemName":"Feed pump","matchText":"P-101","isMandatory":true},
			{"itemId":"2","itemName":"Spare","matchText":"P-999"},
			{"itemId":"3","itemName":"No key"}
		],
		"detection":{"items":[{"text":"P-101","boundingBox":{"x":0.1,"y":0.2,"width":0.05,"height":0.02},"confidence":97.5}]}
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result matching.MatchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Matched, 1)
	assert.Equal(t, "1", result.Matched[0].ItemID)
	assert.Equal(t, 97.5, result.Matched[0].Confidence)
	require.Len(t, result.Unmatched, 2)
	assert.Equal(t, "2", result.Unmatched[0].ItemID)
	assert.Equal(t, "3", result.Unmatched[1].ItemID)
}

func TestClassify(t *testing.T) {
	router := setupRouter()

	w := post(router, "/api/tools/classify", `{"texts":["P-101"," psv-12 ","FT-200",""]}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp ClassifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.MandatoryCount)
	assert.Equal(t, []Classification{
		{Text: "P-101", IsMandatory: true},
		{Text: " psv-12 ", IsMandatory: true},
		{Text: "FT-200", IsMandatory: false},
		{Text: "", IsMandatory: false},
	}, resp.Results)

	w = post(router, "/api/tools/classify", `{"texts":["FT-200"],"extraPatterns":["^FT-\\d+"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.MandatoryCount)

	assert.Equal(t, http.StatusBadRequest, post(router, "/api/tools/classify", `{"texts":["x"],"extraPatterns":["("]}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(router, "/api/tools/classify", `{}`).Code)
}

func TestClassifyExtraPatternsKeepConfigured(t *testing.T) {
	classifier, err := mandatory.NewClassifier(`^FV-\d+`)
	require.NoError(t, err)
	router := setupRouterWith(classifier)

	var resp ClassifyResponse
	w := post(router, "/api/tools/classify", `{"texts":["FV-100","XX-7"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.MandatoryCount)

	w = post(router, "/api/tools/classify", `{"texts":["FV-100","XX-7"],"extraPatterns":["^XX-"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp = ClassifyResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.MandatoryCount)
	assert.Equal(t, []Classification{
		{Text: "FV-100", IsMandatory: true},
		{Text: "XX-7", IsMandatory: true},
	}, resp.Results)
}

func TestGetPatterns(t *testing.T) {
	w := httptest.NewRecorder()
	setupRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tools/patterns", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp PatternsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Patterns)
	assert.Equal(t, `^P-\d+[A-Z]?`, resp.Patterns[0])
}
