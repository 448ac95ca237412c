package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy-viewer/api/smoothing"
	"energy-viewer/chart"
	"energy-viewer/models"
	services "energy-viewer/service"
	"energy-viewer/session"
)

const testDataset = `[[1356998400, 1.5], [1357084800, 2.5], [1357171200, 3.5]]`

func newTestHandler(t *testing.T, energy string) *ViewHandler {
	t.Helper()
	dir := t.TempDir()
	energyPath := filepath.Join(dir, "energy_data.json")
	optimizePath := filepath.Join(dir, "optimize_response.json")
	if energy != "" {
		require.NoError(t, os.WriteFile(energyPath, []byte(energy), 0o644))
	}
	require.NoError(t, os.WriteFile(optimizePath, []byte(
		`{"params": {"smoothingFactor": 0.2345, "trendSmoothingFactor": 0.1123, "seasonSmoothingFactor": 0.8765}, "error": 4.217}`), 0o644))

	api := smoothing.NewSmoothingApiClientMock(energyPath, optimizePath)
	return NewViewHandler(services.NewViewService(api, nil, chart.KilowattHourOptions()))
}

func postForm(h http.HandlerFunc, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func testForm(id string) url.Values {
	state := session.New(models.ParseDataset(testDataset))
	state.ID = id
	return state.Form()
}

func TestViewHandler_Index(t *testing.T) {
	h := newTestHandler(t, testDataset)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	h.Index(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	assert.Contains(t, body, `name="smoothingFactor" value="0.2"`)
	assert.Contains(t, body, `name="trendSmoothingFactor" value="0.3"`)
	assert.Contains(t, body, `name="seasonSmoothingFactor" value="0.4"`)
	assert.Contains(t, body, `name="seasonLength" value="6"`)
	assert.Contains(t, body, `name="valuesToForecast" value="0"`)
	assert.Contains(t, body, `<div id="status" class=""></div>`)
	assert.Contains(t, body, `srcdoc="`)
	assert.Contains(t, body, chart.CHART_CONTAINER_ID)
	assert.NotContains(t, body, `class="highlighted"`)
}

func TestViewHandler_Index_BackendFailure(t *testing.T) {
	h := newTestHandler(t, "")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	h.Index(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `<div id="status" class="error">`)
}

func TestViewHandler_Smooth(t *testing.T) {
	h := newTestHandler(t, testDataset)
	form := testForm(uuid.NewString())
	form.Set(models.SMOOTHING_FACTOR_FIELD, "0.5")
	form.Set(models.VALUES_TO_FORECAST_FIELD, "2")

	rr := postForm(h.Smooth, "/smooth", form)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `name="smoothingFactor" value="0.5"`)
	assert.Contains(t, body, `name="valuesToForecast" value="2"`)
	assert.Contains(t, body, `value="`+form.Get(session.SESSION_ID_FIELD)+`"`)
}

func TestViewHandler_Optimize(t *testing.T) {
	h := newTestHandler(t, testDataset)

	rr := postForm(h.Optimize, "/optimize", testForm(uuid.NewString()))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `name="smoothingFactor" value="0.23"`)
	assert.Contains(t, body, `name="trendSmoothingFactor" value="0.11"`)
	assert.Contains(t, body, `name="seasonSmoothingFactor" value="0.87"`)
	assert.Contains(t, body, `name="seasonLength" value="6">`)
	assert.Equal(t, 3, strings.Count(body, `class="highlighted"`))
	assert.Contains(t, body, "highlight-pulse 2s")
}

func TestViewHandler_ChartJSON(t *testing.T) {
	h := newTestHandler(t, testDataset)
	id := uuid.NewString()
	require.Equal(t, http.StatusOK, postForm(h.Smooth, "/smooth", testForm(id)).Code)

	tests := []struct {
		name       string
		sessionID  string
		statusCode int
		contains   string
	}{
		{"known session", id, http.StatusOK, `"title":"Energy Data"`},
		{"unknown session", uuid.NewString(), http.StatusNotFound, "Unknown session"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/chart.json?sessionId="+tt.sessionID, nil)
			rr := httptest.NewRecorder()

			h.ChartJSON(rr, req)

			assert.Equal(t, tt.statusCode, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.contains)
		})
	}
}

func TestViewHandler_Ping(t *testing.T) {
	h := newTestHandler(t, testDataset)
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rr := httptest.NewRecorder()

	h.Ping(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status": "pong"}`, rr.Body.String())
}
