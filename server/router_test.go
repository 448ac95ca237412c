package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

// MockViewHandler is a mock implementation of ViewHandler.
type MockViewHandler struct{}

func (h *MockViewHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`index`))
}

func (h *MockViewHandler) Smooth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`smooth`))
}

func (h *MockViewHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`optimize`))
}

func (h *MockViewHandler) ChartJSON(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"title": "Energy Data"}`))
}

func (h *MockViewHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "pong"}`))
}

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	router := mux.NewRouter()
	appRouter := NewRouter(&MockViewHandler{}, router)
	appRouter.RegisterRoutes()

	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{
			name:       "Index",
			method:     "GET",
			path:       "/",
			statusCode: http.StatusOK,
			response:   `index`,
		},
		{
			name:       "Smooth",
			method:     "POST",
			path:       "/smooth",
			statusCode: http.StatusOK,
			response:   `smooth`,
		},
		{
			name:       "Optimize",
			method:     "POST",
			path:       "/optimize",
			statusCode: http.StatusOK,
			response:   `optimize`,
		},
		{
			name:       "Chart JSON",
			method:     "GET",
			path:       "/chart.json?sessionId=abc",
			statusCode: http.StatusOK,
			response:   `{"title": "Energy Data"}`,
		},
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: http.StatusOK,
			response:   `{"status": "pong"}`,
		},
		{
			name:       "Smooth Requires POST",
			method:     "GET",
			path:       "/smooth",
			statusCode: http.StatusMethodNotAllowed,
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, test.statusCode, rr.Code)
			if test.response != "" {
				assert.Equal(t, test.response, rr.Body.String())
			}
		})
	}
}
