package smoothing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy-viewer/adapter"
	"energy-viewer/api"
	"energy-viewer/models"
)

func TestGetEnergyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/energyData", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[[1356998400, 10.5], [1357084800, 11.25]]`))
	}))
	defer srv.Close()

	client := NewSmoothingApiClient(api.NewHTTPClient(srv.URL))

	dataset, err := client.GetEnergyData(context.Background())

	require.NoError(t, err)
	assert.JSONEq(t, `[[1356998400, 10.5], [1357084800, 11.25]]`, dataset.String())
}

func TestHoltWinters(t *testing.T) {
	var received url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/holtWinters", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		received = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"original": [["01.01", 1], ["02.01", 2]], "smoothed": [["01.01", 1.1], ["02.01", 1.9]], "error": 0.042}`))
	}))
	defer srv.Close()

	client := NewSmoothingApiClient(api.NewHTTPClient(srv.URL))
	body := adapter.BuildSmoothingRequest(models.DefaultParameterSet(), models.ParseDataset(`[[1356998400, 1], [1357084800, 2]]`))

	got, err := client.HoltWinters(context.Background(), body)

	require.NoError(t, err)
	assert.Len(t, got.Original, 2)
	assert.Len(t, got.Smoothed, 2)
	assert.Equal(t, "0.2", received.Get("smoothingFactor"))
	assert.Equal(t, "[[1356998400, 1], [1357084800, 2]]", received.Get("data"))
}

func TestOptimize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/optimize", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Empty(t, r.PostForm.Get("smoothingFactor"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"params": {"smoothingFactor": 0.2345, "trendSmoothingFactor": 0.3456, "seasonSmoothingFactor": 0.4567}, "original": [], "smoothed": []}`))
	}))
	defer srv.Close()

	client := NewSmoothingApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.Optimize(context.Background(), adapter.BuildOptimizeRequest("6", "0", models.ParseDataset("[]")))

	require.NoError(t, err)
	assert.Equal(t, "0.2345", got.Params.SmoothingFactor.String())
}

func TestHoltWinters_ServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewSmoothingApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.HoltWinters(context.Background(), url.Values{})

	assert.Nil(t, got)
	assert.EqualError(t, err, "unexpected status code: 500 Internal Server Error")
}
