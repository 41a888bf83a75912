package carspecs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anshiiika/autoelite-dealership/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClient_ModelsByName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/cars", r.URL.Path)
		assert.Equal(t, "Tesla", r.URL.Query().Get("model"))
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		w.Write([]byte(`[{"model":"Model 3","year":2022},{"model":"Model S","year":2021}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", nil)
	models, err := client.ModelsByName(context.Background(), "Tesla")

	assert.NoError(t, err)
	assert.Equal(t, []string{"Model 3", "Model S"}, models)
}

func TestClient_ModelsByName_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "bad-key", nil)
	_, err := client.ModelsByName(context.Background(), "Tesla")

	var upstreamErr *domain.UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
}
