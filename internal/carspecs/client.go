// Package carspecs fetches vehicle specification records from the
// api-ninjas cars endpoint. Only the model names are consumed.
package carspecs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/anshiiika/autoelite-dealership/internal/domain"
)

type Client interface {
	ModelsByName(ctx context.Context, model string) ([]string, error)
}

type carRecord struct {
	Model string `json:"model"`
}

type httpClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient builds a Client against the given base URL, e.g.
// "https://api.api-ninjas.com". The API key is sent as X-Api-Key.
func NewClient(baseURL, apiKey string, base *http.Client) Client {
	if base == nil {
		base = &http.Client{Timeout: 10 * time.Second}
	}
	return &httpClient{baseURL: baseURL, apiKey: apiKey, client: base}
}

func (c *httpClient) ModelsByName(ctx context.Context, model string) ([]string, error) {
	endpoint := "/v1/cars?model=" + url.QueryEscape(model)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, &domain.UpstreamError{Op: "cars", Err: err}
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Op: "cars", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, resp.Body)
		return nil, &domain.UpstreamError{Op: "cars", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var records []carRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, &domain.UpstreamError{Op: "cars", Err: fmt.Errorf("decode response: %w", err)}
	}

	models := make([]string, 0, len(records))
	for _, r := range records {
		models = append(models, r.Model)
	}
	return models, nil
}

var _ Client = (*httpClient)(nil)
