// Package geodata talks to a countriesnow.space-compatible geographic
// directory provider. Responses are parsed into typed records and any
// unexpected status, transport failure, or undecodable body fails closed
// with a domain.UpstreamError.
package geodata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/anshiiika/autoelite-dealership/internal/domain"
)

// Client exposes the three directory operations the lookup service needs.
type Client interface {
	Countries(ctx context.Context) ([]Country, error)
	States(ctx context.Context, country string) ([]State, error)
	Cities(ctx context.Context, country, state string) ([]string, error)
}

type Country struct {
	Name string  `json:"name"`
	ISO2 string  `json:"iso2"`
	Long float64 `json:"long"`
	Lat  float64 `json:"lat"`
}

type State struct {
	Name      string `json:"name"`
	StateCode string `json:"state_code"`
}

type countriesResponse struct {
	Data []Country `json:"data"`
}

type statesResponse struct {
	Data struct {
		Name   string  `json:"name"`
		States []State `json:"states"`
	} `json:"data"`
}

type citiesResponse struct {
	Data []string `json:"data"`
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

const defaultTimeout = 10 * time.Second

// NewClient builds a Client against the given base URL, e.g.
// "https://countriesnow.space/api/v0.1". A nil base http.Client gets a
// default with a 10s timeout.
func NewClient(baseURL string, base *http.Client) Client {
	if base == nil {
		base = &http.Client{Timeout: defaultTimeout}
	}
	return &httpClient{baseURL: baseURL, client: base}
}

func (c *httpClient) Countries(ctx context.Context) ([]Country, error) {
	var out countriesResponse
	if err := c.getJSON(ctx, "/countries/positions", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *httpClient) States(ctx context.Context, country string) ([]State, error) {
	var out statesResponse
	body := map[string]string{"country": country}
	if err := c.postJSON(ctx, "/countries/states", body, &out); err != nil {
		return nil, err
	}
	return out.Data.States, nil
}

func (c *httpClient) Cities(ctx context.Context, country, state string) ([]string, error) {
	var out citiesResponse
	body := map[string]string{"country": country, "state": state}
	if err := c.postJSON(ctx, "/countries/state/cities", body, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *httpClient) getJSON(ctx context.Context, endpoint string, entity interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return &domain.UpstreamError{Op: endpoint, Err: err}
	}
	return c.do(req, endpoint, entity)
}

func (c *httpClient) postJSON(ctx context.Context, endpoint string, body interface{}, entity interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &domain.UpstreamError{Op: endpoint, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return &domain.UpstreamError{Op: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, endpoint, entity)
}

func (c *httpClient) do(req *http.Request, endpoint string, entity interface{}) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return &domain.UpstreamError{Op: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, resp.Body)
		return &domain.UpstreamError{Op: endpoint, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(entity); err != nil {
		return &domain.UpstreamError{Op: endpoint, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

var _ Client = (*httpClient)(nil)
