package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/internal/domain"
	"storefront/internal/logx"
)

// Config configures the remote catalog client (API_BASE_URL, API_TIMEOUT).
type Config struct {
	BaseURL string        `split_words:"true" default:"https://dummyjson.com"`
	Timeout time.Duration `default:"10s"`
}

// New builds a Client for the configured endpoint.
func (c Config) New() *Client {
	return &Client{
		base: strings.TrimRight(c.BaseURL, "/"),
		http: &http.Client{Timeout: c.Timeout},
	}
}

// Client talks to the remote product API. It performs no retries: a failed
// call surfaces immediately and retrying is a caller decision.
type Client struct {
	base string
	http *http.Client
}

type categoryResponse struct {
	Products []domain.Product `json:"products"`
}

// FetchCategory returns the products of a single category slug.
func (c *Client) FetchCategory(ctx context.Context, slug string) ([]domain.Product, error) {
	var res categoryResponse
	if err := c.getJSON(ctx, "/products/category/"+url.PathEscape(slug), &res); err != nil {
		return nil, err
	}
	return res.Products, nil
}

// FetchProduct returns a single product by identifier.
func (c *Client) FetchProduct(ctx context.Context, id int) (*domain.Product, error) {
	var p domain.Product
	if err := c.getJSON(ctx, fmt.Sprintf("/products/%d", id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Ping checks that the remote API answers at all. Any HTTP response counts
// as reachable; only transport-level failures are reported.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.base+"/", nil)
	if err != nil {
		return domain.ErrDataUnavailable
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return domain.ErrDataUnavailable
	}
	resp.Body.Close()
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		logx.Error().Err(err).Str("path", path).Msg("build catalog request")
		return domain.ErrDataUnavailable
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		logx.Error().Err(err).Str("path", path).Msg("catalog request failed")
		return domain.ErrDataUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		logx.Error().Int("status", resp.StatusCode).Str("path", path).Msg("catalog request rejected")
		return domain.ErrDataUnavailable
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logx.Error().Err(err).Str("path", path).Msg("decode catalog response")
		return domain.ErrDataUnavailable
	}
	return nil
}
