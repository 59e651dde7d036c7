package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/netyark/storefront-backend/pkg/config"
)

// APIClient fetches catalog records from the upstream product API.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient builds a catalog client with an explicit request timeout
// so a hung upstream cannot wedge the storefront.
func NewAPIClient(cfg config.UpstreamConfig) (*APIClient, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("upstream base url required")
	}
	return &APIClient{
		baseURL:    base,
		httpClient: &http.Client{Timeout: cfg.CatalogTimeout},
	}, nil
}

// FetchProducts pulls the full catalog.
func (c *APIClient) FetchProducts(ctx context.Context) ([]Product, error) {
	return c.fetch(ctx, "/products")
}

// FetchWholesaleProducts pulls the wholesale-flagged subset.
func (c *APIClient) FetchWholesaleProducts(ctx context.Context) ([]Product, error) {
	return c.fetch(ctx, "/products/wholesale")
}

func (c *APIClient) fetch(ctx context.Context, path string) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", path, resp.StatusCode)
	}

	var products []Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return products, nil
}
