package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Veraticus/prodchart/internal/common"
	"github.com/Veraticus/prodchart/internal/model"
	"github.com/Veraticus/prodchart/internal/service"
)

// DefaultURL is the public catalog endpoint.
const DefaultURL = "https://dummyjson.com/products"

// productCollection is the catalog response body.
type productCollection struct {
	Products []model.Product `json:"products"`
}

// HTTPSource fetches the catalog from an HTTP endpoint.
type HTTPSource struct {
	httpClient *http.Client
	url        string
}

// Ensure we implement the interface.
var _ service.CatalogSource = (*HTTPSource)(nil)

// NewHTTPSource creates a source for url. A zero timeout leaves the request
// bounded only by the caller's context.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// URL returns the endpoint this source reads from.
func (s *HTTPSource) URL() string {
	return s.url
}

// FetchProducts implements service.CatalogSource.
func (s *HTTPSource) FetchProducts(ctx context.Context) ([]model.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, common.FetchError(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	slog.Debug("Requesting product catalog", "url", s.url)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, common.FetchError(fmt.Errorf("failed to fetch data: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, common.FetchError(fmt.Errorf("catalog API error: %d - %s", resp.StatusCode, string(body)))
	}

	var collection productCollection
	if err := json.NewDecoder(resp.Body).Decode(&collection); err != nil {
		return nil, common.FetchError(fmt.Errorf("failed to decode response: %w", err))
	}
	if collection.Products == nil {
		return nil, common.FetchError(errors.New("response has no products field"))
	}
	if err := validateProducts(collection.Products); err != nil {
		return nil, common.FetchError(err)
	}

	slog.Debug("Fetched product catalog", "count", len(collection.Products))

	return collection.Products, nil
}

// validateProducts rejects records the catalog cannot key on: a missing id,
// an empty title, or an id seen twice.
func validateProducts(products []model.Product) error {
	seen := make(map[int]struct{}, len(products))
	for i, p := range products {
		if p.ID == 0 {
			return fmt.Errorf("product %d has no id", i)
		}
		if p.Title == "" {
			return fmt.Errorf("product %d has no title", p.ID)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("duplicate product id %d", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
