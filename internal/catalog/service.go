package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/netyark/storefront-backend/pkg/logger"
)

// Fetcher is the upstream surface the service caches over.
type Fetcher interface {
	FetchProducts(ctx context.Context) ([]Product, error)
	FetchWholesaleProducts(ctx context.Context) ([]Product, error)
}

// Service caches the upstream catalog and answers product lookups.
// Upstream failures degrade to empty results; the storefront renders
// "no products" instead of crashing.
type Service struct {
	fetcher Fetcher
	logg    *logger.Logger

	mu     sync.RWMutex
	cache  []Product
	loaded bool
}

// NewService builds a catalog service over the given fetcher.
func NewService(fetcher Fetcher, logg *logger.Logger) *Service {
	return &Service{fetcher: fetcher, logg: logg}
}

// Products returns the cached catalog, fetching it on first use.
// forceRefresh bypasses the cache.
func (s *Service) Products(ctx context.Context, forceRefresh bool) []Product {
	s.mu.RLock()
	if s.loaded && !forceRefresh {
		defer s.mu.RUnlock()
		return copyProducts(s.cache)
	}
	s.mu.RUnlock()

	s.refresh(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyProducts(s.cache)
}

func (s *Service) refresh(ctx context.Context) {
	products, err := s.fetcher.FetchProducts(ctx)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "catalog fetch failed", err)
		}
		s.mu.Lock()
		// Keep the last good cache when one exists; first failure
		// settles on an empty catalog.
		if !s.loaded {
			s.cache = nil
			s.loaded = true
		}
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.cache = products
	s.loaded = true
	s.mu.Unlock()
}

// StartRefresher re-fetches the catalog on the given interval until the
// context is cancelled.
func (s *Service) StartRefresher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.refresh(ctx)
			}
		}
	}()
}

// GetProductByID resolves a product under either identity field. A nil
// result is the normal not-found outcome, not an error.
func (s *Service) GetProductByID(ctx context.Context, id string) *Product {
	for _, product := range s.Products(ctx, false) {
		if product.MatchesID(id) {
			found := product
			return &found
		}
	}
	return nil
}

// GetProductsByCategory filters the catalog by category, accepting both
// the slug and display spellings.
func (s *Service) GetProductsByCategory(ctx context.Context, category string) []Product {
	mapped := MapCategory(category)
	var matched []Product
	for _, product := range s.Products(ctx, false) {
		if product.Category == mapped || product.Category == category {
			matched = append(matched, product)
		}
	}
	return matched
}

// WholesaleProducts lists the wholesale subset from the dedicated
// upstream endpoint, degrading to empty on failure.
func (s *Service) WholesaleProducts(ctx context.Context) []Product {
	products, err := s.fetcher.FetchWholesaleProducts(ctx)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "wholesale catalog fetch failed", err)
		}
		return nil
	}
	return products
}

// LowStockProducts lists products on hand at or below the threshold.
func (s *Service) LowStockProducts(ctx context.Context, threshold int) []Product {
	var matched []Product
	for _, product := range s.Products(ctx, false) {
		count := product.CountOnHand()
		if count > 0 && count <= threshold {
			matched = append(matched, product)
		}
	}
	return matched
}

// DecrementStock applies an optimistic local decrement after an order
// submission. Authoritative stock lives upstream; this only keeps the
// cached view consistent until the next refresh.
func (s *Service) DecrementStock(productID string, quantity int) {
	if quantity <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cache {
		if s.cache[i].MatchesID(productID) {
			s.cache[i].SetCount(s.cache[i].CountOnHand() - quantity)
			return
		}
	}
}

func copyProducts(src []Product) []Product {
	if len(src) == 0 {
		return nil
	}
	out := make([]Product, len(src))
	copy(out, src)
	return out
}
