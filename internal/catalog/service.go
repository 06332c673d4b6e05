package catalog

import (
	"context"
	"sync"
	"time"
)

// Service serves the menu from a TTL cache in front of the repository.
// The cache exists so a kiosk browsing the menu between taps does not
// hit the database on every request; the session lifecycle controller
// invalidates it when a session expires so the next session starts
// from fresh branch data.
type Service struct {
	repo Repository
	ttl  time.Duration

	mu      sync.Mutex
	cached  []Product
	byID    map[string]*Product
	expires time.Time
}

func NewService(repo Repository, ttl time.Duration) *Service {
	return &Service{repo: repo, ttl: ttl}
}

// Menu returns the full product list, loading through the repository
// on a cache miss.
func (s *Service) Menu(ctx context.Context) ([]Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.cached, nil
}

// Product returns one product by ID from the cached menu.
func (s *Service) Product(ctx context.Context, id string) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	p, ok := s.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// Invalidate drops the cached menu so the next read refetches.
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = nil
	s.byID = nil
	s.expires = time.Time{}
}

// ensureLoaded must be called with s.mu held.
func (s *Service) ensureLoaded(ctx context.Context) error {
	if s.cached != nil && time.Now().Before(s.expires) {
		return nil
	}
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return err
	}
	if products == nil {
		products = []Product{}
	}
	byID := make(map[string]*Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	s.cached = products
	s.byID = byID
	s.expires = time.Now().Add(s.ttl)
	return nil
}
