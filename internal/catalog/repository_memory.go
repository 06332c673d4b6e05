package catalog

import "context"

// InMemoryRepository serves a fixed product list. Used in tests and in
// demo mode when no database is configured.
type InMemoryRepository struct {
	products []Product
	byID     map[string]*Product
}

func NewInMemoryRepository(products ...Product) *InMemoryRepository {
	r := &InMemoryRepository{
		products: products,
		byID:     make(map[string]*Product, len(products)),
	}
	for i := range r.products {
		r.byID[r.products[i].ID] = &r.products[i]
	}
	return r
}

func (r *InMemoryRepository) ListProducts(ctx context.Context) ([]Product, error) {
	return r.products, nil
}

func (r *InMemoryRepository) GetProduct(ctx context.Context, id string) (*Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}
