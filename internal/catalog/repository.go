package catalog

import (
	"context"
	"errors"
)

var ErrProductNotFound = errors.New("product not found")

// Repository is the read-only menu source. The engine never writes
// back to it.
type Repository interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
}
