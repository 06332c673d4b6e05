package catalog

import (
	"context"
	"errors"
	"testing"
	"time"
)

// countingRepo counts how often the underlying menu source is hit.
type countingRepo struct {
	inner     Repository
	listCalls int
}

func (r *countingRepo) ListProducts(ctx context.Context) ([]Product, error) {
	r.listCalls++
	return r.inner.ListProducts(ctx)
}

func (r *countingRepo) GetProduct(ctx context.Context, id string) (*Product, error) {
	return r.inner.GetProduct(ctx, id)
}

func TestMenuIsCached(t *testing.T) {
	repo := &countingRepo{inner: NewInMemoryRepository(DemoProducts()...)}
	service := NewService(repo, time.Minute)
	ctx := context.Background()

	if _, err := service.Menu(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.Menu(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.Product(ctx, "fries"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.listCalls != 1 {
		t.Errorf("expected a single repository load, got %d", repo.listCalls)
	}
}

func TestInvalidateForcesRefetch(t *testing.T) {
	repo := &countingRepo{inner: NewInMemoryRepository(DemoProducts()...)}
	service := NewService(repo, time.Minute)
	ctx := context.Background()

	if _, err := service.Menu(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	service.Invalidate()
	if _, err := service.Menu(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.listCalls != 2 {
		t.Errorf("expected refetch after invalidation, got %d loads", repo.listCalls)
	}
}

func TestExpiredCacheRefetches(t *testing.T) {
	repo := &countingRepo{inner: NewInMemoryRepository(DemoProducts()...)}
	service := NewService(repo, 10*time.Millisecond)
	ctx := context.Background()

	if _, err := service.Menu(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, err := service.Menu(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.listCalls != 2 {
		t.Errorf("expected refetch after TTL, got %d loads", repo.listCalls)
	}
}

func TestProductNotFound(t *testing.T) {
	service := NewService(NewInMemoryRepository(DemoProducts()...), time.Minute)

	_, err := service.Product(context.Background(), "nope")
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestPriceForOrderType(t *testing.T) {
	p := Product{
		PriceTakeout:  price("10.00"),
		PriceDelivery: price("12.00"),
	}

	if !p.PriceFor(OrderTypeTakeout).Equal(price("10.00")) {
		t.Error("wrong takeout price")
	}
	if !p.PriceFor(OrderTypeDelivery).Equal(price("12.00")) {
		t.Error("wrong delivery price")
	}

	item := ComboItem{
		ExtraTakeout:  price("1.00"),
		ExtraDelivery: price("1.50"),
	}
	if !item.ExtraFor(OrderTypeTakeout).Equal(price("1.00")) {
		t.Error("wrong takeout extra")
	}
	if !item.ExtraFor(OrderTypeDelivery).Equal(price("1.50")) {
		t.Error("wrong delivery extra")
	}
}
