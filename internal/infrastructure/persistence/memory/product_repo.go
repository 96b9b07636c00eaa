// Package memory holds in-memory implementations of the storage and
// messaging ports. They back unit tests and keep the use cases
// runnable without MySQL, Redis, or RabbitMQ.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/payflow/storepos/internal/domain/product"
)

// ProductRepository is a map-backed catalog.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[uint]*product.Product
	nextID   uint
}

// NewProductRepository creates an empty catalog.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make(map[uint]*product.Product),
		nextID:   1,
	}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.products {
		if existing.SKU == p.SKU {
			return product.ErrSKUDuplicate
		}
	}

	p.ID = r.nextID
	r.nextID++

	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, product.ErrProductNotFound
	}

	clone := *p
	return &clone, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ID]; !ok {
		return product.ErrProductNotFound
	}

	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *ProductRepository) List(ctx context.Context, params product.ListParams) ([]*product.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*product.Product
	for _, p := range r.products {
		if p.StoreID != params.StoreID {
			continue
		}
		if params.OnlyActive && !p.IsActive {
			continue
		}
		clone := *p
		matched = append(matched, &clone)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (params.Page - 1) * params.PageSize
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + params.PageSize
	if end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], total, nil
}
