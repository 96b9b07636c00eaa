package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/payflow/storepos/internal/domain/sale"
)

// SaleRepository is a map-backed sale store.
type SaleRepository struct {
	mu         sync.RWMutex
	sales      map[uint]*sale.Sale
	nextID     uint
	nextItemID uint
}

// NewSaleRepository creates an empty store.
func NewSaleRepository() *SaleRepository {
	return &SaleRepository{
		sales:      make(map[uint]*sale.Sale),
		nextID:     1,
		nextItemID: 1,
	}
}

func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID
	r.nextID++
	for i := range s.Items {
		s.Items[i].ID = r.nextItemID
		s.Items[i].SaleID = s.ID
		r.nextItemID++
	}

	r.sales[s.ID] = cloneSale(s)
	return nil
}

func (r *SaleRepository) FindByID(ctx context.Context, id uint) (*sale.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sales[id]
	if !ok {
		return nil, sale.ErrSaleNotFound
	}

	return cloneSale(s), nil
}

// LockByID behaves like FindByID; the repository mutex stands in for
// the database row lock.
func (r *SaleRepository) LockByID(ctx context.Context, id uint) (*sale.Sale, error) {
	return r.FindByID(ctx, id)
}

func (r *SaleRepository) Update(ctx context.Context, s *sale.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sales[s.ID]; !ok {
		return sale.ErrSaleNotFound
	}

	r.sales[s.ID] = cloneSale(s)
	return nil
}

func (r *SaleRepository) AddItem(ctx context.Context, item *sale.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sales[item.SaleID]; !ok {
		return sale.ErrSaleNotFound
	}

	item.ID = r.nextItemID
	r.nextItemID++
	return nil
}

func (r *SaleRepository) RemoveItem(ctx context.Context, saleID, itemID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sales[saleID]
	if !ok {
		return sale.ErrSaleNotFound
	}

	for i := range s.Items {
		if s.Items[i].ID == itemID {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return nil
		}
	}

	return sale.ErrSaleItemNotFound
}

func (r *SaleRepository) ListByStoreID(ctx context.Context, storeID uint, page, pageSize int) ([]*sale.Sale, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*sale.Sale
	for _, s := range r.sales {
		if s.StoreID == storeID {
			matched = append(matched, cloneSale(s))
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (page - 1) * pageSize
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], total, nil
}

func cloneSale(s *sale.Sale) *sale.Sale {
	clone := *s
	clone.Items = make([]sale.Item, len(s.Items))
	copy(clone.Items, s.Items)
	if s.FinishedAt != nil {
		t := *s.FinishedAt
		clone.FinishedAt = &t
	}
	return &clone
}
