package memory

import (
	"context"
	"sync"

	"github.com/payflow/storepos/internal/domain/stock"
)

// StockRepository is a map-backed stock ledger keyed by product.
type StockRepository struct {
	mu      sync.RWMutex
	records map[uint]*stock.Record // productID -> record
	nextID  uint
}

// NewStockRepository creates an empty ledger.
func NewStockRepository() *StockRepository {
	return &StockRepository{
		records: make(map[uint]*stock.Record),
		nextID:  1,
	}
}

func (r *StockRepository) Create(ctx context.Context, record *stock.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[record.ProductID]; ok {
		return stock.ErrStockAlreadyExists
	}

	record.ID = r.nextID
	r.nextID++

	clone := *record
	r.records[record.ProductID] = &clone
	return nil
}

func (r *StockRepository) FindByProductID(ctx context.Context, productID uint) (*stock.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[productID]
	if !ok {
		return nil, stock.ErrStockNotFound
	}

	clone := *record
	return &clone, nil
}

// LockByProductID behaves like FindByProductID; serialization comes
// from the repository mutex rather than a database row lock.
func (r *StockRepository) LockByProductID(ctx context.Context, productID uint) (*stock.Record, error) {
	return r.FindByProductID(ctx, productID)
}

func (r *StockRepository) Update(ctx context.Context, record *stock.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.records[record.ProductID]
	if !ok || existing.ID != record.ID {
		return stock.ErrStockNotFound
	}

	clone := *record
	r.records[record.ProductID] = &clone
	return nil
}
