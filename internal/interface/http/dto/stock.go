package dto

import (
	"time"

	"github.com/payflow/storepos/internal/domain/stock"
)

// CreateStockRequest initializes a product's ledger row.
type CreateStockRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Available int  `json:"available" binding:"min=0"`
	Reserved  int  `json:"reserved" binding:"min=0"`
}

// QuantityRequest is the shared payload of add, reserve, and confirm.
type QuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// StockResponse is the ledger row as returned to clients.
type StockResponse struct {
	ID                uint      `json:"id"`
	ProductID         uint      `json:"product_id"`
	AvailableQuantity int       `json:"available_quantity"`
	ReservedQuantity  int       `json:"reserved_quantity"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ToStockResponse converts the domain entity.
func ToStockResponse(record *stock.Record) *StockResponse {
	return &StockResponse{
		ID:                record.ID,
		ProductID:         record.ProductID,
		AvailableQuantity: record.AvailableQuantity,
		ReservedQuantity:  record.ReservedQuantity,
		CreatedAt:         record.CreatedAt,
		UpdatedAt:         record.UpdatedAt,
	}
}
