package dto

import (
	"time"

	"github.com/payflow/storepos/internal/domain/product"
)

// CreateProductRequest is the catalog registration payload. Price is
// in minor currency units.
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=2000"`
	Price       int64  `json:"price" binding:"required,min=0"`
	IsActive    *bool  `json:"is_active"`
	SKU         string `json:"sku" binding:"required,max=64"`
}

// UpdateProductRequest carries partial edits. Omitted fields keep
// their current value.
type UpdateProductRequest struct {
	Name        string `json:"name" binding:"max=200"`
	Description string `json:"description" binding:"max=2000"`
	Price       *int64 `json:"price" binding:"omitempty,min=0"`
}

// ListProductsRequest is the list query string.
type ListProductsRequest struct {
	Page       int  `form:"page,default=1" binding:"min=1"`
	PageSize   int  `form:"page_size,default=20" binding:"min=1,max=100"`
	OnlyActive bool `form:"only_active"`
}

// ProductResponse is the catalog entry as returned to clients.
type ProductResponse struct {
	ID          uint      `json:"id"`
	StoreID     uint      `json:"store_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	IsActive    bool      `json:"is_active"`
	SKU         string    `json:"sku"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToProductResponse converts the domain entity.
func ToProductResponse(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		StoreID:     p.StoreID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		IsActive:    p.IsActive,
		SKU:         p.SKU,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponses converts a page of entities.
func ToProductResponses(products []*product.Product) []*ProductResponse {
	out := make([]*ProductResponse, len(products))
	for i, p := range products {
		out[i] = ToProductResponse(p)
	}
	return out
}
