package dto

import (
	"time"

	"github.com/payflow/storepos/internal/domain/sale"
)

// AddSaleItemRequest appends a line to a draft sale. UnitPrice is the
// price offered at the till, in minor currency units.
type AddSaleItemRequest struct {
	ProductID uint  `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
	UnitPrice int64 `json:"unit_price" binding:"required,min=1"`
}

// ApplyDiscountRequest sets the sale discount in minor currency units.
type ApplyDiscountRequest struct {
	Discount int64 `json:"discount" binding:"min=0"`
}

// ListSalesRequest is the list query string.
type ListSalesRequest struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"page_size,default=20" binding:"min=1,max=100"`
}

// SaleItemResponse is one sale line.
type SaleItemResponse struct {
	ID        uint      `json:"id"`
	ProductID uint      `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice int64     `json:"unit_price"`
	CreatedAt time.Time `json:"created_at"`
}

// SaleResponse is the sale aggregate as returned to clients. Status is
// the symbolic name (DRAFT, CHECKOUT_PENDING, COMPLETED, CANCELLED).
type SaleResponse struct {
	ID         uint               `json:"id"`
	SaleNo     string             `json:"sale_no"`
	OperatorID uint               `json:"operator_id"`
	StoreID    uint               `json:"store_id"`
	Status     string             `json:"status"`
	Items      []SaleItemResponse `json:"items"`
	Subtotal   int64              `json:"subtotal"`
	Discount   int64              `json:"discount"`
	Total      int64              `json:"total"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	FinishedAt *time.Time         `json:"finished_at,omitempty"`
}

// ToSaleResponse converts the aggregate.
func ToSaleResponse(s *sale.Sale) *SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			CreatedAt: item.CreatedAt,
		}
	}

	return &SaleResponse{
		ID:         s.ID,
		SaleNo:     s.SaleNo,
		OperatorID: s.OperatorID,
		StoreID:    s.StoreID,
		Status:     s.Status.String(),
		Items:      items,
		Subtotal:   s.Subtotal,
		Discount:   s.Discount,
		Total:      s.Total,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
		FinishedAt: s.FinishedAt,
	}
}

// ToSaleResponses converts a page of aggregates.
func ToSaleResponses(sales []*sale.Sale) []*SaleResponse {
	out := make([]*SaleResponse, len(sales))
	for i, s := range sales {
		out[i] = ToSaleResponse(s)
	}
	return out
}

// ToSaleItemResponse converts one line.
func ToSaleItemResponse(item *sale.Item) *SaleItemResponse {
	return &SaleItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		CreatedAt: item.CreatedAt,
	}
}
