package product

import (
	"time"
)

// Product is the catalog entity. Price is stored in minor currency
// units (cents) to avoid floating point drift. IsActive gates whether
// stock may be created and sold for the product; products are never
// deleted, only deactivated.
type Product struct {
	ID          uint
	StoreID     uint
	Name        string
	Description string
	Price       int64
	IsActive    bool
	SKU         string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct creates a product, rejecting negative prices.
func NewProduct(storeID uint, name, description string, price int64, isActive bool, sku string) (*Product, error) {
	if price < 0 {
		return nil, ErrInvalidPrice
	}

	now := time.Now()
	return &Product{
		StoreID:     storeID,
		Name:        name,
		Description: description,
		Price:       price,
		IsActive:    isActive,
		SKU:         sku,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Activate marks the product sellable.
func (p *Product) Activate() {
	p.IsActive = true
	p.UpdatedAt = time.Now()
}

// Deactivate removes the product from sale without deleting it.
func (p *Product) Deactivate() {
	p.IsActive = false
	p.UpdatedAt = time.Now()
}

// UpdatePrice changes the price, keeping it non-negative.
func (p *Product) UpdatePrice(newPrice int64) error {
	if newPrice < 0 {
		return ErrInvalidPrice
	}
	p.Price = newPrice
	p.UpdatedAt = time.Now()
	return nil
}

// UpdateInfo overwrites name/description when non-empty.
func (p *Product) UpdateInfo(name, description string) {
	if name != "" {
		p.Name = name
	}
	if description != "" {
		p.Description = description
	}
	p.UpdatedAt = time.Now()
}
