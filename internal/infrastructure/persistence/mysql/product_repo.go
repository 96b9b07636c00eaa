package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/payflow/storepos/internal/domain/product"
	apperrors "github.com/payflow/storepos/pkg/errors"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates the MySQL catalog repository.
func NewProductRepository(db *gorm.DB) product.Repository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, p *product.Product) error {
	model := toProductModel(p)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return product.ErrSKUDuplicate
		}
		return apperrors.Wrap(err, "failed to create product")
	}

	p.ID = model.ID
	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uint) (*product.Product, error) {
	var model ProductModel
	db := getDB(ctx, r.db)
	err := db.First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query product")
	}

	return toProductEntity(&model), nil
}

func (r *productRepository) Update(ctx context.Context, p *product.Product) error {
	db := getDB(ctx, r.db)

	result := db.Model(&ProductModel{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"is_active":   p.IsActive,
		"updated_at":  p.UpdatedAt,
	})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return product.ErrProductNotFound
	}

	return nil
}

func (r *productRepository) List(ctx context.Context, params product.ListParams) ([]*product.Product, int64, error) {
	var models []ProductModel
	var total int64

	db := getDB(ctx, r.db)
	query := db.Model(&ProductModel{}).Where("store_id = ?", params.StoreID)
	if params.OnlyActive {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count products")
	}

	offset := (params.Page - 1) * params.PageSize
	err := query.
		Order("created_at DESC").
		Limit(params.PageSize).
		Offset(offset).
		Find(&models).Error

	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list products")
	}

	products := make([]*product.Product, len(models))
	for i := range models {
		products[i] = toProductEntity(&models[i])
	}

	return products, total, nil
}

func toProductModel(p *product.Product) *ProductModel {
	return &ProductModel{
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

func toProductEntity(model *ProductModel) *product.Product {
	return &product.Product{
		ID:          model.ID,
		StoreID:     model.StoreID,
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		IsActive:    model.IsActive,
		SKU:         model.SKU,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
