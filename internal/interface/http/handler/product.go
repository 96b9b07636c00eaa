package handler

import (
	"github.com/gin-gonic/gin"

	appproduct "github.com/payflow/storepos/internal/application/product"
	"github.com/payflow/storepos/internal/interface/http/dto"
	"github.com/payflow/storepos/internal/interface/http/middleware"
	apperrors "github.com/payflow/storepos/pkg/errors"
	"github.com/payflow/storepos/pkg/response"
)

// ProductHandler serves the catalog endpoints.
type ProductHandler struct {
	createUseCase     *appproduct.CreateProductUseCase
	updateUseCase     *appproduct.UpdateProductUseCase
	activateUseCase   *appproduct.ActivateProductUseCase
	deactivateUseCase *appproduct.DeactivateProductUseCase
	getUseCase        *appproduct.GetProductUseCase
	listUseCase       *appproduct.ListProductsUseCase
}

// NewProductHandler creates the handler.
func NewProductHandler(
	createUseCase *appproduct.CreateProductUseCase,
	updateUseCase *appproduct.UpdateProductUseCase,
	activateUseCase *appproduct.ActivateProductUseCase,
	deactivateUseCase *appproduct.DeactivateProductUseCase,
	getUseCase *appproduct.GetProductUseCase,
	listUseCase *appproduct.ListProductsUseCase,
) *ProductHandler {
	return &ProductHandler{
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
		activateUseCase:   activateUseCase,
		deactivateUseCase: deactivateUseCase,
		getUseCase:        getUseCase,
		listUseCase:       listUseCase,
	}
}

// Create handles POST /products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request: "+err.Error())
		return
	}

	// new products default to active unless the request says otherwise
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	p, err := h.createUseCase.Execute(c.Request.Context(), appproduct.CreateProductRequest{
		StoreID:     middleware.MustGetStoreID(c),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsActive:    isActive,
		SKU:         req.SKU,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToProductResponse(p))
}

// Update handles PUT /products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request: "+err.Error())
		return
	}

	p, err := h.updateUseCase.Execute(c.Request.Context(), appproduct.UpdateProductRequest{
		ProductID:   id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToProductResponse(p))
}

// Activate handles POST /products/:id/activate.
func (h *ProductHandler) Activate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	p, err := h.activateUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToProductResponse(p))
}

// Deactivate handles POST /products/:id/deactivate.
func (h *ProductHandler) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	p, err := h.deactivateUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToProductResponse(p))
}

// Get handles GET /products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	p, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToProductResponse(p))
}

// List handles GET /products.
func (h *ProductHandler) List(c *gin.Context) {
	var req dto.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request: "+err.Error())
		return
	}

	products, total, err := h.listUseCase.Execute(c.Request.Context(), appproduct.ListProductsRequest{
		StoreID:    middleware.MustGetStoreID(c),
		Page:       req.Page,
		PageSize:   req.PageSize,
		OnlyActive: req.OnlyActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.ToProductResponses(products), total, req.Page, req.PageSize)
}
