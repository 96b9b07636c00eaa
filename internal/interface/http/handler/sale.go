package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	appsale "github.com/payflow/storepos/internal/application/sale"
	"github.com/payflow/storepos/internal/interface/http/dto"
	"github.com/payflow/storepos/internal/interface/http/middleware"
	apperrors "github.com/payflow/storepos/pkg/errors"
	"github.com/payflow/storepos/pkg/metrics"
	"github.com/payflow/storepos/pkg/response"
)

// SaleHandler serves the sale lifecycle endpoints.
type SaleHandler struct {
	startUseCase      *appsale.StartSaleUseCase
	addItemUseCase    *appsale.AddItemUseCase
	removeItemUseCase *appsale.RemoveItemUseCase
	discountUseCase   *appsale.ApplyDiscountUseCase
	checkoutUseCase   *appsale.CheckoutSaleUseCase
	getUseCase        *appsale.GetSaleUseCase
	listUseCase       *appsale.ListSalesUseCase
}

// NewSaleHandler creates the handler.
func NewSaleHandler(
	startUseCase *appsale.StartSaleUseCase,
	addItemUseCase *appsale.AddItemUseCase,
	removeItemUseCase *appsale.RemoveItemUseCase,
	discountUseCase *appsale.ApplyDiscountUseCase,
	checkoutUseCase *appsale.CheckoutSaleUseCase,
	getUseCase *appsale.GetSaleUseCase,
	listUseCase *appsale.ListSalesUseCase,
) *SaleHandler {
	return &SaleHandler{
		startUseCase:      startUseCase,
		addItemUseCase:    addItemUseCase,
		removeItemUseCase: removeItemUseCase,
		discountUseCase:   discountUseCase,
		checkoutUseCase:   checkoutUseCase,
		getUseCase:        getUseCase,
		listUseCase:       listUseCase,
	}
}

// Start handles POST /sales. The new sale opens as an empty draft
// bound to the authenticated operator and store.
func (h *SaleHandler) Start(c *gin.Context) {
	s, err := h.startUseCase.Execute(c.Request.Context(), appsale.StartSaleRequest{
		OperatorID: middleware.MustGetOperatorID(c),
		StoreID:    middleware.MustGetStoreID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	metrics.SalesStartedTotal.Inc()
	response.Success(c, dto.ToSaleResponse(s))
}

// AddItem handles POST /sales/:id/items.
func (h *SaleHandler) AddItem(c *gin.Context) {
	saleID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.AddSaleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request: "+err.Error())
		return
	}

	item, err := h.addItemUseCase.Execute(c.Request.Context(), appsale.AddItemRequest{
		SaleID:    saleID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToSaleItemResponse(item))
}

// RemoveItem handles DELETE /sales/:id/items/:item_id.
func (h *SaleHandler) RemoveItem(c *gin.Context) {
	saleID, ok := parseIDParam(c)
	if !ok {
		return
	}

	itemID, err := parseUintParam(c, "item_id")
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "invalid item_id")
		return
	}

	s, err := h.removeItemUseCase.Execute(c.Request.Context(), appsale.RemoveItemRequest{
		SaleID: saleID,
		ItemID: itemID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToSaleResponse(s))
}

// ApplyDiscount handles POST /sales/:id/discount.
func (h *SaleHandler) ApplyDiscount(c *gin.Context) {
	saleID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request: "+err.Error())
		return
	}

	s, err := h.discountUseCase.Execute(c.Request.Context(), appsale.ApplyDiscountRequest{
		SaleID:   saleID,
		Discount: req.Discount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToSaleResponse(s))
}

// Checkout handles POST /sales/:id/checkout.
func (h *SaleHandler) Checkout(c *gin.Context) {
	saleID, ok := parseIDParam(c)
	if !ok {
		return
	}

	start := time.Now()
	s, err := h.checkoutUseCase.Execute(c.Request.Context(), appsale.CheckoutSaleRequest{
		SaleID: saleID,
	})
	metrics.CheckoutDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.CheckoutsTotal.WithLabelValues("failure").Inc()
		response.Error(c, err)
		return
	}

	metrics.CheckoutsTotal.WithLabelValues("success").Inc()
	response.Success(c, dto.ToSaleResponse(s))
}

// Get handles GET /sales/:id.
func (h *SaleHandler) Get(c *gin.Context) {
	saleID, ok := parseIDParam(c)
	if !ok {
		return
	}

	s, err := h.getUseCase.Execute(c.Request.Context(), saleID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToSaleResponse(s))
}

// List handles GET /sales.
func (h *SaleHandler) List(c *gin.Context) {
	var req dto.ListSalesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request: "+err.Error())
		return
	}

	sales, total, err := h.listUseCase.Execute(c.Request.Context(), appsale.ListSalesRequest{
		StoreID:  middleware.MustGetStoreID(c),
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.ToSaleResponses(sales), total, req.Page, req.PageSize)
}
