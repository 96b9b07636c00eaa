package handler

import (
	"github.com/gin-gonic/gin"

	appstock "github.com/payflow/storepos/internal/application/stock"
	"github.com/payflow/storepos/internal/interface/http/dto"
	apperrors "github.com/payflow/storepos/pkg/errors"
	"github.com/payflow/storepos/pkg/metrics"
	"github.com/payflow/storepos/pkg/response"
)

// StockHandler serves the stock ledger endpoints.
type StockHandler struct {
	createUseCase  *appstock.CreateStockUseCase
	addUseCase     *appstock.AddStockUseCase
	reserveUseCase *appstock.ReserveStockUseCase
	confirmUseCase *appstock.ConfirmReservationUseCase
	getUseCase     *appstock.GetStockUseCase
}

// NewStockHandler creates the handler.
func NewStockHandler(
	createUseCase *appstock.CreateStockUseCase,
	addUseCase *appstock.AddStockUseCase,
	reserveUseCase *appstock.ReserveStockUseCase,
	confirmUseCase *appstock.ConfirmReservationUseCase,
	getUseCase *appstock.GetStockUseCase,
) *StockHandler {
	return &StockHandler{
		createUseCase:  createUseCase,
		addUseCase:     addUseCase,
		reserveUseCase: reserveUseCase,
		confirmUseCase: confirmUseCase,
		getUseCase:     getUseCase,
	}
}

// Create handles POST /stocks.
func (h *StockHandler) Create(c *gin.Context) {
	var req dto.CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request: "+err.Error())
		return
	}

	record, err := h.createUseCase.Execute(c.Request.Context(), appstock.CreateStockRequest{
		ProductID:         req.ProductID,
		AvailableQuantity: req.Available,
		ReservedQuantity:  req.Reserved,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToStockResponse(record))
}

// Add handles POST /stocks/:product_id/add.
func (h *StockHandler) Add(c *gin.Context) {
	productID, ok := parseProductIDParam(c)
	if !ok {
		return
	}

	var req dto.QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request: "+err.Error())
		return
	}

	record, err := h.addUseCase.Execute(c.Request.Context(), appstock.AddStockRequest{
		ProductID: productID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToStockResponse(record))
}

// Reserve handles POST /stocks/:product_id/reserve.
func (h *StockHandler) Reserve(c *gin.Context) {
	productID, ok := parseProductIDParam(c)
	if !ok {
		return
	}

	var req dto.QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request: "+err.Error())
		return
	}

	record, err := h.reserveUseCase.Execute(c.Request.Context(), appstock.ReserveStockRequest{
		ProductID: productID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		metrics.StockReservationsTotal.WithLabelValues("failure").Inc()
		response.Error(c, err)
		return
	}

	metrics.StockReservationsTotal.WithLabelValues("success").Inc()
	response.Success(c, dto.ToStockResponse(record))
}

// Confirm handles POST /stocks/:product_id/confirm.
func (h *StockHandler) Confirm(c *gin.Context) {
	productID, ok := parseProductIDParam(c)
	if !ok {
		return
	}

	var req dto.QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request: "+err.Error())
		return
	}

	record, err := h.confirmUseCase.Execute(c.Request.Context(), appstock.ConfirmReservationRequest{
		ProductID: productID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToStockResponse(record))
}

// Get handles GET /stocks/:product_id.
func (h *StockHandler) Get(c *gin.Context) {
	productID, ok := parseProductIDParam(c)
	if !ok {
		return
	}

	record, err := h.getUseCase.Execute(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToStockResponse(record))
}

func parseProductIDParam(c *gin.Context) (uint, bool) {
	id, err := parseUintParam(c, "product_id")
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "invalid product_id")
		return 0, false
	}
	return id, true
}
