package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopperhq/shopper/internal/server/http/dto"
	"github.com/shopperhq/shopper/internal/usecase"
)

// OrderHandler manages buyer-facing order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /orders/create-cod.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Kind: "bad_request", Message: "malformed request body"})
		return
	}

	lines := make([]usecase.CartLine, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		lines = append(lines, usecase.CartLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	input := usecase.CreateOrderInput{
		ShippingAddressID: req.ShippingAddressID,
		BillingAddressID:  req.BillingAddressID,
		PaymentMethod:     req.PaymentMethod,
		CouponCode:        req.CouponCode,
		Notes:             req.Notes,
		Lines:             lines,
	}

	details, err := h.facade.CreateOrder(c.Request.Context(), CurrentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderDetailsResponse(*details))
}

// Get handles GET /orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Kind: "bad_request", Message: "invalid order id"})
		return
	}

	details, err := h.facade.OrderByID(c.Request.Context(), orderID, currentActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderDetailsResponse(*details))
}

// GetByNumber handles GET /orders/number/:orderNumber.
func (h *OrderHandler) GetByNumber(c *gin.Context) {
	details, err := h.facade.OrderByNumber(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderDetailsResponse(*details))
}

// MyOrders handles GET /orders/my-orders.
func (h *OrderHandler) MyOrders(c *gin.Context) {
	orders, err := h.facade.OrdersForUser(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, details := range orders {
		response = append(response, toOrderDetailsResponse(details))
	}
	c.JSON(http.StatusOK, response)
}

// Cancel handles POST /orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Kind: "bad_request", Message: "invalid order id"})
		return
	}

	var req dto.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Kind: "bad_request", Message: "malformed request body"})
		return
	}
	if req.Reason == "" {
		req.Reason = "cancelled by customer"
	}

	if err := h.facade.CancelOrder(c.Request.Context(), orderID, CurrentUserID(c), req.Reason); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateStatus handles PUT /orders/:id/status for admins and vendors.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Kind: "bad_request", Message: "invalid order id"})
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Kind: "bad_request", Message: "malformed request body"})
		return
	}

	input := usecase.StatusUpdateInput{
		Status:            req.Status,
		TrackingNumber:    req.TrackingNumber,
		EstimatedDelivery: req.EstimatedDelivery,
	}
	if err := h.facade.UpdateOrderStatus(c.Request.Context(), orderID, input, currentActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
