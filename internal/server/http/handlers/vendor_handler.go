package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopperhq/shopper/internal/server/http/dto"
	"github.com/shopperhq/shopper/internal/usecase"
)

// VendorHandler manages vendor-facing order endpoints.
type VendorHandler struct {
	facade VendorFacade
}

// NewVendorHandler constructs VendorHandler.
func NewVendorHandler(facade VendorFacade) *VendorHandler {
	return &VendorHandler{facade: facade}
}

// Orders handles GET /vendor/orders.
func (h *VendorHandler) Orders(c *gin.Context) {
	orders, err := h.facade.VendorOrders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, toOrderResponse(order))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateStatus handles PUT /vendor/orders/:id/status.
func (h *VendorHandler) UpdateStatus(c *gin.Context) {
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
	if err := h.facade.VendorUpdateStatus(c.Request.Context(), CurrentUserID(c), orderID, input); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Deliver handles PUT /vendor/orders/:id/deliver.
func (h *VendorHandler) Deliver(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Kind: "bad_request", Message: "invalid order id"})
		return
	}
	if err := h.facade.VendorDeliver(c.Request.Context(), CurrentUserID(c), orderID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Decline handles PUT /vendor/orders/:id/decline.
func (h *VendorHandler) Decline(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Kind: "bad_request", Message: "invalid order id"})
		return
	}
	if err := h.facade.VendorDecline(c.Request.Context(), CurrentUserID(c), orderID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Analytics handles GET /vendor/analytics.
func (h *VendorHandler) Analytics(c *gin.Context) {
	analytics, err := h.facade.VendorAnalytics(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.VendorAnalyticsResponse{
		TopProducts:    make([]dto.TopProductResponse, 0, len(analytics.TopProducts)),
		RevenueByMonth: make([]dto.MonthlyRevenueResponse, 0, len(analytics.RevenueByMonth)),
		TotalRevenue:   analytics.TotalRevenue,
		TotalOrders:    analytics.TotalOrders,
	}
	for _, p := range analytics.TopProducts {
		response.TopProducts = append(response.TopProducts, dto.TopProductResponse{
			ProductID: p.ProductID,
			Name:      p.Name,
			Sold:      p.Sold,
			Revenue:   p.Revenue,
		})
	}
	for _, m := range analytics.RevenueByMonth {
		response.RevenueByMonth = append(response.RevenueByMonth, dto.MonthlyRevenueResponse{
			Month:   m.Month,
			Revenue: m.Revenue,
		})
	}
	c.JSON(http.StatusOK, response)
}

// Dashboard handles GET /vendor/dashboard.
func (h *VendorHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.facade.VendorDashboard(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.VendorDashboardResponse{
		PendingOrders: dashboard.PendingOrders,
		TotalOrders:   dashboard.TotalOrders,
		TotalRevenue:  dashboard.TotalRevenue,
		RecentOrders:  make([]dto.OrderResponse, 0, len(dashboard.RecentOrders)),
	}
	for _, order := range dashboard.RecentOrders {
		response.RecentOrders = append(response.RecentOrders, toOrderResponse(order))
	}
	c.JSON(http.StatusOK, response)
}
