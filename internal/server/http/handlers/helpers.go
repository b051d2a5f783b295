package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/shopperhq/shopper/internal/domain/errors"
	"github.com/shopperhq/shopper/internal/domain/model"
	"github.com/shopperhq/shopper/internal/server/http/dto"
	"github.com/shopperhq/shopper/internal/server/http/middleware"
	"github.com/shopperhq/shopper/internal/usecase"
)

// CurrentUserID extracts the authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// CurrentRole extracts the authenticated user role from context.
func CurrentRole(c *gin.Context) model.Role {
	val, ok := c.Get(middleware.RoleContextKey)
	if !ok {
		return ""
	}
	role, _ := val.(model.Role)
	return role
}

func currentActor(c *gin.Context) usecase.Actor {
	return usecase.Actor{UserID: CurrentUserID(c), Role: CurrentRole(c)}
}

// respondError translates domain errors into the HTTP error envelope.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		writeError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, domainErrors.ErrUnauthorized):
		writeError(c, http.StatusForbidden, "forbidden", err)
	case errors.Is(err, domainErrors.ErrConflict):
		writeError(c, http.StatusConflict, "conflict", err)
	case errors.Is(err, domainErrors.ErrInvalidTransition):
		writeError(c, http.StatusBadRequest, "invalid_status_transition", err)
	case errors.Is(err, domainErrors.ErrInsufficientStock):
		writeError(c, http.StatusBadRequest, "insufficient_stock", err)
	case errors.Is(err, domainErrors.ErrProductUnavailable):
		writeError(c, http.StatusBadRequest, "product_unavailable", err)
	case errors.Is(err, domainErrors.ErrInvalidAddress):
		writeError(c, http.StatusBadRequest, "invalid_address", err)
	case errors.Is(err, domainErrors.ErrInvalidQuantity):
		writeError(c, http.StatusBadRequest, "invalid_quantity", err)
	case errors.Is(err, domainErrors.ErrInvalidPayment):
		writeError(c, http.StatusBadRequest, "invalid_payment", err)
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Kind: "internal", Message: "internal error"})
	}
}

func writeError(c *gin.Context, status int, kind string, err error) {
	c.JSON(status, dto.ErrorResponse{Kind: kind, Message: err.Error()})
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			VendorID:    item.VendorID,
			ProductName: item.ProductName,
			ProductSKU:  item.ProductSKU,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Discount:    item.Discount,
			Tax:         item.Tax,
			Total:       item.Total,
		})
	}
	return dto.OrderResponse{
		ID:                 order.ID,
		OrderNumber:        order.Number,
		UserID:             order.UserID,
		Status:             string(order.Status),
		Subtotal:           order.Subtotal,
		TaxAmount:          order.TaxAmount,
		ShippingAmount:     order.ShippingAmount,
		DiscountAmount:     order.DiscountAmount,
		TotalAmount:        order.TotalAmount,
		PaymentMethod:      string(order.PaymentMethod),
		PaymentStatus:      string(order.PaymentStatus),
		Notes:              order.Notes,
		TrackingNumber:     order.TrackingNumber,
		EstimatedDelivery:  order.EstimatedDelivery,
		DeliveredAt:        order.DeliveredAt,
		CancelledAt:        order.CancelledAt,
		CancellationReason: order.CancellationReason,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
		Items:              items,
	}
}

func toOrderDetailsResponse(details usecase.OrderDetails) dto.OrderResponse {
	response := toOrderResponse(details.Order)
	if details.Buyer != nil {
		response.User = &dto.UserResponse{
			ID:        details.Buyer.ID,
			Email:     details.Buyer.Email,
			FirstName: details.Buyer.FirstName,
			LastName:  details.Buyer.LastName,
			Phone:     details.Buyer.Phone,
		}
	}
	response.ShippingAddress = toAddressResponse(details.ShippingAddress)
	response.BillingAddress = toAddressResponse(details.BillingAddress)
	return response
}

func toAddressResponse(address *model.Address) *dto.AddressResponse {
	if address == nil {
		return nil
	}
	return &dto.AddressResponse{
		ID:           address.ID,
		AddressLine1: address.AddressLine1,
		AddressLine2: address.AddressLine2,
		City:         address.City,
		State:        address.State,
		Country:      address.Country,
		PostalCode:   address.PostalCode,
		IsDefault:    address.IsDefault,
	}
}
