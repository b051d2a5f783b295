package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/shopperhq/shopper/internal/domain/model"
	"github.com/shopperhq/shopper/internal/server/http/handlers"
	"github.com/shopperhq/shopper/internal/server/http/middleware"
)

// Setup configures the gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.AssignRequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)
	vendorHandler := handlers.NewVendorHandler(facade)

	orders := engine.Group("/orders")
	orders.Use(middleware.AuthRequired(facade))
	orders.POST("/create-cod", orderHandler.Create)
	orders.GET("/my-orders", orderHandler.MyOrders)
	orders.GET("/number/:orderNumber", orderHandler.GetByNumber)
	orders.GET("/:id", orderHandler.Get)
	orders.POST("/:id/cancel", orderHandler.Cancel)
	orders.PUT("/:id/status",
		middleware.RequireRoles(model.RoleAdmin, model.RoleVendor), orderHandler.UpdateStatus)

	vendor := engine.Group("/vendor")
	vendor.Use(middleware.AuthRequired(facade))
	vendor.Use(middleware.RequireRoles(model.RoleVendor))
	vendor.GET("/orders", vendorHandler.Orders)
	vendor.PUT("/orders/:id/status", vendorHandler.UpdateStatus)
	vendor.PUT("/orders/:id/deliver", vendorHandler.Deliver)
	vendor.PUT("/orders/:id/decline", vendorHandler.Decline)
	vendor.GET("/analytics", vendorHandler.Analytics)
	vendor.GET("/dashboard", vendorHandler.Dashboard)

	return engine
}
