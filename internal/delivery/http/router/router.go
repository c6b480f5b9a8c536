// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	httpmiddleware "bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	LinkHandler      *handler.LinkHandler
	CatalogHandler   *handler.CatalogHandler
	OrderHandler     *handler.OrderHandler
	ChatHandler      *handler.ChatHandler
	ComplaintHandler *handler.ComplaintHandler
	IncidentHandler  *handler.IncidentHandler
	MemberHandler    *handler.MemberHandler
	AnalyticsHandler *handler.AnalyticsHandler

	AuthMiddleware      *httpmiddleware.AuthMiddleware
	MetricsMiddleware   *httpmiddleware.MetricsMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	e.Use(p.RequestIDMiddleware.Process)
	e.Use(p.LoggerMiddleware.Handle)
	e.Use(p.MetricsMiddleware.Handle)

	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/consumer", p.AuthHandler.RegisterConsumer)
		authGroup.POST("/register/supplier", p.AuthHandler.RegisterSupplier)
		authGroup.POST("/login", p.AuthHandler.Login)
		authGroup.POST("/refresh", p.AuthHandler.Refresh)
		authGroup.POST("/logout", p.AuthHandler.Logout)
	}

	// Everything below requires a valid access token. Fine-grained
	// permission checks live in the usecases.
	api := e.Group("", p.AuthMiddleware.Authenticate)

	api.GET("/me", p.AuthHandler.Me)

	// Partnership links
	linkGroup := api.Group("/links")
	{
		linkGroup.POST("", p.LinkHandler.Request, p.AuthMiddleware.RequireConsumer)
		linkGroup.POST("/scan", p.LinkHandler.Scan, p.AuthMiddleware.RequireConsumer)
		linkGroup.GET("/invite", p.LinkHandler.InviteQR, p.AuthMiddleware.RequireSupplierStaff)
		linkGroup.GET("", p.LinkHandler.List)
		linkGroup.POST("/:id/approve", p.LinkHandler.Approve, p.AuthMiddleware.RequireSupplierStaff)
		linkGroup.POST("/:id/decline", p.LinkHandler.Decline, p.AuthMiddleware.RequireSupplierStaff)
		linkGroup.POST("/:id/block", p.LinkHandler.Block, p.AuthMiddleware.RequireSupplierStaff)
		linkGroup.POST("/:id/unblock", p.LinkHandler.Unblock, p.AuthMiddleware.RequireSupplierStaff)
	}

	// Supplier browsing
	api.GET("/suppliers", p.CatalogHandler.ListSuppliers)
	api.GET("/suppliers/:id/products", p.CatalogHandler.ListForSupplier, p.AuthMiddleware.RequireConsumer)

	// Catalog. The list endpoint serves both sides, mutations are staff only.
	catalogGroup := api.Group("/catalog")
	{
		catalogGroup.GET("", p.CatalogHandler.List)
		catalogGroup.POST("", p.CatalogHandler.CreateProduct, p.AuthMiddleware.RequireSupplierStaff)
		catalogGroup.PUT("/:id", p.CatalogHandler.UpdateProduct, p.AuthMiddleware.RequireSupplierStaff)
		catalogGroup.POST("/:id/archive", p.CatalogHandler.ArchiveProduct, p.AuthMiddleware.RequireSupplierStaff)
		catalogGroup.POST("/:id/image", p.CatalogHandler.UploadImage, p.AuthMiddleware.RequireSupplierStaff)
	}

	// Orders
	orderGroup := api.Group("/orders")
	{
		orderGroup.POST("", p.OrderHandler.Create, p.AuthMiddleware.RequireConsumer)
		orderGroup.GET("", p.OrderHandler.List)
		orderGroup.GET("/:id", p.OrderHandler.Get)
		orderGroup.POST("/:id/accept", p.OrderHandler.Accept, p.AuthMiddleware.RequireSupplierStaff)
		orderGroup.POST("/:id/reject", p.OrderHandler.Reject, p.AuthMiddleware.RequireSupplierStaff)
		orderGroup.POST("/:id/complete", p.OrderHandler.Complete, p.AuthMiddleware.RequireSupplierStaff)
		orderGroup.POST("/:id/cancel", p.OrderHandler.Cancel)
	}

	// Chat threads
	threadGroup := api.Group("/chat/threads")
	{
		threadGroup.POST("", p.ChatHandler.OpenThread)
		threadGroup.GET("", p.ChatHandler.ListThreads)
		threadGroup.GET("/:id/messages", p.ChatHandler.ListMessages)
		threadGroup.POST("/:id/messages", p.ChatHandler.PostMessage)
		threadGroup.POST("/:id/read", p.ChatHandler.MarkRead)
		threadGroup.POST("/:id/escalate", p.ChatHandler.Escalate, p.AuthMiddleware.RequireSupplierStaff)
		threadGroup.POST("/:id/assign", p.ChatHandler.AssignSales, p.AuthMiddleware.RequireSupplierStaff)
	}

	// Complaints
	complaintGroup := api.Group("/complaints")
	{
		complaintGroup.POST("", p.ComplaintHandler.File, p.AuthMiddleware.RequireConsumer)
		complaintGroup.GET("", p.ComplaintHandler.List)
		complaintGroup.POST("/:id/progress", p.ComplaintHandler.Start, p.AuthMiddleware.RequireSupplierStaff)
		complaintGroup.POST("/:id/escalate", p.ComplaintHandler.Escalate, p.AuthMiddleware.RequireSupplierStaff)
		complaintGroup.POST("/:id/resolve", p.ComplaintHandler.Resolve, p.AuthMiddleware.RequireSupplierStaff)
		complaintGroup.POST("/:id/close", p.ComplaintHandler.Close, p.AuthMiddleware.RequireSupplierStaff)
	}

	// Internal incidents, supplier staff only
	incidentGroup := api.Group("/incidents", p.AuthMiddleware.RequireSupplierStaff)
	{
		incidentGroup.POST("", p.IncidentHandler.Create)
		incidentGroup.GET("", p.IncidentHandler.List)
		incidentGroup.POST("/:id/start", p.IncidentHandler.Start)
		incidentGroup.POST("/:id/resolve", p.IncidentHandler.Resolve)
	}

	// Staff management, supplier staff only
	staffGroup := api.Group("/company/users", p.AuthMiddleware.RequireSupplierStaff)
	{
		staffGroup.POST("", p.MemberHandler.AddStaff)
		staffGroup.GET("", p.MemberHandler.ListStaff)
		staffGroup.POST("/:id/deactivate", p.MemberHandler.DeactivateStaff)
	}

	// Analytics, supplier staff only
	api.GET("/analytics/summary", p.AnalyticsHandler.Summary, p.AuthMiddleware.RequireSupplierStaff)
}
