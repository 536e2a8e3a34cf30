// Package router registers the routes of the bot API.
package router

import (
	"marketbot/internal/delivery/api/middleware"
	"marketbot/internal/delivery/api/router/handler"
	"marketbot/internal/domain/entity"
	"marketbot/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WebhookHandler *handler.WebhookHandler
	EventHandler   *handler.EventHandler
	LinkHandler    *handler.LinkHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	webhookHandler *handler.WebhookHandler
	eventHandler   *handler.EventHandler
	linkHandler    *handler.LinkHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		webhookHandler: params.WebhookHandler,
		eventHandler:   params.EventHandler,
		linkHandler:    params.LinkHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Telegram calls the webhook unauthenticated; the secret token header
	// is checked by the handler.
	webhookGroup := e.Group("/telegram")
	{
		webhookGroup.POST("/webhook", r.webhookHandler.Receive)
		webhookGroup.GET("/webhook", r.webhookHandler.Status)
	}

	// API v1 routes are called by marketplace backends with service tokens
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	eventsGroup := apiV1.Group("/events")
	eventsGroup.Use(r.authMiddleware.RequireRole(entity.RolePublisher))
	{
		eventsGroup.POST("", r.eventHandler.PublishEvent)
	}

	linkGroup := apiV1.Group("/link")
	linkGroup.Use(r.authMiddleware.RequireRole(entity.RoleLinker))
	{
		linkGroup.GET("/qr", r.linkHandler.LinkQRCode)
	}
}
