// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sejour/internal/delivery/http/middleware"
	"sejour/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PropertyHandler *handler.PropertyHandler
	ImageHandler    *handler.ImageHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	propertyHandler *handler.PropertyHandler
	imageHandler    *handler.ImageHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		propertyHandler: params.PropertyHandler,
		imageHandler:    params.ImageHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	auth := r.authMiddleware.Authenticate

	propertyGroup := e.Group("/property")
	{
		propertyGroup.POST("", r.propertyHandler.Create, auth)
		propertyGroup.GET("", r.propertyHandler.Search)
		propertyGroup.GET("/:id", r.propertyHandler.Get)
		// Mirrors the public API: a POST against a listing books it.
		propertyGroup.POST("/:id", r.propertyHandler.CreateBooking, auth)
		propertyGroup.PATCH("/:id", r.propertyHandler.Update, auth)
		propertyGroup.DELETE("/:id", r.propertyHandler.Archive, auth)

		propertyGroup.POST("/:id/image", r.imageHandler.Upload, auth)
		propertyGroup.GET("/:id/image", r.imageHandler.List)
		propertyGroup.DELETE("/:id/image/:imageKey", r.imageHandler.Delete, auth)
		propertyGroup.PATCH("/:id/image/:imageId/cover", r.imageHandler.SetCover, auth)
	}
}
