// Package router contains routing setup for the HTTP delivery.
package router

import (
	"spaetimap/internal/delivery/http/middleware"
	"spaetimap/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler the router wires up, injected by Fx.
type RouterParams struct {
	fx.In

	SpatiHandler      *handler.SpatiHandler
	AmenityHandler    *handler.AmenityHandler
	MoodHandler       *handler.MoodHandler
	AuthHandler       *handler.AuthHandler
	NewsletterHandler *handler.NewsletterHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	spatiHandler      *handler.SpatiHandler
	amenityHandler    *handler.AmenityHandler
	moodHandler       *handler.MoodHandler
	authHandler       *handler.AuthHandler
	newsletterHandler *handler.NewsletterHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		spatiHandler:      params.SpatiHandler,
		amenityHandler:    params.AmenityHandler,
		moodHandler:       params.MoodHandler,
		authHandler:       params.AuthHandler,
		newsletterHandler: params.NewsletterHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public catalog reads.
	e.GET("/spatis", r.spatiHandler.List)
	e.GET("/spatis/:id", r.spatiHandler.Get)
	e.GET("/amenities", r.amenityHandler.List)
	e.GET("/moods", r.moodHandler.List)

	e.POST("/newsletter/subscribe", r.newsletterHandler.Subscribe)

	admin := e.Group("/admin")
	admin.POST("/auth/login", r.authHandler.Login)

	// Everything below requires a valid admin bearer token.
	spatis := admin.Group("/spatis", r.authMiddleware.Authenticate)
	{
		spatis.GET("", r.spatiHandler.List)
		spatis.POST("", r.spatiHandler.Create)
		spatis.PUT("/:id", r.spatiHandler.Update)
		spatis.DELETE("/:id", r.spatiHandler.Delete)
	}

	amenities := admin.Group("/amenities", r.authMiddleware.Authenticate)
	{
		amenities.GET("", r.amenityHandler.List)
		amenities.POST("", r.amenityHandler.Create)
		amenities.PUT("/:id", r.amenityHandler.Update)
		amenities.DELETE("/:id", r.amenityHandler.Delete)
	}

	moods := admin.Group("/moods", r.authMiddleware.Authenticate)
	{
		moods.GET("", r.moodHandler.List)
		moods.POST("", r.moodHandler.Create)
		moods.PUT("/:id", r.moodHandler.Update)
		moods.DELETE("/:id", r.moodHandler.Delete)
	}
}
