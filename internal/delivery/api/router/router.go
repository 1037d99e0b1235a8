// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"eventhub/internal/delivery/api/middleware"
	"eventhub/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	IdentityHandler  *handler.IdentityHandler
	EventHandler     *handler.EventHandler
	BookingHandler   *handler.BookingHandler
	GuestHandler     *handler.GuestHandler
	VendorHandler    *handler.VendorHandler
	CatalogHandler   *handler.CatalogHandler
	PortfolioHandler *handler.PortfolioHandler
	ReviewHandler    *handler.ReviewHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	identityHandler  *handler.IdentityHandler
	eventHandler     *handler.EventHandler
	bookingHandler   *handler.BookingHandler
	guestHandler     *handler.GuestHandler
	vendorHandler    *handler.VendorHandler
	catalogHandler   *handler.CatalogHandler
	portfolioHandler *handler.PortfolioHandler
	reviewHandler    *handler.ReviewHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		identityHandler:  params.IdentityHandler,
		eventHandler:     params.EventHandler,
		bookingHandler:   params.BookingHandler,
		guestHandler:     params.GuestHandler,
		vendorHandler:    params.VendorHandler,
		catalogHandler:   params.CatalogHandler,
		portfolioHandler: params.PortfolioHandler,
		reviewHandler:    params.ReviewHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. Paths end
// with a slash; the server rewrites requests that omit it.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.authMiddleware.Authenticate

	// Health check endpoint
	e.GET("/health/", handler.HealthCheck)

	usersGroup := e.Group("/users")
	{
		usersGroup.POST("/register/", r.identityHandler.Register)
		usersGroup.POST("/login/", r.identityHandler.Login)
		usersGroup.POST("/token/refresh/", r.identityHandler.RefreshToken)
		usersGroup.POST("/logout/", r.identityHandler.Logout)
		usersGroup.GET("/profile/", r.identityHandler.GetProfile, auth)
		usersGroup.PATCH("/profile/", r.identityHandler.UpdateProfile, auth)
	}

	// Every event route requires authentication, attached per route so that
	// unsupported methods still answer 405.
	eventsGroup := e.Group("/events")
	{
		eventsGroup.GET("/", r.eventHandler.List, auth)
		eventsGroup.POST("/create/", r.eventHandler.Create, auth)
		eventsGroup.GET("/:id/", r.eventHandler.Get, auth)
		eventsGroup.PATCH("/:id/", r.eventHandler.Update, auth)
		eventsGroup.PUT("/:id/", r.eventHandler.Update, auth)
		eventsGroup.DELETE("/:id/", r.eventHandler.Delete, auth)

		eventsGroup.POST("/bookings/", r.bookingHandler.Create, auth)
		eventsGroup.PATCH("/bookings/:id/", r.bookingHandler.UpdateStatus, auth)

		eventsGroup.GET("/:id/vendors/", r.bookingHandler.ListForEvent, auth)
		eventsGroup.POST("/:id/vendors/", r.bookingHandler.CreateForEvent, auth)
		eventsGroup.GET("/:id/vendors/:booking_id/", r.bookingHandler.Get, auth)
		eventsGroup.PATCH("/:id/vendors/:booking_id/", r.bookingHandler.UpdateStatusForEvent, auth)
		eventsGroup.DELETE("/:id/vendors/:booking_id/", r.bookingHandler.Delete, auth)

		eventsGroup.GET("/:id/guests/", r.guestHandler.List, auth)
		eventsGroup.POST("/:id/guests/", r.guestHandler.Add, auth)
		eventsGroup.GET("/:id/guests/:guest_id/", r.guestHandler.Get, auth)
		eventsGroup.PATCH("/:id/guests/:guest_id/", r.guestHandler.Update, auth)
		eventsGroup.DELETE("/:id/guests/:guest_id/", r.guestHandler.Delete, auth)
		eventsGroup.GET("/:id/guests/:guest_id/qrcode/", r.guestHandler.InvitationQR, auth)
	}

	// Catalog reads are public; writes carry auth per route.
	vendorsGroup := e.Group("/vendors")
	{
		vendorsGroup.GET("/", r.vendorHandler.List)
		vendorsGroup.GET("/categories/", r.vendorHandler.Categories)
		vendorsGroup.GET("/me/", r.vendorHandler.GetOwn, auth)
		vendorsGroup.PATCH("/me/", r.vendorHandler.UpdateOwn, auth)
		vendorsGroup.GET("/dashboard/bookings/", r.bookingHandler.VendorDashboard, auth)
		vendorsGroup.GET("/:id/", r.vendorHandler.Get)

		vendorsGroup.GET("/:id/services/", r.catalogHandler.List)
		vendorsGroup.POST("/:id/services/", r.catalogHandler.Create, auth)
		vendorsGroup.GET("/:id/services/:service_id/", r.catalogHandler.Get)
		vendorsGroup.PATCH("/:id/services/:service_id/", r.catalogHandler.Update, auth)
		vendorsGroup.DELETE("/:id/services/:service_id/", r.catalogHandler.Delete, auth)

		vendorsGroup.GET("/:id/portfolio/", r.portfolioHandler.List)
		vendorsGroup.POST("/:id/portfolio/", r.portfolioHandler.Create, auth)
		vendorsGroup.GET("/:id/portfolio/:item_id/", r.portfolioHandler.Get)
		vendorsGroup.DELETE("/:id/portfolio/:item_id/", r.portfolioHandler.Delete, auth)

		vendorsGroup.GET("/:id/reviews/", r.reviewHandler.List)
		vendorsGroup.POST("/:id/reviews/", r.reviewHandler.Create, auth)
		vendorsGroup.GET("/:id/reviews/:review_id/", r.reviewHandler.Get)
		vendorsGroup.DELETE("/:id/reviews/:review_id/", r.reviewHandler.Delete, auth)
	}
}
