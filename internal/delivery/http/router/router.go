// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"voyago/internal/delivery/http/middleware"
	"voyago/internal/delivery/http/router/handler"
	"voyago/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	PackageHandler      *handler.PackageHandler
	BookingHandler      *handler.BookingHandler
	PaymentHandler      *handler.PaymentHandler
	WebhookHandler      *handler.WebhookHandler
	NotificationHandler *handler.NotificationHandler
	ContentHandler      *handler.ContentHandler
	AuthMiddleware      *middleware.AuthMiddleware
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

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", p.AuthHandler.Register)
		authGroup.POST("/verify-email", p.AuthHandler.VerifyEmail)
		authGroup.POST("/resend-otp", p.AuthHandler.ResendOTP)
		authGroup.POST("/login", p.AuthHandler.Login)
		authGroup.POST("/google", p.AuthHandler.GoogleSignIn)
		authGroup.POST("/logout", p.AuthHandler.Logout, p.AuthMiddleware.Authenticate)
	}

	// Public catalog and content routes
	e.GET("/packages", p.PackageHandler.ListPackages)
	e.GET("/packages/:id", p.PackageHandler.GetPackage)
	e.GET("/faqs", p.ContentHandler.ListFAQs)
	e.GET("/privacy-policy", p.ContentHandler.GetPrivacyPolicy)

	// Provider webhooks; authenticated by payload signature, not by session
	e.POST("/webhooks/stripe", p.WebhookHandler.HandleStripeWebhook)

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(p.AuthMiddleware.Authenticate)
	{
		userGroup.GET("/profile", p.UserHandler.GetProfile)
		userGroup.PUT("/profile", p.UserHandler.UpdateProfile)

		userGroup.POST("/bookings", p.BookingHandler.CreateBooking)
		userGroup.GET("/bookings", p.BookingHandler.ListMyBookings)
		userGroup.GET("/bookings/:id", p.BookingHandler.GetBooking)
		userGroup.DELETE("/bookings/:id", p.BookingHandler.DeleteBooking)

		userGroup.POST("/payments/intent", p.PaymentHandler.CreateIntent)
		userGroup.POST("/payments/confirm", p.PaymentHandler.ConfirmPayment)
		userGroup.GET("/payments", p.PaymentHandler.ListMyPayments)
		userGroup.GET("/payments/:id", p.PaymentHandler.GetPayment)
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(p.AuthMiddleware.Authenticate)
	adminGroup.Use(p.AuthMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/packages", p.PackageHandler.CreatePackage)
		adminGroup.PUT("/packages/:id", p.PackageHandler.UpdatePackage)
		adminGroup.DELETE("/packages/:id", p.PackageHandler.DeletePackage)

		adminGroup.GET("/bookings", p.BookingHandler.ListAllBookings)
		adminGroup.PUT("/bookings/:id/status", p.BookingHandler.UpdateBookingStatus)

		adminGroup.GET("/users", p.UserHandler.ListUsers)
		adminGroup.GET("/users/:id", p.UserHandler.GetUser)
		adminGroup.PUT("/users/:id/deactivate", p.UserHandler.DeactivateUser)
		adminGroup.DELETE("/users/:id", p.UserHandler.DeleteUser)

		adminGroup.GET("/payments", p.PaymentHandler.ListAllPayments)

		adminGroup.POST("/notifications/broadcast", p.NotificationHandler.Broadcast)
		adminGroup.GET("/notifications", p.NotificationHandler.ListNotifications)

		adminGroup.POST("/faqs", p.ContentHandler.CreateFAQ)
		adminGroup.PUT("/faqs/:id", p.ContentHandler.UpdateFAQ)
		adminGroup.DELETE("/faqs/:id", p.ContentHandler.DeleteFAQ)
		adminGroup.PUT("/privacy-policy", p.ContentHandler.UpdatePrivacyPolicy)
	}
}
