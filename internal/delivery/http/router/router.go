// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"console/internal/delivery/http/middleware"
	"console/internal/delivery/http/router/handler"
	"console/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler      *handler.SessionHandler
	ViewHandler         *handler.ViewHandler
	DashboardHandler    *handler.DashboardHandler
	RosterHandler       *handler.RosterHandler
	OrderHandler        *handler.OrderHandler
	ReservationHandler  *handler.ReservationHandler
	TableHandler        *handler.TableHandler
	NotificationHandler *handler.NotificationHandler
	SessionMiddleware   *middleware.SessionMiddleware
	GateMiddleware      *middleware.GateMiddleware
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

// RegisterRoutes sets up all the API routes for the application. Every
// protected group states its full required role set explicitly; admin passes
// the staff and customer gates only because those groups list it.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session resolution runs on every route so gates see a settled state.
	e.Use(p.SessionMiddleware.Resolve)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", p.SessionHandler.Login)
		authGroup.POST("/refresh", p.SessionHandler.Refresh)
		authGroup.POST("/logout", p.SessionHandler.Logout, p.GateMiddleware.RequireAuthenticated)
	}

	// Console routes for any authenticated session (weak gate)
	consoleGroup := e.Group("/console")
	consoleGroup.Use(p.GateMiddleware.RequireAuthenticated)
	{
		consoleGroup.GET("/me", p.SessionHandler.Me)
		consoleGroup.GET("/view", p.ViewHandler.Active)
		consoleGroup.PUT("/view", p.ViewHandler.Select)
	}

	// Admin-only routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(p.GateMiddleware.Require(entity.RoleAdmin))
	{
		adminGroup.GET("/dashboard", p.DashboardHandler.Summary)
		adminGroup.GET("/staff", p.RosterHandler.List)
	}

	// Staff routes; admin is listed explicitly to pass this gate
	staffGroup := e.Group("/staff")
	staffGroup.Use(p.GateMiddleware.Require(entity.RoleStaff, entity.RoleAdmin))
	{
		staffGroup.GET("/orders", p.OrderHandler.List)
		staffGroup.PATCH("/orders/:id/status", p.OrderHandler.UpdateStatus)
		staffGroup.GET("/reservations", p.ReservationHandler.List)
		staffGroup.PATCH("/reservations/:id/status", p.ReservationHandler.UpdateStatus)
		staffGroup.POST("/reservations/:id/reset", p.ReservationHandler.Reset)
		staffGroup.GET("/tables", p.TableHandler.List)
		staffGroup.PATCH("/tables/:id/status", p.TableHandler.UpdateStatus)
		staffGroup.GET("/tables/:id/qr", p.TableHandler.QR)
		staffGroup.GET("/notifications", p.NotificationHandler.Recent)
	}

	// Customer routes; admin is listed explicitly to pass this gate
	customerGroup := e.Group("/customer")
	customerGroup.Use(p.GateMiddleware.Require(entity.RoleCustomer, entity.RoleAdmin))
	{
		customerGroup.GET("/orders", p.OrderHandler.ListOwn)
	}
}
