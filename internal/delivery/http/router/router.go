// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"outreach/internal/delivery/http/middleware"
	"outreach/internal/delivery/http/router/handler"
	"outreach/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	SessionHandler   *handler.SessionHandler
	UserHandler      *handler.UserHandler
	PatientHandler   *handler.PatientHandler
	InventoryHandler *handler.InventoryHandler
	StaffHandler     *handler.StaffHandler
	FinanceHandler   *handler.FinanceHandler
	SyncHandler      *handler.SyncHandler
	AuthMiddleware   *middleware.AuthMiddleware
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
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.SessionHandler.Login)
	}

	authenticated := r.params.AuthMiddleware.Authenticate

	// User routes; creation stays open so a fresh install can register its
	// first account before anyone can log in.
	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.params.UserHandler.CreateUser)
		userGroup.GET("", r.params.UserHandler.ListUsers, authenticated)
		userGroup.GET("/:id", r.params.UserHandler.GetUser, authenticated)
		userGroup.PUT("/:id", r.params.UserHandler.UpdateUser, authenticated)
		userGroup.DELETE("/:id", r.params.UserHandler.DeleteUser, authenticated,
			r.params.AuthMiddleware.RequireRole(entity.RoleFacilityAdmin))
	}

	// Patient routes
	patientGroup := e.Group("/patients")
	patientGroup.Use(authenticated)
	{
		patientGroup.POST("", r.params.PatientHandler.RegisterPatient)
		patientGroup.GET("", r.params.PatientHandler.ListPatients)
		patientGroup.GET("/:id", r.params.PatientHandler.GetPatient)
		patientGroup.PUT("/:id", r.params.PatientHandler.UpdatePatient)
		patientGroup.POST("/:id/visits", r.params.PatientHandler.RecordVisit)
		patientGroup.POST("/:id/referrals", r.params.PatientHandler.ReferPatient)
		patientGroup.DELETE("/:id", r.params.PatientHandler.DeletePatient)
	}

	// Inventory routes
	inventoryGroup := e.Group("/inventory")
	inventoryGroup.Use(authenticated)
	{
		inventoryGroup.POST("", r.params.InventoryHandler.AddItem)
		inventoryGroup.GET("", r.params.InventoryHandler.ListItems)
		inventoryGroup.GET("/:id", r.params.InventoryHandler.GetItem)
		inventoryGroup.PUT("/:id", r.params.InventoryHandler.UpdateItem)
		inventoryGroup.PUT("/:id/stock", r.params.InventoryHandler.UpdateStock)
		inventoryGroup.DELETE("/:id", r.params.InventoryHandler.DeleteItem)
	}

	// Staff directory routes; manual entries are admin-managed
	staffGroup := e.Group("/staff")
	staffGroup.Use(authenticated)
	{
		staffGroup.GET("", r.params.StaffHandler.ListStaff)
		staffGroup.GET("/:id", r.params.StaffHandler.GetStaff)

		adminOnly := r.params.AuthMiddleware.RequireRole(entity.RoleFacilityAdmin)
		staffGroup.POST("", r.params.StaffHandler.AddManualEntry, adminOnly)
		staffGroup.PUT("/:id", r.params.StaffHandler.UpdateManualEntry, adminOnly)
		staffGroup.DELETE("/:id", r.params.StaffHandler.DeleteManualEntry, adminOnly)
	}

	// Finance routes, restricted to facility administrators
	financeGroup := e.Group("/finance")
	financeGroup.Use(authenticated)
	financeGroup.Use(r.params.AuthMiddleware.RequireRole(entity.RoleFacilityAdmin))
	{
		financeGroup.GET("/summary", r.params.FinanceHandler.GetSummary)
		financeGroup.PUT("/categories/:key", r.params.FinanceHandler.UpdateCategorySpend)
	}

	// Sync and maintenance routes
	syncGroup := e.Group("/sync")
	syncGroup.Use(authenticated)
	{
		syncGroup.GET("/status", r.params.SyncHandler.Status)
		syncGroup.POST("/refresh-remote", r.params.SyncHandler.RefreshFromRemote)
		syncGroup.POST("/refresh-local", r.params.SyncHandler.RefreshFromLocalStore)
		syncGroup.GET("/storage", r.params.SyncHandler.StorageInfo)
	}
}
