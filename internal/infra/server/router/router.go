// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-ledger/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	categoryController     *controller.CategoryController
	projectController      *controller.ProjectController
	contactController      *controller.ContactController
	transactionController  *controller.TransactionController
	recurringController    *controller.RecurringController
	dashboardController    *controller.DashboardController
	dataExchangeController *controller.DataExchangeController
	parseController        *controller.ParseController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	categoryController *controller.CategoryController,
	projectController *controller.ProjectController,
	contactController *controller.ContactController,
	transactionController *controller.TransactionController,
	recurringController *controller.RecurringController,
	dashboardController *controller.DashboardController,
	dataExchangeController *controller.DataExchangeController,
	parseController *controller.ParseController,
) *Router {
	return &Router{
		healthController:       healthController,
		categoryController:     categoryController,
		projectController:      projectController,
		contactController:      contactController,
		transactionController:  transactionController,
		recurringController:    recurringController,
		dashboardController:    dashboardController,
		dataExchangeController: dataExchangeController,
		parseController:        parseController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Category routes
		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.PATCH("/:id", r.categoryController.Update)
			categories.DELETE("/:id", r.categoryController.Delete)
		}

		// Project routes
		projects := v1.Group("/projects")
		{
			projects.GET("", r.projectController.List)
			projects.POST("", r.projectController.Create)
			projects.PATCH("/:id", r.projectController.Update)
			projects.DELETE("/:id", r.projectController.Delete)
		}

		// Contact routes
		contacts := v1.Group("/contacts")
		{
			contacts.GET("", r.contactController.List)
			contacts.POST("", r.contactController.Create)
			contacts.GET("/:id", r.contactController.Get)
			contacts.PATCH("/:id", r.contactController.Update)
			contacts.DELETE("/:id", r.contactController.Delete)
		}

		// Transaction routes
		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.POST("/bulk", r.transactionController.BulkCreate)
			transactions.GET("/:id", r.transactionController.Get)
			transactions.PATCH("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
			transactions.POST("/:id/reviewed", r.transactionController.MarkReviewed)
		}

		// Recurring transaction routes. The static paths must come
		// before the :id parameter routes.
		recurringTransactions := v1.Group("/recurring-transactions")
		{
			recurringTransactions.GET("", r.recurringController.List)
			recurringTransactions.POST("", r.recurringController.Create)
			recurringTransactions.GET("/due", r.recurringController.Due)
			recurringTransactions.GET("/upcoming", r.recurringController.Upcoming)
			recurringTransactions.PATCH("/:id", r.recurringController.Update)
			recurringTransactions.DELETE("/:id", r.recurringController.Delete)
			recurringTransactions.POST("/:id/materialize", r.recurringController.Materialize)
		}

		// Dashboard routes
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/summary", r.dashboardController.Summary)
		}

		// Data exchange routes
		data := v1.Group("/data")
		{
			data.GET("/export", r.dataExchangeController.Export)
			data.POST("/import", r.dataExchangeController.Import)
		}

		// Parse routes
		v1.POST("/parse", r.parseController.ParseText)
	}
}
