// Package main is the entry point for the Finance Ledger API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/finance-ledger/backend/config"
	"github.com/finance-ledger/backend/internal/application/usecase/category"
	"github.com/finance-ledger/backend/internal/application/usecase/contact"
	"github.com/finance-ledger/backend/internal/application/usecase/dashboard"
	"github.com/finance-ledger/backend/internal/application/usecase/dataexchange"
	"github.com/finance-ledger/backend/internal/application/usecase/parse"
	"github.com/finance-ledger/backend/internal/application/usecase/project"
	"github.com/finance-ledger/backend/internal/application/usecase/recurring"
	"github.com/finance-ledger/backend/internal/application/usecase/transaction"
	"github.com/finance-ledger/backend/internal/infra/db"
	"github.com/finance-ledger/backend/internal/infra/server/router"
	"github.com/finance-ledger/backend/internal/integration/adapters"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/finance-ledger/backend/internal/integration/persistence"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Finance Ledger API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"database", cfg.Database.Path,
	)

	// Initialize database connection
	database, err := db.NewSQLiteConnection(&cfg.Database)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.RunMigrations(); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Create repositories
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	projectRepo := persistence.NewProjectRepository(database.DB())
	contactRepo := persistence.NewContactRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	recurringRepo := persistence.NewRecurringRepository(database.DB())

	// Create adapters
	parser := adapters.NewGeminiParser(cfg.AI.GeminiAPIKey, cfg.AI.Model)
	if !parser.IsAvailable() {
		slog.Warn("Natural language parsing disabled, GEMINI_API_KEY not set")
	}

	// Create use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	listProjectsUseCase := project.NewListProjectsUseCase(projectRepo)
	createProjectUseCase := project.NewCreateProjectUseCase(projectRepo)
	updateProjectUseCase := project.NewUpdateProjectUseCase(projectRepo)
	deleteProjectUseCase := project.NewDeleteProjectUseCase(projectRepo)

	listContactsUseCase := contact.NewListContactsUseCase(contactRepo)
	getContactUseCase := contact.NewGetContactUseCase(contactRepo)
	createContactUseCase := contact.NewCreateContactUseCase(contactRepo)
	updateContactUseCase := contact.NewUpdateContactUseCase(contactRepo)
	deleteContactUseCase := contact.NewDeleteContactUseCase(contactRepo)
	resolveContactUseCase := contact.NewResolveContactUseCase(contactRepo)

	createTransactionUseCase := transaction.NewCreateTransactionUseCase(
		transactionRepo, categoryRepo, projectRepo, resolveContactUseCase)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(
		transactionRepo, categoryRepo, projectRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	bulkCreateUseCase := transaction.NewBulkCreateTransactionsUseCase(transactionRepo, resolveContactUseCase)
	markReviewedUseCase := transaction.NewMarkReviewedUseCase(transactionRepo)

	listRecurringUseCase := recurring.NewListRecurringUseCase(recurringRepo)
	createRecurringUseCase := recurring.NewCreateRecurringUseCase(recurringRepo)
	updateRecurringUseCase := recurring.NewUpdateRecurringUseCase(recurringRepo)
	deleteRecurringUseCase := recurring.NewDeleteRecurringUseCase(recurringRepo)
	materializeRecurringUseCase := recurring.NewMaterializeRecurringUseCase(recurringRepo)
	getDueRecurringUseCase := recurring.NewGetDueRecurringUseCase(recurringRepo)
	getUpcomingRecurringUseCase := recurring.NewGetUpcomingRecurringUseCase(recurringRepo)

	getSummaryUseCase := dashboard.NewGetSummaryUseCase(transactionRepo)

	exportDataUseCase := dataexchange.NewExportDataUseCase(
		categoryRepo, projectRepo, contactRepo, transactionRepo, recurringRepo)
	importDataUseCase := dataexchange.NewImportDataUseCase(
		categoryRepo, projectRepo, contactRepo, transactionRepo, recurringRepo)

	parseTextUseCase := parse.NewParseTextUseCase(
		parser, contactRepo, categoryRepo, projectRepo, transactionRepo)

	// Create controllers
	healthController := controller.NewHealthController(database)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase, createCategoryUseCase, updateCategoryUseCase, deleteCategoryUseCase)
	projectController := controller.NewProjectController(
		listProjectsUseCase, createProjectUseCase, updateProjectUseCase, deleteProjectUseCase)
	contactController := controller.NewContactController(
		listContactsUseCase, getContactUseCase, createContactUseCase, updateContactUseCase, deleteContactUseCase)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		getTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		bulkCreateUseCase,
		markReviewedUseCase,
	)
	recurringController := controller.NewRecurringController(
		listRecurringUseCase,
		createRecurringUseCase,
		updateRecurringUseCase,
		deleteRecurringUseCase,
		materializeRecurringUseCase,
		getDueRecurringUseCase,
		getUpcomingRecurringUseCase,
	)
	dashboardController := controller.NewDashboardController(getSummaryUseCase)
	dataExchangeController := controller.NewDataExchangeController(exportDataUseCase, importDataUseCase)
	parseController := controller.NewParseController(parseTextUseCase)

	// Setup router
	r := router.NewRouter(
		healthController,
		categoryController,
		projectController,
		contactController,
		transactionController,
		recurringController,
		dashboardController,
		dataExchangeController,
		parseController,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
