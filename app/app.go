package app

import (
	"log/slog"

	"workforce-intel/database"
	"workforce-intel/services"
	"workforce-intel/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo      *database.Repository
	Workforce *services.WorkforceService
	Billing   *services.BillingService
	Analytics *services.AnalyticsService
	Search    *services.SearchService
	Export    *services.ExportService
	Staffing  *services.StaffingService
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, dedupeRevenue bool, logger *slog.Logger) *App {
	return &App{
		Repo:      repo,
		Workforce: services.NewWorkforceService(repo),
		Billing:   services.NewBillingService(repo),
		Analytics: services.NewAnalyticsService(repo, dedupeRevenue),
		Search:    services.NewSearchService(repo),
		Export:    services.NewExportService(),
		Staffing:  services.NewStaffingService(repo),
		Validator: validator.New(),
		Logger:    logger,
	}
}
