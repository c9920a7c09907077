package setup

import (
	"log/slog"

	"workforce-intel/app"
	"workforce-intel/config"
	"workforce-intel/database"
)

// InitDatabase opens the in-memory store, creates the schema, and loads the
// six CSV tables. Any load failure is returned to the caller and treated as
// fatal; the store is read-only afterwards.
func InitDatabase(dataDir string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New()
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	if err := db.LoadAll(dataDir); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("workforce data loaded", "data_dir", dataDir)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, logger *slog.Logger) *app.App {
	repo := database.NewRepository(db)

	application := app.New(repo, config.AppConfig.DedupeProjectRevenue, logger)
	logger.Info("application initialized with dependency injection",
		"dedupe_project_revenue", config.AppConfig.DedupeProjectRevenue)

	return application
}

// Shutdown performs graceful shutdown of all services
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
