package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

// New opens an in-memory SQLite database. The store lives only for the
// process lifetime; all tables are loaded once at startup and never mutated.
func New() (*DB, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// An in-memory SQLite database is private to its connection, so the
	// pool must never open a second one.
	db.SetMaxOpenConns(1)

	return &DB{db}, nil
}

// Migrate creates the six workforce tables. Joins are left-joins throughout,
// so foreign keys are soft: dangling references surface as empty join
// columns, not errors.
func (db *DB) Migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			Employee_ID INTEGER PRIMARY KEY,
			Name TEXT NOT NULL,
			Email TEXT NOT NULL,
			Role_ID TEXT NOT NULL,
			Job_Title TEXT NOT NULL,
			Location TEXT NOT NULL,
			Skills TEXT NOT NULL DEFAULT '',
			LinkedIn_URL TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS roles (
			Role_ID TEXT PRIMARY KEY,
			Standard_Role TEXT NOT NULL,
			Role_Title_Variants TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS projects (
			Billing_Code TEXT PRIMARY KEY,
			Project_Name TEXT NOT NULL,
			Client TEXT NOT NULL,
			Industry TEXT NOT NULL,
			Technologies TEXT NOT NULL DEFAULT '',
			Dollar_Amount REAL NOT NULL DEFAULT 0,
			Project_Scope TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS billing (
			Billing_Code TEXT NOT NULL,
			Employee_ID INTEGER NOT NULL,
			Year INTEGER NOT NULL,
			Hours_Billed REAL NOT NULL DEFAULT 0,
			Role_in_Project TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (Billing_Code, Employee_ID, Year)
		)`,

		`CREATE TABLE IF NOT EXISTS resume_data (
			Employee_ID INTEGER PRIMARY KEY,
			Education TEXT NOT NULL DEFAULT '',
			Experience TEXT NOT NULL DEFAULT '',
			Certifications TEXT NOT NULL DEFAULT '',
			Summary TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS deliverables (
			Billing_Code TEXT NOT NULL,
			Deliverable TEXT NOT NULL,
			Date_Completed TEXT NOT NULL DEFAULT '',
			Topic_Area TEXT NOT NULL DEFAULT '',
			Technologies TEXT NOT NULL DEFAULT '',
			Client TEXT NOT NULL DEFAULT '',
			Codebase TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (Billing_Code, Deliverable)
		)`,

		// Indexes for the join columns every billing query touches
		`CREATE INDEX IF NOT EXISTS idx_billing_employee ON billing(Employee_ID)`,
		`CREATE INDEX IF NOT EXISTS idx_billing_year ON billing(Year)`,
		`CREATE INDEX IF NOT EXISTS idx_employees_role ON employees(Role_ID)`,
		`CREATE INDEX IF NOT EXISTS idx_deliverables_code ON deliverables(Billing_Code)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
