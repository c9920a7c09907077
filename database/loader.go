package database

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Source filenames are fixed and self-describing; the data drops use the
// column list as the filename.
const (
	employeesFile    = "EmployeeID-Name-Email-RoleID-JobTitle-Location-Skills-LinkedInURL.csv"
	rolesFile        = "RoleID-StandardRole-RoleTitleVariants.csv"
	projectsFile     = "BillingCode-ProjectName-Client-Industry-Technologies-DollarAmount-ProjectScope.csv"
	billingFile      = "BillingCode-EmployeeID-Year-HoursBilled-RoleinProject.csv"
	resumesFile      = "EmployeeID-Education-Experience-Certifications-Summary.csv"
	deliverablesFile = "BillingCode-Deliverable-DateCompleted-TopicArea-Technologies-Client-Codebase.csv"
)

// tableSpec describes one CSV source: where it lives, the exact header it
// must carry, and the insert statement its rows feed.
type tableSpec struct {
	file    string
	header  []string
	insert  string
	convert func(record []string) ([]any, error)
}

func tableSpecs() []tableSpec {
	return []tableSpec{
		{
			file:   employeesFile,
			header: []string{"Employee_ID", "Name", "Email", "Role_ID", "Job_Title", "Location", "Skills", "LinkedIn_URL"},
			insert: `INSERT INTO employees (Employee_ID, Name, Email, Role_ID, Job_Title, Location, Skills, LinkedIn_URL)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			convert: func(rec []string) ([]any, error) {
				id, err := strconv.Atoi(rec[0])
				if err != nil {
					return nil, fmt.Errorf("invalid Employee_ID %q: %w", rec[0], err)
				}
				return []any{id, rec[1], rec[2], rec[3], rec[4], rec[5], rec[6], rec[7]}, nil
			},
		},
		{
			file:   rolesFile,
			header: []string{"Role_ID", "Standard_Role", "Role_Title_Variants"},
			insert: `INSERT INTO roles (Role_ID, Standard_Role, Role_Title_Variants) VALUES (?, ?, ?)`,
			convert: func(rec []string) ([]any, error) {
				return []any{rec[0], rec[1], rec[2]}, nil
			},
		},
		{
			file:   projectsFile,
			header: []string{"Billing_Code", "Project_Name", "Client", "Industry", "Technologies", "Dollar_Amount", "Project_Scope"},
			insert: `INSERT INTO projects (Billing_Code, Project_Name, Client, Industry, Technologies, Dollar_Amount, Project_Scope)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
			convert: func(rec []string) ([]any, error) {
				amount, err := strconv.ParseFloat(rec[5], 64)
				if err != nil {
					return nil, fmt.Errorf("invalid Dollar_Amount %q: %w", rec[5], err)
				}
				return []any{rec[0], rec[1], rec[2], rec[3], rec[4], amount, rec[6]}, nil
			},
		},
		{
			file:   billingFile,
			header: []string{"Billing_Code", "Employee_ID", "Year", "Hours_Billed", "Role_in_Project"},
			insert: `INSERT INTO billing (Billing_Code, Employee_ID, Year, Hours_Billed, Role_in_Project)
				VALUES (?, ?, ?, ?, ?)`,
			convert: func(rec []string) ([]any, error) {
				id, err := strconv.Atoi(rec[1])
				if err != nil {
					return nil, fmt.Errorf("invalid Employee_ID %q: %w", rec[1], err)
				}
				year, err := strconv.Atoi(rec[2])
				if err != nil {
					return nil, fmt.Errorf("invalid Year %q: %w", rec[2], err)
				}
				hours, err := strconv.ParseFloat(rec[3], 64)
				if err != nil {
					return nil, fmt.Errorf("invalid Hours_Billed %q: %w", rec[3], err)
				}
				return []any{rec[0], id, year, hours, rec[4]}, nil
			},
		},
		{
			file:   resumesFile,
			header: []string{"Employee_ID", "Education", "Experience", "Certifications", "Summary"},
			insert: `INSERT INTO resume_data (Employee_ID, Education, Experience, Certifications, Summary)
				VALUES (?, ?, ?, ?, ?)`,
			convert: func(rec []string) ([]any, error) {
				id, err := strconv.Atoi(rec[0])
				if err != nil {
					return nil, fmt.Errorf("invalid Employee_ID %q: %w", rec[0], err)
				}
				return []any{id, rec[1], rec[2], rec[3], rec[4]}, nil
			},
		},
		{
			file:   deliverablesFile,
			header: []string{"Billing_Code", "Deliverable", "Date_Completed", "Topic_Area", "Technologies", "Client", "Codebase"},
			insert: `INSERT INTO deliverables (Billing_Code, Deliverable, Date_Completed, Topic_Area, Technologies, Client, Codebase)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
			convert: func(rec []string) ([]any, error) {
				return []any{rec[0], rec[1], rec[2], rec[3], rec[4], rec[5], rec[6]}, nil
			},
		},
	}
}

// LoadAll reads the six CSV files from dataDir and bulk inserts them. The
// load is all-or-nothing: a missing file, header mismatch, or malformed row
// aborts with an error and the caller treats it as fatal.
func (db *DB) LoadAll(dataDir string) error {
	for _, spec := range tableSpecs() {
		if err := db.loadTable(dataDir, spec); err != nil {
			return fmt.Errorf("loading %s: %w", spec.file, err)
		}
	}
	return nil
}

func (db *DB) loadTable(dataDir string, spec tableSpec) error {
	f, err := os.Open(filepath.Join(dataDir, spec.file))
	if err != nil {
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("reading header: %w", err)
	}
	if err := checkHeader(header, spec.header); err != nil {
		return err
	}

	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("reading rows: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(spec.insert)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, rec := range records {
		args, err := spec.convert(rec)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	return tx.Commit()
}

func checkHeader(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("header mismatch: got %d columns, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("header mismatch: column %d is %q, want %q", i+1, got[i], want[i])
		}
	}
	return nil
}

// TableCount returns the row count of a loaded table.
func (db *DB) TableCount(table string) (int, error) {
	switch table {
	case "employees", "roles", "projects", "billing", "resume_data", "deliverables":
	default:
		return 0, fmt.Errorf("unknown table %q", table)
	}

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
	if err != nil && err != sql.ErrNoRows {
		return 0, err
	}
	return count, nil
}
