package database

import (
	"workforce-intel/models"
)

// BillingByEmployee returns billing records with employee and project
// details, ordered by year descending then hours descending. A zero
// employeeID returns all employees' records.
func (r *Repository) BillingByEmployee(employeeID int) ([]models.BillingByEmployeeRow, error) {
	query := `
		SELECT
			b.Employee_ID,
			COALESCE(e.Name, ''),
			b.Billing_Code,
			COALESCE(p.Project_Name, ''),
			COALESCE(p.Client, ''),
			b.Year,
			b.Hours_Billed,
			b.Role_in_Project
		FROM billing b
		LEFT JOIN employees e ON b.Employee_ID = e.Employee_ID
		LEFT JOIN projects p ON b.Billing_Code = p.Billing_Code
		WHERE 1=1
	`
	var args []any

	if employeeID != 0 {
		query += " AND b.Employee_ID = ?"
		args = append(args, employeeID)
	}
	query += " ORDER BY b.Year DESC, b.Hours_Billed DESC, b.Billing_Code, b.Employee_ID"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.BillingByEmployeeRow
	for rows.Next() {
		var row models.BillingByEmployeeRow
		if err := rows.Scan(
			&row.EmployeeID, &row.Name, &row.BillingCode, &row.ProjectName,
			&row.Client, &row.Year, &row.HoursBilled, &row.RoleInProject,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// BillingByProject returns the team billing breakdown for a project, ordered
// by hours descending. An empty billingCode returns all projects' records.
func (r *Repository) BillingByProject(billingCode string) ([]models.BillingByProjectRow, error) {
	query := `
		SELECT
			b.Billing_Code,
			COALESCE(p.Project_Name, ''),
			COALESCE(p.Client, ''),
			b.Employee_ID,
			COALESCE(e.Name, ''),
			COALESCE(e.Job_Title, ''),
			b.Year,
			b.Hours_Billed,
			b.Role_in_Project
		FROM billing b
		LEFT JOIN projects p ON b.Billing_Code = p.Billing_Code
		LEFT JOIN employees e ON b.Employee_ID = e.Employee_ID
		WHERE 1=1
	`
	var args []any

	if billingCode != "" {
		query += " AND b.Billing_Code = ?"
		args = append(args, billingCode)
	}
	query += " ORDER BY b.Hours_Billed DESC, b.Billing_Code, b.Employee_ID, b.Year"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.BillingByProjectRow
	for rows.Next() {
		var row models.BillingByProjectRow
		if err := rows.Scan(
			&row.BillingCode, &row.ProjectName, &row.Client, &row.EmployeeID,
			&row.Name, &row.JobTitle, &row.Year, &row.HoursBilled,
			&row.RoleInProject,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// BillingByYear aggregates billed hours per (year, client, industry,
// project), ordered by year descending then total hours descending. A zero
// year covers all years.
func (r *Repository) BillingByYear(year int) ([]models.YearSummary, error) {
	query := `
		SELECT
			b.Year,
			COALESCE(p.Client, ''),
			COALESCE(p.Industry, ''),
			COALESCE(p.Project_Name, ''),
			SUM(b.Hours_Billed) AS Total_Hours,
			COUNT(DISTINCT b.Employee_ID) AS Employee_Count
		FROM billing b
		LEFT JOIN projects p ON b.Billing_Code = p.Billing_Code
		WHERE 1=1
	`
	var args []any

	if year != 0 {
		query += " AND b.Year = ?"
		args = append(args, year)
	}
	query += `
		GROUP BY b.Year, p.Client, p.Industry, p.Project_Name
		ORDER BY b.Year DESC, Total_Hours DESC, p.Client, p.Project_Name
	`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.YearSummary
	for rows.Next() {
		var s models.YearSummary
		if err := rows.Scan(
			&s.Year, &s.Client, &s.Industry, &s.ProjectName,
			&s.TotalHours, &s.EmployeeCount,
		); err != nil {
			return nil, err
		}
		result = append(result, s)
	}

	return result, rows.Err()
}

// EmployeeProjectHistory returns the full billing and deliverable history for
// one employee, ordered by year descending then hours descending. The join
// against deliverables is many-to-many at the billing-code level, so a
// project appears once per deliverable; callers de-duplicate for display.
func (r *Repository) EmployeeProjectHistory(employeeID int) ([]models.ProjectHistoryRow, error) {
	query := `
		SELECT
			e.Name,
			e.Job_Title,
			COALESCE(p.Project_Name, ''),
			COALESCE(p.Client, ''),
			COALESCE(p.Industry, ''),
			COALESCE(p.Technologies, ''),
			COALESCE(b.Year, 0),
			COALESCE(b.Hours_Billed, 0),
			COALESCE(b.Role_in_Project, ''),
			COALESCE(d.Deliverable, ''),
			COALESCE(d.Date_Completed, '')
		FROM employees e
		LEFT JOIN billing b ON e.Employee_ID = b.Employee_ID
		LEFT JOIN projects p ON b.Billing_Code = p.Billing_Code
		LEFT JOIN deliverables d ON b.Billing_Code = d.Billing_Code
		WHERE e.Employee_ID = ?
		ORDER BY b.Year DESC, b.Hours_Billed DESC, p.Project_Name, d.Deliverable
	`

	rows, err := r.db.Query(query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.ProjectHistoryRow
	for rows.Next() {
		var row models.ProjectHistoryRow
		if err := rows.Scan(
			&row.Name, &row.JobTitle, &row.ProjectName, &row.Client,
			&row.Industry, &row.Technologies, &row.Year, &row.HoursBilled,
			&row.RoleInProject, &row.Deliverable, &row.DateCompleted,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
