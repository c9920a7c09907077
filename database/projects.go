package database

import (
	"workforce-intel/models"
)

// ProjectDashboard returns projects filtered by client, industry, and dollar
// amount range in SQL, then by technology in-process against the
// semicolon-delimited Technologies field.
func (r *Repository) ProjectDashboard(f models.ProjectFilter) ([]models.Project, error) {
	query := `
		SELECT Billing_Code, Project_Name, Client, Industry, Technologies,
		       Dollar_Amount, Project_Scope
		FROM projects
		WHERE 1=1
	`
	var args []any

	if f.Client != "" {
		query += " AND Client LIKE ?"
		args = append(args, like(f.Client))
	}
	if f.Industry != "" {
		query += " AND Industry LIKE ?"
		args = append(args, like(f.Industry))
	}
	if f.MinAmount > 0 {
		query += " AND Dollar_Amount >= ?"
		args = append(args, f.MinAmount)
	}
	if f.MaxAmount > 0 {
		query += " AND Dollar_Amount <= ?"
		args = append(args, f.MaxAmount)
	}
	query += " ORDER BY Billing_Code"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(
			&p.BillingCode, &p.ProjectName, &p.Client, &p.Industry,
			&p.Technologies, &p.DollarAmount, &p.ProjectScope,
		); err != nil {
			return nil, err
		}
		if !listMatches(p.Technologies, f.Technology) {
			continue
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}
