package database

import (
	"workforce-intel/models"
)

// EmployeeDirectory returns the employee directory joined with standardized
// roles, one row per employee. Role, location, and title filters are applied
// as substring matches in SQL; the skills filter is applied in-process
// against the semicolon-delimited Skills field.
func (r *Repository) EmployeeDirectory(f models.DirectoryFilter) ([]models.DirectoryEntry, error) {
	query := `
		SELECT
			e.Employee_ID,
			e.Name,
			e.Email,
			e.Job_Title,
			e.Location,
			e.Skills,
			COALESCE(r.Standard_Role, ''),
			e.LinkedIn_URL
		FROM employees e
		LEFT JOIN roles r ON e.Role_ID = r.Role_ID
		WHERE 1=1
	`
	var args []any

	if f.Role != "" {
		query += " AND r.Standard_Role LIKE ?"
		args = append(args, like(f.Role))
	}
	if f.Location != "" {
		query += " AND e.Location LIKE ?"
		args = append(args, like(f.Location))
	}
	if f.Title != "" {
		query += " AND e.Job_Title LIKE ?"
		args = append(args, like(f.Title))
	}
	query += " ORDER BY e.Employee_ID"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.DirectoryEntry
	for rows.Next() {
		var e models.DirectoryEntry
		if err := rows.Scan(
			&e.EmployeeID, &e.Name, &e.Email, &e.JobTitle,
			&e.Location, &e.Skills, &e.StandardRole, &e.LinkedInURL,
		); err != nil {
			return nil, err
		}
		if !listMatchesAny(e.Skills, f.Skills) {
			continue
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// ResumeMatrix returns employees joined with their resume records. A zero
// employeeID returns the full matrix.
func (r *Repository) ResumeMatrix(employeeID int) ([]models.ResumeProfile, error) {
	query := `
		SELECT
			e.Employee_ID,
			e.Name,
			e.Job_Title,
			e.Location,
			e.Skills,
			COALESCE(rd.Education, ''),
			COALESCE(rd.Experience, ''),
			COALESCE(rd.Certifications, ''),
			COALESCE(rd.Summary, ''),
			e.LinkedIn_URL
		FROM employees e
		LEFT JOIN resume_data rd ON e.Employee_ID = rd.Employee_ID
		WHERE 1=1
	`
	var args []any

	if employeeID != 0 {
		query += " AND e.Employee_ID = ?"
		args = append(args, employeeID)
	}
	query += " ORDER BY e.Employee_ID"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []models.ResumeProfile
	for rows.Next() {
		var p models.ResumeProfile
		if err := rows.Scan(
			&p.EmployeeID, &p.Name, &p.JobTitle, &p.Location, &p.Skills,
			&p.Education, &p.Experience, &p.Certifications, &p.Summary,
			&p.LinkedInURL,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}
