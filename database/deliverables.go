package database

import (
	"workforce-intel/models"
)

// DeliverablesTracker returns deliverables joined with their projects.
// Billing code is an exact match; topic area and client are substring
// matches in SQL; technology is filtered in-process against the
// semicolon-delimited Technologies field.
func (r *Repository) DeliverablesTracker(f models.DeliverableFilter) ([]models.DeliverableRecord, error) {
	query := `
		SELECT
			d.Billing_Code,
			COALESCE(p.Project_Name, ''),
			d.Deliverable,
			d.Date_Completed,
			d.Topic_Area,
			d.Technologies,
			d.Client,
			d.Codebase,
			COALESCE(p.Industry, ''),
			COALESCE(p.Dollar_Amount, 0)
		FROM deliverables d
		LEFT JOIN projects p ON d.Billing_Code = p.Billing_Code
		WHERE 1=1
	`
	var args []any

	if f.BillingCode != "" {
		query += " AND d.Billing_Code = ?"
		args = append(args, f.BillingCode)
	}
	if f.TopicArea != "" {
		query += " AND d.Topic_Area LIKE ?"
		args = append(args, like(f.TopicArea))
	}
	if f.Client != "" {
		query += " AND d.Client LIKE ?"
		args = append(args, like(f.Client))
	}
	query += " ORDER BY d.Billing_Code, d.Deliverable"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.DeliverableRecord
	for rows.Next() {
		var rec models.DeliverableRecord
		if err := rows.Scan(
			&rec.BillingCode, &rec.ProjectName, &rec.Deliverable,
			&rec.DateCompleted, &rec.TopicArea, &rec.Technologies,
			&rec.Client, &rec.Codebase, &rec.Industry, &rec.DollarAmount,
		); err != nil {
			return nil, err
		}
		if !listMatches(rec.Technologies, f.Technology) {
			continue
		}
		result = append(result, rec)
	}

	return result, rows.Err()
}
