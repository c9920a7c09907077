package database

import (
	"sort"
	"strings"

	"workforce-intel/models"
)

// AnalyticsByIndustry aggregates billing activity per (industry, client).
//
// With dedupeRevenue false, Total_Revenue sums the project dollar amount once
// per billing row, so a project billed by several employees has its amount
// counted once per row. That matches the historical report output and is
// arguably a defect; dedupeRevenue true counts each billed project's amount
// once per group instead. The flag exists so the historical numbers stay
// reproducible until stakeholders sign off on the corrected aggregation.
func (r *Repository) AnalyticsByIndustry(dedupeRevenue bool) ([]models.IndustrySummary, error) {
	revenueExpr := "SUM(COALESCE(p.Dollar_Amount, 0))"
	if dedupeRevenue {
		revenueExpr = `COALESCE((
			SELECT SUM(pd.Dollar_Amount) FROM projects pd
			WHERE COALESCE(pd.Industry, '') = COALESCE(p.Industry, '')
			  AND COALESCE(pd.Client, '') = COALESCE(p.Client, '')
			  AND pd.Billing_Code IN (SELECT Billing_Code FROM billing)
		), 0)`
	}

	query := `
		SELECT
			COALESCE(p.Industry, ''),
			COALESCE(p.Client, ''),
			COUNT(DISTINCT p.Billing_Code) AS Project_Count,
			SUM(b.Hours_Billed) AS Total_Hours,
			COUNT(DISTINCT b.Employee_ID) AS Employee_Count,
			` + revenueExpr + ` AS Total_Revenue
		FROM billing b
		LEFT JOIN projects p ON b.Billing_Code = p.Billing_Code
		GROUP BY p.Industry, p.Client
		ORDER BY Total_Hours DESC, p.Industry, p.Client
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.IndustrySummary
	for rows.Next() {
		var s models.IndustrySummary
		if err := rows.Scan(
			&s.Industry, &s.Client, &s.ProjectCount, &s.TotalHours,
			&s.EmployeeCount, &s.TotalRevenue,
		); err != nil {
			return nil, err
		}
		result = append(result, s)
	}

	return result, rows.Err()
}

// AnalyticsBySkill explodes each employee's semicolon-delimited skill list
// into one row per (employee, skill) and aggregates per skill. An employee
// with skills "Python;AWS" contributes to both the Python and AWS groups.
// Ordered by employee count descending, then skill for a stable output.
func (r *Repository) AnalyticsBySkill() ([]models.SkillSummary, error) {
	rows, err := r.db.Query(`SELECT Skills, Location FROM employees`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	locations := make(map[string]map[string]bool)
	for rows.Next() {
		var skills, location string
		if err := rows.Scan(&skills, &location); err != nil {
			return nil, err
		}
		for _, skill := range strings.Split(skills, ";") {
			skill = strings.TrimSpace(skill)
			if skill == "" {
				continue
			}
			counts[skill]++
			if locations[skill] == nil {
				locations[skill] = make(map[string]bool)
			}
			locations[skill][location] = true
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := make([]models.SkillSummary, 0, len(counts))
	for skill, count := range counts {
		locs := make([]string, 0, len(locations[skill]))
		for loc := range locations[skill] {
			locs = append(locs, loc)
		}
		sort.Strings(locs)
		result = append(result, models.SkillSummary{
			Skill:         skill,
			EmployeeCount: count,
			Locations:     strings.Join(locs, ", "),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].EmployeeCount != result[j].EmployeeCount {
			return result[i].EmployeeCount > result[j].EmployeeCount
		}
		return result[i].Skill < result[j].Skill
	})

	return result, nil
}

// AnalyticsByRole counts employees per standardized role.
func (r *Repository) AnalyticsByRole() ([]models.RoleSummary, error) {
	query := `
		SELECT
			COALESCE(r.Standard_Role, ''),
			COUNT(e.Employee_ID) AS Employee_Count,
			COALESCE(GROUP_CONCAT(DISTINCT e.Location), '') AS Locations
		FROM employees e
		LEFT JOIN roles r ON e.Role_ID = r.Role_ID
		GROUP BY r.Standard_Role
		ORDER BY Employee_Count DESC, r.Standard_Role
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.RoleSummary
	for rows.Next() {
		var s models.RoleSummary
		if err := rows.Scan(&s.StandardRole, &s.EmployeeCount, &s.Locations); err != nil {
			return nil, err
		}
		result = append(result, s)
	}

	return result, rows.Err()
}

// Stats returns the dashboard headline numbers.
func (r *Repository) Stats() (*models.Stats, error) {
	var s models.Stats

	counts := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(*) FROM employees", &s.TotalEmployees},
		{"SELECT COUNT(*) FROM projects", &s.TotalProjects},
		{"SELECT COUNT(*) FROM billing", &s.TotalBillingRows},
		{"SELECT COUNT(*) FROM deliverables", &s.TotalDeliverables},
		{"SELECT COUNT(*) FROM roles", &s.TotalRoles},
	}
	for _, c := range counts {
		if err := r.db.QueryRow(c.query).Scan(c.dest); err != nil {
			return nil, err
		}
	}

	if err := r.db.QueryRow("SELECT COALESCE(SUM(Hours_Billed), 0) FROM billing").Scan(&s.TotalHoursBilled); err != nil {
		return nil, err
	}
	if err := r.db.QueryRow("SELECT COALESCE(SUM(Dollar_Amount), 0) FROM projects").Scan(&s.TotalRevenue); err != nil {
		return nil, err
	}

	return &s, nil
}
