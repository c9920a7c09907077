package database

import (
	"regexp"
	"strconv"

	"workforce-intel/models"
)

var yearTokenRe = regexp.MustCompile(`(\d+)y`)

// ExperienceYears is a best-effort estimate of total years of experience from
// a free-text experience field. It sums every "<integer>y" token it finds, so
// "7y Python, 3y Leadership" yields 10. The scan is heuristic and can
// overcount when an unrelated token happens to end in a digit followed by
// "y"; callers treat the result as approximate.
func ExperienceYears(experience string) int {
	total := 0
	for _, m := range yearTokenRe.FindAllStringSubmatch(experience, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		total += n
	}
	return total
}

// ComplexSearch joins employees with roles, resumes, billing, and projects,
// grouped per employee with distinct clients and industries concatenated and
// hours summed. Role, location, and client/industry experience filters are
// substring matches in SQL; skills and minimum experience years are filtered
// in-process after the join.
func (r *Repository) ComplexSearch(f models.SearchFilter) ([]models.SearchResult, error) {
	query := `
		SELECT DISTINCT
			e.Employee_ID,
			e.Name,
			e.Email,
			e.Job_Title,
			e.Location,
			e.Skills,
			COALESCE(r.Standard_Role, ''),
			COALESCE(rd.Education, ''),
			COALESCE(rd.Experience, ''),
			COALESCE(rd.Certifications, ''),
			COALESCE(GROUP_CONCAT(DISTINCT p.Client), '') AS Clients_Worked,
			COALESCE(GROUP_CONCAT(DISTINCT p.Industry), '') AS Industries_Worked,
			COALESCE(SUM(b.Hours_Billed), 0) AS Total_Hours_Billed
		FROM employees e
		LEFT JOIN roles r ON e.Role_ID = r.Role_ID
		LEFT JOIN resume_data rd ON e.Employee_ID = rd.Employee_ID
		LEFT JOIN billing b ON e.Employee_ID = b.Employee_ID
		LEFT JOIN projects p ON b.Billing_Code = p.Billing_Code
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
	if f.ClientExperience != "" {
		query += " AND p.Client LIKE ?"
		args = append(args, like(f.ClientExperience))
	}
	if f.IndustryExperience != "" {
		query += " AND p.Industry LIKE ?"
		args = append(args, like(f.IndustryExperience))
	}
	query += `
		GROUP BY e.Employee_ID, e.Name, e.Email, e.Job_Title, e.Location,
		         e.Skills, r.Standard_Role, rd.Education, rd.Experience,
		         rd.Certifications
		ORDER BY e.Employee_ID
	`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.SearchResult
	for rows.Next() {
		var sr models.SearchResult
		if err := rows.Scan(
			&sr.EmployeeID, &sr.Name, &sr.Email, &sr.JobTitle, &sr.Location,
			&sr.Skills, &sr.StandardRole, &sr.Education, &sr.Experience,
			&sr.Certifications, &sr.ClientsWorked, &sr.IndustriesWorked,
			&sr.TotalHoursBilled,
		); err != nil {
			return nil, err
		}
		if !listMatchesAny(sr.Skills, f.Skills) {
			continue
		}
		if f.MinYearsExp > 0 && ExperienceYears(sr.Experience) < f.MinYearsExp {
			continue
		}
		result = append(result, sr)
	}

	return result, rows.Err()
}
