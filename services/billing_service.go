package services

import (
	"workforce-intel/models"
)

// BillingService handles billing rollups and employee project history.
type BillingService struct {
	repo WorkforceRepository
}

func NewBillingService(repo WorkforceRepository) *BillingService {
	return &BillingService{repo: repo}
}

// ByEmployee returns billing records for one employee, or all employees when
// employeeID is zero. An unknown id yields an empty result, not an error.
func (s *BillingService) ByEmployee(employeeID int) ([]models.BillingByEmployeeRow, error) {
	if employeeID < 0 {
		return nil, ErrInvalidEmployeeID
	}
	return s.repo.BillingByEmployee(employeeID)
}

// ByProject returns the billing breakdown for one project, or all projects
// when billingCode is empty.
func (s *BillingService) ByProject(billingCode string) ([]models.BillingByProjectRow, error) {
	return s.repo.BillingByProject(billingCode)
}

// ByYear returns the yearly billing summary; a zero year covers all years.
func (s *BillingService) ByYear(year int) ([]models.YearSummary, error) {
	return s.repo.BillingByYear(year)
}

// History returns the complete project history for one employee. The rows
// fan out per deliverable; DedupeHistory collapses them for display.
func (s *BillingService) History(employeeID int) ([]models.ProjectHistoryRow, error) {
	if employeeID <= 0 {
		return nil, ErrInvalidEmployeeID
	}
	return s.repo.EmployeeProjectHistory(employeeID)
}

// DedupeHistory collapses the per-deliverable fan-out to one row per
// (project, year), keeping the first occurrence in query order.
func DedupeHistory(rows []models.ProjectHistoryRow) []models.ProjectHistoryRow {
	type key struct {
		project string
		year    int
	}
	seen := make(map[key]bool)
	var out []models.ProjectHistoryRow
	for _, row := range rows {
		k := key{row.ProjectName, row.Year}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, row)
	}
	return out
}
