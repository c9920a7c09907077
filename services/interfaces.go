package services

import (
	"workforce-intel/models"
)

// WorkforceRepository is the query surface the services depend on. The
// concrete implementation is database.Repository; tests substitute mocks.
type WorkforceRepository interface {
	EmployeeDirectory(f models.DirectoryFilter) ([]models.DirectoryEntry, error)
	ProjectDashboard(f models.ProjectFilter) ([]models.Project, error)
	BillingByEmployee(employeeID int) ([]models.BillingByEmployeeRow, error)
	BillingByProject(billingCode string) ([]models.BillingByProjectRow, error)
	BillingByYear(year int) ([]models.YearSummary, error)
	ResumeMatrix(employeeID int) ([]models.ResumeProfile, error)
	DeliverablesTracker(f models.DeliverableFilter) ([]models.DeliverableRecord, error)
	AnalyticsByIndustry(dedupeRevenue bool) ([]models.IndustrySummary, error)
	AnalyticsBySkill() ([]models.SkillSummary, error)
	AnalyticsByRole() ([]models.RoleSummary, error)
	ComplexSearch(f models.SearchFilter) ([]models.SearchResult, error)
	EmployeeProjectHistory(employeeID int) ([]models.ProjectHistoryRow, error)
	Stats() (*models.Stats, error)
}
