package services

import (
	"workforce-intel/models"
)

// AnalyticsService handles the aggregate report views.
type AnalyticsService struct {
	repo WorkforceRepository

	// dedupeRevenue switches the industry rollup from the historical
	// per-billing-row revenue sum to a per-project sum. Off by default so
	// existing report numbers stay reproducible.
	dedupeRevenue bool
}

func NewAnalyticsService(repo WorkforceRepository, dedupeRevenue bool) *AnalyticsService {
	return &AnalyticsService{repo: repo, dedupeRevenue: dedupeRevenue}
}

// ByIndustry returns the hours/revenue rollup per (industry, client).
func (s *AnalyticsService) ByIndustry() ([]models.IndustrySummary, error) {
	return s.repo.AnalyticsByIndustry(s.dedupeRevenue)
}

// BySkill returns the staff distribution per individual skill.
func (s *AnalyticsService) BySkill() ([]models.SkillSummary, error) {
	return s.repo.AnalyticsBySkill()
}

// ByRole returns the staff distribution per standardized role.
func (s *AnalyticsService) ByRole() ([]models.RoleSummary, error) {
	return s.repo.AnalyticsByRole()
}

// Stats returns the dashboard headline numbers.
func (s *AnalyticsService) Stats() (*models.Stats, error) {
	return s.repo.Stats()
}
