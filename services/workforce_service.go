package services

import (
	"strings"

	"workforce-intel/models"
)

// WorkforceService handles the directory, project, resume, and deliverable
// views.
type WorkforceService struct {
	repo WorkforceRepository
}

func NewWorkforceService(repo WorkforceRepository) *WorkforceService {
	return &WorkforceService{repo: repo}
}

// SplitSkills turns a comma-separated user input like "Python, CV" into the
// list the skill filters expect. Empty segments are dropped.
func SplitSkills(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	var skills []string
	for _, s := range strings.Split(input, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// Directory returns the filtered employee directory, one row per employee.
func (s *WorkforceService) Directory(f models.DirectoryFilter) ([]models.DirectoryEntry, error) {
	return s.repo.EmployeeDirectory(f)
}

// Projects returns the filtered project dashboard.
func (s *WorkforceService) Projects(f models.ProjectFilter) ([]models.Project, error) {
	if f.MinAmount > 0 && f.MaxAmount > 0 && f.MinAmount > f.MaxAmount {
		return nil, ErrInvalidAmountRange
	}
	return s.repo.ProjectDashboard(f)
}

// Resumes returns the resume matrix; a zero employeeID returns everyone.
func (s *WorkforceService) Resumes(employeeID int) ([]models.ResumeProfile, error) {
	if employeeID < 0 {
		return nil, ErrInvalidEmployeeID
	}
	return s.repo.ResumeMatrix(employeeID)
}

// Deliverables returns the filtered deliverables tracker.
func (s *WorkforceService) Deliverables(f models.DeliverableFilter) ([]models.DeliverableRecord, error) {
	return s.repo.DeliverablesTracker(f)
}
