package services

import (
	"workforce-intel/models"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of WorkforceRepository
type MockRepository struct {
	mock.Mock
}

// Ensure MockRepository implements WorkforceRepository
var _ WorkforceRepository = (*MockRepository)(nil)

func (m *MockRepository) EmployeeDirectory(f models.DirectoryFilter) ([]models.DirectoryEntry, error) {
	args := m.Called(f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DirectoryEntry), args.Error(1)
}

func (m *MockRepository) ProjectDashboard(f models.ProjectFilter) ([]models.Project, error) {
	args := m.Called(f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockRepository) BillingByEmployee(employeeID int) ([]models.BillingByEmployeeRow, error) {
	args := m.Called(employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BillingByEmployeeRow), args.Error(1)
}

func (m *MockRepository) BillingByProject(billingCode string) ([]models.BillingByProjectRow, error) {
	args := m.Called(billingCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BillingByProjectRow), args.Error(1)
}

func (m *MockRepository) BillingByYear(year int) ([]models.YearSummary, error) {
	args := m.Called(year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.YearSummary), args.Error(1)
}

func (m *MockRepository) ResumeMatrix(employeeID int) ([]models.ResumeProfile, error) {
	args := m.Called(employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ResumeProfile), args.Error(1)
}

func (m *MockRepository) DeliverablesTracker(f models.DeliverableFilter) ([]models.DeliverableRecord, error) {
	args := m.Called(f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DeliverableRecord), args.Error(1)
}

func (m *MockRepository) AnalyticsByIndustry(dedupeRevenue bool) ([]models.IndustrySummary, error) {
	args := m.Called(dedupeRevenue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.IndustrySummary), args.Error(1)
}

func (m *MockRepository) AnalyticsBySkill() ([]models.SkillSummary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SkillSummary), args.Error(1)
}

func (m *MockRepository) AnalyticsByRole() ([]models.RoleSummary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RoleSummary), args.Error(1)
}

func (m *MockRepository) ComplexSearch(f models.SearchFilter) ([]models.SearchResult, error) {
	args := m.Called(f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SearchResult), args.Error(1)
}

func (m *MockRepository) EmployeeProjectHistory(employeeID int) ([]models.ProjectHistoryRow, error) {
	args := m.Called(employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProjectHistoryRow), args.Error(1)
}

func (m *MockRepository) Stats() (*models.Stats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stats), args.Error(1)
}
