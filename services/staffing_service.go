package services

import (
	"sort"

	"workforce-intel/models"
)

// StaffingService drives the scripted staffing-matrix demo. The fit scores,
// recommended roles, and rationale text are canned lookups keyed by employee
// id; nothing here computes a score. Candidates come from the real directory
// query, so the demo still exercises the relational layer.
type StaffingService struct {
	repo WorkforceRepository
}

func NewStaffingService(repo WorkforceRepository) *StaffingService {
	return &StaffingService{repo: repo}
}

// matchProfile is the canned scoring record for one known employee.
type matchProfile struct {
	score     int
	role      string
	rationale string
}

// Scripted against the demo dataset; employees outside this table fall back
// to defaultMatch.
var matchProfiles = map[int]matchProfile{
	10004: {98, "Technical Lead", "PhD in CV from MIT, 12y facial recognition systems, 8y law enforcement AI, AWS certified, Austin-based, Active security clearance"},
	10005: {96, "Senior Engineer", "MS Stanford, 9y CV engineering, 6y law enforcement systems, Developed solutions for 3 state police departments, TensorFlow expert"},
	10006: {94, "Senior Architect", "11y enterprise architecture, 7y government projects, Active security clearance, AWS certified, Austin-based, API development expert"},
	10007: {93, "Senior Engineer", "PhD AI from Carnegie Mellon, 10y AI research, 5y law enforcement ML, Published 15+ papers, TensorFlow/PyTorch expert"},
	10008: {91, "Project Manager", "PMP certified, 8y PM experience, 6y government contracts, 4y law enforcement projects, Managed $50M+ in government tech"},
	10001: {89, "Technical Lead", "10y police tech, 4y divisional management, PMP certified, Python CV expert, Austin-based, Leadership experience"},
	10002: {87, "Senior Engineer", "7y police tech, 5y data analytics, 3y CV projects, CFE certified, Data science background"},
	10003: {85, "Senior Engineer", "PhD AI, 8y Python engineer, 2y federal law enforcement support, AWS DevOps certified, TensorFlow experience"},
}

var defaultMatch = matchProfile{80, "Senior Engineer", "Qualified candidate with relevant skills and experience"}

// roleRate pairs a recommended role with its demo bill rate and estimated
// project hours.
type roleRate struct {
	rate  float64
	hours int
}

var roleRates = map[string]roleRate{
	"Technical Lead":   {225, 1800},
	"Senior Engineer":  {185, 1600},
	"Senior Architect": {200, 1500},
	"Project Manager":  {165, 1400},
	"AI Research Lead": {210, 1500},
}

const maxCandidates = 5

// Matrix returns the demo staffing matrix: Texas employees with Python or CV
// skills, decorated with canned fit scores and sorted by score descending.
func (s *StaffingService) Matrix() ([]models.StaffingCandidate, error) {
	entries, err := s.repo.EmployeeDirectory(models.DirectoryFilter{
		Skills:   []string{"Python", "CV"},
		Location: "Texas",
	})
	if err != nil {
		return nil, err
	}

	if len(entries) > maxCandidates {
		entries = entries[:maxCandidates]
	}

	candidates := make([]models.StaffingCandidate, 0, len(entries))
	for _, e := range entries {
		match, ok := matchProfiles[e.EmployeeID]
		if !ok {
			match = defaultMatch
		}
		candidates = append(candidates, models.StaffingCandidate{
			DirectoryEntry:  e,
			FitScore:        match.score,
			RecommendedRole: match.role,
			MatchRationale:  match.rationale,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].FitScore > candidates[j].FitScore
	})

	return candidates, nil
}

// Costs builds the team cost estimate for the current matrix. Margin is a
// percentage between 0 and 30.
func (s *StaffingService) Costs(margin float64) (*models.CostEstimate, error) {
	if margin < 0 || margin > 30 {
		return nil, ErrInvalidMargin
	}

	candidates, err := s.Matrix()
	if err != nil {
		return nil, err
	}

	est := &models.CostEstimate{ProfitMargin: margin}
	for _, c := range candidates {
		rr, ok := roleRates[c.RecommendedRole]
		if !ok {
			continue
		}
		subtotal := rr.rate * float64(rr.hours)
		est.Lines = append(est.Lines, models.CostLine{
			Role:       c.RecommendedRole,
			Name:       c.Name,
			HourlyRate: rr.rate,
			Hours:      rr.hours,
			Subtotal:   subtotal,
		})
		est.BaseCost += subtotal
		est.TotalHours += rr.hours
	}

	est.ProfitAmount = est.BaseCost * margin / 100
	est.BidPrice = est.BaseCost + est.ProfitAmount

	return est, nil
}
