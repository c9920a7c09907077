package services

import (
	"workforce-intel/models"
)

// SearchService handles the multi-table employee search.
type SearchService struct {
	repo WorkforceRepository
}

func NewSearchService(repo WorkforceRepository) *SearchService {
	return &SearchService{repo: repo}
}

// Search runs the grouped multi-table search. The minimum-years filter uses
// the best-effort experience extractor, so results are approximate by
// design; zero rows is a legitimate outcome for any filter combination.
func (s *SearchService) Search(f models.SearchFilter) ([]models.SearchResult, error) {
	if f.MinYearsExp < 0 {
		f.MinYearsExp = 0
	}
	return s.repo.ComplexSearch(f)
}
