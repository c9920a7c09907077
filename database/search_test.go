package database

import (
	"testing"

	"workforce-intel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperienceYears(t *testing.T) {
	tests := []struct {
		name       string
		experience string
		want       int
	}{
		{"sums all year tokens", "7y Python, 3y Leadership", 10},
		{"single token", "12y facial recognition systems", 12},
		{"no tokens", "extensive background in consulting", 0},
		{"empty", "", 0},
		// The scan is heuristic: any digits followed by 'y' count, even in
		// unrelated contexts.
		{"false positive overcounts", "worked at Area 51y ago", 51},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExperienceYears(tt.experience))
		})
	}
}

func TestComplexSearch(t *testing.T) {
	repo := setupTestRepo(t)

	t.Run("no filters groups one row per employee", func(t *testing.T) {
		results, err := repo.ComplexSearch(models.SearchFilter{})
		require.NoError(t, err)
		assert.Len(t, results, 5)
	})

	t.Run("aggregates clients, industries, and hours per employee", func(t *testing.T) {
		results, err := repo.ComplexSearch(models.SearchFilter{Location: "Austin"})
		require.NoError(t, err)

		var alice *models.SearchResult
		for i := range results {
			if results[i].EmployeeID == 10001 {
				alice = &results[i]
			}
		}
		require.NotNil(t, alice)
		assert.Equal(t, 1600.0, alice.TotalHoursBilled)
		assert.Contains(t, alice.ClientsWorked, "Texas DPS")
		assert.Contains(t, alice.ClientsWorked, "Federal Trade Office")
		assert.Contains(t, alice.IndustriesWorked, "Law Enforcement")
	})

	t.Run("industry experience filter narrows to project staff", func(t *testing.T) {
		results, err := repo.ComplexSearch(models.SearchFilter{IndustryExperience: "Law Enforcement"})
		require.NoError(t, err)
		require.Len(t, results, 2)
		ids := []int{results[0].EmployeeID, results[1].EmployeeID}
		assert.ElementsMatch(t, []int{10001, 10002}, ids)
	})

	t.Run("minimum experience years", func(t *testing.T) {
		// Alice's experience reads "7y Python, 3y Leadership, ..." = 10
		results, err := repo.ComplexSearch(models.SearchFilter{
			Skills:      []string{"Leadership"},
			MinYearsExp: 5,
		})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, 10001, results[0].EmployeeID)

		results, err = repo.ComplexSearch(models.SearchFilter{
			Skills:      []string{"Leadership"},
			MinYearsExp: 11,
		})
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("skills filter is OR of substrings", func(t *testing.T) {
		results, err := repo.ComplexSearch(models.SearchFilter{
			Skills:   []string{"CV"},
			Location: "Texas",
		})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("identical calls are deterministic", func(t *testing.T) {
		f := models.SearchFilter{Skills: []string{"Python"}, MinYearsExp: 5}
		first, err := repo.ComplexSearch(f)
		require.NoError(t, err)
		second, err := repo.ComplexSearch(f)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
