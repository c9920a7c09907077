package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsByIndustry(t *testing.T) {
	repo := setupTestRepo(t)

	t.Run("historical revenue counts projects once per billing row", func(t *testing.T) {
		rows, err := repo.AnalyticsByIndustry(false)
		require.NoError(t, err)
		require.Len(t, rows, 3)

		// Ordered by total hours desc: PC-001's group first (1200 + 900)
		le := rows[0]
		assert.Equal(t, "Law Enforcement", le.Industry)
		assert.Equal(t, "Texas DPS", le.Client)
		assert.Equal(t, 1, le.ProjectCount)
		assert.Equal(t, 2100.0, le.TotalHours)
		assert.Equal(t, 2, le.EmployeeCount)
		// PC-001 is worth $500k but was billed by two employees, so the
		// historical rollup reports it twice.
		assert.Equal(t, 1000000.0, le.TotalRevenue)
	})

	t.Run("dedupe flag counts each billed project once", func(t *testing.T) {
		rows, err := repo.AnalyticsByIndustry(true)
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, "Law Enforcement", rows[0].Industry)
		assert.Equal(t, 500000.0, rows[0].TotalRevenue)

		// PC-002 was billed in two different years by two employees
		assert.Equal(t, "Government", rows[1].Industry)
		assert.Equal(t, 300000.0, rows[1].TotalRevenue)
	})

	t.Run("hours and employee counts are unaffected by the flag", func(t *testing.T) {
		raw, err := repo.AnalyticsByIndustry(false)
		require.NoError(t, err)
		deduped, err := repo.AnalyticsByIndustry(true)
		require.NoError(t, err)

		require.Equal(t, len(raw), len(deduped))
		for i := range raw {
			assert.Equal(t, raw[i].TotalHours, deduped[i].TotalHours)
			assert.Equal(t, raw[i].EmployeeCount, deduped[i].EmployeeCount)
			assert.Equal(t, raw[i].ProjectCount, deduped[i].ProjectCount)
		}
	})
}

func TestAnalyticsBySkill(t *testing.T) {
	repo := setupTestRepo(t)

	rows, err := repo.AnalyticsBySkill()
	require.NoError(t, err)

	counts := make(map[string]int)
	total := 0
	for _, row := range rows {
		counts[row.Skill] = row.EmployeeCount
		total += row.EmployeeCount
	}

	// An employee with "Python;CV;Leadership" contributes one row to each of
	// the three groups, so the total is at least the number of employees
	// with any skill.
	assert.GreaterOrEqual(t, total, 5)
	assert.Equal(t, 4, counts["Python"])
	assert.Equal(t, 2, counts["CV"])
	assert.Equal(t, 2, counts["AWS"])
	assert.Equal(t, 1, counts["Leadership"])

	// Most common skill first
	assert.Equal(t, "Python", rows[0].Skill)

	t.Run("locations are sorted distinct", func(t *testing.T) {
		for _, row := range rows {
			if row.Skill == "AWS" {
				// Carol (Houston) and Eve (Austin), sorted
				assert.Equal(t, "Austin, Texas, Houston, Texas", row.Locations)
			}
		}
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		again, err := repo.AnalyticsBySkill()
		require.NoError(t, err)
		assert.Equal(t, rows, again)
	})
}

func TestAnalyticsByRole(t *testing.T) {
	repo := setupTestRepo(t)

	rows, err := repo.AnalyticsByRole()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Senior Engineer", rows[0].StandardRole)
	assert.Equal(t, 3, rows[0].EmployeeCount)

	total := 0
	for _, row := range rows {
		total += row.EmployeeCount
	}
	assert.Equal(t, 5, total)
}

func TestStats(t *testing.T) {
	repo := setupTestRepo(t)

	stats, err := repo.Stats()
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalEmployees)
	assert.Equal(t, 3, stats.TotalProjects)
	assert.Equal(t, 5, stats.TotalBillingRows)
	assert.Equal(t, 3, stats.TotalDeliverables)
	assert.Equal(t, 3, stats.TotalRoles)
	assert.Equal(t, 3900.0, stats.TotalHoursBilled)
	assert.Equal(t, 950000.0, stats.TotalRevenue)
}
