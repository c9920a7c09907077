package handlers

import (
	"workforce-intel/app"

	"github.com/gofiber/fiber/v2"
)

// GetStats returns the dashboard headline numbers.
func GetStats(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := a.Analytics.Stats()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch stats", err)
		}
		return success(c, fiber.Map{"stats": stats})
	}
}

// GetAnalyticsByIndustry returns the hours/revenue rollup per industry and
// client.
func GetAnalyticsByIndustry(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := a.Analytics.ByIndustry()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch industry analytics", err)
		}
		return success(c, fiber.Map{
			"industries": rows,
			"count":      len(rows),
		})
	}
}

// GetAnalyticsBySkill returns the staff distribution per skill.
func GetAnalyticsBySkill(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := a.Analytics.BySkill()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch skill analytics", err)
		}
		return success(c, fiber.Map{
			"skills": rows,
			"count":  len(rows),
		})
	}
}

// GetAnalyticsByRole returns the staff distribution per standardized role.
func GetAnalyticsByRole(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := a.Analytics.ByRole()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch role analytics", err)
		}
		return success(c, fiber.Map{
			"roles": rows,
			"count": len(rows),
		})
	}
}
