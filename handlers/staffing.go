package handlers

import (
	"errors"

	"workforce-intel/app"
	"workforce-intel/models"
	"workforce-intel/services"

	"github.com/gofiber/fiber/v2"
)

// GetStaffingMatrix returns the scripted staffing-matrix demo: directory
// candidates decorated with canned fit scores. Scores are lookups, not
// computed.
func GetStaffingMatrix(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		candidates, err := a.Staffing.Matrix()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to build staffing matrix", err)
		}

		if wantsCSV(c) {
			return sendCSV(c, a, "staffing_matrix.csv", models.StaffingTable(candidates))
		}

		return success(c, fiber.Map{
			"candidates": candidates,
			"count":      len(candidates),
		})
	}
}

// GetStaffingCosts returns the demo team cost estimate; margin is a
// percentage between 0 and 30.
func GetStaffingCosts(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		margin := c.QueryFloat("margin", 0)

		estimate, err := a.Staffing.Costs(margin)
		if err != nil {
			if errors.Is(err, services.ErrInvalidMargin) {
				return badRequest(c, err.Error())
			}
			return serverErrorWithDetails(c, "Failed to build cost estimate", err)
		}

		return success(c, fiber.Map{"estimate": estimate})
	}
}
