package handlers

import (
	"workforce-intel/app"
	"workforce-intel/models"

	"github.com/gofiber/fiber/v2"
)

type yearQuery struct {
	Year int `json:"year" validate:"billingyear"`
}

// GetBillingByEmployee returns billing records, optionally for one employee.
func GetBillingByEmployee(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeID := c.QueryInt("employee_id", 0)
		if employeeID < 0 {
			return badRequest(c, "employee_id must be a positive integer")
		}

		rows, err := a.Billing.ByEmployee(employeeID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch billing records", err)
		}

		if wantsCSV(c) {
			return sendCSV(c, a, "billing_by_employee.csv", models.BillingByEmployeeTable(rows))
		}

		return success(c, fiber.Map{
			"billing": rows,
			"count":   len(rows),
		})
	}
}

// GetBillingByProject returns the team billing breakdown, optionally for one
// billing code.
func GetBillingByProject(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := a.Billing.ByProject(c.Query("billing_code"))
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch billing records", err)
		}

		if wantsCSV(c) {
			return sendCSV(c, a, "billing_by_project.csv", models.BillingByProjectTable(rows))
		}

		return success(c, fiber.Map{
			"billing": rows,
			"count":   len(rows),
		})
	}
}

// GetBillingByYear returns the yearly billing summary, optionally for one
// year.
func GetBillingByYear(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := yearQuery{Year: c.QueryInt("year", 0)}
		if err := a.Validator.Validate(q); err != nil {
			return badRequest(c, err.Error())
		}

		rows, err := a.Billing.ByYear(q.Year)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch billing summary", err)
		}

		if wantsCSV(c) {
			return sendCSV(c, a, "billing_by_year.csv", models.YearSummaryTable(rows))
		}

		return success(c, fiber.Map{
			"summary": rows,
			"count":   len(rows),
		})
	}
}
