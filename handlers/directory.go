package handlers

import (
	"workforce-intel/app"
	"workforce-intel/models"
	"workforce-intel/services"

	"github.com/gofiber/fiber/v2"
)

// GetDirectory returns the filtered employee directory. Skills is a
// comma-separated list; all filters are optional substring matches.
func GetDirectory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := models.DirectoryFilter{
			Skills:   services.SplitSkills(c.Query("skills")),
			Role:     c.Query("role"),
			Location: c.Query("location"),
			Title:    c.Query("title"),
		}

		entries, err := a.Workforce.Directory(filter)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch employee directory", err)
		}

		if wantsCSV(c) {
			return sendCSV(c, a, "employee_directory.csv", models.DirectoryTable(entries))
		}

		return success(c, fiber.Map{
			"employees": entries,
			"count":     len(entries),
		})
	}
}

// GetResumes returns the resume matrix, optionally narrowed to one employee.
func GetResumes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeID := c.QueryInt("employee_id", 0)
		if employeeID < 0 {
			return badRequest(c, "employee_id must be a positive integer")
		}

		profiles, err := a.Workforce.Resumes(employeeID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch resumes", err)
		}

		return success(c, fiber.Map{
			"resumes": profiles,
			"count":   len(profiles),
		})
	}
}

// GetEmployeeHistory returns the full project history for one employee. The
// deliverable join fans out; pass dedupe=true to collapse to one row per
// project and year.
func GetEmployeeHistory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeID, err := c.ParamsInt("id")
		if err != nil || employeeID <= 0 {
			return badRequest(c, "id must be a positive integer")
		}

		rows, err := a.Billing.History(employeeID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch project history", err)
		}

		if c.QueryBool("dedupe", false) {
			rows = services.DedupeHistory(rows)
		}

		return success(c, fiber.Map{
			"history": rows,
			"count":   len(rows),
		})
	}
}
