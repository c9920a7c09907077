package setup

import (
	"workforce-intel/app"
	"workforce-intel/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	api := fiberApp.Group("/api")

	api.Get("/stats", handlers.GetStats(application))

	api.Get("/employees", handlers.GetDirectory(application))
	api.Get("/employees/:id/history", handlers.GetEmployeeHistory(application))
	api.Get("/projects", handlers.GetProjects(application))
	api.Get("/resumes", handlers.GetResumes(application))
	api.Get("/deliverables", handlers.GetDeliverables(application))

	api.Get("/billing/employee", handlers.GetBillingByEmployee(application))
	api.Get("/billing/project", handlers.GetBillingByProject(application))
	api.Get("/billing/year", handlers.GetBillingByYear(application))

	api.Get("/analytics/industry", handlers.GetAnalyticsByIndustry(application))
	api.Get("/analytics/skill", handlers.GetAnalyticsBySkill(application))
	api.Get("/analytics/role", handlers.GetAnalyticsByRole(application))

	api.Get("/search", handlers.GetSearch(application))

	api.Get("/staffing/matrix", handlers.GetStaffingMatrix(application))
	api.Get("/staffing/costs", handlers.GetStaffingCosts(application))
}
