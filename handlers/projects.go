package handlers

import (
	"errors"

	"workforce-intel/app"
	"workforce-intel/models"
	"workforce-intel/services"

	"github.com/gofiber/fiber/v2"
)

// GetProjects returns the filtered project dashboard.
func GetProjects(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := models.ProjectFilter{
			Client:     c.Query("client"),
			Industry:   c.Query("industry"),
			Technology: c.Query("technology"),
			MinAmount:  c.QueryFloat("min_amount", 0),
			MaxAmount:  c.QueryFloat("max_amount", 0),
		}

		if err := a.Validator.Validate(filter); err != nil {
			return badRequest(c, err.Error())
		}

		projects, err := a.Workforce.Projects(filter)
		if err != nil {
			if errors.Is(err, services.ErrInvalidAmountRange) {
				return badRequest(c, err.Error())
			}
			return serverErrorWithDetails(c, "Failed to fetch projects", err)
		}

		if wantsCSV(c) {
			return sendCSV(c, a, "projects.csv", models.ProjectTable(projects))
		}

		return success(c, fiber.Map{
			"projects": projects,
			"count":    len(projects),
		})
	}
}

// GetDeliverables returns the filtered deliverables tracker.
func GetDeliverables(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := models.DeliverableFilter{
			BillingCode: c.Query("billing_code"),
			TopicArea:   c.Query("topic_area"),
			Client:      c.Query("client"),
			Technology:  c.Query("technology"),
		}

		records, err := a.Workforce.Deliverables(filter)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch deliverables", err)
		}

		if wantsCSV(c) {
			return sendCSV(c, a, "deliverables.csv", models.DeliverableTable(records))
		}

		return success(c, fiber.Map{
			"deliverables": records,
			"count":        len(records),
		})
	}
}
