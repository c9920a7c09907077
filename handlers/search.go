package handlers

import (
	"workforce-intel/app"
	"workforce-intel/models"
	"workforce-intel/services"

	"github.com/gofiber/fiber/v2"
)

// GetSearch runs the multi-table employee search. Skills is comma-separated;
// min_years_exp uses the best-effort experience extractor, so the cutoff is
// approximate.
func GetSearch(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := models.SearchFilter{
			Skills:             services.SplitSkills(c.Query("skills")),
			Location:           c.Query("location"),
			Role:               c.Query("role"),
			ClientExperience:   c.Query("client_experience"),
			IndustryExperience: c.Query("industry_experience"),
			MinYearsExp:        c.QueryInt("min_years_exp", 0),
		}

		if err := a.Validator.Validate(filter); err != nil {
			return badRequest(c, err.Error())
		}

		results, err := a.Search.Search(filter)
		if err != nil {
			return serverErrorWithDetails(c, "Search failed", err)
		}

		if wantsCSV(c) {
			return sendCSV(c, a, "search_results.csv", models.SearchResultTable(results))
		}

		return success(c, fiber.Map{
			"results": results,
			"count":   len(results),
		})
	}
}
