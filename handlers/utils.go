package handlers

import (
	"bytes"
	"log/slog"

	"workforce-intel/app"
	"workforce-intel/models"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	requestID := ""
	if id, ok := c.Locals("requestID").(string); ok {
		requestID = id
	}

	slog.Error("server error",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// wantsCSV reports whether the caller asked for a CSV download instead of
// JSON.
func wantsCSV(c *fiber.Ctx) bool {
	return c.Query("format") == "csv"
}

// sendCSV serializes the table through the export service and sends it as a
// download.
func sendCSV(c *fiber.Ctx, a *app.App, filename string, t models.Table) error {
	var buf bytes.Buffer
	if err := a.Export.WriteCSV(&buf, t); err != nil {
		return serverErrorWithDetails(c, "Failed to export results", err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
