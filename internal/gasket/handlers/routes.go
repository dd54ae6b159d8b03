package handlers

import (
	"database/sql"

	"gasket-service/internal/common/middleware"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Routes
// ============================================================

// Register вешает маршруты сервиса на app. Ключ API проверяется только
// для /api/v1.
func Register(app *fiber.App, h *GasketHandler, db *sql.DB, apiKey, openapiPath string) {
	app.Get("/health/live", LivenessProbe)
	app.Get("/health/ready", ReadinessProbe(db))
	app.Get("/health/startup", StartupProbe)

	app.Get("/docs", SwaggerUI)
	app.Get("/docs/openapi.yaml", SwaggerSpec(openapiPath))

	api := app.Group("/api/v1", middleware.APIKey(apiKey))

	api.Get("/gasket", h.Generate)
	api.Post("/gasket", h.Generate)
	api.Get("/gasket/preview", h.Preview)
	api.Post("/gasket/preview", h.Preview)
	api.Get("/gasket/holes", h.Holes)
	api.Post("/gasket/holes", h.Holes)

	api.Get("/drawings", h.ListDrawings)
	api.Get("/drawings/:id", h.GetDrawing)
}
