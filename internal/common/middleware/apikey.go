package middleware

import (
	"crypto/subtle"

	"gasket-service/internal/gasket/geometry"
	"gasket-service/internal/gasket/models"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// API Key Middleware
// ============================================================

// HeaderAPIKey задаёт заголовок с ключом. Также принимается query-параметр apiKey.
const HeaderAPIKey = "X-API-Key"

// APIKey сравнивает ключ запроса с настроенным за постоянное время.
// Пустой key отключает проверку.
func APIKey(key string) fiber.Handler {
	expected := []byte(key)
	return func(c fiber.Ctx) error {
		if len(expected) == 0 {
			return c.Next()
		}

		got := c.Get(HeaderAPIKey)
		if got == "" {
			got = c.Query("apiKey")
		}
		if subtle.ConstantTimeCompare([]byte(got), expected) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
				Error:   string(geometry.KindUnauthorized),
				Message: "invalid or missing API key",
			})
		}
		return c.Next()
	}
}
