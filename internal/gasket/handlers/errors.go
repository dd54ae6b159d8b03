package handlers

import (
	"errors"
	"net/http"

	"gasket-service/internal/gasket/geometry"
	"gasket-service/internal/gasket/models"

	"github.com/gofiber/fiber/v3"
)

var errInvalidJSON = errors.New("invalid JSON payload")

// writeError переводит ошибку в ответ: ошибки геометрии дают 400,
// Unauthorized даёт 401, остальное 500.
func writeError(c fiber.Ctx, err error) error {
	var gerr *geometry.Error
	switch {
	case errors.As(err, &gerr):
		status := http.StatusBadRequest
		if gerr.Kind == geometry.KindUnauthorized {
			status = http.StatusUnauthorized
		}
		return c.Status(status).JSON(models.ErrorResponse{
			Error:   string(gerr.Kind),
			Message: gerr.Message,
			Field:   gerr.Field,
		})
	case errors.Is(err, errInvalidJSON):
		return c.Status(http.StatusBadRequest).JSON(models.ErrorResponse{
			Error:   "InvalidJSON",
			Message: err.Error(),
		})
	}
	return c.Status(http.StatusInternalServerError).JSON(models.ErrorResponse{
		Error:   "Internal",
		Message: "failed to produce drawing",
	})
}
