package server

import (
	"errors"

	"titiktemu/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts the "id" route parameter as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
func (s *Server) parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("ID tidak valid"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// caller resolves the token subject stored by AuthRequired to the acting
// user record. On failure it writes a 401 JSON response and returns
// errResponseWritten.
func (s *Server) caller(c *fiber.Ctx) (*models.User, error) {
	username, ok := c.Locals("username").(string)
	if !ok || username == "" {
		_ = models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
		return nil, errResponseWritten
	}

	user, err := s.authService.ResolveCaller(c.UserContext(), username)
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("User tidak ditemukan"))
		return nil, errResponseWritten
	}
	return user, nil
}

// mapServiceError writes a domain error with the HTTP status its code maps
// to. FORBIDDEN maps to 400: ownership failures on laporan mutations are
// reported as bad requests, matching the API contract.
func mapServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	switch appErr.Code {
	case models.CodeValidation, models.CodeConflict, models.CodeForbidden:
		return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
	case models.CodeUnauthorized:
		return models.RespondWithError(c, fiber.StatusUnauthorized, appErr)
	case models.CodeNotFound:
		return models.RespondWithError(c, fiber.StatusNotFound, appErr)
	default:
		return models.RespondWithError(c, fiber.StatusInternalServerError, appErr)
	}
}
