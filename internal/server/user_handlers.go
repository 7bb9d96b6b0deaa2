package server

import (
	"titiktemu/internal/models"
	"titiktemu/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/users/profile
// @Summary Own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /users/profile [get]
func (s *Server) GetProfile(c *fiber.Ctx) error {
	caller, err := s.caller(c)
	if err != nil {
		return nil
	}

	return c.JSON(s.userService.Profile(caller))
}

// UpdateProfile handles PUT /api/users/profile
// @Summary Update own profile
// @Description Overwrites the supplied fields. Changing email to one held by another account is rejected.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.UpdateProfileInput true "Profile fields"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /users/profile [put]
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	caller, err := s.caller(c)
	if err != nil {
		return nil
	}

	var req service.UpdateProfileInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Request body tidak valid"))
	}

	resp, err := s.userService.UpdateProfile(c.UserContext(), caller, req)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(resp)
}

// ChangePassword handles PUT /api/users/change-password
// @Summary Change own password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{old_password=string,new_password=string} true "Password change request"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /users/change-password [put]
func (s *Server) ChangePassword(c *fiber.Ctx) error {
	caller, err := s.caller(c)
	if err != nil {
		return nil
	}

	var req struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Request body tidak valid"))
	}

	if err := s.userService.ChangePassword(c.UserContext(), caller, req.OldPassword, req.NewPassword); err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Password berhasil diubah",
	})
}

// DeleteAccount handles DELETE /api/users/account
// @Summary Delete own account
// @Description Deletes the account and every laporan it owns.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string}
// @Failure 401 {object} models.ErrorResponse
// @Router /users/account [delete]
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	caller, err := s.caller(c)
	if err != nil {
		return nil
	}

	if err := s.userService.DeleteAccount(c.UserContext(), caller); err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Akun berhasil dihapus",
	})
}
