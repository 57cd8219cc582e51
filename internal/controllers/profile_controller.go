package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"careerhub-backend/dto"
	"careerhub-backend/internal/apperror"
	"careerhub-backend/internal/services"
)

// CheckUsername godoc
// @Summary      Check username availability
// @Description  Advisory check; the unique index decides at write time
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CheckUsernameRequest  true  "Candidate username"
// @Success      200   {object}  dto.CheckUsernameResponse
// @Failure      400   {object}  dto.CheckUsernameResponse
// @Router       /api/check-username [post]
func CheckUsername(svc *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CheckUsernameRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
		}

		status, err := svc.CheckUsername(c.Context(), body.Username, body.CurrentUserID)
		if err != nil {
			if errors.Is(err, apperror.ErrValidation) {
				return c.Status(fiber.StatusBadRequest).JSON(dto.CheckUsernameResponse{
					Status:  "invalid",
					Message: err.Error(),
				})
			}
			return handleError(c, err)
		}

		message := "Username is available"
		if status == services.UsernameTaken {
			message = "Username is already taken"
		}
		return c.JSON(dto.CheckUsernameResponse{Status: status, Message: message})
	}
}

// UpdateProfile godoc
// @Summary      Update a user profile
// @Description  Partial update of the mutable profile fields; an empty password is ignored
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User ID"
// @Param        body  body      dto.ProfileUpdate  true  "Fields to update"
// @Success      200   {object}  models.User
// @Failure      400   {object}  dto.ErrorResponse "duplicate email/username"
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func UpdateProfile(svc *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var patch dto.ProfileUpdate
		if err := c.BodyParser(&patch); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
		}

		user, err := svc.UpdateProfile(c.Context(), c.Params("id"), patch)
		if err != nil {
			return handleError(c, err)
		}
		return c.JSON(user)
	}
}
