package controllers

import (
	"github.com/gofiber/fiber/v2"

	"careerhub-backend/dto"
	"careerhub-backend/internal/services"
)

// Register godoc
// @Summary      Register a new account
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "Account data"
// @Success      201   {object}  models.User
// @Failure      400   {object}  dto.ErrorResponse "validation or duplicate key"
// @Router       /api/register [post]
func Register(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
		}

		user, err := svc.Register(c.Context(), body)
		if err != nil {
			return handleError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(user)
	}
}

// Login godoc
// @Summary      Log in with email and password
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse "invalid credentials"
// @Router       /api/login [post]
func Login(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
		}

		user, token, err := svc.Login(c.Context(), body.Email, body.Password)
		if err != nil {
			return handleError(c, err)
		}
		return c.JSON(fiber.Map{
			"message":     "Login successful",
			"user":        user,
			"accessToken": token,
		})
	}
}
