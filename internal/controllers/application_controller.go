package controllers

import (
	"github.com/gofiber/fiber/v2"

	"careerhub-backend/dto"
	"careerhub-backend/internal/models"
	"careerhub-backend/internal/services"
)

func GetApplications(svc *services.ApplicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		apps, err := svc.ListByUser(c.Context(), c.Params("userId"))
		if err != nil {
			return handleError(c, err)
		}
		if apps == nil {
			apps = []models.Application{}
		}
		return c.JSON(apps)
	}
}

func CreateApplication(svc *services.ApplicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var app models.Application
		if err := c.BodyParser(&app); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
		}

		if err := svc.Create(c.Context(), &app); err != nil {
			return handleError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(app)
	}
}

func DeleteApplication(svc *services.ApplicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("id")); err != nil {
			return handleError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Application deleted successfully"})
	}
}

func UpdateApplicationStatus(svc *services.ApplicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.UpdateStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
		}

		app, err := svc.UpdateStatus(c.Context(), c.Params("id"), body.Status)
		if err != nil {
			return handleError(c, err)
		}
		return c.JSON(app)
	}
}
