package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"careerhub-backend/dto"
	"careerhub-backend/internal/apperror"
)

// handleError maps the service error kinds onto HTTP statuses:
// NotFound -> 404, Validation/Conflict -> 400, anything else -> 500.
// Every error body is {"message": "..."}.
func handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, apperror.ErrValidation), errors.Is(err, apperror.ErrConflict):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	logrus.WithError(err).WithField("path", c.Path()).Error("request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
}
