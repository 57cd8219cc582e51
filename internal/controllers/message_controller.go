package controllers

import (
	"github.com/gofiber/fiber/v2"

	"careerhub-backend/dto"
	"careerhub-backend/internal/metrics"
	"careerhub-backend/internal/services"
)

// GetUserMessages godoc
// @Summary      List a user's messages
// @Description  Returns the user's full message log, newest first
// @Tags         Messages
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/messages [get]
func GetUserMessages(svc *services.MessageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		messages, err := svc.List(c.Context(), c.Params("id"))
		if err != nil {
			return handleError(c, err)
		}
		return c.JSON(fiber.Map{"messages": messages})
	}
}

// SendMessage godoc
// @Summary      Send a direct message
// @Description  Appends a copy of the message to both the receiver's and the sender's logs
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Receiver user ID"
// @Param        body  body      dto.SendMessageRequest  true  "Message"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/message [post]
func SendMessage(svc *services.MessageService, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.SendMessageRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
		}

		receiverLog, senderLog, err := svc.Send(c.Context(), body.SenderID, c.Params("id"), body.MessageContent)
		if err != nil {
			return handleError(c, err)
		}

		m.MessagesSent.WithLabelValues(c.Route().Path).Inc()
		return c.JSON(fiber.Map{
			"message":          "Message sent successfully",
			"receiverMessages": receiverLog,
			"senderMessages":   senderLog,
		})
	}
}
