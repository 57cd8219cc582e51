package controllers

import (
	"github.com/gofiber/fiber/v2"

	"careerhub-backend/dto"
	"careerhub-backend/internal/metrics"
	"careerhub-backend/internal/services"
)

// GetAllUsers godoc
// @Summary      List all users
// @Description  Returns every user document in the database
// @Tags         Users
// @Produce      json
// @Success      200  {array}   models.User
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func GetAllUsers(svc *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := svc.List(c.Context())
		if err != nil {
			return handleError(c, err)
		}
		return c.JSON(users)
	}
}

// GetUser godoc
// @Summary      Get user by ID
// @Tags         Users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  models.User
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func GetUser(svc *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := svc.Get(c.Context(), c.Params("id"))
		if err != nil {
			return handleError(c, err)
		}
		return c.JSON(user)
	}
}

// FollowUser godoc
// @Summary      Follow a user
// @Description  Adds the target to the caller's following list and the caller to the target's followers list
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Target user ID"
// @Param        body  body      dto.FollowRequest  true  "Current user"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/follow [post]
func FollowUser(svc *services.RelationshipService, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.FollowRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
		}

		currentUser, err := svc.Follow(c.Context(), body.CurrentUserID, c.Params("id"))
		if err != nil {
			return handleError(c, err)
		}

		m.FollowRequests.WithLabelValues(c.Route().Path).Inc()
		return c.JSON(fiber.Map{
			"message":     "User followed successfully",
			"currentUser": currentUser,
		})
	}
}

// UnfollowUser godoc
// @Summary      Unfollow a user
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Target user ID"
// @Param        body  body      dto.FollowRequest  true  "Current user"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/unfollow [post]
func UnfollowUser(svc *services.RelationshipService, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.FollowRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
		}

		currentUser, err := svc.Unfollow(c.Context(), body.CurrentUserID, c.Params("id"))
		if err != nil {
			return handleError(c, err)
		}

		m.UnfollowRequests.WithLabelValues(c.Route().Path).Inc()
		return c.JSON(fiber.Map{
			"message":     "User unfollowed successfully",
			"currentUser": currentUser,
		})
	}
}
