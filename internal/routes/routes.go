package routes

import (
	"github.com/gofiber/fiber/v2"

	"careerhub-backend/internal/controllers"
	"careerhub-backend/internal/metrics"
	"careerhub-backend/internal/services"
)

func SetupAuth(app *fiber.App, auth *services.AuthService) {
	app.Post("/api/register", controllers.Register(auth))
	app.Post("/api/login", controllers.Login(auth))
}

func SetupUserRoutes(app *fiber.App, users *services.UserService, rel *services.RelationshipService, msgs *services.MessageService, m *metrics.Metrics) {
	app.Get("/api/users", controllers.GetAllUsers(users))
	app.Get("/api/users/:id", controllers.GetUser(users))
	app.Put("/api/users/:id", controllers.UpdateProfile(users))
	app.Post("/api/check-username", controllers.CheckUsername(users))

	app.Post("/api/users/:id/follow", controllers.FollowUser(rel, m))
	app.Post("/api/users/:id/unfollow", controllers.UnfollowUser(rel, m))

	app.Get("/api/users/:id/messages", controllers.GetUserMessages(msgs))
	app.Post("/api/users/:id/message", controllers.SendMessage(msgs, m))
}

func SetupApplicationRoutes(app *fiber.App, apps *services.ApplicationService) {
	app.Get("/api/applications/:userId", controllers.GetApplications(apps))
	app.Post("/api/applications", controllers.CreateApplication(apps))
	app.Delete("/api/applications/:id", controllers.DeleteApplication(apps))
	app.Patch("/api/applications/:id", controllers.UpdateApplicationStatus(apps))
}
