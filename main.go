// @title CareerHub API
// @version 1.0
// @description Career-development backend: accounts, follow graph, direct messages, job applications.
// @host localhost:5000
// @BasePath /

package main

import (
	"os"

	_ "careerhub-backend/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"careerhub-backend/bootstrap"
	"careerhub-backend/config"
	"careerhub-backend/database"
	"careerhub-backend/internal/metrics"
	"careerhub-backend/internal/middleware"
	"careerhub-backend/internal/repository"
	"careerhub-backend/internal/routes"
	"careerhub-backend/internal/services"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET is required")
	}

	client := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	defer client.Disconnect(nil)

	db := database.DB

	// The username availability check is advisory; these unique
	// indexes are the real uniqueness gate.
	if err := bootstrap.EnsureUserIndexes(db); err != nil {
		logrus.WithError(err).Fatal("ensure user indexes failed")
	}
	if err := bootstrap.EnsureApplicationIndexes(db); err != nil {
		logrus.WithError(err).Fatal("ensure application indexes failed")
	}

	userStore := repository.NewMongoUserStore(db)
	appStore := repository.NewMongoApplicationStore(db)

	authSvc := services.NewAuthService(userStore, cfg.JWTSecret)
	userSvc := services.NewUserService(userStore)
	relSvc := services.NewRelationshipService(userStore)
	msgSvc := services.NewMessageService(userStore)
	appSvc := services.NewApplicationService(appStore)

	m := metrics.New(prometheus.DefaultRegisterer)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.RequestLogger())
	app.Use(m.RequestCounter())

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	routes.SetupAuth(app, authSvc)

	app.Use(middleware.JWTUidOnly(cfg.JWTSecret))

	routes.SetupUserRoutes(app, userSvc, relSvc, msgSvc, m)
	routes.SetupApplicationRoutes(app, appSvc)

	// RUN SERVER
	logrus.Fatal(app.Listen(":" + cfg.Port))
}
