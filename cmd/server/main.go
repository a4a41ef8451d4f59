package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/kashvi/internal/config"
	"github.com/example/kashvi/internal/database"
	"github.com/example/kashvi/internal/metrics"
	"github.com/example/kashvi/internal/routes"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	if err := database.SeedAdmins(db, cfg.AdminEmails); err != nil {
		log.Fatalf("failed to seed admin allow-list: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName: "Kashvi Backend",
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(metrics.Middleware())

	routes.Register(app, db, cfg)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
