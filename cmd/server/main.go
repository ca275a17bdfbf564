package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/pedidos/internal/config"
	"github.com/example/pedidos/internal/database"
	"github.com/example/pedidos/internal/routes"
	"github.com/example/pedidos/internal/seed"
	"github.com/example/pedidos/internal/store"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL, cfg.LoadTimeout)
	if err != nil {
		log.Fatalf("database unavailable: %v", err)
	}

	if cfg.SeedCatalog {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.LoadTimeout)
		if err := seed.Products(ctx, store.NewProductStore(db)); err != nil {
			log.Printf("catalog seed failed: %v", err)
		}
		cancel()
	}

	app := fiber.New(fiber.Config{
		AppName: "Pedidos Backend",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, db)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
