package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/pedidos/internal/handlers"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB) {
	clientHandler := handlers.NewClientHandler(db)
	productHandler := handlers.NewProductHandler(db)
	orderHandler := handlers.NewOrderHandler(db)
	reportHandler := handlers.NewReportHandler(db)

	api := app.Group("/api")

	clients := api.Group("/clients")
	clients.Get("/", clientHandler.ListClients)
	clients.Post("/", clientHandler.CreateClient)
	clients.Get("/:id", clientHandler.GetClient)
	clients.Put("/:id", clientHandler.UpdateClient)
	clients.Delete("/:id", clientHandler.DeleteClient)
	clients.Get("/:id/orders", clientHandler.ListClientOrders)

	products := api.Group("/products")
	products.Get("/", productHandler.ListProducts)
	products.Post("/", productHandler.SaveProduct)
	products.Get("/:id", productHandler.GetProduct)
	products.Put("/:id", productHandler.UpdateProduct)
	products.Delete("/:id", productHandler.DeleteProduct)

	orders := api.Group("/orders")
	orders.Get("/", orderHandler.ListOrders)
	orders.Post("/", orderHandler.CreateOrder)
	orders.Post("/import", orderHandler.ImportOrder)
	orders.Get("/:id", orderHandler.GetOrder)
	orders.Put("/:id", orderHandler.UpdateOrder)
	orders.Get("/:id/document", orderHandler.OrderDocument)
	orders.Get("/:id/whatsapp", orderHandler.OrderWhatsApp)

	api.Get("/reports/summary", reportHandler.Summary)
}
