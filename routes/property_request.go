package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Devxxxx/bigdealeg-backend/controllers"
	"github.com/Devxxxx/bigdealeg-backend/middleware"
)

// SetupPropertyRequestRoutes configures all property request routes
func SetupPropertyRequestRoutes(app *fiber.App) {
	requests := app.Group("/property-requests", middleware.Protected())
	requests.Post("/", middleware.RequireRole("customer"), controllers.CreatePropertyRequest)
	requests.Get("/mine", middleware.RequireRole("customer"), controllers.GetMyPropertyRequests)
	requests.Get("/", middleware.RequireRole("sales_ops", "admin"), controllers.GetAllPropertyRequests)
	requests.Patch("/:id/status", middleware.RequireRole("sales_ops", "admin"), controllers.UpdatePropertyRequestStatus)
}
