package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Devxxxx/bigdealeg-backend/controllers"
	"github.com/Devxxxx/bigdealeg-backend/middleware"
)

// SetupPropertyRoutes configures all property listing routes
func SetupPropertyRoutes(app *fiber.App) {
	property := app.Group("/properties")
	property.Get("/", controllers.GetAllProperties)
	property.Get("/:id", controllers.GetProperty)
	property.Post("/", middleware.Protected(), middleware.RequireRole("sales_ops", "admin"), controllers.CreateProperty)
	property.Patch("/:id", middleware.Protected(), middleware.RequireRole("sales_ops", "admin"), controllers.UpdateProperty)
	property.Delete("/:id", middleware.Protected(), middleware.RequireRole("admin"), controllers.DeleteProperty)
	property.Post("/:id/image", middleware.Protected(), middleware.RequireRole("sales_ops", "admin"), controllers.UploadPropertyImage)
}
