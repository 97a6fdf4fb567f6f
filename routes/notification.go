package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Devxxxx/bigdealeg-backend/controllers"
	"github.com/Devxxxx/bigdealeg-backend/middleware"
)

// SetupNotificationRoutes configures the sidebar badge count route
func SetupNotificationRoutes(app *fiber.App) {
	notifications := app.Group("/notifications", middleware.Protected())
	notifications.Get("/counts", controllers.GetNotificationCounts)
}
