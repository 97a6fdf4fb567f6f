package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Devxxxx/bigdealeg-backend/controllers/customer"
	"github.com/Devxxxx/bigdealeg-backend/middleware"
)

// SetupCustomerRoutes configures the customer-facing viewing and profile routes
func SetupCustomerRoutes(app *fiber.App) {
	customerGroup := app.Group("/customer", middleware.Protected(), middleware.RequireRole("customer"))

	customerGroup.Get("/profile", customer.GetProfile)
	customerGroup.Patch("/profile", customer.UpdateProfile)

	customerGroup.Post("/viewings", customer.RequestViewing)
	customerGroup.Get("/viewings", customer.GetMyViewings)
	customerGroup.Get("/viewings/:id", customer.GetViewing)
	customerGroup.Patch("/viewings/:id/select", customer.SelectSlot)
	customerGroup.Patch("/viewings/:id/cancel", customer.CancelViewing)
}
