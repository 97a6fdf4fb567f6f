package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Devxxxx/bigdealeg-backend/controllers/salesops"
	"github.com/Devxxxx/bigdealeg-backend/middleware"
)

// SetupSalesOpsRoutes configures the sales ops viewing management routes
func SetupSalesOpsRoutes(app *fiber.App) {
	ops := app.Group("/sales-ops", middleware.Protected(), middleware.RequireRole("sales_ops", "admin"))

	ops.Get("/viewings", salesops.GetAllViewings)
	ops.Post("/viewings", salesops.CreateViewing)
	ops.Patch("/viewings/:id/propose", salesops.ProposeSlots)
	ops.Patch("/viewings/:id/confirm", salesops.ConfirmViewing)
	ops.Patch("/viewings/:id/complete", salesops.CompleteViewing)
	ops.Patch("/viewings/:id/cancel", salesops.CancelViewing)
	ops.Patch("/viewings/:id/notes", salesops.UpdateNotes)

	ops.Get("/dashboard", salesops.GetDashboardOverview)
	ops.Get("/dashboard/recent", salesops.GetRecentViewings)
}
