package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Devxxxx/bigdealeg-backend/controllers"
	"github.com/Devxxxx/bigdealeg-backend/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Post("/refresh", controllers.RefreshToken)
	auth.Post("/forgot-password", controllers.ForgotPassword)
	auth.Post("/reset-password", controllers.ResetPassword)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.GetUserProfile)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)

	//Get user by ID
	auth.Get("/user/:id", middleware.Protected(), middleware.RequireRole("sales_ops", "admin"), controllers.GetUserByID)
}
