package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/Devxxxx/bigdealeg-backend/cron"
	"github.com/Devxxxx/bigdealeg-backend/db"
	"github.com/Devxxxx/bigdealeg-backend/redis"
	"github.com/Devxxxx/bigdealeg-backend/routes"
)

func main() {
	app := fiber.New()
	if os.Getenv("RUN_MIGRATIONS") == "true" {
		db.Migrate()
	} else {
		db.Init()
	}
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("BigDealEg API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupRBACRoutes(app)
	routes.SetupPropertyRoutes(app)
	routes.SetupPropertyRequestRoutes(app)
	routes.SetupCustomerRoutes(app)
	routes.SetupSalesOpsRoutes(app)
	routes.SetupNotificationRoutes(app)

	cron.StartCronJobs()

	log.Fatal(app.Listen(":8000"))
}
