package db

import (
	"log"

	"github.com/Devxxxx/bigdealeg-backend/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.Property{},
		&models.PropertyRequest{},
		&models.ScheduledViewing{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedDefaultRoles()

	log.Println("✅ Migrations applied successfully!")
}

// seedDefaultRoles creates the three application roles if missing.
func seedDefaultRoles() {
	roles := []models.Role{
		{Name: models.RoleAdmin, Description: "Administrator with full access"},
		{Name: models.RoleSalesOps, Description: "Sales operations team managing listings and viewings"},
		{Name: models.RoleCustomer, Description: "Customer browsing properties and booking viewings"},
	}

	for _, role := range roles {
		var existing models.Role
		if DB.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&role)
		}
	}
}
