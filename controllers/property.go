package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Devxxxx/bigdealeg-backend/db"
	"github.com/Devxxxx/bigdealeg-backend/models"
	"github.com/Devxxxx/bigdealeg-backend/utils"
)

// GetAllProperties returns available listings, optionally narrowed by
// location, property_type, bedrooms and price range query params.
func GetAllProperties(c *fiber.Ctx) error {
	query := db.DB.Model(&models.Property{}).Where("available = ?", true)

	if location := c.Query("location"); location != "" {
		query = query.Where("location ILIKE ?", "%"+location+"%")
	}
	if propertyType := c.Query("property_type"); propertyType != "" {
		query = query.Where("property_type = ?", propertyType)
	}
	if bedrooms := c.QueryInt("bedrooms"); bedrooms > 0 {
		query = query.Where("bedrooms = ?", bedrooms)
	}
	if minPrice := c.QueryFloat("min_price"); minPrice > 0 {
		query = query.Where("price >= ?", minPrice)
	}
	if maxPrice := c.QueryFloat("max_price"); maxPrice > 0 {
		query = query.Where("price <= ?", maxPrice)
	}

	var properties []models.Property
	if err := query.Order("created_at desc").Find(&properties).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch properties",
			Error:   err.Error(),
		})
	}
	return c.JSON(properties)
}

// GetProperty returns a listing by ID
func GetProperty(c *fiber.Ctx) error {
	id := c.Params("id")
	var property models.Property
	if err := db.DB.First(&property, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Property not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(property)
}

// CreateProperty creates a new listing
func CreateProperty(c *fiber.Ctx) error {
	var property models.Property
	if err := c.BodyParser(&property); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if property.Title == "" || property.Location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Title and location are required",
		})
	}

	if userID, ok := c.Locals("userID").(uint); ok {
		property.CreatedByID = userID
	}

	if err := db.DB.Create(&property).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create property",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(property)
}

// UpdateProperty updates a listing by ID
func UpdateProperty(c *fiber.Ctx) error {
	id := c.Params("id")

	var existing models.Property
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Property not found",
			Error:   err.Error(),
		})
	}

	var updated models.Property
	if err := c.BodyParser(&updated); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&existing).Updates(updated).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update property",
			Error:   err.Error(),
		})
	}
	return c.JSON(existing)
}

// DeleteProperty removes a listing by ID
func DeleteProperty(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Delete(&models.Property{}, id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete property",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadPropertyImage uploads the listing image to Cloudinary and stores the
// returned URL on the property.
func UploadPropertyImage(c *fiber.Ctx) error {
	id := c.Params("id")

	var property models.Property
	if err := db.DB.First(&property, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Property not found",
			Error:   err.Error(),
		})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Image file is required",
			Error:   err.Error(),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to open uploaded file",
			Error:   err.Error(),
		})
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file, fmt.Sprintf("property-%d", property.ID), "properties")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload image",
			Error:   err.Error(),
		})
	}

	property.ImageURL = url
	if err := db.DB.Save(&property).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save image URL",
			Error:   err.Error(),
		})
	}

	return c.JSON(property)
}
