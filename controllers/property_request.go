package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Devxxxx/bigdealeg-backend/db"
	"github.com/Devxxxx/bigdealeg-backend/models"
	"github.com/Devxxxx/bigdealeg-backend/utils"
)

// CreatePropertyRequest creates a property request for the logged-in customer
func CreatePropertyRequest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var request models.PropertyRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if request.PropertyType == "" || request.Location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Property type and location are required",
		})
	}
	if request.MaxPrice > 0 && request.MinPrice > request.MaxPrice {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Minimum price cannot exceed maximum price",
		})
	}

	request.UserID = userID
	request.Status = models.RequestOpen

	if err := db.DB.Create(&request).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create property request",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

// GetMyPropertyRequests returns the logged-in customer's requests
func GetMyPropertyRequests(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var requests []models.PropertyRequest
	if err := db.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch property requests",
			Error:   err.Error(),
		})
	}
	return c.JSON(requests)
}

// GetAllPropertyRequests returns all requests for the sales ops work queue,
// optionally filtered by status.
func GetAllPropertyRequests(c *fiber.Ctx) error {
	query := db.DB.Preload("User").Model(&models.PropertyRequest{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var requests []models.PropertyRequest
	if err := query.Order("created_at desc").Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch property requests",
			Error:   err.Error(),
		})
	}
	return c.JSON(requests)
}

// UpdatePropertyRequestStatus moves a request between open, matched and closed
func UpdatePropertyRequestStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var updateData struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	newStatus := models.PropertyRequestStatus(updateData.Status)
	if newStatus != models.RequestOpen && newStatus != models.RequestMatched && newStatus != models.RequestClosed {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status. Must be 'open', 'matched', or 'closed'.",
		})
	}

	var request models.PropertyRequest
	if err := db.DB.First(&request, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Property request not found",
			Error:   err.Error(),
		})
	}

	request.Status = newStatus
	if err := db.DB.Save(&request).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update property request",
			Error:   err.Error(),
		})
	}
	return c.JSON(request)
}
