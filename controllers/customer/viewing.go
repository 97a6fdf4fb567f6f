package customer

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Devxxxx/bigdealeg-backend/db"
	"github.com/Devxxxx/bigdealeg-backend/models"
	"github.com/Devxxxx/bigdealeg-backend/utils"
)

// RequestViewing creates a scheduled viewing in requested status for the
// logged-in customer. No date or time is known yet; sales ops proposes
// options next.
func RequestViewing(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var input struct {
		PropertyID uint   `json:"property_id"`
		Notes      string `json:"notes"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var property models.Property
	if err := db.DB.First(&property, input.PropertyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Property not found",
			Error:   err.Error(),
		})
	}

	viewing := models.ScheduledViewing{
		PropertyID: input.PropertyID,
		UserID:     userID,
		Notes:      input.Notes,
		Status:     models.StatusRequested,
	}
	if err := db.DB.Create(&viewing).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create viewing request",
			Error:   err.Error(),
		})
	}

	var customer models.User
	if err := db.DB.First(&customer, userID).Error; err == nil {
		body := fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>We received your request to view <strong>%s</strong> in %s.</p>
			<p>Our team will get back to you shortly with available dates and times.</p>
			<p>Best regards,</p>
			<p>The BigDealEg Team</p>
		`, customer.Name, property.Title, property.Location)
		if err := utils.SendEmail(customer.Email, "Viewing Request Received", body); err != nil {
			// Email failure must not fail the request
			log.Printf("Failed to send viewing request email: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(viewing)
}

// GetMyViewings returns the customer's viewings, narrowed by the filter
// query param (upcoming, past, all) and grouped into date buckets.
func GetMyViewings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	scope := c.Query("filter", utils.ScopeUpcoming)
	switch scope {
	case utils.ScopeUpcoming, utils.ScopePast, utils.ScopeAll:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Filter must be 'upcoming', 'past', or 'all'",
		})
	}

	var viewings []models.ScheduledViewing
	if err := db.DB.Preload("Property").
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&viewings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch viewings",
			Error:   err.Error(),
		})
	}

	now := time.Now()
	filtered := utils.FilterViewings(viewings, scope, now)
	groups := utils.GroupViewings(filtered, now)

	return c.JSON(fiber.Map{
		"groups": groups,
		"count":  len(filtered),
		"filter": scope,
	})
}

// GetViewing returns one of the customer's viewings by ID
func GetViewing(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var viewing models.ScheduledViewing
	if err := db.DB.Preload("Property").
		Where("id = ? AND user_id = ?", c.Params("id"), userID).
		First(&viewing).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Viewing not found",
			Error:   models.ErrViewingNotFound.Error(),
		})
	}
	return c.JSON(viewing)
}

// SelectSlot records the customer's pick from the proposed dates and times
func SelectSlot(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}
	role, _ := c.Locals("role").(string)

	var input struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var viewing models.ScheduledViewing
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		// Lock the row so a concurrent re-proposal cannot race the selection
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", c.Params("id"), userID).
			First(&viewing).Error; err != nil {
			return models.ErrViewingNotFound
		}
		if err := viewing.SelectSlot(input.Date, input.Time, role); err != nil {
			return err
		}
		return tx.Save(&viewing).Error
	})
	if err != nil {
		return c.Status(utils.StatusForError(err)).JSON(utils.ErrorResponse{
			Message: "Failed to select slot",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Slot selected successfully",
		"viewing": viewing,
	})
}

// CancelViewing cancels one of the customer's viewings
func CancelViewing(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}
	role, _ := c.Locals("role").(string)

	var input struct {
		Reason string `json:"reason"`
	}
	// Reason is optional; an empty body is fine
	_ = c.BodyParser(&input)

	var viewing models.ScheduledViewing
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", c.Params("id"), userID).
			First(&viewing).Error; err != nil {
			return models.ErrViewingNotFound
		}
		if err := viewing.Cancel(input.Reason, role); err != nil {
			return err
		}
		return tx.Save(&viewing).Error
	})
	if err != nil {
		return c.Status(utils.StatusForError(err)).JSON(utils.ErrorResponse{
			Message: "Failed to cancel viewing",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Viewing cancelled",
		"viewing": viewing,
	})
}
