package salesops

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Devxxxx/bigdealeg-backend/db"
	"github.com/Devxxxx/bigdealeg-backend/models"
	"github.com/Devxxxx/bigdealeg-backend/utils"
)

// GetAllViewings returns the full viewing work queue for sales ops, narrowed
// by scope (today, upcoming, past, all) and ordered by sortBy/sortDirection.
func GetAllViewings(c *fiber.Ctx) error {
	scope := c.Query("scope", utils.ScopeAll)

	sortBy := c.Query("sortBy", "created_at")
	switch sortBy {
	case "created_at", "viewing_date", "status":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "sortBy must be 'created_at', 'viewing_date', or 'status'",
		})
	}
	sortDirection := c.Query("sortDirection", "asc")
	if sortDirection != "asc" && sortDirection != "desc" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "sortDirection must be 'asc' or 'desc'",
		})
	}

	query := db.DB.Preload("Property").Preload("User").
		Order(fmt.Sprintf("%s %s", sortBy, sortDirection))

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var viewings []models.ScheduledViewing
	if err := query.Find(&viewings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch viewings",
			Error:   err.Error(),
		})
	}

	filtered := utils.FilterViewings(viewings, scope, time.Now())

	return c.JSON(fiber.Map{
		"viewings": filtered,
		"count":    len(filtered),
		"scope":    scope,
	})
}

// CreateViewing lets sales ops open a viewing on a customer's behalf, e.g.
// for requests taken over the phone.
func CreateViewing(c *fiber.Ctx) error {
	var input struct {
		PropertyID uint   `json:"property_id"`
		UserID     uint   `json:"user_id"`
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
	var customer models.User
	if err := db.DB.First(&customer, input.UserID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Customer not found",
			Error:   err.Error(),
		})
	}

	viewing := models.ScheduledViewing{
		PropertyID: input.PropertyID,
		UserID:     input.UserID,
		Notes:      input.Notes,
		Status:     models.StatusRequested,
	}
	if err := db.DB.Create(&viewing).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create viewing",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(viewing)
}

// ProposeSlots offers candidate dates and times to the customer and moves
// the viewing to options_sent.
func ProposeSlots(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)

	var input struct {
		Dates []string `json:"dates"`
		Times []string `json:"times"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var viewing models.ScheduledViewing
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Property").Preload("User").
			First(&viewing, c.Params("id")).Error; err != nil {
			return models.ErrViewingNotFound
		}
		if err := viewing.ProposeSlots(input.Dates, input.Times, role); err != nil {
			return err
		}
		return tx.Save(&viewing).Error
	})
	if err != nil {
		return c.Status(utils.StatusForError(err)).JSON(utils.ErrorResponse{
			Message: "Failed to propose slots",
			Error:   err.Error(),
		})
	}

	sendLifecycleEmail(&viewing, "Viewing Options Available", fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We have availability for your viewing of <strong>%s</strong>.</p>
		<p><strong>Available dates:</strong> %s</p>
		<p><strong>Available times:</strong> %s</p>
		<p>Please log in and pick the slot that suits you.</p>
	`, viewing.User.Name, viewing.Property.Title,
		strings.Join(viewing.ProposedDates, ", "),
		strings.Join(viewing.ProposedTimes, ", ")))

	return c.JSON(fiber.Map{
		"message": "Slots proposed successfully",
		"viewing": viewing,
	})
}

// ConfirmViewing locks in the slot the customer selected
func ConfirmViewing(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)

	var viewing models.ScheduledViewing
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Property").Preload("User").
			First(&viewing, c.Params("id")).Error; err != nil {
			return models.ErrViewingNotFound
		}
		if err := viewing.Confirm(role); err != nil {
			return err
		}
		return tx.Save(&viewing).Error
	})
	if err != nil {
		return c.Status(utils.StatusForError(err)).JSON(utils.ErrorResponse{
			Message: "Failed to confirm viewing",
			Error:   err.Error(),
		})
	}

	sendLifecycleEmail(&viewing, "Viewing Confirmed", fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your viewing of <strong>%s</strong> is confirmed.</p>
		<ul>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Location:</strong> %s</li>
		</ul>
		<p>We look forward to seeing you there.</p>
	`, viewing.User.Name, viewing.Property.Title,
		viewing.SelectedDate, viewing.SelectedTime, viewing.Property.Location))

	return c.JSON(fiber.Map{
		"message": "Viewing confirmed",
		"viewing": viewing,
	})
}

// CompleteViewing marks a confirmed viewing as having taken place
func CompleteViewing(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)

	var viewing models.ScheduledViewing
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&viewing, c.Params("id")).Error; err != nil {
			return models.ErrViewingNotFound
		}
		if err := viewing.Complete(role); err != nil {
			return err
		}
		return tx.Save(&viewing).Error
	})
	if err != nil {
		return c.Status(utils.StatusForError(err)).JSON(utils.ErrorResponse{
			Message: "Failed to complete viewing",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Viewing marked as completed",
		"viewing": viewing,
	})
}

// CancelViewing cancels a viewing from the sales ops side
func CancelViewing(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)

	var input struct {
		Reason string `json:"reason"`
	}
	_ = c.BodyParser(&input)

	var viewing models.ScheduledViewing
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Property").Preload("User").
			First(&viewing, c.Params("id")).Error; err != nil {
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

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your viewing of <strong>%s</strong> has been cancelled.</p>
	`, viewing.User.Name, viewing.Property.Title)
	if input.Reason != "" {
		body += fmt.Sprintf("<p><strong>Reason:</strong> %s</p>", input.Reason)
	}
	sendLifecycleEmail(&viewing, "Viewing Cancelled", body)

	return c.JSON(fiber.Map{
		"message": "Viewing cancelled",
		"viewing": viewing,
	})
}

// UpdateNotes replaces the sales ops annotation on a viewing
func UpdateNotes(c *fiber.Ctx) error {
	var input struct {
		Notes string `json:"notes"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var viewing models.ScheduledViewing
	if err := db.DB.First(&viewing, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Viewing not found",
			Error:   models.ErrViewingNotFound.Error(),
		})
	}

	viewing.Notes = input.Notes
	if err := db.DB.Save(&viewing).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update notes",
			Error:   err.Error(),
		})
	}
	return c.JSON(viewing)
}

func sendLifecycleEmail(viewing *models.ScheduledViewing, subject, body string) {
	if viewing.User.Email == "" {
		return
	}
	full := body + `
		<p>Best regards,</p>
		<p>The BigDealEg Team</p>
	`
	if err := utils.SendEmail(viewing.User.Email, subject, full); err != nil {
		log.Printf("Failed to send %q email for viewing %d: %v", subject, viewing.ID, err)
	}
}
