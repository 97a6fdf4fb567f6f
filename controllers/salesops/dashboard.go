package salesops

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Devxxxx/bigdealeg-backend/db"
	"github.com/Devxxxx/bigdealeg-backend/models"
)

// GetDashboardOverview returns the sales ops dashboard statistics
func GetDashboardOverview(c *fiber.Ctx) error {
	var statistics struct {
		TotalViewings     int64     `json:"total_viewings"`
		RequestedCount    int64     `json:"requested_count"`
		OptionsSentCount  int64     `json:"options_sent_count"`
		SlotSelectedCount int64     `json:"slot_selected_count"`
		ConfirmedCount    int64     `json:"confirmed_count"`
		CompletedCount    int64     `json:"completed_count"`
		CancelledCount    int64     `json:"cancelled_count"`
		TodayCount        int64     `json:"today_count"`
		TotalProperties   int64     `json:"total_properties"`
		OpenRequests      int64     `json:"open_requests"`
		LastUpdated       time.Time `json:"last_updated"`
	}

	countByStatus := func(out *int64, statuses ...models.ViewingStatus) {
		db.DB.Model(&models.ScheduledViewing{}).
			Where("status IN ?", statuses).
			Count(out)
	}

	db.DB.Model(&models.ScheduledViewing{}).Count(&statistics.TotalViewings)

	// Legacy pending rows count toward requested
	countByStatus(&statistics.RequestedCount, models.StatusRequested, models.StatusPending)
	countByStatus(&statistics.OptionsSentCount, models.StatusOptionsSent)
	countByStatus(&statistics.SlotSelectedCount, models.StatusSlotSelected)
	countByStatus(&statistics.ConfirmedCount, models.StatusConfirmed)
	countByStatus(&statistics.CompletedCount, models.StatusCompleted)
	countByStatus(&statistics.CancelledCount, models.StatusCancelled)

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	db.DB.Model(&models.ScheduledViewing{}).
		Where("viewing_date >= ? AND viewing_date < ?", dayStart, dayStart.AddDate(0, 0, 1)).
		Count(&statistics.TodayCount)

	db.DB.Model(&models.Property{}).Count(&statistics.TotalProperties)
	db.DB.Model(&models.PropertyRequest{}).
		Where("status = ?", models.RequestOpen).
		Count(&statistics.OpenRequests)

	statistics.LastUpdated = now

	return c.JSON(statistics)
}

// GetRecentViewings returns the most recently created viewings
func GetRecentViewings(c *fiber.Ctx) error {
	limit := 5 // Default limit
	if c.Query("limit") != "" {
		if parsedLimit := c.QueryInt("limit"); parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	var viewings []models.ScheduledViewing
	if err := db.DB.Preload("Property").Preload("User").
		Order("created_at desc").
		Limit(limit).
		Find(&viewings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"viewings": viewings,
		"count":    len(viewings),
	})
}
