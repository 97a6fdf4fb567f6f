package controllers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Devxxxx/bigdealeg-backend/db"
	"github.com/Devxxxx/bigdealeg-backend/models"
	"github.com/Devxxxx/bigdealeg-backend/redis"
)

// notificationCountsTTL matches the frontend's 120 second badge poll, so at
// most one DB sweep per poll window per user.
const notificationCountsTTL = 120 * time.Second

type notificationCounts struct {
	ActionableViewings int64     `json:"actionable_viewings"`
	OpenRequests       int64     `json:"open_requests"`
	LastUpdated        time.Time `json:"last_updated"`
}

// GetNotificationCounts returns the sidebar badge counts for the logged-in
// user, cached in Redis for the poll interval.
//
// Customers see viewings waiting on them (options_sent). Sales ops see
// viewings waiting on the team (requested or slot_selected) plus open
// property requests.
func GetNotificationCounts(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}
	role, ok := c.Locals("role").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User role not found in context",
		})
	}

	cacheKey := fmt.Sprintf("notification_counts:%s:%d", role, userID)
	if cached, err := redis.Client.Get(redis.Ctx, cacheKey).Result(); err == nil {
		var counts notificationCounts
		if json.Unmarshal([]byte(cached), &counts) == nil {
			return c.JSON(counts)
		}
	}

	var counts notificationCounts

	if role == models.RoleSalesOps || role == models.RoleAdmin {
		db.DB.Model(&models.ScheduledViewing{}).
			Where("status IN ?", []models.ViewingStatus{models.StatusRequested, models.StatusPending, models.StatusSlotSelected}).
			Count(&counts.ActionableViewings)
		db.DB.Model(&models.PropertyRequest{}).
			Where("status = ?", models.RequestOpen).
			Count(&counts.OpenRequests)
	} else {
		db.DB.Model(&models.ScheduledViewing{}).
			Where("user_id = ?", userID).
			Where("status = ?", models.StatusOptionsSent).
			Count(&counts.ActionableViewings)
	}
	counts.LastUpdated = time.Now()

	if payload, err := json.Marshal(counts); err == nil {
		redis.Client.Set(redis.Ctx, cacheKey, payload, notificationCountsTTL)
	}

	return c.JSON(counts)
}
