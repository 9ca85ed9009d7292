package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberbook/booking-api/internal/httperr"
	"github.com/barberbook/booking-api/internal/middleware"
	"github.com/barberbook/booking-api/internal/models"
)

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 100 {
		limit = 50
	}

	q := h.db.Where("user_id = ?", userID)
	if read := c.Query("read"); read == "true" || read == "false" {
		q = q.Where("read = ?", read == "true")
	}

	var notifications []models.Notification
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error; err != nil {

		httperr.Internal(c, "failed_to_list_notifications", "Failed to list notifications.")
		return
	}

	var unread int64
	h.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&unread)

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := pathID(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid notification id.")
		return
	}

	res := h.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)

	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_notification", "Failed to update notification.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "notification_not_found", "Notification not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if err := h.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error; err != nil {

		httperr.Internal(c, "failed_to_update_notifications", "Failed to update notifications.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := pathID(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid notification id.")
		return
	}

	res := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Notification{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_notification", "Failed to delete notification.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "notification_not_found", "Notification not found.")
		return
	}

	c.Status(http.StatusNoContent)
}
