package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tekser/repair-tracker/internal/httperr"
	"github.com/tekser/repair-tracker/internal/middleware"
	"github.com/tekser/repair-tracker/internal/models"
)

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var notifications []models.Notification
	if err := h.db.
		Preload("ServiceRecord").
		Preload("ServiceRecord.Customer").
		Preload("ServiceRecord.Brand").
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {

		httperr.Internal(c, "notification_list_failed", "Failed to list notifications.")
		return
	}

	c.JSON(http.StatusOK, notifications)
}

type MarkReadRequest struct {
	IsRead *bool `json:"is_read"`
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var notification models.Notification
	if err := h.db.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&notification).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "notification_not_found", "Notification not found.")
			return
		}
		httperr.Internal(c, "notification_get_failed", "Failed to get notification.")
		return
	}

	read := true
	var req MarkReadRequest
	if err := c.ShouldBindJSON(&req); err == nil && req.IsRead != nil {
		read = *req.IsRead
	}

	if err := h.db.Model(&notification).Update("is_read", read).Error; err != nil {
		httperr.Internal(c, "notification_update_failed", "Failed to update notification.")
		return
	}

	notification.IsRead = read
	c.JSON(http.StatusOK, notification)
}
