package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberbook/booking-api/internal/httperr"
	"github.com/barberbook/booking-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 200 {
		limit = 50
	}

	q := h.db.Order("created_at DESC").Limit(limit)
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	var logs []models.AuditLog
	if err := q.Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Failed to list audit logs.")
		return
	}

	c.JSON(http.StatusOK, logs)
}
