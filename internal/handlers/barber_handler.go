package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberbook/booking-api/internal/httperr"
	"github.com/barberbook/booking-api/internal/models"
)

type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

func (h *BarberHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Preload("User")
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(shop_name) LIKE ? OR LOWER(address) LIKE ?", like, like)
	}

	var barbers []models.Barber
	if err := q.Order("id ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Failed to list barbers.")
		return
	}

	c.JSON(http.StatusOK, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, err := pathID(c, "barberID")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid barber id.")
		return
	}

	var barber models.Barber
	if err := h.db.Preload("User").First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	c.JSON(http.StatusOK, barber)
}
