package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberbook/booking-api/internal/httperr"
	"github.com/barberbook/booking-api/internal/middleware"
	"github.com/barberbook/booking-api/internal/models"
)

// Catalog limits carried over from the platform's service rules.
const (
	serviceNameMaxLen        = 100
	serviceDescriptionMaxLen = 500
	serviceMinDurationMin    = 15
	serviceMaxDurationMin    = 300
	serviceMinPrice          = 1000
	serviceMaxPrice          = 10_000_000
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	DurationMin int     `json:"duration_min" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Type        *string  `json:"type,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

func validateServiceFields(name, description string, durationMin int, price float64) string {
	switch {
	case len(name) == 0 || len(name) > serviceNameMaxLen:
		return "service name must be 1-100 characters"
	case len(description) > serviceDescriptionMaxLen:
		return "description must be at most 500 characters"
	case durationMin < serviceMinDurationMin || durationMin > serviceMaxDurationMin:
		return "duration must be between 15 and 300 minutes"
	case price < serviceMinPrice || price > serviceMaxPrice:
		return "price must be between 1000 and 10000000"
	}
	return ""
}

// --------- Handlers ---------

// ListByBarber is public: clients browse a barber's catalog.
func (h *ServiceHandler) ListByBarber(c *gin.Context) {
	barberID, err := pathID(c, "barberID")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid barber id.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("barber_id = ? AND active = ?", barberID, true).
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	barberIDVal, ok := c.Get(middleware.ContextBarberID)
	if !ok {
		httperr.BadRequest(c, "no_barber_profile", "No barber profile for this account.")
		return
	}
	barberID := barberIDVal.(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if msg := validateServiceFields(req.Name, req.Description, req.DurationMin, req.Price); msg != "" {
		httperr.BadRequest(c, "validation_error", msg)
		return
	}

	svc := models.Service{
		BarberID:    barberID,
		Name:        req.Name,
		Description: req.Description,
		Type:        strings.ToLower(req.Type),
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Active:      true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Failed to create service.")
		return
	}

	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	barberIDVal, ok := c.Get(middleware.ContextBarberID)
	if !ok {
		httperr.BadRequest(c, "no_barber_profile", "No barber profile for this account.")
		return
	}
	barberID := barberIDVal.(uint)

	id, err := pathID(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return
	}

	var svc models.Service
	if err := h.db.
		Where("id = ? AND barber_id = ?", id, barberID).
		First(&svc).Error; err != nil {

		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Type != nil {
		svc.Type = strings.ToLower(*req.Type)
	}
	if req.DurationMin != nil {
		svc.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if msg := validateServiceFields(svc.Name, svc.Description, svc.DurationMin, svc.Price); msg != "" {
		httperr.BadRequest(c, "validation_error", msg)
		return
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Failed to update service.")
		return
	}

	c.JSON(http.StatusOK, svc)
}
