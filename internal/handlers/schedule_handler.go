package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barberbook/booking-api/internal/httperr"
	"github.com/barberbook/booking-api/internal/httpresp"
	"github.com/barberbook/booking-api/internal/middleware"
	ucSchedule "github.com/barberbook/booking-api/internal/usecase/schedule"
	"github.com/barberbook/booking-api/internal/validators"
)

type ScheduleHandler struct {
	weekUC   *ucSchedule.GetWeekSchedule
	updateUC *ucSchedule.UpdateSchedule
}

func NewScheduleHandler(
	weekUC *ucSchedule.GetWeekSchedule,
	updateUC *ucSchedule.UpdateSchedule,
) *ScheduleHandler {
	return &ScheduleHandler{weekUC: weekUC, updateUC: updateUC}
}

type UpdateScheduleRequest struct {
	Days []ucSchedule.DayConfig `json:"days" binding:"required"`
}

// GetWeek serves the calendar view for any barber; clients use it to pick
// a slot. week_start is optional, YYYY-MM-DD.
func (h *ScheduleHandler) GetWeek(c *gin.Context) {
	barberID, err := pathID(c, "barberID")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid barber id.")
		return
	}

	var weekStart time.Time
	if ws := c.Query("week_start"); ws != "" {
		if !validators.IsDate(ws) {
			httperr.BadRequest(c, "invalid_week_start", "Expected week_start YYYY-MM-DD.")
			return
		}
		weekStart, err = parseDate(ws)
		if err != nil {
			httperr.BadRequest(c, "invalid_week_start", "Expected week_start YYYY-MM-DD.")
			return
		}
	}

	week, err := h.weekUC.Execute(c.Request.Context(), barberID, weekStart)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, week)
}

// GetMineWeek is the barber's own calendar.
func (h *ScheduleHandler) GetMineWeek(c *gin.Context) {
	barberIDVal, ok := c.Get(middleware.ContextBarberID)
	if !ok {
		httperr.BadRequest(c, "no_barber_profile", "No barber profile for this account.")
		return
	}

	var weekStart time.Time
	if ws := c.Query("week_start"); validators.IsDate(ws) {
		weekStart, _ = parseDate(ws)
	}

	week, err := h.weekUC.Execute(c.Request.Context(), barberIDVal.(uint), weekStart)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, week)
}

// UpdateMine replaces the barber's weekly configuration wholesale.
func (h *ScheduleHandler) UpdateMine(c *gin.Context) {
	barberIDVal, ok := c.Get(middleware.ContextBarberID)
	if !ok {
		httperr.BadRequest(c, "no_barber_profile", "No barber profile for this account.")
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if err := h.updateUC.Execute(c.Request.Context(), barberIDVal.(uint), req.Days); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "ok"})
}
