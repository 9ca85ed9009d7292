package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barberbook/booking-api/internal/httperr"
	"github.com/barberbook/booking-api/internal/httpresp"
	"github.com/barberbook/booking-api/internal/middleware"
	ucStatistics "github.com/barberbook/booking-api/internal/usecase/statistics"
	"github.com/barberbook/booking-api/internal/validators"
)

type StatisticsHandler struct {
	statsUC *ucStatistics.GetBarberStats
}

func NewStatisticsHandler(statsUC *ucStatistics.GetBarberStats) *StatisticsHandler {
	return &StatisticsHandler{statsUC: statsUC}
}

func (h *StatisticsHandler) GetMine(c *gin.Context) {
	barberIDVal, ok := c.Get(middleware.ContextBarberID)
	if !ok {
		httperr.BadRequest(c, "no_barber_profile", "No barber profile for this account.")
		return
	}

	var from, to time.Time
	if f := c.Query("from"); validators.IsDate(f) {
		from, _ = parseDate(f)
	}
	if t := c.Query("to"); validators.IsDate(t) {
		to, _ = parseDate(t)
	}

	stats, err := h.statsUC.Execute(c.Request.Context(), barberIDVal.(uint), from, to)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, stats)
}
