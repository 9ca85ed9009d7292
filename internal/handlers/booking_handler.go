package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/barberbook/booking-api/internal/domain/booking"
	"github.com/barberbook/booking-api/internal/dto"
	"github.com/barberbook/booking-api/internal/httperr"
	"github.com/barberbook/booking-api/internal/httpresp"
	"github.com/barberbook/booking-api/internal/middleware"
	ucBooking "github.com/barberbook/booking-api/internal/usecase/booking"
	"github.com/barberbook/booking-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC     *ucBooking.CreateBooking
	rescheduleUC *ucBooking.RescheduleBooking
	statusUC     *ucBooking.UpdateBookingStatus
	bulkUC       *ucBooking.BulkUpdateBookingStatus
	listUC       *ucBooking.ListBookings
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	rescheduleUC *ucBooking.RescheduleBooking,
	statusUC *ucBooking.UpdateBookingStatus,
	bulkUC *ucBooking.BulkUpdateBookingStatus,
	listUC *ucBooking.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		createUC:     createUC,
		rescheduleUC: rescheduleUC,
		statusUC:     statusUC,
		bulkUC:       bulkUC,
		listUC:       listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	Notes     string `json:"notes"`
}

type RescheduleBookingRequest struct {
	NewDate      string `json:"new_date" binding:"required"`
	NewStartTime string `json:"new_start_time" binding:"required"`
	Reason       string `json:"reason"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type BulkStatusRequest struct {
	BookingIDs []uint `json:"booking_ids" binding:"required"`
	Status     string `json:"status" binding:"required"`
	Reason     string `json:"reason"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !validators.IsDate(req.Date) || !validators.IsClockTime(req.StartTime) {
		httperr.BadRequest(c, "invalid_date_or_time", "Expected date YYYY-MM-DD and time HH:MM.")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Expected date YYYY-MM-DD and time HH:MM.")
		return
	}

	booking, err := h.createUC.Execute(c.Request.Context(), userID, ucBooking.CreateBookingInput{
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Date:      date,
		StartTime: req.StartTime,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, booking)
}

func (h *BookingHandler) Reschedule(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	var req RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !validators.IsDate(req.NewDate) || !validators.IsClockTime(req.NewStartTime) {
		httperr.BadRequest(c, "invalid_date_or_time", "Expected date YYYY-MM-DD and time HH:MM.")
		return
	}

	date, err := parseDate(req.NewDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Expected date YYYY-MM-DD and time HH:MM.")
		return
	}

	booking, err := h.rescheduleUC.Execute(c.Request.Context(), actorFrom(c), ucBooking.RescheduleBookingInput{
		BookingID:    id,
		NewDate:      date,
		NewStartTime: req.NewStartTime,
		Reason:       req.Reason,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, booking)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	booking, err := h.statusUC.Execute(c.Request.Context(), actorFrom(c), id, domain.Status(req.Status))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, booking)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	booking, err := h.statusUC.Cancel(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, booking)
}

func (h *BookingHandler) BulkUpdateStatus(c *gin.Context) {
	var req BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	updated, err := h.bulkUC.Execute(c.Request.Context(), actorFrom(c), ucBooking.BulkUpdateBookingStatusInput{
		BookingIDs: req.BookingIDs,
		Status:     domain.Status(req.Status),
		Reason:     req.Reason,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, updated)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	page, err := h.listUC.ForUser(c.Request.Context(), userID, listFilter(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, page)
}

func (h *BookingHandler) ListForBarber(c *gin.Context) {
	barberIDVal, ok := c.Get(middleware.ContextBarberID)
	if !ok {
		httperr.BadRequest(c, "no_barber_profile", "No barber profile for this account.")
		return
	}

	page, err := h.listUC.ForBarber(c.Request.Context(), barberIDVal.(uint), listFilter(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, page)
}

// ListDay is the barber's compact agenda for one date.
func (h *BookingHandler) ListDay(c *gin.Context) {
	barberIDVal, ok := c.Get(middleware.ContextBarberID)
	if !ok {
		httperr.BadRequest(c, "no_barber_profile", "No barber profile for this account.")
		return
	}

	dateStr := c.Query("date")
	if !validators.IsDate(dateStr) {
		httperr.BadRequest(c, "invalid_date", "Expected date YYYY-MM-DD.")
		return
	}
	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Expected date YYYY-MM-DD.")
		return
	}

	f := domain.ListFilter{Date: &date, Limit: 100}
	page, err := h.listUC.ForBarber(c.Request.Context(), barberIDVal.(uint), f)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	out := make([]dto.BookingListDTO, 0, len(page.Bookings))
	for _, b := range page.Bookings {
		out = append(out, dto.BookingListDTO{
			ID:          b.ID,
			Date:        b.Date,
			StartTime:   b.StartTime,
			EndTime:     b.EndTime,
			Status:      b.Status,
			ClientName:  b.User.FirstName + " " + b.User.LastName,
			ServiceName: b.Service.Name,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// HELPERS
// ======================================================

// actorFrom builds the caller's identity from the auth middleware claims.
func actorFrom(c *gin.Context) ucBooking.Actor {
	a := ucBooking.Actor{
		UserID: c.MustGet(middleware.ContextUserID).(uint),
	}
	if role, ok := c.Get(middleware.ContextUserRole); ok && role == middleware.RoleAdmin {
		a.IsAdmin = true
	}
	if barberID, ok := c.Get(middleware.ContextBarberID); ok {
		a.BarberID = barberID.(uint)
	}
	return a
}

func pathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(id), err
}

func listFilter(c *gin.Context) domain.ListFilter {
	var f domain.ListFilter

	if s := c.Query("status"); s != "" {
		status := domain.Status(s)
		f.Status = &status
	}
	if d := c.Query("date"); validators.IsDate(d) {
		if date, err := parseDate(d); err == nil {
			f.Date = &date
		}
	}
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	return f
}
