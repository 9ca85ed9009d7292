package booking

import (
	"context"
	"fmt"

	"github.com/barberbook/booking-api/internal/audit"
	"github.com/barberbook/booking-api/internal/cache"
	domain "github.com/barberbook/booking-api/internal/domain/booking"
	"github.com/barberbook/booking-api/internal/httperr"
	"github.com/barberbook/booking-api/internal/metrics"
	"github.com/barberbook/booking-api/internal/models"
	"github.com/barberbook/booking-api/internal/notification"
)

type UpdateBookingStatus struct {
	repo   domain.Repository
	notify *notification.Dispatcher
	audit  *audit.Dispatcher
	cache  *cache.ScheduleCache
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	notify *notification.Dispatcher,
	auditor *audit.Dispatcher,
	scheduleCache *cache.ScheduleCache,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:   repo,
		notify: notify,
		audit:  auditor,
		cache:  scheduleCache,
	}
}

// Execute overwrites the booking status. Transitions are deliberately
// unrestricted: any status may be set from any other, matching the
// observed behavior this service replaces.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	actor Actor,
	bookingID uint,
	status domain.Status,
) (*models.Booking, error) {

	if !domain.IsValidStatus(status) {
		return nil, httperr.ErrValidation(fmt.Sprintf("invalid booking status %q", status))
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := authorize(actor, b); err != nil {
		return nil, err
	}

	b.Status = string(status)
	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	metrics.BookingsTotal.WithLabelValues(b.Status).Inc()
	uc.cache.InvalidateBarber(ctx, b.BarberID)

	uc.notify.Dispatch(notification.Event{
		UserID:    b.UserID,
		Type:      notification.TypeStatusChanged,
		Title:     "Booking updated",
		Message:   fmt.Sprintf("Your booking status changed to %s", b.Status),
		BookingID: &b.ID,
	})

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_status_updated",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]string{"status": b.Status},
	})

	detailed, err := uc.repo.GetBookingDetailed(ctx, b.ID)
	if err != nil {
		return b, nil
	}
	return detailed, nil
}

// Cancel is a status update to CANCELLED.
func (uc *UpdateBookingStatus) Cancel(
	ctx context.Context,
	actor Actor,
	bookingID uint,
) (*models.Booking, error) {
	return uc.Execute(ctx, actor, bookingID, domain.StatusCancelled)
}
