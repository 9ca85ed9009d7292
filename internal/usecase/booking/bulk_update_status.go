package booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/barberbook/booking-api/internal/audit"
	"github.com/barberbook/booking-api/internal/cache"
	domain "github.com/barberbook/booking-api/internal/domain/booking"
	"github.com/barberbook/booking-api/internal/httperr"
	"github.com/barberbook/booking-api/internal/models"
	"github.com/barberbook/booking-api/internal/notification"
)

type BulkUpdateBookingStatusInput struct {
	BookingIDs []uint
	Status     domain.Status
	Reason     string
}

type BulkUpdateBookingStatus struct {
	uow    domain.UnitOfWork
	notify *notification.Dispatcher
	audit  *audit.Dispatcher
	cache  *cache.ScheduleCache
}

func NewBulkUpdateBookingStatus(
	uow domain.UnitOfWork,
	notify *notification.Dispatcher,
	auditor *audit.Dispatcher,
	scheduleCache *cache.ScheduleCache,
) *BulkUpdateBookingStatus {
	return &BulkUpdateBookingStatus{
		uow:    uow,
		notify: notify,
		audit:  auditor,
		cache:  scheduleCache,
	}
}

// Execute updates every referenced booking in one transaction. The lookup
// is all-or-nothing: a single unknown or foreign id fails the whole batch
// before any row changes.
func (uc *BulkUpdateBookingStatus) Execute(
	ctx context.Context,
	actor Actor,
	in BulkUpdateBookingStatusInput,
) ([]models.Booking, error) {

	if len(in.BookingIDs) == 0 {
		return nil, httperr.ErrValidation("at least one booking id is required")
	}
	if !domain.IsValidStatus(in.Status) {
		return nil, httperr.ErrValidation(fmt.Sprintf("invalid booking status %q", in.Status))
	}

	var updated []models.Booking

	err := uc.uow.Within(ctx, func(tx domain.Repository) error {
		bookings, err := tx.ListBookingsByIDs(ctx, in.BookingIDs)
		if err != nil {
			return err
		}
		if len(bookings) != len(in.BookingIDs) {
			return httperr.ErrNotFound("some bookings were not found")
		}

		for i := range bookings {
			b := &bookings[i]
			if err := authorize(actor, b); err != nil {
				return err
			}
			b.Status = string(in.Status)
			if in.Reason != "" {
				b.Notes = strings.TrimSpace(b.Notes + "\n[Bulk Update: " + in.Reason + "]")
			}
			if err := tx.UpdateBooking(ctx, b); err != nil {
				return err
			}
		}

		updated = bookings
		return nil
	})
	if err != nil {
		return nil, err
	}

	seen := map[uint]bool{}
	for i := range updated {
		b := &updated[i]

		if !seen[b.BarberID] {
			seen[b.BarberID] = true
			uc.cache.InvalidateBarber(ctx, b.BarberID)
		}

		uc.notify.Dispatch(notification.Event{
			UserID:    b.UserID,
			Type:      notification.TypeStatusChanged,
			Title:     "Booking updated",
			Message:   fmt.Sprintf("Your booking status changed to %s", b.Status),
			BookingID: &b.ID,
		})
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_bulk_status_updated",
		Entity:   "booking",
		Metadata: map[string]any{"ids": in.BookingIDs, "status": in.Status, "reason": in.Reason},
	})

	return updated, nil
}
