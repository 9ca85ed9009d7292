package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/barberbook/booking-api/internal/audit"
	"github.com/barberbook/booking-api/internal/cache"
	domain "github.com/barberbook/booking-api/internal/domain/booking"
	"github.com/barberbook/booking-api/internal/httperr"
	"github.com/barberbook/booking-api/internal/metrics"
	"github.com/barberbook/booking-api/internal/models"
	"github.com/barberbook/booking-api/internal/notification"
	"github.com/barberbook/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BarberID  uint
	ServiceID uint
	Date      time.Time
	StartTime string
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	uow    domain.UnitOfWork
	notify *notification.Dispatcher
	audit  *audit.Dispatcher
	cache  *cache.ScheduleCache
}

func NewCreateBooking(
	repo domain.Repository,
	uow domain.UnitOfWork,
	notify *notification.Dispatcher,
	auditor *audit.Dispatcher,
	scheduleCache *cache.ScheduleCache,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		uow:    uow,
		notify: notify,
		audit:  auditor,
		cache:  scheduleCache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	clientID uint,
	in CreateBookingInput,
) (*models.Booking, error) {

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	endTime, err := domain.CalculateEndTime(in.StartTime, svc.DurationMin)
	if err != nil {
		return nil, err
	}

	date := domain.DateOnly(in.Date)

	// The availability read and the insert it guards run in one
	// transaction under the (barber, day) advisory lock.
	created := &models.Booking{
		BarberID:  in.BarberID,
		UserID:    clientID,
		ServiceID: in.ServiceID,
		Date:      date,
		StartTime: in.StartTime,
		EndTime:   endTime,
		Status:    string(domain.StatusPending),
		Notes:     in.Notes,
	}

	err = uc.uow.WithinBarberDay(ctx, in.BarberID, date, func(tx domain.Repository) error {
		sched, err := tx.GetScheduleForDay(ctx, in.BarberID, domain.DayName(date))
		if err != nil {
			return err
		}

		dayBookings, err := tx.ListBookingsForDate(ctx, in.BarberID, date)
		if err != nil {
			return err
		}

		res := domain.Check(sched, dayBookings, timezone.Now(), domain.CheckInput{
			Date:      date,
			StartTime: in.StartTime,
			EndTime:   endTime,
		})
		if !res.Available {
			metrics.BookingRejectionsTotal.Inc()
			return httperr.ErrValidation(res.Reason)
		}

		return tx.CreateBooking(ctx, created)
	})
	if err != nil {
		return nil, err
	}

	metrics.BookingsTotal.WithLabelValues(created.Status).Inc()
	uc.cache.InvalidateBarber(ctx, in.BarberID)

	uc.notify.Dispatch(notification.Event{
		UserID:    clientID,
		Type:      notification.TypeBookingCreated,
		Title:     "Booking created",
		Message:   fmt.Sprintf("Your booking for %s at %s is pending confirmation", date.Format("2006-01-02"), in.StartTime),
		BookingID: &created.ID,
	})
	uc.notify.Dispatch(notification.Event{
		UserID:    barber.UserID,
		Type:      notification.TypeBookingCreated,
		Title:     "New booking",
		Message:   fmt.Sprintf("New booking on %s at %s", date.Format("2006-01-02"), in.StartTime),
		BookingID: &created.ID,
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   &clientID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &created.ID,
	})

	// read-side join for the response; fall back to the bare row if the
	// detailed load fails
	detailed, err := uc.repo.GetBookingDetailed(ctx, created.ID)
	if err != nil {
		return created, nil
	}
	return detailed, nil
}
