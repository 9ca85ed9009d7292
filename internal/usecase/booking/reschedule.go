package booking

import (
	"context"
	"fmt"
	"strings"
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

type RescheduleBookingInput struct {
	BookingID    uint
	NewDate      time.Time
	NewStartTime string
	Reason       string
}

type RescheduleBooking struct {
	repo   domain.Repository
	uow    domain.UnitOfWork
	notify *notification.Dispatcher
	audit  *audit.Dispatcher
	cache  *cache.ScheduleCache
}

func NewRescheduleBooking(
	repo domain.Repository,
	uow domain.UnitOfWork,
	notify *notification.Dispatcher,
	auditor *audit.Dispatcher,
	scheduleCache *cache.ScheduleCache,
) *RescheduleBooking {
	return &RescheduleBooking{
		repo:   repo,
		uow:    uow,
		notify: notify,
		audit:  auditor,
		cache:  scheduleCache,
	}
}

func (uc *RescheduleBooking) Execute(
	ctx context.Context,
	actor Actor,
	in RescheduleBookingInput,
) (*models.Booking, error) {

	newDate := domain.DateOnly(in.NewDate)

	var moved *models.Booking

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}

	if err := authorize(actor, b); err != nil {
		return nil, err
	}

	if domain.IsTerminal(domain.Status(b.Status)) {
		return nil, httperr.ErrValidation("cannot reschedule a finished or cancelled booking")
	}

	newEndTime, err := domain.CalculateEndTime(in.NewStartTime, b.Service.DurationMin)
	if err != nil {
		return nil, err
	}

	err = uc.uow.WithinBarberDay(ctx, b.BarberID, newDate, func(tx domain.Repository) error {
		cur, err := tx.GetBooking(ctx, in.BookingID)
		if err != nil {
			return err
		}
		if domain.IsTerminal(domain.Status(cur.Status)) {
			return httperr.ErrValidation("cannot reschedule a finished or cancelled booking")
		}

		sched, err := tx.GetScheduleForDay(ctx, cur.BarberID, domain.DayName(newDate))
		if err != nil {
			return err
		}

		dayBookings, err := tx.ListBookingsForDate(ctx, cur.BarberID, newDate)
		if err != nil {
			return err
		}

		res := domain.Check(sched, dayBookings, timezone.Now(), domain.CheckInput{
			Date:             newDate,
			StartTime:        in.NewStartTime,
			EndTime:          newEndTime,
			ExcludeBookingID: cur.ID,
		})
		if !res.Available {
			metrics.BookingRejectionsTotal.Inc()
			return httperr.ErrValidation(res.Reason)
		}

		cur.Date = newDate
		cur.StartTime = in.NewStartTime
		cur.EndTime = newEndTime
		if in.Reason != "" {
			cur.Notes = strings.TrimSpace(cur.Notes + "\n[Rescheduled: " + in.Reason + "]")
		}

		if err := tx.UpdateBooking(ctx, cur); err != nil {
			return err
		}
		moved = cur
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.cache.InvalidateBarber(ctx, moved.BarberID)

	uc.notify.Dispatch(notification.Event{
		UserID:    moved.UserID,
		Type:      notification.TypeBookingRescheduled,
		Title:     "Booking rescheduled",
		Message:   fmt.Sprintf("Your booking was moved to %s at %s", newDate.Format("2006-01-02"), in.NewStartTime),
		BookingID: &moved.ID,
	})

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_rescheduled",
		Entity:   "booking",
		EntityID: &moved.ID,
		Metadata: map[string]string{"reason": in.Reason},
	})

	detailed, err := uc.repo.GetBookingDetailed(ctx, moved.ID)
	if err != nil {
		return moved, nil
	}
	return detailed, nil
}
