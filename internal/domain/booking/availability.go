package booking

import (
	"fmt"
	"time"

	"github.com/barberbook/booking-api/internal/models"
)

// ===============================
// Availability Checker
// ===============================

// CheckInput asks whether [StartTime, EndTime) on Date is bookable for a
// barber. ExcludeBookingID is set during a reschedule so the booking being
// moved does not conflict with itself.
type CheckInput struct {
	Date             time.Time
	StartTime        string
	EndTime          string
	ExcludeBookingID uint
}

// CheckResult never carries an error: an unbookable slot is a negative
// result with a human-readable reason, not a failure.
type CheckResult struct {
	Available bool   `json:"is_available"`
	Reason    string `json:"reason,omitempty"`
}

func unavailable(reason string) CheckResult {
	return CheckResult{Available: false, Reason: reason}
}

// Check decides whether the requested interval is bookable given the
// barber's schedule row for that weekday (nil when none exists) and the
// barber's bookings on that calendar date. It is a pure function over
// already-fetched state; callers run it inside the same transaction as the
// write that depends on it.
//
// Checks run in a fixed order and short-circuit on the first failure:
// past date, past time, working day, working-hours bounds, lunch window,
// booking conflicts.
func Check(
	sched *models.Schedule,
	dayBookings []models.Booking,
	now time.Time,
	in CheckInput,
) CheckResult {

	reqDate := DateOnly(in.Date)
	today := DateOnly(now)

	if reqDate.Before(today) {
		return unavailable("cannot book a date in the past")
	}

	if reqDate.Equal(today) && in.StartTime <= now.Format("15:04") {
		return unavailable("cannot book a time that has already passed")
	}

	if sched == nil || !sched.IsWorking {
		return unavailable("the barber does not work on this day")
	}

	if in.StartTime < sched.StartTime || in.EndTime > sched.EndTime {
		return unavailable(fmt.Sprintf(
			"time must be within working hours (%s - %s)",
			sched.StartTime, sched.EndTime,
		))
	}

	if sched.LunchStart != "" && sched.LunchEnd != "" {
		if Overlaps(in.StartTime, in.EndTime, sched.LunchStart, sched.LunchEnd) {
			return unavailable(fmt.Sprintf(
				"this time falls within the lunch break (%s - %s)",
				sched.LunchStart, sched.LunchEnd,
			))
		}
	}

	for _, b := range dayBookings {
		if b.ID == in.ExcludeBookingID {
			continue
		}
		if !IsActive(Status(b.Status)) {
			continue
		}
		if Overlaps(in.StartTime, in.EndTime, b.StartTime, b.EndTime) {
			return unavailable("this time slot is already booked")
		}
	}

	return CheckResult{Available: true}
}
