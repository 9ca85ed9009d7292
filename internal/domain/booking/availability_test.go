package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/barberbook/booking-api/internal/models"
)

func workdaySchedule() *models.Schedule {
	return &models.Schedule{
		Day:        "monday",
		StartTime:  "09:00",
		EndTime:    "18:00",
		LunchStart: "13:00",
		LunchEnd:   "14:00",
		IsWorking:  true,
	}
}

// 2026-01-05 is a Monday. The clock sits mid-morning so same-day slots
// both before and after "now" can be exercised.
var (
	testNow  = time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	tomorrow = time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)
)

func TestCheck_PastDate(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1)
	res := Check(workdaySchedule(), nil, testNow, CheckInput{
		Date: yesterday, StartTime: "10:00", EndTime: "10:30",
	})
	assert.False(t, res.Available)
	assert.Equal(t, "cannot book a date in the past", res.Reason)
}

func TestCheck_SameDayPastTime(t *testing.T) {
	res := Check(workdaySchedule(), nil, testNow, CheckInput{
		Date: testNow, StartTime: "09:30", EndTime: "10:00",
	})
	assert.False(t, res.Available)
	assert.Equal(t, "cannot book a time that has already passed", res.Reason)

	// starting exactly at the current minute is also past
	res = Check(workdaySchedule(), nil, testNow, CheckInput{
		Date: testNow, StartTime: "10:00", EndTime: "10:30",
	})
	assert.False(t, res.Available)
	assert.Equal(t, "cannot book a time that has already passed", res.Reason)

	// later the same day is fine
	res = Check(workdaySchedule(), nil, testNow, CheckInput{
		Date: testNow, StartTime: "10:20", EndTime: "10:50",
	})
	assert.True(t, res.Available)
}

func TestCheck_NonWorkingDay(t *testing.T) {
	off := workdaySchedule()
	off.IsWorking = false

	res := Check(off, nil, testNow, CheckInput{
		Date: tomorrow, StartTime: "10:00", EndTime: "10:30",
	})
	assert.False(t, res.Available)
	assert.Equal(t, "the barber does not work on this day", res.Reason)

	// a missing schedule row means the same thing
	res = Check(nil, nil, testNow, CheckInput{
		Date: tomorrow, StartTime: "10:00", EndTime: "10:30",
	})
	assert.False(t, res.Available)
	assert.Equal(t, "the barber does not work on this day", res.Reason)
}

func TestCheck_WorkingHoursBounds(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		available bool
	}{
		{"before opening", "08:30", "09:00", false},
		{"crosses closing", "17:45", "18:15", false},
		{"exactly at opening", "09:00", "09:30", true},
		{"ends exactly at closing", "17:30", "18:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Check(workdaySchedule(), nil, testNow, CheckInput{
				Date: tomorrow, StartTime: tt.start, EndTime: tt.end,
			})
			assert.Equal(t, tt.available, res.Available)
			if !tt.available {
				assert.Equal(t, "time must be within working hours (09:00 - 18:00)", res.Reason)
			}
		})
	}
}

func TestCheck_LunchBreak(t *testing.T) {
	res := Check(workdaySchedule(), nil, testNow, CheckInput{
		Date: tomorrow, StartTime: "13:30", EndTime: "14:00",
	})
	assert.False(t, res.Available)
	assert.Equal(t, "this time falls within the lunch break (13:00 - 14:00)", res.Reason)

	// ending exactly when lunch starts is allowed
	res = Check(workdaySchedule(), nil, testNow, CheckInput{
		Date: tomorrow, StartTime: "12:30", EndTime: "13:00",
	})
	assert.True(t, res.Available)

	// starting exactly when lunch ends is allowed
	res = Check(workdaySchedule(), nil, testNow, CheckInput{
		Date: tomorrow, StartTime: "14:00", EndTime: "14:30",
	})
	assert.True(t, res.Available)

	// days without a lunch window skip the check entirely
	noLunch := workdaySchedule()
	noLunch.LunchStart = ""
	noLunch.LunchEnd = ""
	res = Check(noLunch, nil, testNow, CheckInput{
		Date: tomorrow, StartTime: "13:30", EndTime: "14:00",
	})
	assert.True(t, res.Available)
}

func TestCheck_BookingConflicts(t *testing.T) {
	existing := []models.Booking{
		{ID: 7, StartTime: "14:00", EndTime: "14:30", Status: string(StatusConfirmed)},
	}

	res := Check(workdaySchedule(), existing, testNow, CheckInput{
		Date: tomorrow, StartTime: "14:15", EndTime: "14:45",
	})
	assert.False(t, res.Available)
	assert.Equal(t, "this time slot is already booked", res.Reason)

	// back-to-back with the existing booking is fine
	res = Check(workdaySchedule(), existing, testNow, CheckInput{
		Date: tomorrow, StartTime: "14:30", EndTime: "15:00",
	})
	assert.True(t, res.Available)
}

func TestCheck_CancelledBookingsDoNotBlock(t *testing.T) {
	existing := []models.Booking{
		{ID: 7, StartTime: "14:00", EndTime: "14:30", Status: string(StatusCancelled)},
		{ID: 8, StartTime: "15:00", EndTime: "15:30", Status: string(StatusCompleted)},
	}

	res := Check(workdaySchedule(), existing, testNow, CheckInput{
		Date: tomorrow, StartTime: "14:00", EndTime: "15:30",
	})
	assert.True(t, res.Available)
}

func TestCheck_ExcludeSelfOnReschedule(t *testing.T) {
	existing := []models.Booking{
		{ID: 7, StartTime: "14:00", EndTime: "14:30", Status: string(StatusConfirmed)},
	}

	// moving booking 7 within its own window conflicts only with itself
	res := Check(workdaySchedule(), existing, testNow, CheckInput{
		Date: tomorrow, StartTime: "14:10", EndTime: "14:40", ExcludeBookingID: 7,
	})
	assert.True(t, res.Available)

	// a different booking still blocks
	res = Check(workdaySchedule(), existing, testNow, CheckInput{
		Date: tomorrow, StartTime: "14:10", EndTime: "14:40", ExcludeBookingID: 99,
	})
	assert.False(t, res.Available)
}

func TestCheck_ShortCircuitOrder(t *testing.T) {
	// a past date on a non-working day reports the date first
	off := workdaySchedule()
	off.IsWorking = false

	res := Check(off, nil, testNow, CheckInput{
		Date: testNow.AddDate(0, 0, -3), StartTime: "10:00", EndTime: "10:30",
	})
	assert.Equal(t, "cannot book a date in the past", res.Reason)
}

func TestStatusHelpers(t *testing.T) {
	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusCompleted))
	assert.False(t, IsValidStatus(Status("UNKNOWN")))

	assert.True(t, IsActive(StatusPending))
	assert.True(t, IsActive(StatusConfirmed))
	assert.True(t, IsActive(StatusInProgress))
	assert.False(t, IsActive(StatusCompleted))
	assert.False(t, IsActive(StatusCancelled))

	assert.True(t, IsTerminal(StatusCancelled))
	assert.True(t, IsTerminal(StatusCompleted))
	assert.False(t, IsTerminal(StatusPending))
}
