package schedule

import (
	"context"
	"fmt"

	"github.com/barberbook/booking-api/internal/audit"
	"github.com/barberbook/booking-api/internal/cache"
	domain "github.com/barberbook/booking-api/internal/domain/booking"
	"github.com/barberbook/booking-api/internal/httperr"
	"github.com/barberbook/booking-api/internal/models"
	"github.com/barberbook/booking-api/internal/validators"
)

type DayConfig struct {
	Day        string `json:"day"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
	IsWorking  bool   `json:"is_working"`
}

var validDays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

type UpdateSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.ScheduleCache
}

func NewUpdateSchedule(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	scheduleCache *cache.ScheduleCache,
) *UpdateSchedule {
	return &UpdateSchedule{repo: repo, audit: auditor, cache: scheduleCache}
}

// Execute replaces a barber's weekly configuration wholesale: existing
// rows are deleted and the new set inserted in one transaction. Rows are
// never merged field by field.
func (uc *UpdateSchedule) Execute(
	ctx context.Context,
	barberID uint,
	days []DayConfig,
) error {

	if _, err := uc.repo.GetBarber(ctx, barberID); err != nil {
		return err
	}

	seen := map[string]bool{}
	rows := make([]models.Schedule, 0, len(days))
	for _, d := range days {
		if err := validateDay(d); err != nil {
			return err
		}
		if seen[d.Day] {
			return httperr.ErrValidation(fmt.Sprintf("duplicate schedule entry for %s", d.Day))
		}
		seen[d.Day] = true

		rows = append(rows, models.Schedule{
			BarberID:   barberID,
			Day:        d.Day,
			StartTime:  d.StartTime,
			EndTime:    d.EndTime,
			LunchStart: d.LunchStart,
			LunchEnd:   d.LunchEnd,
			IsWorking:  d.IsWorking,
		})
	}

	if err := uc.repo.ReplaceSchedules(ctx, barberID, rows); err != nil {
		return err
	}

	uc.cache.InvalidateBarber(ctx, barberID)

	uc.audit.Dispatch(audit.Event{
		Action:   "schedule_updated",
		Entity:   "schedule",
		EntityID: &barberID,
	})

	return nil
}

func validateDay(d DayConfig) error {
	if !validDays[d.Day] {
		return httperr.ErrValidation(fmt.Sprintf("unknown day %q", d.Day))
	}

	// Non-working days keep whatever fields they carry; only working
	// rows need a coherent window.
	if !d.IsWorking {
		return nil
	}

	// Stored times must be canonical zero-padded HH:MM: the whole core
	// compares them lexically, so a raw "9:00" would sort after "18:00".
	if !validators.IsClockTime(d.StartTime) || !validators.IsClockTime(d.EndTime) {
		return httperr.ErrValidation(fmt.Sprintf("%s: times must be zero-padded HH:MM", d.Day))
	}
	if d.StartTime >= d.EndTime {
		return httperr.ErrValidation(fmt.Sprintf("%s: start time must be before end time", d.Day))
	}

	hasLunchStart := d.LunchStart != ""
	hasLunchEnd := d.LunchEnd != ""
	if hasLunchStart != hasLunchEnd {
		return httperr.ErrValidation(fmt.Sprintf("%s: lunch window must set both start and end", d.Day))
	}
	if hasLunchStart {
		if !validators.IsClockTime(d.LunchStart) || !validators.IsClockTime(d.LunchEnd) {
			return httperr.ErrValidation(fmt.Sprintf("%s: times must be zero-padded HH:MM", d.Day))
		}
		if d.LunchStart >= d.LunchEnd {
			return httperr.ErrValidation(fmt.Sprintf("%s: lunch start must be before lunch end", d.Day))
		}
		if d.LunchStart < d.StartTime || d.LunchEnd > d.EndTime {
			return httperr.ErrValidation(fmt.Sprintf("%s: lunch window must lie within working hours", d.Day))
		}
	}

	return nil
}
