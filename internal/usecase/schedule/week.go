package schedule

import (
	"context"
	"sort"
	"time"

	"github.com/barberbook/booking-api/internal/cache"
	domain "github.com/barberbook/booking-api/internal/domain/booking"
	"github.com/barberbook/booking-api/internal/models"
	"github.com/barberbook/booking-api/internal/timezone"
)

// SlotStepMinutes is the display granularity of the calendar grid. It is
// a rendering concern only: conflict detection always uses the continuous
// [start, end) intervals.
const SlotStepMinutes = 20

const (
	defaultLunchStart = "13:00"
	defaultLunchEnd   = "14:00"
)

type LunchWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type BookedRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DaySchedule is one day of the calendar view: the full slot grid, which
// labels are blocked, the raw booked ranges for richer rendering, and the
// day's configured window.
type DaySchedule struct {
	Day          string        `json:"day"`
	Date         string        `json:"date"`
	DayOfWeek    string        `json:"day_of_week"`
	IsOff        bool          `json:"is_off"`
	Times        []string      `json:"times"`
	Booked       []string      `json:"booked"`
	BookedRanges []BookedRange `json:"booked_ranges"`
	StartTime    string        `json:"start_time,omitempty"`
	EndTime      string        `json:"end_time,omitempty"`
	LunchBreak   LunchWindow   `json:"lunch_break"`
}

// ======================================================
// USE CASE
// ======================================================

type GetWeekSchedule struct {
	repo  domain.Repository
	cache *cache.ScheduleCache
}

func NewGetWeekSchedule(
	repo domain.Repository,
	scheduleCache *cache.ScheduleCache,
) *GetWeekSchedule {
	return &GetWeekSchedule{repo: repo, cache: scheduleCache}
}

// Execute projects seven DaySchedule values, Monday through Sunday,
// starting from the Monday of the week containing weekStart (the current
// week when weekStart is zero). Purely derived: it never writes Schedule
// or Booking state.
func (uc *GetWeekSchedule) Execute(
	ctx context.Context,
	barberID uint,
	weekStart time.Time,
) ([]DaySchedule, error) {

	if _, err := uc.repo.GetBarber(ctx, barberID); err != nil {
		return nil, err
	}

	if weekStart.IsZero() {
		weekStart = timezone.Now()
	}
	monday := startOfWeek(weekStart)

	var cached []DaySchedule
	if uc.cache.GetWeek(ctx, barberID, monday, &cached) {
		return cached, nil
	}

	schedules, err := uc.repo.ListSchedules(ctx, barberID)
	if err != nil {
		return nil, err
	}
	byDay := make(map[string]models.Schedule, len(schedules))
	for _, s := range schedules {
		byDay[s.Day] = s
	}

	bookings, err := uc.repo.ListBookingsForRange(
		ctx,
		barberID,
		monday,
		monday.AddDate(0, 0, 7),
	)
	if err != nil {
		return nil, err
	}

	week := make([]DaySchedule, 0, 7)
	for i := 0; i < 7; i++ {
		date := monday.AddDate(0, 0, i)
		week = append(week, uc.projectDay(date, byDay, bookings))
	}

	uc.cache.SetWeek(ctx, barberID, monday, week)
	return week, nil
}

func (uc *GetWeekSchedule) projectDay(
	date time.Time,
	byDay map[string]models.Schedule,
	bookings []models.Booking,
) DaySchedule {

	dayName := domain.DayName(date)

	day := DaySchedule{
		Day:          date.Weekday().String(),
		Date:         date.Format("2006-01-02"),
		DayOfWeek:    dayName,
		IsOff:        true,
		Times:        []string{},
		Booked:       []string{},
		BookedRanges: []BookedRange{},
		LunchBreak:   LunchWindow{Start: defaultLunchStart, End: defaultLunchEnd},
	}

	sched, ok := byDay[dayName]
	if !ok || !sched.IsWorking {
		return day
	}

	day.IsOff = false
	day.StartTime = sched.StartTime
	day.EndTime = sched.EndTime
	if sched.LunchStart != "" && sched.LunchEnd != "" {
		day.LunchBreak = LunchWindow{Start: sched.LunchStart, End: sched.LunchEnd}
	}

	day.Times = dayGrid(sched)

	booked := map[string]bool{}
	for _, b := range bookings {
		if !domain.DateOnly(b.Date).Equal(domain.DateOnly(date)) {
			continue
		}

		day.BookedRanges = append(day.BookedRanges, BookedRange{
			Start: b.StartTime,
			End:   b.EndTime,
		})
		for _, slot := range slotsCovering(b.StartTime, b.EndTime) {
			booked[slot] = true
		}
	}

	for slot := range booked {
		day.Booked = append(day.Booked, slot)
	}
	sort.Strings(day.Booked)

	return day
}

// startOfWeek returns midnight of the Monday of t's week.
func startOfWeek(t time.Time) time.Time {
	day := domain.DateOnly(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// dayGrid builds the slot labels for a working day: SlotStepMinutes steps
// across [start, end], skipping labels inside the lunch window. The exact
// end time is always present even when it is not step-aligned.
func dayGrid(sched models.Schedule) []string {
	start, err := domain.ParseClock(sched.StartTime)
	if err != nil {
		return []string{}
	}
	end, err := domain.ParseClock(sched.EndTime)
	if err != nil {
		return []string{}
	}

	var lunchStart, lunchEnd int
	hasLunch := sched.LunchStart != "" && sched.LunchEnd != ""
	if hasLunch {
		lunchStart, _ = domain.ParseClock(sched.LunchStart)
		lunchEnd, _ = domain.ParseClock(sched.LunchEnd)
	}

	slots := []string{}
	for m := start; m <= end; m += SlotStepMinutes {
		if hasLunch && m >= lunchStart && m < lunchEnd {
			continue
		}
		slots = append(slots, domain.FormatClock(m))
	}

	if len(slots) == 0 || slots[len(slots)-1] != sched.EndTime {
		slots = append(slots, sched.EndTime)
	}

	return slots
}

// slotsCovering expands a booking interval into grid labels, rounding out
// so the whole duration renders as blocked. Both boundaries are included;
// half-open semantics apply only to conflict detection.
func slotsCovering(startTime, endTime string) []string {
	start, err := domain.ParseClock(startTime)
	if err != nil {
		return nil
	}
	end, err := domain.ParseClock(endTime)
	if err != nil {
		return nil
	}

	var slots []string
	for m := start; m <= end; m += SlotStepMinutes {
		slots = append(slots, domain.FormatClock(m))
	}
	if len(slots) > 0 && slots[len(slots)-1] != endTime {
		slots = append(slots, endTime)
	}
	return slots
}
