package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/barberbook/booking-api/internal/domain/booking"
	"github.com/barberbook/booking-api/internal/httperr"
	"github.com/barberbook/booking-api/internal/models"
)

// fakeRepo models only the schedule and booking reads the projector needs.
type fakeRepo struct {
	barber    *models.Barber
	schedules []models.Schedule
	bookings  []models.Booking

	replacedRows []models.Schedule
	listCalls    int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{barber: &models.Barber{ID: 1, UserID: 42}}
}

func (f *fakeRepo) GetBarber(ctx context.Context, id uint) (*models.Barber, error) {
	if f.barber == nil || f.barber.ID != id {
		return nil, httperr.ErrNotFound("barber not found")
	}
	return f.barber, nil
}

func (f *fakeRepo) GetService(ctx context.Context, id uint) (*models.Service, error) {
	return nil, httperr.ErrNotFound("service not found")
}

func (f *fakeRepo) GetScheduleForDay(ctx context.Context, barberID uint, day string) (*models.Schedule, error) {
	for i := range f.schedules {
		if f.schedules[i].Day == day {
			return &f.schedules[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) ListSchedules(ctx context.Context, barberID uint) ([]models.Schedule, error) {
	f.listCalls++
	return f.schedules, nil
}

func (f *fakeRepo) ReplaceSchedules(ctx context.Context, barberID uint, rows []models.Schedule) error {
	f.replacedRows = rows
	return nil
}

func (f *fakeRepo) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	return nil, httperr.ErrNotFound("booking not found")
}

func (f *fakeRepo) GetBookingDetailed(ctx context.Context, id uint) (*models.Booking, error) {
	return nil, httperr.ErrNotFound("booking not found")
}

func (f *fakeRepo) CreateBooking(ctx context.Context, b *models.Booking) error { return nil }
func (f *fakeRepo) UpdateBooking(ctx context.Context, b *models.Booking) error { return nil }

func (f *fakeRepo) ListBookingsForDate(ctx context.Context, barberID uint, date time.Time) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeRepo) ListBookingsForRange(ctx context.Context, barberID uint, from, to time.Time) ([]models.Booking, error) {
	return f.bookings, nil
}

func (f *fakeRepo) ListBookingsByIDs(ctx context.Context, ids []uint) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeRepo) ListUserBookings(ctx context.Context, userID uint, fl domain.ListFilter) (*domain.Page, error) {
	return &domain.Page{}, nil
}

func (f *fakeRepo) ListBarberBookings(ctx context.Context, barberID uint, fl domain.ListFilter) (*domain.Page, error) {
	return &domain.Page{}, nil
}

func (f *fakeRepo) GetBarberStats(ctx context.Context, barberID uint, from, to time.Time) (*domain.BarberStats, error) {
	return &domain.BarberStats{}, nil
}

// ======================================================
// WEEK PROJECTION
// ======================================================

// 2026-01-05 is a Monday.
var monday = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

func standardWeek() []models.Schedule {
	return []models.Schedule{
		{
			BarberID: 1, Day: "monday",
			StartTime: "09:00", EndTime: "18:00",
			LunchStart: "13:00", LunchEnd: "14:00",
			IsWorking: true,
		},
		{
			BarberID: 1, Day: "tuesday",
			StartTime: "10:00", EndTime: "17:30",
			IsWorking: true,
		},
	}
}

func TestGetWeekSchedule_ProjectsSevenDays(t *testing.T) {
	repo := newFakeRepo()
	repo.schedules = standardWeek()
	uc := NewGetWeekSchedule(repo, nil)

	week, err := uc.Execute(context.Background(), 1, monday)
	require.NoError(t, err)
	require.Len(t, week, 7)

	assert.Equal(t, "2026-01-05", week[0].Date)
	assert.Equal(t, "monday", week[0].DayOfWeek)
	assert.Equal(t, "2026-01-11", week[6].Date)
	assert.Equal(t, "sunday", week[6].DayOfWeek)
}

func TestGetWeekSchedule_GridSkipsLunch(t *testing.T) {
	repo := newFakeRepo()
	repo.schedules = standardWeek()
	uc := NewGetWeekSchedule(repo, nil)

	week, err := uc.Execute(context.Background(), 1, monday)
	require.NoError(t, err)

	mon := week[0]
	assert.False(t, mon.IsOff)
	assert.Equal(t, "09:00", mon.StartTime)
	assert.Equal(t, "18:00", mon.EndTime)
	assert.Equal(t, LunchWindow{Start: "13:00", End: "14:00"}, mon.LunchBreak)

	assert.Contains(t, mon.Times, "09:00")
	assert.Contains(t, mon.Times, "12:40")
	assert.Contains(t, mon.Times, "14:00")
	assert.Contains(t, mon.Times, "18:00")

	assert.NotContains(t, mon.Times, "13:00")
	assert.NotContains(t, mon.Times, "13:20")
	assert.NotContains(t, mon.Times, "13:40")
}

func TestGetWeekSchedule_UnalignedEndIncluded(t *testing.T) {
	repo := newFakeRepo()
	repo.schedules = standardWeek()
	uc := NewGetWeekSchedule(repo, nil)

	week, err := uc.Execute(context.Background(), 1, monday)
	require.NoError(t, err)

	// tuesday closes at 17:30, off the 20-minute grid
	tue := week[1]
	require.NotEmpty(t, tue.Times)
	assert.Contains(t, tue.Times, "17:20")
	assert.Equal(t, "17:30", tue.Times[len(tue.Times)-1])
}

func TestGetWeekSchedule_DaysWithoutRowsAreOff(t *testing.T) {
	repo := newFakeRepo()
	repo.schedules = standardWeek()
	uc := NewGetWeekSchedule(repo, nil)

	week, err := uc.Execute(context.Background(), 1, monday)
	require.NoError(t, err)

	wed := week[2]
	assert.True(t, wed.IsOff)
	assert.Empty(t, wed.Times)
	assert.Empty(t, wed.Booked)
	assert.Empty(t, wed.StartTime)
}

func TestGetWeekSchedule_BookingsMarkSlots(t *testing.T) {
	repo := newFakeRepo()
	repo.schedules = standardWeek()
	repo.bookings = []models.Booking{
		{BarberID: 1, Date: monday, StartTime: "10:00", EndTime: "10:30", Status: "CONFIRMED"},
	}
	uc := NewGetWeekSchedule(repo, nil)

	week, err := uc.Execute(context.Background(), 1, monday)
	require.NoError(t, err)

	mon := week[0]
	assert.Equal(t, []string{"10:00", "10:20", "10:30"}, mon.Booked)
	assert.Equal(t, []BookedRange{{Start: "10:00", End: "10:30"}}, mon.BookedRanges)

	// the booking only blocks its own day
	assert.Empty(t, week[1].Booked)
}

func TestGetWeekSchedule_NormalizesToMonday(t *testing.T) {
	repo := newFakeRepo()
	repo.schedules = standardWeek()
	uc := NewGetWeekSchedule(repo, nil)

	// sunday of the same week resolves to the same monday
	sunday := monday.AddDate(0, 0, 6)
	week, err := uc.Execute(context.Background(), 1, sunday)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-05", week[0].Date)

	midWeek, err := uc.Execute(context.Background(), 1, monday.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, "2026-01-05", midWeek[0].Date)
}

func TestGetWeekSchedule_UnknownBarber(t *testing.T) {
	uc := NewGetWeekSchedule(newFakeRepo(), nil)

	_, err := uc.Execute(context.Background(), 404, monday)
	require.Error(t, err)
	assert.True(t, httperr.IsNotFound(err))
}

// ======================================================
// SCHEDULE UPDATE
// ======================================================

func workingDay(day string) DayConfig {
	return DayConfig{
		Day:        day,
		StartTime:  "09:00",
		EndTime:    "18:00",
		LunchStart: "13:00",
		LunchEnd:   "14:00",
		IsWorking:  true,
	}
}

func TestUpdateSchedule_ReplacesRows(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdateSchedule(repo, nil, nil)

	err := uc.Execute(context.Background(), 1, []DayConfig{
		workingDay("monday"),
		{Day: "sunday", IsWorking: false},
	})

	require.NoError(t, err)
	require.Len(t, repo.replacedRows, 2)
	assert.Equal(t, uint(1), repo.replacedRows[0].BarberID)
	assert.Equal(t, "monday", repo.replacedRows[0].Day)
	assert.True(t, repo.replacedRows[0].IsWorking)
	assert.False(t, repo.replacedRows[1].IsWorking)
}

func TestUpdateSchedule_Validation(t *testing.T) {
	tests := []struct {
		name string
		day  DayConfig
	}{
		{"unknown day", workingDay("caturday")},
		{"start after end", DayConfig{Day: "monday", StartTime: "18:00", EndTime: "09:00", IsWorking: true}},
		{"bad clock", DayConfig{Day: "monday", StartTime: "9am", EndTime: "18:00", IsWorking: true}},
		{"start not zero padded", DayConfig{Day: "monday", StartTime: "9:00", EndTime: "09:30", IsWorking: true}},
		{"lunch not zero padded", DayConfig{Day: "monday", StartTime: "09:00", EndTime: "18:00", LunchStart: "9:30", LunchEnd: "10:00", IsWorking: true}},
		{"half a lunch window", DayConfig{Day: "monday", StartTime: "09:00", EndTime: "18:00", LunchStart: "13:00", IsWorking: true}},
		{"lunch outside hours", DayConfig{Day: "monday", StartTime: "09:00", EndTime: "12:00", LunchStart: "13:00", LunchEnd: "14:00", IsWorking: true}},
		{"lunch start after end", DayConfig{Day: "monday", StartTime: "09:00", EndTime: "18:00", LunchStart: "14:00", LunchEnd: "13:00", IsWorking: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			uc := NewUpdateSchedule(repo, nil, nil)

			err := uc.Execute(context.Background(), 1, []DayConfig{tt.day})
			require.Error(t, err)
			assert.True(t, httperr.IsValidation(err))
			assert.Empty(t, repo.replacedRows)
		})
	}
}

func TestUpdateSchedule_NonWorkingDaySkipsValidation(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdateSchedule(repo, nil, nil)

	// off days carry no window, so empty fields are fine
	err := uc.Execute(context.Background(), 1, []DayConfig{
		{Day: "sunday", IsWorking: false},
	})
	require.NoError(t, err)
}

func TestUpdateSchedule_DuplicateDay(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdateSchedule(repo, nil, nil)

	err := uc.Execute(context.Background(), 1, []DayConfig{
		workingDay("monday"),
		workingDay("monday"),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsValidation(err))
	assert.Contains(t, err.Error(), "duplicate")
}

func TestUpdateSchedule_UnknownBarber(t *testing.T) {
	uc := NewUpdateSchedule(newFakeRepo(), nil, nil)

	err := uc.Execute(context.Background(), 404, []DayConfig{workingDay("monday")})
	require.Error(t, err)
	assert.True(t, httperr.IsNotFound(err))
}
