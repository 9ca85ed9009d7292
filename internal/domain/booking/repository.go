package booking

import (
	"context"
	"time"

	"github.com/barberbook/booking-api/internal/models"
)

// ListFilter narrows booking listings. Nil fields are ignored.
type ListFilter struct {
	Status *Status
	Date   *time.Time
	Page   int
	Limit  int
}

// Page is a paginated booking listing.
type Page struct {
	Bookings   []models.Booking `json:"bookings"`
	Total      int64            `json:"total"`
	PageNum    int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}

// BarberStats aggregates over a barber's COMPLETED bookings plus a
// per-status breakdown.
type BarberStats struct {
	CompletedCount int64            `json:"completed_count"`
	Revenue        float64          `json:"revenue"`
	StatusCounts   map[string]int64 `json:"status_counts"`
}

type Repository interface {
	// -------- Referenced entities --------
	GetBarber(ctx context.Context, id uint) (*models.Barber, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)

	// -------- Schedule store --------

	// GetScheduleForDay returns (nil, nil) when the barber has no row for
	// that weekday.
	GetScheduleForDay(ctx context.Context, barberID uint, day string) (*models.Schedule, error)
	ListSchedules(ctx context.Context, barberID uint) ([]models.Schedule, error)

	// ReplaceSchedules swaps a barber's whole weekly configuration: old
	// rows deleted, new set inserted.
	ReplaceSchedules(ctx context.Context, barberID uint, rows []models.Schedule) error

	// -------- Booking store --------
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)

	// GetBookingDetailed loads the booking with its service, barber and
	// client display data attached.
	GetBookingDetailed(ctx context.Context, id uint) (*models.Booking, error)

	CreateBooking(ctx context.Context, b *models.Booking) error
	UpdateBooking(ctx context.Context, b *models.Booking) error

	// ListBookingsForDate returns every booking for a barber on one
	// calendar date, locked FOR UPDATE when called inside a transaction.
	ListBookingsForDate(ctx context.Context, barberID uint, date time.Time) ([]models.Booking, error)

	// ListBookingsForRange returns non-cancelled bookings with their
	// service attached, for the projector.
	ListBookingsForRange(ctx context.Context, barberID uint, from, to time.Time) ([]models.Booking, error)

	ListBookingsByIDs(ctx context.Context, ids []uint) ([]models.Booking, error)

	ListUserBookings(ctx context.Context, userID uint, f ListFilter) (*Page, error)
	ListBarberBookings(ctx context.Context, barberID uint, f ListFilter) (*Page, error)

	// -------- Statistics --------
	GetBarberStats(ctx context.Context, barberID uint, from, to time.Time) (*BarberStats, error)
}

// UnitOfWork scopes repository calls to a database transaction with
// rollback on any returned error.
type UnitOfWork interface {
	// WithinBarberDay additionally holds an advisory lock keyed on
	// (barberID, date) for the duration of fn, so a check-then-write
	// against the same barber and day cannot race another writer.
	WithinBarberDay(ctx context.Context, barberID uint, date time.Time, fn func(Repository) error) error

	// Within runs fn in a plain transaction.
	Within(ctx context.Context, fn func(Repository) error) error
}
