package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barberbook/booking-api/internal/domain/booking"
	"github.com/barberbook/booking-api/internal/httperr"
	"github.com/barberbook/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

const pgUniqueViolation = "23505"

// translate maps driver-level errors the caller can act on; everything
// else propagates as-is.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return httperr.ErrConflict("resource already exists")
	}
	return err
}

// --------------------------------------------------
// Referenced entities
// --------------------------------------------------

func (r *BookingGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&barber, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("barber not found")
		}
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("service not found")
		}
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Schedule store
// --------------------------------------------------

func (r *BookingGormRepository) GetScheduleForDay(
	ctx context.Context,
	barberID uint,
	day string,
) (*models.Schedule, error) {

	var sched models.Schedule
	err := r.db.WithContext(ctx).
		Where("barber_id = ? AND day = ?", barberID, day).
		First(&sched).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sched, nil
}

func (r *BookingGormRepository) ListSchedules(
	ctx context.Context,
	barberID uint,
) ([]models.Schedule, error) {

	var rows []models.Schedule
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BookingGormRepository) ReplaceSchedules(
	ctx context.Context,
	barberID uint,
	rows []models.Schedule,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ?", barberID).
			Delete(&models.Schedule{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return translate(tx.Create(&rows).Error)
	})
}

// --------------------------------------------------
// Booking store
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		First(&b, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("booking not found")
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) GetBookingDetailed(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Barber").
		Preload("Barber.User").
		Preload("User").
		First(&b, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("booking not found")
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return translate(r.db.WithContext(ctx).Create(b).Error)
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return translate(r.db.WithContext(ctx).Save(b).Error)
}

func (r *BookingGormRepository) ListBookingsForDate(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]models.Booking, error) {

	day := domain.DateOnly(date)

	var rows []models.Booking
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"barber_id = ? AND date >= ? AND date < ?",
			barberID, day, day.AddDate(0, 0, 1),
		).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BookingGormRepository) ListBookingsForRange(
	ctx context.Context,
	barberID uint,
	from, to time.Time,
) ([]models.Booking, error) {

	var rows []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"barber_id = ? AND status <> ? AND date >= ? AND date < ?",
			barberID, string(domain.StatusCancelled), from, to,
		).
		Order("date ASC, start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BookingGormRepository) ListBookingsByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Booking, error) {

	var rows []models.Booking
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BookingGormRepository) ListUserBookings(
	ctx context.Context,
	userID uint,
	f domain.ListFilter,
) (*domain.Page, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("user_id = ?", userID)

	return r.paginate(q, f, "Barber", "Barber.User")
}

func (r *BookingGormRepository) ListBarberBookings(
	ctx context.Context,
	barberID uint,
	f domain.ListFilter,
) (*domain.Page, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("barber_id = ?", barberID)

	return r.paginate(q, f, "User")
}

func (r *BookingGormRepository) paginate(
	q *gorm.DB,
	f domain.ListFilter,
	preloads ...string,
) (*domain.Page, error) {

	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}
	if f.Date != nil {
		day := domain.DateOnly(*f.Date)
		q = q.Where("date >= ? AND date < ?", day, day.AddDate(0, 0, 1))
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	q = q.Preload("Service")
	for _, p := range preloads {
		q = q.Preload(p)
	}

	var rows []models.Booking
	if err := q.
		Order("date DESC, start_time DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &domain.Page{
		Bookings:   rows,
		Total:      total,
		PageNum:    page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// --------------------------------------------------
// Statistics
// --------------------------------------------------

func (r *BookingGormRepository) GetBarberStats(
	ctx context.Context,
	barberID uint,
	from, to time.Time,
) (*domain.BarberStats, error) {

	stats := &domain.BarberStats{StatusCounts: map[string]int64{}}

	row := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("COUNT(*) AS cnt, COALESCE(SUM(services.price), 0) AS revenue").
		Joins("JOIN services ON services.id = bookings.service_id").
		Where(
			"bookings.barber_id = ? AND bookings.status = ? AND bookings.date >= ? AND bookings.date < ?",
			barberID, string(domain.StatusCompleted), from, to,
		).
		Row()

	if err := row.Scan(&stats.CompletedCount, &stats.Revenue); err != nil {
		return nil, err
	}

	type statusCount struct {
		Status string
		Cnt    int64
	}
	var counts []statusCount
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("status, COUNT(*) AS cnt").
		Where(
			"barber_id = ? AND date >= ? AND date < ?",
			barberID, from, to,
		).
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	for _, c := range counts {
		stats.StatusCounts[c.Status] = c.Cnt
	}

	return stats, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
