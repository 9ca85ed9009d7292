package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/barberbook/booking-api/internal/domain/booking"
)

// GormUnitOfWork turns gorm's transaction callback into the domain's
// unit-of-work contract. Any error returned by fn rolls the whole
// transaction back with no partial effect.
type GormUnitOfWork struct {
	db *gorm.DB
}

func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

func (u *GormUnitOfWork) Within(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewBookingGormRepository(tx))
	})
}

// WithinBarberDay serializes concurrent check-then-write sequences for the
// same barber and calendar day. The advisory lock is transaction-scoped:
// postgres releases it on commit or rollback, so the availability read and
// the booking write it guards always execute under the same lock.
func (u *GormUnitOfWork) WithinBarberDay(
	ctx context.Context,
	barberID uint,
	date time.Time,
	fn func(domain.Repository) error,
) error {
	day := domain.DateOnly(date)
	dayKey := int32(day.Unix() / 86400)

	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(?, ?)",
			int32(barberID), dayKey,
		).Error; err != nil {
			return err
		}
		return fn(NewBookingGormRepository(tx))
	})
}

var _ domain.UnitOfWork = (*GormUnitOfWork)(nil)
