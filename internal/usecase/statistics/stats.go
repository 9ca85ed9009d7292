package statistics

import (
	"context"
	"time"

	domain "github.com/barberbook/booking-api/internal/domain/booking"
	"github.com/barberbook/booking-api/internal/timezone"
)

type GetBarberStats struct {
	repo domain.Repository
}

func NewGetBarberStats(repo domain.Repository) *GetBarberStats {
	return &GetBarberStats{repo: repo}
}

// Execute aggregates a barber's bookings over [from, to). Revenue counts
// COMPLETED bookings only. A zero from means "all time"; a zero to means
// "through the end of today".
func (uc *GetBarberStats) Execute(
	ctx context.Context,
	barberID uint,
	from, to time.Time,
) (*domain.BarberStats, error) {

	if _, err := uc.repo.GetBarber(ctx, barberID); err != nil {
		return nil, err
	}

	if to.IsZero() {
		to = domain.DateOnly(timezone.Now()).AddDate(0, 0, 1)
	}

	return uc.repo.GetBarberStats(ctx, barberID, from, to)
}
