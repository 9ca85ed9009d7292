package booking

import (
	"context"

	domain "github.com/barberbook/booking-api/internal/domain/booking"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) ForUser(
	ctx context.Context,
	userID uint,
	f domain.ListFilter,
) (*domain.Page, error) {
	return uc.repo.ListUserBookings(ctx, userID, f)
}

func (uc *ListBookings) ForBarber(
	ctx context.Context,
	barberID uint,
	f domain.ListFilter,
) (*domain.Page, error) {
	if _, err := uc.repo.GetBarber(ctx, barberID); err != nil {
		return nil, err
	}
	return uc.repo.ListBarberBookings(ctx, barberID, f)
}
