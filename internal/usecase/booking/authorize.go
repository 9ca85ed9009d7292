package booking

import (
	"github.com/barberbook/booking-api/internal/httperr"
	"github.com/barberbook/booking-api/internal/models"
)

// Actor identifies the authenticated caller for per-booking authorization.
// BarberID is zero for accounts without a barber profile.
type Actor struct {
	UserID   uint
	BarberID uint
	IsAdmin  bool
}

// authorize allows the booking's client, its barber, or an admin.
func authorize(a Actor, b *models.Booking) error {
	if a.IsAdmin {
		return nil
	}
	if b.UserID == a.UserID {
		return nil
	}
	if a.BarberID != 0 && b.BarberID == a.BarberID {
		return nil
	}
	return httperr.ErrForbidden("you do not have access to this booking")
}
