package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"index:idx_booking_barber_date" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Date carries the calendar day only; time-of-day is normalized to
	// midnight. StartTime/EndTime are zero-padded "HH:MM" strings and
	// EndTime is always StartTime + service duration.
	Date      time.Time `gorm:"index:idx_booking_barber_date" json:"date"`
	StartTime string    `gorm:"size:5" json:"start_time"`
	EndTime   string    `gorm:"size:5" json:"end_time"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`
	Notes  string `gorm:"size:1000" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
