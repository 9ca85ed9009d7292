package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint `json:"barber_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:500" json:"description"`
	Type        string  `gorm:"size:50" json:"type"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
