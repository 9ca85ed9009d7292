package models

import "time"

// Schedule is one weekly availability row. At most one row exists per
// (barber, day); day is a lowercase English weekday name.
type Schedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"uniqueIndex:idx_schedule_barber_day" json:"barber_id"`
	Day      string `gorm:"size:10;uniqueIndex:idx_schedule_barber_day" json:"day"`

	StartTime  string `gorm:"size:5" json:"start_time"`
	EndTime    string `gorm:"size:5" json:"end_time"`
	LunchStart string `gorm:"size:5" json:"lunch_start"`
	LunchEnd   string `gorm:"size:5" json:"lunch_end"`
	IsWorking  bool   `json:"is_working"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
