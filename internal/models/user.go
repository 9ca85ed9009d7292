package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName    string `gorm:"size:100;not null" json:"first_name"`
	LastName     string `gorm:"size:100" json:"last_name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'USER'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
