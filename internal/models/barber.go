package models

import "time"

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	ShopName string `gorm:"size:100" json:"shop_name"`
	Address  string `gorm:"size:255" json:"address"`
	Bio      string `gorm:"size:500" json:"bio"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
