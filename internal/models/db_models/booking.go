package db_models

import "github.com/google/uuid"

type Booking struct {
	BaseModel
	AccountID  uuid.UUID `gorm:"type:uuid;index"`
	Account    *Account  `gorm:"foreignKey:AccountID"`
	TourID     int       `gorm:"index"`
	TourName   string
	GuestCount int
	TravelDate int64
	Status     string `gorm:"default:confirmed"`
}
