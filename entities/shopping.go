package entities

import (
	"github.com/google/uuid"
	"time"
)

type ShoppingEntry struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`
	Price      float64   `gorm:"not null;default:0" json:"price"`
	InsertedAt time.Time `gorm:"type:timestamp" json:"inserted_at"`
	Completed  bool      `gorm:"not null;default:false" json:"completed"`
	Position   int       `gorm:"not null;default:0" json:"position"`
	Timestamp
}
