package entities

import (
	"github.com/google/uuid"
	"time"
)

type Pantry struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Position int       `gorm:"not null;default:0" json:"position"`

	Items []*PantryItem `gorm:"foreignKey:PantryID;constraint:OnDelete:CASCADE"`
	Timestamp
}

// PantryItem mirrors the credenza table: missing code is stored as "N/A" and
// missing expiry as "N/D".
type PantryItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PantryID   uuid.UUID `gorm:"type:uuid;index;not null" json:"pantry_id"`
	Code       string    `gorm:"not null;default:'N/A'" json:"code"`
	Name       string    `gorm:"not null" json:"name"`
	Category   string    `gorm:"not null;default:'Altro'" json:"category"`
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`
	Price      float64   `gorm:"not null;default:0" json:"price"`
	Expiry     string    `gorm:"not null;default:'N/D'" json:"expiry"`
	InsertedAt time.Time `gorm:"type:timestamp" json:"inserted_at"`
	Position   int       `gorm:"not null;default:0" json:"position"`

	Pantry *Pantry `gorm:"foreignKey:PantryID"`
	Timestamp
}
