package entities

import (
	"github.com/google/uuid"
)

type Diet struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Position int       `gorm:"not null;default:0" json:"position"`

	Cells []*DietCell `gorm:"foreignKey:DietID;constraint:OnDelete:CASCADE"`
	Timestamp
}

// DietCell holds one written plan cell. An empty Content is a written cell,
// not a missing one.
type DietCell struct {
	DietID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"diet_id"`
	Key     string    `gorm:"primaryKey;size:64" json:"key"`
	Content string    `gorm:"type:text;not null;default:''" json:"content"`

	Diet *Diet `gorm:"foreignKey:DietID"`
	Timestamp
}
