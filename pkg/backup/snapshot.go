package backup

import (
	"Crenza-Backend/pkg/diet"
	"Crenza-Backend/pkg/pantry"
	"Crenza-Backend/pkg/settings"
	"Crenza-Backend/pkg/shopping"
	"github.com/google/uuid"
	"time"
)

const (
	Folder      = "backups"
	ContentType = "application/json"
)

type Snapshot struct {
	ExportedAt     time.Time         `json:"exported_at"`
	Pantries       []pantry.Pantry   `json:"pantries"`
	ActivePantryID uuid.UUID         `json:"active_pantry_id"`
	ShoppingList   []shopping.Entry  `json:"shopping_list"`
	Diets          []diet.Diet       `json:"diets"`
	ActiveDietID   uuid.UUID         `json:"active_diet_id"`
	Settings       settings.Settings `json:"settings"`
}

func FileName(at time.Time) string {
	return "crenza-" + at.UTC().Format("20060102T150405Z") + ".json"
}
