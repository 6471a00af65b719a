package utils

import (
	"Crenza-Backend/entities"
	"context"
	"errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LoadPreference reports ok=false when the preference was never written.
func LoadPreference(ctx context.Context, db *gorm.DB, name string) (string, bool, error) {
	var pref entities.Preference
	err := db.WithContext(ctx).Where("name = ?", name).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return pref.Value, true, nil
}

func SavePreference(tx *gorm.DB, name, value string) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entities.Preference{Name: name, Value: value}).Error
}
