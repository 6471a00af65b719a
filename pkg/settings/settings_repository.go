package settings

import (
	"Crenza-Backend/entities"
	"Crenza-Backend/internal/utils"
	"context"
	"gorm.io/gorm"
	"strconv"
)

type (
	SettingsRepository interface {
		Load(ctx context.Context) (Settings, error)
		Save(ctx context.Context, s Settings) error
	}

	settingsRepository struct {
		db       *gorm.DB
		defaults Settings
	}
)

func NewSettingsRepository(db *gorm.DB, defaults Settings) SettingsRepository {
	return &settingsRepository{db: db, defaults: defaults}
}

func (r *settingsRepository) Load(ctx context.Context) (Settings, error) {
	s := r.defaults
	raw, ok, err := utils.LoadPreference(ctx, r.db, entities.PreferenceAlertDays)
	if err != nil {
		return s, utils.PersistenceError("load settings", err)
	}
	if !ok {
		return s, nil
	}
	if days, err := strconv.Atoi(raw); err == nil && days >= 0 {
		s.AlertDays = days
	}
	return s, nil
}

func (r *settingsRepository) Save(ctx context.Context, s Settings) error {
	err := utils.SavePreference(r.db.WithContext(ctx), entities.PreferenceAlertDays, strconv.Itoa(s.AlertDays))
	return utils.PersistenceError("save settings", err)
}
