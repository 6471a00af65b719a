package settings_test

import (
	"Crenza-Backend/cmd/database/migrate"
	"Crenza-Backend/domain"
	"Crenza-Backend/pkg/settings"
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "crenza.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migration.Migrate(db))
	return db
}

func intPtr(v int) *int { return &v }

func TestSettingsDefaultsAndUpdate(t *testing.T) {
	ctx := context.Background()
	repo := settings.NewSettingsRepository(openTestDB(t), settings.Default(3))
	svc := settings.NewSettingsService(repo, settings.Vocabulary{
		Categories: []string{"Verdura", "Altro"},
		Days:       domain.Days,
		Meals:      domain.Meals,
	}, nil)

	got, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, got.AlertDays)
	assert.Equal(t, []string{"Verdura", "Altro"}, got.Categories)
	assert.Len(t, got.Days, 7)
	assert.Len(t, got.Meals, 5)

	got, err = svc.UpdateSettings(ctx, domain.UpdateSettingsRequest{AlertDays: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, 0, got.AlertDays)

	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.AlertDays)
}

func TestSettingsRejectsInvalidAlertDays(t *testing.T) {
	ctx := context.Background()
	repo := settings.NewSettingsRepository(openTestDB(t), settings.Default(3))
	svc := settings.NewSettingsService(repo, settings.Vocabulary{}, nil)

	_, err := svc.UpdateSettings(ctx, domain.UpdateSettingsRequest{AlertDays: intPtr(-2)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.UpdateSettings(ctx, domain.UpdateSettingsRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidAlertDays)

	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.AlertDays)
}

func TestDefaultClampsNegative(t *testing.T) {
	assert.Equal(t, settings.DefaultAlertDays, settings.Default(-1).AlertDays)
	assert.Equal(t, 5, settings.Default(5).AlertDays)
}
