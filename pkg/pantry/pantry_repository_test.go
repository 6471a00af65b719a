package pantry

import (
	migration "Crenza-Backend/cmd/database/migrate"
	"Crenza-Backend/entities"
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

func TestPantryRepositoryEmptyLoad(t *testing.T) {
	inv, err := NewPantryRepository(openTestDB(t)).Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, inv.Pantries)
}

func TestPantryRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewPantryRepository(db)
	m := testManager()

	inv := m.NewInventory()
	fridge, err := m.CreatePantry(inv, "Frigo")
	require.NoError(t, err)
	inv.SelectPantry(fridge.ID)
	milk, err := m.AddItem(inv, fridge.ID, ItemDraft{Name: "Latte", Category: "Latticini", Expiry: "2025-03-12", Quantity: ptr(2), Price: ptr(1.29)})
	require.NoError(t, err)
	bread, err := m.AddItem(inv, fridge.ID, ItemDraft{Name: "Pane"})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, inv))

	var row entities.PantryItem
	require.NoError(t, db.Where("id = ?", bread.ID).First(&row).Error)
	assert.Equal(t, "N/A", row.Code)
	assert.Equal(t, "N/D", row.Expiry)
	assert.Equal(t, "Altro", row.Category)

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Pantries, 2)
	assert.Equal(t, fridge.ID, got.ActiveID)
	assert.Equal(t, "Dispensa Principale", got.Pantries[0].Name)

	items := got.Pantries[1].Items
	require.Len(t, items, 2)
	assert.Equal(t, milk.ID, items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1.29, items[0].Price)
	assert.Equal(t, "2025-03-12", items[0].Expiry.Format("2006-01-02"))
	assert.Empty(t, items[1].Barcode)
	assert.Nil(t, items[1].Expiry)

	require.NoError(t, got.DeletePantry(fridge.ID))
	require.NoError(t, repo.Save(ctx, got))

	var count int64
	require.NoError(t, db.Model(&entities.PantryItem{}).Count(&count).Error)
	assert.Zero(t, count)

	again, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, again.Pantries, 1)
	assert.Equal(t, again.Pantries[0].ID, again.ActiveID)
}

func ptr(v float64) *float64 { return &v }
