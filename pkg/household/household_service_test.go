package household

import (
	"Crenza-Backend/domain"
	"Crenza-Backend/pkg/diet"
	"Crenza-Backend/pkg/pantry"
	"Crenza-Backend/pkg/settings"
	"Crenza-Backend/pkg/shopping"
	"Crenza-Backend/pkg/storage/kvstore"
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

type failingShopping struct{ err error }

func (f failingShopping) Load(ctx context.Context) (*shopping.List, error) {
	return &shopping.List{}, nil
}

func (f failingShopping) Save(ctx context.Context, list *shopping.List) error {
	return f.err
}

func seeded(t *testing.T) Repositories {
	t.Helper()
	db, err := kvstore.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	repos := Repositories{
		Pantries: kvstore.NewPantryStore(db),
		Shopping: kvstore.NewShoppingStore(db),
		Diets:    kvstore.NewDietStore(db),
		Settings: kvstore.NewSettingsStore(db, settings.Default(3)),
	}

	pm := pantry.NewManager(nil, "Cantina")
	inv := pm.NewInventory()
	_, err = pm.CreatePantry(inv, "Garage")
	require.NoError(t, err)
	_, err = pm.AddItem(inv, inv.ActiveID, pantry.ItemDraft{Name: "Vino"})
	require.NoError(t, err)
	require.NoError(t, repos.Pantries.Save(ctx, inv))

	list := &shopping.List{}
	_, err = shopping.NewManager().AddEntry(list, shopping.EntryDraft{Name: "Farina"})
	require.NoError(t, err)
	require.NoError(t, repos.Shopping.Save(ctx, list))

	dm := diet.NewManager(nil)
	book := dm.NewBook()
	_, err = dm.CreateDiet(book, "Dieta estiva")
	require.NoError(t, err)
	require.NoError(t, book.SetPlanCell(book.ActiveID, "Martedì", "Colazione", "Yogurt"))
	require.NoError(t, repos.Diets.Save(ctx, book))

	require.NoError(t, repos.Settings.Save(ctx, settings.Settings{AlertDays: 9}))
	return repos
}

func newService(repos Repositories) HouseholdService {
	return NewHouseholdService(
		repos,
		pantry.NewManager(nil, "Dispensa Principale"),
		diet.NewManager(nil),
		settings.Default(3),
		settings.Vocabulary{Categories: pantry.DefaultCategories, Days: diet.Days, Meals: diet.Meals},
		nil,
	)
}

func TestResetHouseholdRestoresDefaults(t *testing.T) {
	ctx := context.Background()
	repos := seeded(t)

	res, err := newService(repos).ResetHousehold(ctx)
	require.NoError(t, err)

	require.Len(t, res.Inventory.Pantries, 1)
	assert.Equal(t, "Dispensa Principale", res.Inventory.Pantries[0].Name)
	assert.Empty(t, res.Inventory.Pantries[0].Items)
	assert.Empty(t, res.ShoppingList.Entries)
	assert.Zero(t, res.ShoppingList.Total)
	require.Len(t, res.Diets.Diets, 2)
	assert.Equal(t, diet.DefaultNames[0], res.Diets.Diets[0].Name)
	assert.Empty(t, res.Diets.Diets[0].Plan)
	assert.Equal(t, 3, res.Settings.AlertDays)
	assert.Len(t, res.Settings.Days, 7)

	inv, err := repos.Pantries.Load(ctx)
	require.NoError(t, err)
	require.Len(t, inv.Pantries, 1)
	assert.Equal(t, res.Inventory.ActivePantryID, inv.ActiveID.String())

	list, err := repos.Shopping.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, list.Entries)

	book, err := repos.Diets.Load(ctx)
	require.NoError(t, err)
	require.Len(t, book.Diets, 2)
	assert.Equal(t, res.Diets.ActiveDietID, book.ActiveID.String())
	_, written := book.Cell(book.ActiveID, "Martedì", "Colazione")
	assert.False(t, written)

	current, err := repos.Settings.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, current.AlertDays)
}

func TestResetHouseholdStopsOnSaveFailure(t *testing.T) {
	ctx := context.Background()
	repos := seeded(t)
	boom := errors.New("disk full")
	broken := repos
	broken.Shopping = failingShopping{err: boom}

	_, err := newService(broken).ResetHousehold(ctx)
	require.ErrorIs(t, err, boom)

	book, err := repos.Diets.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, book.Diets, 3)

	current, err := repos.Settings.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, current.AlertDays)
}

func TestResetHouseholdErrorKinds(t *testing.T) {
	repos := seeded(t)
	repos.Shopping = failingShopping{err: domain.ErrPersistence}

	_, err := newService(repos).ResetHousehold(context.Background())
	assert.ErrorIs(t, err, domain.ErrPersistence)
}
