package routes

import (
	"Crenza-Backend/domain"
	"Crenza-Backend/internal/api/handlers"
	"Crenza-Backend/internal/middleware"
	"Crenza-Backend/internal/utils"
	"Crenza-Backend/pkg/alert"
	"Crenza-Backend/pkg/backup"
	"Crenza-Backend/pkg/diet"
	"Crenza-Backend/pkg/household"
	"Crenza-Backend/pkg/pantry"
	"Crenza-Backend/pkg/settings"
	"Crenza-Backend/pkg/shopping"
	"Crenza-Backend/pkg/storage/kvstore"
	"Crenza-Backend/pkg/transfer"
	"encoding/json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := kvstore.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	utils.InitValidator()
	validator := utils.Validate
	lock := &sync.Mutex{}

	pantries := kvstore.NewPantryStore(db)
	list := kvstore.NewShoppingStore(db)
	diets := kvstore.NewDietStore(db)
	prefs := kvstore.NewSettingsStore(db, settings.Default(3))

	pantryManager := pantry.NewManager(pantry.DefaultCategories, "Dispensa Principale")
	shoppingManager := shopping.NewManager()
	dietManager := diet.NewManager(nil)
	vocabulary := settings.Vocabulary{
		Categories: pantryManager.Categories,
		Days:       diet.Days,
		Meals:      diet.Meals,
	}

	pantryService := pantry.NewPantryService(pantries, prefs, pantryManager, lock)
	shoppingService := shopping.NewShoppingService(list, shoppingManager, lock)
	dietService := diet.NewDietService(diets, dietManager, lock)
	settingsService := settings.NewSettingsService(prefs, vocabulary, lock)
	transferService := transfer.NewTransferService(pantries, list, prefs, transfer.NewWorkflow(pantryManager, shoppingManager), lock)
	alertService := alert.NewAlertService(pantries, prefs, nil, time.Now, lock)
	backupService := backup.NewBackupService(backup.Repositories{
		Pantries: pantries,
		Shopping: list,
		Diets:    diets,
		Settings: prefs,
	}, nil, time.Now, lock)
	householdService := household.NewHouseholdService(household.Repositories{
		Pantries: pantries,
		Shopping: list,
		Diets:    diets,
		Settings: prefs,
	}, pantryManager, dietManager, settings.Default(3), vocabulary, lock)

	app := fiber.New()
	cfg := Config{
		App:             app,
		PantryHandler:   handlers.NewPantryHandler(pantryService, transferService, validator),
		ShoppingHandler: handlers.NewShoppingHandler(shoppingService, transferService, validator),
		DietHandler:     handlers.NewDietHandler(dietService, validator),
		SettingsHandler: handlers.NewSettingsHandler(settingsService, alertService, backupService, householdService, validator),
		Middleware:      middleware.NewMiddleware(),
		RequestTimeout:  5 * time.Second,
	}
	cfg.Setup()
	return app
}

func call(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func TestPing(t *testing.T) {
	app := newTestApp(t)

	status, env := call(t, app, fiber.MethodGet, "/api/ping", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Status)
	assert.Equal(t, domain.MessageSuccessPing, env.Message)
}

func TestPantryRoutes(t *testing.T) {
	app := newTestApp(t)

	status, env := call(t, app, fiber.MethodGet, "/api/v1/pantries", "")
	require.Equal(t, fiber.StatusOK, status)
	inv := decode[domain.InventoryResponse](t, env)
	require.Len(t, inv.Pantries, 1)
	assert.Equal(t, "Dispensa Principale", inv.Pantries[0].Name)
	pantryID := inv.Pantries[0].ID

	status, env = call(t, app, fiber.MethodPost, "/api/v1/pantries/"+pantryID+"/items",
		`{"name":"Latte","category":"Latticini","quantity":"2","price":"1,50"}`)
	require.Equal(t, fiber.StatusCreated, status, env.Error)
	inv = decode[domain.InventoryResponse](t, env)
	require.Len(t, inv.Pantries[0].Items, 1)
	item := inv.Pantries[0].Items[0]
	assert.Equal(t, 2, item.Quantity)
	assert.InDelta(t, 1.5, item.Price, 1e-9)

	status, env = call(t, app, fiber.MethodGet, "/api/v1/pantries/stats", "")
	require.Equal(t, fiber.StatusOK, status)
	stats := decode[domain.InventoryStatsResponse](t, env)
	assert.Equal(t, 1, stats.TotalItems)
	assert.InDelta(t, 3.0, stats.TotalValue, 1e-9)

	status, env = call(t, app, fiber.MethodPost, "/api/v1/pantries/"+pantryID+"/items/"+item.ID+"/restock", "")
	require.Equal(t, fiber.StatusCreated, status, env.Error)
	restock := decode[domain.RestockResponse](t, env)
	assert.Equal(t, "Latte", restock.Entry.Name)
	assert.Equal(t, 1, restock.Entry.Quantity)

	status, env = call(t, app, fiber.MethodDelete, "/api/v1/pantries/"+pantryID+"/items/"+item.ID, "")
	require.Equal(t, fiber.StatusOK, status)
	inv = decode[domain.InventoryResponse](t, env)
	assert.Empty(t, inv.Pantries[0].Items)
}

func TestPantryErrorMapping(t *testing.T) {
	app := newTestApp(t)

	_, env := call(t, app, fiber.MethodGet, "/api/v1/pantries", "")
	pantryID := decode[domain.InventoryResponse](t, env).Pantries[0].ID

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"malformed body", fiber.MethodPost, "/api/v1/pantries", `{"name":`, fiber.StatusBadRequest},
		{"missing name", fiber.MethodPost, "/api/v1/pantries", `{"name":""}`, fiber.StatusBadRequest},
		{"blank name", fiber.MethodPost, "/api/v1/pantries", `{"name":"   "}`, fiber.StatusBadRequest},
		{"bad uuid", fiber.MethodDelete, "/api/v1/pantries/not-a-uuid", "", fiber.StatusBadRequest},
		{"unknown category", fiber.MethodPost, "/api/v1/pantries/" + pantryID + "/items", `{"name":"Sale","category":"Spezie"}`, fiber.StatusBadRequest},
		{"bad expiry", fiber.MethodPost, "/api/v1/pantries/" + pantryID + "/items", `{"name":"Sale","expiry":"31/12/2025"}`, fiber.StatusBadRequest},
		{"last pantry", fiber.MethodDelete, "/api/v1/pantries/" + pantryID, "", fiber.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := call(t, app, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, status)
			assert.False(t, env.Status)
			assert.NotEmpty(t, env.Error)
		})
	}
}

func TestShoppingTransferRoute(t *testing.T) {
	app := newTestApp(t)

	_, env := call(t, app, fiber.MethodGet, "/api/v1/pantries", "")
	pantryID := decode[domain.InventoryResponse](t, env).Pantries[0].ID

	status, env := call(t, app, fiber.MethodPost, "/api/v1/shopping", `{"name":"Pasta","quantity":3,"price":"0.90"}`)
	require.Equal(t, fiber.StatusCreated, status, env.Error)
	list := decode[domain.ShoppingListResponse](t, env)
	require.Len(t, list.Entries, 1)
	assert.InDelta(t, 2.7, list.Total, 1e-9)
	entryID := list.Entries[0].ID

	status, env = call(t, app, fiber.MethodPatch, "/api/v1/shopping/"+entryID+"/toggle", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.True(t, decode[domain.ShoppingListResponse](t, env).Entries[0].Completed)

	body := `{"pantry_id":"` + pantryID + `","category":"Pasta/Riso","expiry":"2030-01-01"}`
	status, env = call(t, app, fiber.MethodPost, "/api/v1/shopping/"+entryID+"/transfer", body)
	require.Equal(t, fiber.StatusOK, status, env.Error)
	res := decode[domain.TransferResponse](t, env)
	assert.Equal(t, "Pasta", res.Item.Name)
	assert.Equal(t, 3, res.Item.Quantity)
	assert.Empty(t, res.ShoppingList.Entries)
	assert.Len(t, res.Inventory.Pantries[0].Items, 1)

	status, env = call(t, app, fiber.MethodPost, "/api/v1/shopping/"+entryID+"/transfer", body)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.False(t, env.Status)

	status, env = call(t, app, fiber.MethodGet, "/api/v1/pantries", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[domain.InventoryResponse](t, env).Pantries[0].Items, 1)
}

func TestDietRoutes(t *testing.T) {
	app := newTestApp(t)

	status, env := call(t, app, fiber.MethodGet, "/api/v1/diets", "")
	require.Equal(t, fiber.StatusOK, status)
	diets := decode[domain.DietsResponse](t, env)
	require.Len(t, diets.Diets, 2)
	dietID := diets.ActiveDietID

	status, env = call(t, app, fiber.MethodPut, "/api/v1/diets/"+dietID+"/plan", `{"day":"Lunedì","meal":"Pranzo","text":"Pasta al pomodoro"}`)
	require.Equal(t, fiber.StatusOK, status, env.Error)
	diets = decode[domain.DietsResponse](t, env)
	assert.Equal(t, "Pasta al pomodoro", diets.Diets[0].Plan[diet.CellKey("Lunedì", "Pranzo")])

	status, _ = call(t, app, fiber.MethodPut, "/api/v1/diets/"+dietID+"/plan", `{"day":"Monday","meal":"Pranzo"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = call(t, app, fiber.MethodPut, "/api/v1/diets/018f0000-0000-7000-8000-000000000000/plan", `{"day":"Lunedì","meal":"Cena"}`)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, env = call(t, app, fiber.MethodDelete, "/api/v1/diets/"+dietID+"/plan", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, decode[domain.DietsResponse](t, env).Diets[0].Plan)
}

func TestSettingsRoutes(t *testing.T) {
	app := newTestApp(t)

	status, env := call(t, app, fiber.MethodGet, "/api/v1/settings", "")
	require.Equal(t, fiber.StatusOK, status)
	current := decode[domain.SettingsResponse](t, env)
	assert.Equal(t, 3, current.AlertDays)
	assert.Contains(t, current.Categories, pantry.DefaultCategory)

	status, env = call(t, app, fiber.MethodPut, "/api/v1/settings", `{"alert_days":7}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 7, decode[domain.SettingsResponse](t, env).AlertDays)

	status, _ = call(t, app, fiber.MethodPut, "/api/v1/settings", `{"alert_days":-1}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = call(t, app, fiber.MethodPost, "/api/v1/alerts/expiry", `{"email":"not-an-email"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, env = call(t, app, fiber.MethodPost, "/api/v1/alerts/expiry", `{"email":"casa@example.com"}`)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Contains(t, env.Error, "SMTP is not configured")

	status, _ = call(t, app, fiber.MethodPost, "/api/v1/backups", "")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}

func TestResetHouseholdRoute(t *testing.T) {
	app := newTestApp(t)

	_, env := call(t, app, fiber.MethodGet, "/api/v1/pantries", "")
	oldPantryID := decode[domain.InventoryResponse](t, env).Pantries[0].ID
	status, _ := call(t, app, fiber.MethodPost, "/api/v1/pantries", `{"name":"Garage"}`)
	require.Equal(t, fiber.StatusCreated, status)
	status, _ = call(t, app, fiber.MethodPost, "/api/v1/shopping", `{"name":"Caffè"}`)
	require.Equal(t, fiber.StatusCreated, status)
	status, _ = call(t, app, fiber.MethodPut, "/api/v1/settings", `{"alert_days":10}`)
	require.Equal(t, fiber.StatusOK, status)

	status, env = call(t, app, fiber.MethodPost, "/api/v1/settings/reset", "")
	require.Equal(t, fiber.StatusOK, status, env.Error)
	assert.Equal(t, domain.MessageSuccessResetHousehold, env.Message)
	res := decode[domain.ResetHouseholdResponse](t, env)
	require.Len(t, res.Inventory.Pantries, 1)
	assert.NotEqual(t, oldPantryID, res.Inventory.ActivePantryID)
	assert.Empty(t, res.ShoppingList.Entries)
	assert.Len(t, res.Diets.Diets, 2)
	assert.Equal(t, 3, res.Settings.AlertDays)

	_, env = call(t, app, fiber.MethodGet, "/api/v1/pantries", "")
	inv := decode[domain.InventoryResponse](t, env)
	require.Len(t, inv.Pantries, 1)
	assert.Equal(t, res.Inventory.ActivePantryID, inv.ActivePantryID)

	_, env = call(t, app, fiber.MethodGet, "/api/v1/shopping", "")
	assert.Empty(t, decode[domain.ShoppingListResponse](t, env).Entries)

	_, env = call(t, app, fiber.MethodGet, "/api/v1/settings", "")
	assert.Equal(t, 3, decode[domain.SettingsResponse](t, env).AlertDays)
}

func TestDeleteBackupRoute(t *testing.T) {
	app := newTestApp(t)

	status, _ := call(t, app, fiber.MethodDelete, "/api/v1/backups", `{"link":"not a link"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, env := call(t, app, fiber.MethodDelete, "/api/v1/backups",
		`{"link":"https://crenza.s3.eu-south-1.amazonaws.com/backups/crenza-20250310T080000Z.json"}`)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.False(t, env.Status)
}
