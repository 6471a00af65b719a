package routes

import (
	"Crenza-Backend/domain"
	"Crenza-Backend/internal/api/handlers"
	"Crenza-Backend/internal/api/presenters"
	"Crenza-Backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"time"
)

type Config struct {
	App             *fiber.App
	PantryHandler   handlers.PantryHandler
	ShoppingHandler handlers.ShoppingHandler
	DietHandler     handlers.DietHandler
	SettingsHandler handlers.SettingsHandler
	Middleware      middleware.Middleware
	RequestTimeout  time.Duration
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.RecoverMiddleware())
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()

	api := c.App.Group("/api/v1", c.Middleware.TimeoutMiddleware(c.RequestTimeout))
	c.Pantries(api)
	c.Shopping(api)
	c.Diets(api)
	c.Settings(api)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(ctx *fiber.Ctx) error {
		return presenters.SuccessResponse(ctx, nil, fiber.StatusOK, domain.MessageSuccessPing)
	})
}

func (c *Config) Pantries(api fiber.Router) {
	pantries := api.Group("/pantries")
	{
		pantries.Get("", c.PantryHandler.GetInventory)
		pantries.Get("/stats", c.PantryHandler.GetStats)
		pantries.Post("", c.PantryHandler.CreatePantry)
		pantries.Patch("/:id", c.PantryHandler.RenamePantry)
		pantries.Delete("/:id", c.PantryHandler.DeletePantry)
		pantries.Post("/:id/select", c.PantryHandler.SelectPantry)

		pantries.Post("/:id/items", c.PantryHandler.AddItem)
		pantries.Delete("/:id/items", c.PantryHandler.ClearPantry)
		pantries.Delete("/:id/items/:itemId", c.PantryHandler.RemoveItem)
		pantries.Post("/:id/items/:itemId/restock", c.PantryHandler.RestockItem)
	}
}

func (c *Config) Shopping(api fiber.Router) {
	shopping := api.Group("/shopping")
	{
		shopping.Get("", c.ShoppingHandler.GetShoppingList)
		shopping.Post("", c.ShoppingHandler.AddEntry)
		shopping.Delete("", c.ShoppingHandler.ClearShoppingList)
		shopping.Delete("/:id", c.ShoppingHandler.RemoveEntry)
		shopping.Patch("/:id/toggle", c.ShoppingHandler.ToggleEntry)
		shopping.Post("/:id/transfer", c.ShoppingHandler.TransferEntry)
	}
}

func (c *Config) Diets(api fiber.Router) {
	diets := api.Group("/diets")
	{
		diets.Get("", c.DietHandler.GetDiets)
		diets.Post("", c.DietHandler.CreateDiet)
		diets.Patch("/:id", c.DietHandler.RenameDiet)
		diets.Delete("/:id", c.DietHandler.DeleteDiet)
		diets.Post("/:id/select", c.DietHandler.SelectDiet)
		diets.Put("/:id/plan", c.DietHandler.SetPlanCell)
		diets.Delete("/:id/plan", c.DietHandler.ClearPlan)
	}
}

func (c *Config) Settings(api fiber.Router) {
	api.Get("/settings", c.SettingsHandler.GetSettings)
	api.Put("/settings", c.SettingsHandler.UpdateSettings)
	api.Post("/settings/reset", c.SettingsHandler.ResetHousehold)
	api.Post("/alerts/expiry", c.SettingsHandler.SendExpiryReport)
	api.Post("/backups", c.SettingsHandler.ExportBackup)
	api.Delete("/backups", c.SettingsHandler.DeleteBackup)
}
