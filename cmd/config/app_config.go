package config

import (
	"Crenza-Backend/internal/api/handlers"
	"Crenza-Backend/internal/api/routes"
	"Crenza-Backend/internal/middleware"
	"Crenza-Backend/internal/utils"
	"Crenza-Backend/internal/utils/mailing"
	"Crenza-Backend/internal/utils/storage"
	"Crenza-Backend/pkg/alert"
	"Crenza-Backend/pkg/backup"
	"Crenza-Backend/pkg/diet"
	"Crenza-Backend/pkg/household"
	"Crenza-Backend/pkg/pantry"
	"Crenza-Backend/pkg/settings"
	"Crenza-Backend/pkg/shopping"
	"Crenza-Backend/pkg/transfer"
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

const requestTimeout = 10 * time.Second

func NewApp(stores Stores) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Europe/Rome",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	var mailer mailing.Mailer
	if m, err := mailing.NewMailer(mailing.LoadMailConfig()); err != nil {
		log.Warnw("expiry alerts disabled", "error", err)
	} else {
		mailer = m
	}

	var s3 storage.AwsS3
	if cfg := storage.LoadS3Config(); cfg.Configured() {
		s3, err = storage.NewAwsS3(context.Background(), cfg)
		if err != nil {
			log.Warnw("backups disabled", "error", err)
			s3 = nil
		}
	} else {
		log.Warn("backups disabled: AWS_S3_BUCKET or AWS_S3_REGION not set")
	}

	// Managers
	pantryManager := pantry.NewManager(
		pantry.NewCategories(utils.GetList("CATEGORIES")),
		utils.GetConfig("DEFAULT_PANTRY_NAME"),
	)
	shoppingManager := shopping.NewManager()
	dietManager := diet.NewManager(utils.GetList("DEFAULT_DIETS"))

	// Service
	// One lock for every aggregate.
	lock := &sync.Mutex{}
	vocabulary := settings.Vocabulary{
		Categories: pantryManager.Categories,
		Days:       diet.Days,
		Meals:      diet.Meals,
	}
	pantryService := pantry.NewPantryService(stores.Pantries, stores.Settings, pantryManager, lock)
	shoppingService := shopping.NewShoppingService(stores.Shopping, shoppingManager, lock)
	dietService := diet.NewDietService(stores.Diets, dietManager, lock)
	settingsService := settings.NewSettingsService(stores.Settings, vocabulary, lock)
	transferService := transfer.NewTransferService(
		stores.Pantries,
		stores.Shopping,
		stores.Settings,
		transfer.NewWorkflow(pantryManager, shoppingManager),
		lock,
	)
	alertService := alert.NewAlertService(stores.Pantries, stores.Settings, mailer, time.Now, lock)
	backupService := backup.NewBackupService(backup.Repositories{
		Pantries: stores.Pantries,
		Shopping: stores.Shopping,
		Diets:    stores.Diets,
		Settings: stores.Settings,
	}, s3, time.Now, lock)
	householdService := household.NewHouseholdService(household.Repositories{
		Pantries: stores.Pantries,
		Shopping: stores.Shopping,
		Diets:    stores.Diets,
		Settings: stores.Settings,
	}, pantryManager, dietManager, settings.Default(utils.GetInt("ALERT_DAYS", settings.DefaultAlertDays)), vocabulary, lock)

	// Handler
	pantryHandler := handlers.NewPantryHandler(pantryService, transferService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, transferService, validator)
	dietHandler := handlers.NewDietHandler(dietService, validator)
	settingsHandler := handlers.NewSettingsHandler(settingsService, alertService, backupService, householdService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		PantryHandler:   pantryHandler,
		ShoppingHandler: shoppingHandler,
		DietHandler:     dietHandler,
		SettingsHandler: settingsHandler,
		Middleware:      middlewares,
		RequestTimeout:  requestTimeout,
	}
	routesConfig.Setup()
	return app, nil
}
