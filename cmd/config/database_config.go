package config

import (
	"Crenza-Backend/cmd/database/migrate"
	"Crenza-Backend/internal/utils"
	"Crenza-Backend/pkg/diet"
	"Crenza-Backend/pkg/pantry"
	"Crenza-Backend/pkg/settings"
	"Crenza-Backend/pkg/shopping"
	"Crenza-Backend/pkg/storage/cache"
	"Crenza-Backend/pkg/storage/kvstore"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"os"
	"path/filepath"
	"time"
)

// Stores holds one repository per aggregate. All four point at the same
// backend.
type Stores struct {
	Pantries pantry.PantryRepository
	Shopping shopping.ShoppingRepository
	Diets    diet.DietRepository
	Settings settings.SettingsRepository
}

func ConnectDB() (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver := utils.GetConfig("STORE_DRIVER"); driver {
	case utils.StorePostgres:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Europe/Rome",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
		)
		dialector = postgres.Open(dsn)
	case utils.StoreSQLite:
		path := utils.GetConfig("SQLITE_PATH")
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return nil, utils.PersistenceError("create sqlite directory", err)
			}
		}
		dialector = sqlite.Open(path)
	default:
		return nil, fmt.Errorf("STORE_DRIVER %q has no SQL database", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Errorf("Database connection failed: %v", err)
		return nil, utils.PersistenceError("connect database", err)
	}
	return db, nil
}

// OpenStores builds the repositories for STORE_DRIVER and, when REDIS_HOST
// is set, fronts them with the Redis cache. The returned close func releases
// every handle it opened.
func OpenStores() (Stores, func(), error) {
	defaults := settings.Default(utils.GetInt("ALERT_DAYS", settings.DefaultAlertDays))

	var (
		stores  Stores
		closers []func() error
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				log.Warnw("failed to close store", "error", err)
			}
		}
	}

	switch utils.GetConfig("STORE_DRIVER") {
	case utils.StoreBadger:
		db, err := kvstore.Open(utils.GetConfig("BADGER_PATH"))
		if err != nil {
			return Stores{}, closeAll, err
		}
		closers = append(closers, db.Close)
		stores = Stores{
			Pantries: kvstore.NewPantryStore(db),
			Shopping: kvstore.NewShoppingStore(db),
			Diets:    kvstore.NewDietStore(db),
			Settings: kvstore.NewSettingsStore(db, defaults),
		}
	default:
		db, err := ConnectDB()
		if err != nil {
			return Stores{}, closeAll, err
		}
		if sqlDB, err := db.DB(); err == nil {
			closers = append(closers, sqlDB.Close)
		}
		if err := migration.Migrate(db); err != nil {
			closeAll()
			return Stores{}, func() {}, utils.PersistenceError("migrate", err)
		}
		stores = Stores{
			Pantries: pantry.NewPantryRepository(db),
			Shopping: shopping.NewShoppingRepository(db),
			Diets:    diet.NewDietRepository(db),
			Settings: settings.NewSettingsRepository(db, defaults),
		}
	}

	if host := utils.GetConfig("REDIS_HOST"); host != "" {
		client, err := cache.NewClient(host, utils.GetConfig("REDIS_PORT"))
		if err != nil {
			log.Warnw("redis unavailable, running without cache", "error", err)
			return stores, closeAll, nil
		}
		closers = append(closers, client.Close)
		ttl := time.Duration(utils.GetInt("REDIS_TTL_SECONDS", int(cache.DefaultTTL.Seconds()))) * time.Second
		stores = Stores{
			Pantries: cache.Pantries(stores.Pantries, client, ttl),
			Shopping: cache.Shopping(stores.Shopping, client, ttl),
			Diets:    cache.Diets(stores.Diets, client, ttl),
			Settings: cache.Settings(stores.Settings, client, ttl),
		}
		log.Infow("redis cache enabled", "host", host, "ttl", ttl)
	}

	return stores, closeAll, nil
}
