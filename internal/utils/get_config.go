package utils

import (
	"errors"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
	"os"
	"strconv"
	"strings"
)

const (
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
	StoreBadger   = "badger"
)

type Config struct {
	// Server configuration
	AppPort     string `yaml:"APP_PORT"`
	StoreDriver string `yaml:"STORE_DRIVER"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	SQLitePath string `yaml:"SQLITE_PATH"`
	BadgerPath string `yaml:"BADGER_PATH"`

	// Redis cache, disabled when REDIS_HOST is empty
	RedisHost       string `yaml:"REDIS_HOST"`
	RedisPort       string `yaml:"REDIS_PORT"`
	RedisTTLSeconds string `yaml:"REDIS_TTL_SECONDS"`

	// Household defaults
	AlertDays         string   `yaml:"ALERT_DAYS"`
	DefaultPantryName string   `yaml:"DEFAULT_PANTRY_NAME"`
	Categories        []string `yaml:"CATEGORIES"`
	DefaultDiets      []string `yaml:"DEFAULT_DIETS"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		AppPort:           "8080",
		StoreDriver:       StoreSQLite,
		DBPort:            "5432",
		SQLitePath:        "crenza.db",
		BadgerPath:        "data/badger",
		RedisPort:         "6379",
		RedisTTLSeconds:   "600",
		AlertDays:         "3",
		DefaultPantryName: "Dispensa Principale",
		SMTPPort:          "587",
	}
}

// LoadConfig reads .env, then config.yaml (or CONFIG_PATH), then lets
// environment variables override any scalar key. CATEGORIES and
// DEFAULT_DIETS accept a comma separated list from the environment.
func LoadConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("Error reading .env file: %s", err)
	}

	cfg := defaultConfig()
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	if file, err := os.ReadFile(path); err != nil {
		log.Warnf("Error reading YAML file: %s", err)
	} else if err := yaml.Unmarshal(file, &cfg); err != nil {
		log.Errorf("Error parsing YAML file: %s", err)
	}

	for key, field := range cfg.scalars() {
		if value, ok := os.LookupEnv(key); ok {
			*field = value
		}
	}
	if value, ok := os.LookupEnv("CATEGORIES"); ok {
		cfg.Categories = splitList(value)
	}
	if value, ok := os.LookupEnv("DEFAULT_DIETS"); ok {
		cfg.DefaultDiets = splitList(value)
	}

	config = cfg
}

func (c *Config) scalars() map[string]*string {
	return map[string]*string{
		"APP_PORT":            &c.AppPort,
		"STORE_DRIVER":        &c.StoreDriver,
		"DB_USER":             &c.DBUser,
		"DB_NAME":             &c.DBName,
		"DB_PASSWORD":         &c.DBPassword,
		"DB_PORT":             &c.DBPort,
		"DB_HOST":             &c.DBHost,
		"SQLITE_PATH":         &c.SQLitePath,
		"BADGER_PATH":         &c.BadgerPath,
		"REDIS_HOST":          &c.RedisHost,
		"REDIS_PORT":          &c.RedisPort,
		"REDIS_TTL_SECONDS":   &c.RedisTTLSeconds,
		"ALERT_DAYS":          &c.AlertDays,
		"DEFAULT_PANTRY_NAME": &c.DefaultPantryName,
		"SMTP_HOST":           &c.SMTPHost,
		"SMTP_PORT":           &c.SMTPPort,
		"SMTP_SENDER_NAME":    &c.SMTPSenderName,
		"SMTP_AUTH_EMAIL":     &c.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD":  &c.SMTPAuthPassword,
		"AWS_S3_BUCKET":       &c.AWSS3Bucket,
		"AWS_S3_REGION":       &c.AWSS3Region,
		"AWS_ACCESS_KEY":      &c.AWSAccessKey,
		"AWS_SECRET_KEY":      &c.AWSSecretKey,
	}
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func GetConfig(key string) string {
	if field, ok := config.scalars()[key]; ok {
		return *field
	}
	return ""
}

// GetList returns CATEGORIES or DEFAULT_DIETS; other keys yield nil.
func GetList(key string) []string {
	switch key {
	case "CATEGORIES":
		return append([]string(nil), config.Categories...)
	case "DEFAULT_DIETS":
		return append([]string(nil), config.DefaultDiets...)
	default:
		return nil
	}
}

// GetInt parses key, returning fallback when it is unset or malformed.
func GetInt(key string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(GetConfig(key)))
	if err != nil {
		return fallback
	}
	return n
}

// ValidateConfig reports every problem at once.
func ValidateConfig() error {
	var errs []error
	if _, err := strconv.Atoi(config.AppPort); err != nil {
		errs = append(errs, fmt.Errorf("APP_PORT %q is not a port number", config.AppPort))
	}
	switch config.StoreDriver {
	case StorePostgres:
		for _, key := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_NAME"} {
			if GetConfig(key) == "" {
				errs = append(errs, fmt.Errorf("%s is required when STORE_DRIVER is postgres", key))
			}
		}
	case StoreSQLite:
		if config.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required when STORE_DRIVER is sqlite"))
		}
	case StoreBadger:
	default:
		errs = append(errs, fmt.Errorf("STORE_DRIVER %q must be one of postgres, sqlite, badger", config.StoreDriver))
	}
	if days, err := strconv.Atoi(config.AlertDays); err != nil || days < 0 {
		errs = append(errs, fmt.Errorf("ALERT_DAYS %q must be a non-negative integer", config.AlertDays))
	}
	if config.RedisHost != "" {
		if _, err := strconv.Atoi(config.RedisTTLSeconds); err != nil {
			errs = append(errs, fmt.Errorf("REDIS_TTL_SECONDS %q is not a number", config.RedisTTLSeconds))
		}
	}
	return errors.Join(errs...)
}
