package main

import (
	"Crenza-Backend/internal/utils"
	"fmt"
	"os"
	"strings"
)

func main() {
	fmt.Println("Checking configuration...")

	utils.LoadConfig()
	if err := utils.ValidateConfig(); err != nil {
		fmt.Printf("Configuration is invalid:\n%v\n", err)
		os.Exit(1)
	}

	fmt.Println("Configuration is valid.")
	fmt.Println("Details:")
	fmt.Printf("  - App Port: %s\n", utils.GetConfig("APP_PORT"))
	fmt.Printf("  - Store Driver: %s\n", utils.GetConfig("STORE_DRIVER"))
	switch utils.GetConfig("STORE_DRIVER") {
	case utils.StorePostgres:
		fmt.Printf("  - DB Host: %s\n", utils.GetConfig("DB_HOST"))
		fmt.Printf("  - DB Port: %s\n", utils.GetConfig("DB_PORT"))
		fmt.Printf("  - DB User: %s\n", utils.GetConfig("DB_USER"))
		fmt.Printf("  - DB Password: %s\n", maskToken(utils.GetConfig("DB_PASSWORD")))
		fmt.Printf("  - DB Name: %s\n", utils.GetConfig("DB_NAME"))
	case utils.StoreSQLite:
		fmt.Printf("  - SQLite Path: %s\n", utils.GetConfig("SQLITE_PATH"))
	case utils.StoreBadger:
		fmt.Printf("  - Badger Path: %s\n", orUnset(utils.GetConfig("BADGER_PATH")))
	}
	fmt.Printf("  - Redis: %s\n", orUnset(utils.GetConfig("REDIS_HOST")))
	fmt.Printf("  - Alert Days: %s\n", utils.GetConfig("ALERT_DAYS"))
	fmt.Printf("  - Categories: %s\n", orUnset(strings.Join(utils.GetList("CATEGORIES"), ", ")))
	fmt.Printf("  - Default Diets: %s\n", orUnset(strings.Join(utils.GetList("DEFAULT_DIETS"), ", ")))
	fmt.Printf("  - SMTP Host: %s\n", orUnset(utils.GetConfig("SMTP_HOST")))
	fmt.Printf("  - SMTP Password: %s\n", maskToken(utils.GetConfig("SMTP_AUTH_PASSWORD")))
	fmt.Printf("  - S3 Bucket: %s\n", orUnset(utils.GetConfig("AWS_S3_BUCKET")))
	fmt.Printf("  - AWS Access Key: %s\n", maskToken(utils.GetConfig("AWS_ACCESS_KEY")))
	fmt.Printf("  - AWS Secret Key: %s\n", maskToken(utils.GetConfig("AWS_SECRET_KEY")))
}

func orUnset(value string) string {
	if value == "" {
		return "<not set>"
	}
	return value
}

func maskToken(token string) string {
	if token == "" {
		return "<not set>"
	}
	if len(token) <= 8 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
