package main

import (
	"Crenza-Backend/cmd/config"
	"Crenza-Backend/internal/utils"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	utils.LoadConfig()
	if err := utils.ValidateConfig(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	stores, closeStores, err := config.OpenStores()
	if err != nil {
		closeStores()
		log.Fatalf("failed to open store: %v", err)
	}
	defer closeStores()

	app, err := config.NewApp(stores)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Errorf("shutdown failed: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", utils.GetConfig("APP_PORT"))
	if err := app.Listen(addr); err != nil {
		log.Errorf("server stopped: %v", err)
	}
}
