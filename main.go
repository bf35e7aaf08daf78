package main

import (
	"os"

	"quickcart/internal/cli"
	"quickcart/internal/config"
	"quickcart/internal/logger"
	"quickcart/internal/services"
	"quickcart/internal/session"
	"quickcart/internal/store"
)

func main() {
	cfg := config.LoadConfig()

	log := logger.InitLogger(cfg.LogLevel)
	log.Info().Str("data_file", cfg.DataFile).Msg("QuickCart starting")

	st := store.Open(cfg.DataFile, log)

	users := services.NewUserService(st, log)
	catalog := services.NewCatalogService(st, log)
	orders := services.NewOrderService(st, log)

	users.SeedAdmin(cfg.AdminUsername, cfg.AdminPassword)

	menu := cli.NewMenu(users, catalog, orders, session.New(), os.Stdin, os.Stdout, log)
	menu.Run()

	log.Info().Msg("QuickCart stopped")
}
