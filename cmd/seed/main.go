package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/awaleed99/bite-back0/internal/config"
	dbpkg "github.com/awaleed99/bite-back0/internal/db"
	"github.com/awaleed99/bite-back0/internal/security"
	"github.com/awaleed99/bite-back0/internal/seed"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if cfg.IsProduction() {
		logger.Error("refusing to seed a production database")
		os.Exit(1)
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	sum, err := seed.Run(context.Background(), db, security.NewPasswordHasher(cfg.BcryptCost))
	if err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}

	logger.Info("seed completed",
		"users", sum.Users,
		"restaurants", sum.Restaurants,
		"menu_items", sum.MenuItems,
		"add_ons", sum.AddOns,
	)
	for _, u := range demoAccounts {
		logger.Info("demo account", "email", u[0], "password", u[1])
	}
}

var demoAccounts = [][2]string{
	{"admin@biteback.com", "Admin123!"},
	{"owner@restaurant.com", "Owner123!"},
	{"user@test.com", "User123!"},
}
