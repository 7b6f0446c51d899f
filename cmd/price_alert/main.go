package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"staykedarnath/internal/config"
	"staykedarnath/internal/database"
	"staykedarnath/internal/modules/notify"
	"staykedarnath/internal/modules/wishlist"
	"staykedarnath/internal/repository"
)

// Run from cron. One pass over alert-enabled wishlist entries, then exit.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config load failed")
	}
	if cfg.DatabaseURL == "" {
		logrus.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("database connect failed")
	}

	sweep := wishlist.NewSweep(
		repository.NewWishlistRepository(db),
		notify.NewResendClient(cfg.ResendAPIKey),
		cfg.EmailFrom, cfg.EmailReplyTo,
		cfg.PriceAlertWindow,
		logrus.StandardLogger().Infof,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	res, err := sweep.Run(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("price alert sweep failed")
	}
	logrus.WithFields(logrus.Fields{
		"scanned": res.Scanned,
		"sent":    res.Sent,
		"skipped": res.Skipped,
		"failed":  res.Failed,
	}).Info("price alert sweep completed")
}
