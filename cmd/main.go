package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"cryptopulse-dashboard/config"
	"cryptopulse-dashboard/internal/alert"
	"cryptopulse-dashboard/internal/dashboard"
	"cryptopulse-dashboard/internal/database"
	"cryptopulse-dashboard/internal/market"
	"cryptopulse-dashboard/internal/metrics"
	"cryptopulse-dashboard/internal/notifier"
	"cryptopulse-dashboard/internal/server"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"
)

func init() {
	config.InitConfig()
	setupLogging()
}

func main() {
	gotext.Configure("locales", strings.ToLower(config.GetString("lang")), "default")

	err := database.InitDB(config.GetString("db_path"))
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	metrics.Default.LoadFromDB()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	state := dashboard.NewState()
	notifyService := notifier.NewTelegramNotifier(
		config.GetString("telegram_bot_token"),
		config.GetInt64("telegram_chat_id"),
	)
	deriver := alert.NewDeriver(notifyService)
	client := market.NewClient(config.GetString("api_base_url"), config.GetString("api_key"))
	refresher := dashboard.NewRefresher(
		client, deriver, state,
		time.Duration(config.GetInt("refresh_seconds"))*time.Second,
	)

	go refresher.Start(ctx)

	go func() {
		for {
			time.Sleep(5 * time.Minute)
			metrics.Default.SaveToDB()
		}
	}()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		cancel()
		metrics.Default.SaveToDB()
		database.CloseDB()
		log.Println("Metrics saved, shutting down...")
		os.Exit(0)
	}()

	srv := server.New(state)
	if err := srv.ListenAndServe(config.GetInt("port")); err != nil {
		log.Fatalf("Failed to start dashboard server: %v", err)
	}
}

func setupLogging() {
	log.SetLevel(log.InfoLevel)
	if config.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}
	log.Debug("Starting dashboard service...")
}
