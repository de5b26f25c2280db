package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	fmt.Println("Homework Status Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logFile, err := logger.Init(cfg)
	if err != nil {
		log.Fatalf("FATAL: Could not initialize logger: %v", err)
	}
	defer logFile.Close()
	mainLogger := logger.Component("main")

	if !cfg.CheckCredentials() {
		missing := strings.Join(cfg.MissingCredentials(), ", ")
		mainLogger.WithError(&homework.Error{
			Kind: homework.KindConfiguration,
			Msg:  "Отсутствуют переменные окружения: " + missing,
		}).Fatal("Required environment variables are missing, refusing to start")
	}
	mainLogger.Infof("Configuration loaded. Environment: %s, retry interval: %s", cfg.Environment, cfg.RetryInterval)

	// The bot only sends; no poller is started on it.
	bot, err := telebot.NewBot(telebot.Settings{
		Token: cfg.TelegramToken,
		OnError: func(err error, _ telebot.Context) {
			logger.Component("telebot").WithError(err).Error("Telegram bot error")
		},
	})
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}

	notifier := telegram.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, logger.Component("notifier"))
	apiClient := practicum.NewClient(cfg.PracticumAPIURL, cfg.PracticumToken, cfg.RequestTimeout, logger.Component("practicum"))
	pollScheduler := scheduler.NewPollScheduler(scheduler.Every(cfg.RetryInterval), logger.Component("scheduler"))

	poller := app.NewPoller(apiClient, notifier, pollScheduler, logger.Component("poller"), time.Now())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mainLogger.Info("Application setup complete. Poll loop is starting...")
	if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		mainLogger.WithError(err).Error("Poll loop exited unexpectedly")
		os.Exit(1)
	}
	mainLogger.Info("Application shut down gracefully.")
}
