package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"lessonbook/internal/app"
	"lessonbook/internal/config"
	"lessonbook/internal/controller"
	"lessonbook/internal/controller/handlers"
	"lessonbook/internal/model"
	"lessonbook/internal/notify"
	"lessonbook/internal/repository"
	"lessonbook/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting lesson booking server",
		"environment", cfg.Environment,
		"http_addr", cfg.HTTPAddr,
		"db_path", cfg.DBPath)

	ctx := context.Background()

	// База данных: открываем файл, применяем миграции, засеиваем расписание.
	// Любая ошибка здесь фатальна — без схемы трафик не обслуживаем.
	db, err := app.OpenDB(cfg.DBPath)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	migrator, err := app.NewMigrator(db)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}

	slotRepo := repository.NewSlotRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	seeded, err := slotRepo.SeedWeeklyTemplate(ctx, model.WeeklyTemplate)
	if err != nil {
		logger.Fatal("Failed to seed weekly template", zap.Error(err))
	}
	if seeded > 0 {
		logger.Info("Weekly template seeded", zap.Int64("slots", seeded))
	}

	// Уведомления опциональны: без пары токен/чат работаем молча
	var notifier service.Notifier
	if cfg.NotificationsEnabled() {
		tg, err := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramAdminChatID, logger)
		if err != nil {
			logger.Fatal("Failed to create telegram notifier", zap.Error(err))
		}
		notifier = tg
		logger.Info("Telegram notifications enabled")
	}

	bookingService := service.NewBookingService(slotRepo, bookingRepo, notifier, logger)
	scheduleService := service.NewScheduleService(slotRepo, bookingRepo)

	pages := handlers.NewPages(bookingService, scheduleService, logger)
	router := controller.NewRouter(pages, cfg.Environment, logger)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()
	logger.Info("HTTP server started", zap.String("addr", cfg.HTTPAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}

	logger.Info("Server stopped")
}
