package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"sharebnb/internal/config"
	"sharebnb/internal/database"
	"sharebnb/internal/handlers"
	"sharebnb/internal/logging"
	"sharebnb/internal/mailer"
	"sharebnb/internal/repository"
	"sharebnb/internal/service"
	"sharebnb/internal/session"
	"sharebnb/internal/storage"
)

func main() {
	commandFlag := flag.String("command", "start", "Command to run: start or seed")
	flag.Parse()

	logging.Setup()
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database init failed", "error", err)
		os.Exit(1)
	}

	switch *commandFlag {
	case "start":
		startServer(cfg, db)
	case "seed":
		if err := database.Seed(db); err != nil {
			slog.Error("seed failed", "error", err)
			os.Exit(1)
		}
		slog.Info("database seeded")
	default:
		slog.Error("unknown command", "command", *commandFlag)
		os.Exit(1)
	}
}

func startServer(cfg *config.Config, db *gorm.DB) {
	redisClient, err := session.NewRedisClient(cfg)
	if err != nil {
		slog.Error("redis init failed", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	sessions := session.NewStore(redisClient, cfg.SessionTTL)

	store, err := storage.NewS3Storage(context.Background(), cfg)
	if err != nil {
		slog.Error("object storage init failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	listingRepo := repository.NewListingRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	notifier := mailer.New(cfg.EmailAPIKey, cfg.EmailSender)
	if !notifier.Enabled() {
		slog.Info("email notifications disabled: no EMAIL_API_KEY")
	}

	h := handlers.New(
		service.NewAuthService(userRepo, notifier),
		service.NewListingService(listingRepo, bookingRepo, userRepo, notifier),
		service.NewPhotoService(photoRepo, listingRepo, store),
		service.NewMessageService(messageRepo, listingRepo),
		userRepo,
		sessions,
		cfg.SessionTTL,
		cfg.LoginRatePerMinute,
		cfg.LoginRateBurst,
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(requestLogger())
	h.Register(e)

	slog.Info("server starting", "port", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:  true,
		LogMethod:  true,
		LogURI:     true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			slog.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
			)
			return nil
		},
	})
}
