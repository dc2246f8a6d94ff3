package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travel-booking/config"
	"travel-booking/database"
	"travel-booking/database/seeders"
	"travel-booking/logger"
	"travel-booking/middleware"
	"travel-booking/routes"
	"travel-booking/services/notify"
	"travel-booking/storage"
	"travel-booking/types"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration: " + err.Error())
	}
	logger.Setup(cfg.LogLevel)

	backend, err := openBackend(cfg)
	if err != nil {
		logger.Fatal("Failed to initialise storage: " + err.Error())
	}
	store := storage.New(backend)

	if cfg.SeedCatalog {
		if err := seeders.SeedCatalog(context.Background(), store); err != nil {
			logger.Error("Failed to seed catalog", err)
		}
	}

	asyncLogger := logger.NewAsyncLogger(store)
	go asyncLogger.ProcessLog()

	var sender notify.Sender
	if cfg.ResendAPIKey != "" && cfg.NotifyFrom != "" {
		sender = notify.NewResendSender(cfg.ResendAPIKey, cfg.NotifyFrom)
	} else {
		logger.Warning("RESEND_API_KEY or NOTIFY_FROM not set, submission emails are disabled")
	}
	notifier := notify.New(sender, cfg.NotifyTo)

	app := fiber.New(fiber.Config{
		ReadBufferSize:  32768, // 32KB read buffer
		WriteBufferSize: 32768, // 32KB write buffer
		ReadTimeout:     time.Second * 30,
		WriteTimeout:    time.Second * 30,
		BodyLimit:       4 * 1024 * 1024,
		ErrorHandler:    errorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Admin-Token",
		AllowCredentials: cfg.FrontendURL != "*",
	}))
	app.Use(middleware.LogRequests(asyncLogger))

	routes.SetupRoutes(app, cfg, store, notifier)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Info("Shutting down server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error("Server shutdown failed", err)
		}
	}()

	logger.Success("Server is running on ip: " + cfg.AppHost + " port: " + cfg.AppPort)
	if err := app.Listen(cfg.Address()); err != nil {
		logger.Error("Server stopped", err)
	}

	notifier.Wait()
	asyncLogger.Close()
}

func openBackend(cfg *config.Config) (storage.Backend, error) {
	if cfg.StorageDriver == "memory" {
		logger.Warning("Using in-memory storage, data is lost on restart")
		return storage.NewMemoryBackend(), nil
	}
	db, err := database.InitDB(cfg)
	if err != nil {
		return nil, err
	}
	return database.NewBackend(db), nil
}

// errorHandler answers errors that escaped a handler with the usual envelope
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	} else {
		logger.Error("Unhandled error on "+c.Method()+" "+c.OriginalURL(), err)
	}

	return c.Status(code).JSON(types.ApiResponse{
		Message: message,
		Status:  code,
	})
}
