package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"catalog/internal/config"
	"catalog/internal/database"
	"catalog/internal/handlers"
	"catalog/internal/logging"
	"catalog/internal/middleware"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/pkg/rabbitmq"
)

const healthCheckTimeout = 2 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	log := logging.New(cfg.LogLevel, cfg.JSONLogs)

	db, err := database.Open(cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize database")
	}

	// --- Product events (optional) ---
	var events services.ProductEventPublisher
	if cfg.RabbitMQ.URL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQ.URL, Queue: cfg.RabbitMQ.Queue}, log)
		if err != nil {
			log.WithError(err).Fatal("Failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()
		events = mqClient

		if err := mqClient.ConsumeProductEvents(auditProductEvent(log)); err != nil {
			log.WithError(err).Error("Failed to start product event consumer")
		}
	} else {
		log.Info("RABBITMQ_URL is empty, product events are disabled")
	}

	app := newApp(cfg, db, events, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.WithField("addr", cfg.AppPort).Info("Starting server")
		if err := app.Listen(cfg.AppPort); err != nil {
			log.WithError(err).Fatal("Server failed to start")
		}
	}()

	<-quit
	log.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		log.WithError(err).Error("Error during Fiber shutdown")
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Info("Server gracefully stopped")
}

// newApp wires repository, service and handler into a Fiber app.
// events may be nil; a non-empty JWT secret guards the write routes.
func newApp(cfg config.Config, db *gorm.DB, events services.ProductEventPublisher, log *logrus.Logger) *fiber.App {
	productRepo := repositories.NewGORMProductRepository(db)
	productService := services.NewProductService(productRepo, events, log)
	productHandler := handlers.NewProductHandler(productService)

	app := fiber.New(fiber.Config{
		AppName:      "catalog",
		ErrorHandler: handlers.NewErrorHandler(log),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(log))
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", healthCheck(db))

	var writeGuards []fiber.Handler
	if cfg.JWTSecret != "" {
		tokens := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
		writeGuards = append(writeGuards, middleware.AuthRequired(tokens, log))
	} else {
		log.Warn("JWT_SECRET is empty, product write routes are public")
	}
	productHandler.RegisterRoutes(app, writeGuards...)

	return app
}

func healthCheck(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
		defer cancel()

		status, database, code := "healthy", "up", fiber.StatusOK
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			status, database, code = "unhealthy", "down", fiber.StatusServiceUnavailable
		}

		return c.Status(code).JSON(fiber.Map{
			"status":   status,
			"database": database,
			"time":     time.Now().Format(time.RFC3339),
		})
	}
}

// auditProductEvent logs every product event read back from the queue.
func auditProductEvent(log logrus.FieldLogger) func(models.ProductEvent) error {
	return func(event models.ProductEvent) error {
		log.WithFields(logrus.Fields{
			"event":       event.Type,
			"product_id":  event.ProductID,
			"sku":         event.SKU,
			"occurred_at": event.OccurredAt,
		}).Info("product event")
		return nil
	}
}
