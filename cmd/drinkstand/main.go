package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "drinkstand/internal"
	"drinkstand/internal/blob"
)

func main() {
	//decimals at json as string
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	cfg := NewConfig()
	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()

	ctx := context.Background()

	var store blob.Store
	switch cfg.StorageBackend {
	case "postgres":
		store, err = blob.NewPostgresStore(cfg.DatabaseURI)
	case "redis":
		store, err = blob.NewRedisStore(ctx, cfg.RedisAddr)
	case "memory":
		store = blob.NewMemStore()
	default:
		store, err = blob.NewFileStore(cfg.DataDir)
	}
	if err != nil {
		sugaredLogger.Fatal(err)
	}
	defer store.Close()

	service, err := NewService(ctx, store, cfg.AdminPassword, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}
	handlers := NewHandlers(service, sugaredLogger)

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))

	app.Post("/verify-admin", handlers.VerifyAdmin)

	app.Get("/drinks", handlers.ListDrinks)
	app.Post("/drinks", handlers.CreateDrink)
	app.Put("/drinks/:id", handlers.UpdateDrink)
	app.Delete("/drinks/:id", handlers.DeleteDrink)

	app.Get("/orders", handlers.ListOrders)
	app.Post("/orders", handlers.CreateOrder)
	app.Put("/orders/:id/prepared", handlers.MarkOrderPrepared)
	app.Put("/orders/:id/complete", handlers.MarkOrderReady)
	app.Put("/orders/:id/paid", handlers.MarkOrderPaid)

	app.Get("/statistics", handlers.Statistics)
	app.Post("/statistics/reset", handlers.ResetStatistics)

	go func() {
		if err := app.Listen(cfg.RunAddress); err != nil {
			sugaredLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("Shutting down service...")
}
