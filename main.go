package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"

	"ecoleadmin_backend/internals/configs"
	database "ecoleadmin_backend/internals/databases"
	scheduler "ecoleadmin_backend/internals/features/users/auth/scheduler"
	middlewares "ecoleadmin_backend/internals/middlewares"
	routes "ecoleadmin_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	// middleware de base + performance
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// Request-ID + chrono (observabilité légère)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		// garde-fou HTTP (aligné sur le statement_timeout côté DB)
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	// nettoyage périodique de la blacklist de tokens
	scheduler.StartBlacklistCleanupScheduler(database.DB)

	// Health check (anti cold-start)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	routes.SetupRoutes(app, database.DB)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnvOr("PORT", "3000")

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// arrêt gracieux + fermeture du pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
