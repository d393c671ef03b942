package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sansa-learn/config"
	"sansa-learn/db"
	"sansa-learn/handlers"
	"sansa-learn/middleware"
	"sansa-learn/session"
	"sansa-learn/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	sessions := session.NewStore(cfg.SessionTTL)
	stopPruning := sessions.StartPruning(1 * time.Hour)
	defer stopPruning()

	registrations := &handlers.RegistrationHandler{Store: store.NewPostgresStore(pool)}
	auth := &handlers.AuthHandler{
		Sessions:      sessions,
		AdminPassword: cfg.AdminPassword,
		SessionTTL:    cfg.SessionTTL,
		SecureCookies: cfg.IsProduction(),
	}
	admin := &handlers.AdminHandler{Pool: pool, DatabaseURL: cfg.DatabaseURL}

	app := fiber.New(fiber.Config{
		AppName: "Sansa Learn API",
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,DELETE,OPTIONS",
		AllowHeaders:     "*",
		AllowCredentials: true,
	}))

	requireAdmin := middleware.RequireAdmin(sessions)

	// Routes
	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", auth.Login)
	authGroup.Post("/logout", auth.Logout)
	authGroup.Get("/check", auth.Check)

	regs := api.Group("/registrations")
	regs.Post("/", registrations.Create)
	regs.Get("/", requireAdmin, registrations.List)
	regs.Get("/stats", requireAdmin, registrations.Stats)
	regs.Get("/export", requireAdmin, registrations.Export)
	regs.Get("/:id", registrations.Get)
	regs.Get("/:id/receipt", registrations.Receipt)
	regs.Delete("/:id", requireAdmin, registrations.Delete)

	adminGroup := api.Group("/admin")
	adminGroup.Post("/reset-db", requireAdmin, admin.ResetDatabase)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	// Prometheus exposition
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Shutting down server...")
		app.Shutdown()
	}()

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
