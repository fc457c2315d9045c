package main

import (
	"log"
	"path/filepath"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"mvp_studio_go/config"
	"mvp_studio_go/handlers"
	"mvp_studio_go/middleware"
	"mvp_studio_go/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Pick the email sender: in test mode leads are logged to the console
	// instead of dispatched through Resend
	var sender services.Sender
	if cfg.EmailTestMode {
		sender = services.LogSender{}
		log.Println("[INFO] Email test mode enabled: leads are logged, not sent. Set EMAIL_TEST_MODE=false to send.")
	} else {
		sender = services.NewResendSender(cfg.ResendAPIKey, cfg.SendTimeout)
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Health check endpoint
	e.GET("/health", handlers.HealthHandler)

	// Contact endpoint, rate limited per IP. Registered for every method
	// so non-POST verbs get the documented 405 body.
	contact := handlers.NewContact(cfg, sender)
	limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		PerMinute: cfg.RateLimitPerMinute,
	})
	e.Any("/api/contact", contact.Handle, limiter.Middleware())

	// Landing page assets
	e.File("/", filepath.Join(cfg.StaticDir, "index.html"))
	e.Static("/static", cfg.StaticDir)

	// Start server
	log.Printf("🚀 Server running on http://localhost:%s", cfg.ServerPort)
	if cfg.ResendAPIKey != "" {
		log.Printf("📧 Resend API Key: Configured")
	} else {
		log.Printf("📧 Resend API Key: Missing")
	}
	log.Printf("📩 Sending emails to: %s", cfg.EmailTo)

	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
