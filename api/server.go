package api

import (
	"time"

	"github.com/CristiGvl/picoMemBar/internal/platform"
	"github.com/CristiGvl/picoMemBar/internal/status"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// Server represents the API server
type Server struct {
	app    *fiber.App
	module *status.Module
}

// NewServer creates a new API server serving the given memory module
func NewServer(module *status.Module) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           120 * time.Second,
		ServerHeader:          "picoMemBar",
		AppName:               "picoMemBar v1.0",
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		MaxAge:       86400, // 24 hours
	}))

	server := &Server{
		app:    app,
		module: module,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.app.Group("/api")

	api.Get("/memory", s.getMemory)
	api.Get("/memory/status", s.getMemoryStatus)

	// Health check
	api.Get("/health", s.healthCheck)
}

// App exposes the underlying fiber app
func (s *Server) App() *fiber.App {
	return s.app
}

// Start starts the API server
func (s *Server) Start(address string) error {
	return s.app.Listen(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// Health check endpoint
func (s *Server) healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"platform":  platform.GetOS(),
		"supported": platform.IsSupported(),
		"timestamp": time.Now().Unix(),
	})
}
