package server

import (
	"fmt"

	"shipment-tracker/internal/core/config"
	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/core/metrics"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "shipment-tracker/docs/swagger"
)

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// cfg holds the application configuration.
	cfg *config.AppConfig
	// host and port form the listening address; an empty host binds all interfaces.
	host string
	port int
}

// New creates a new Server instance with configured middleware and the
// operational routes (/healthz, /metrics, /swagger). m may be nil.
func New(cfg *config.AppConfig, m *metrics.Metrics) *Server {
	app := newApp(logger.ServiceName)

	if m != nil {
		app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}

	app.Get("/swagger/*", swagger.HandlerDefault)

	return &Server{
		App:  app,
		cfg:  cfg,
		port: cfg.ServerPort,
	}
}

// NewAdmin creates the operator server on cfg.AdminPort. It carries no
// public routes; callers mount write endpoints on it.
func NewAdmin(cfg *config.AppConfig) *Server {
	return &Server{
		App:  newApp(logger.ServiceName + "-admin"),
		cfg:  cfg,
		host: cfg.AdminHost,
		port: cfg.AdminPort,
	}
}

func newApp(name string) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               name,
	})

	app.Use(requestid.New(requestid.Config{
		Header: "X-Ray-ID",
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/healthz" || c.Path() == "/metrics"
		},
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	return app
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	logger.Get().Info("Starting server", zap.String("app", s.App.Config().AppName), zap.String("address", addr))
	return s.App.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}
