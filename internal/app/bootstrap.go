package app

import (
	"fmt"
	"strings"

	"beverage-kg/internal/config"
	"beverage-kg/internal/delivery/http/handler"
	"beverage-kg/internal/delivery/http/middleware"
	"beverage-kg/internal/delivery/http/routes"
	"beverage-kg/internal/logger"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	log, err := logger.New(cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	c, err := NewContainer(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	app := New(c)
	cleanup := func() error {
		_ = log.Sync()
		return c.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	checks := []handler.HealthCheck{{Name: "redis", Pinger: c.Cache}}
	if c.DB != nil {
		checks = append(checks, handler.HealthCheck{Name: "postgres", Pinger: c.DB, Required: true})
	} else {
		checks = append(checks, handler.HealthCheck{Name: "postgres"})
	}

	routes.NewRegistry(
		handler.NewHealthHandler(checks...),
		handler.NewSynonymHandler(c.Synonyms),
		handler.NewResolveHandler(c.Resolve),
		handler.NewPublicationHandler(c.Publisher),
	).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
