package routes

import (
	"beverage-kg/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	health      *handler.HealthHandler
	synonyms    *handler.SynonymHandler
	resolve     *handler.ResolveHandler
	publication *handler.PublicationHandler
}

func NewRegistry(
	health *handler.HealthHandler,
	synonyms *handler.SynonymHandler,
	resolve *handler.ResolveHandler,
	publication *handler.PublicationHandler,
) *Registry {
	return &Registry{health: health, synonyms: synonyms, resolve: resolve, publication: publication}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health == nil {
		return
	}
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.synonyms, r.resolve, r.publication)
}
