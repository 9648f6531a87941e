package routes

import (
	"placement-engine/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// Registry holds every handler the server exposes.
type Registry struct {
	Health          *handler.HealthHandler
	Metrics         *handler.MetricsHandler
	Recommendations *handler.RecommendationHandler
	Peers           *handler.PeerHandler
	JobFit          *handler.JobFitHandler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil || r == nil {
		return
	}

	r.registerOps(app)
	r.registerAPI(app)
}

func (r *Registry) registerOps(app *fiber.App) {
	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
	if r.Metrics != nil {
		r.Metrics.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r)
}
