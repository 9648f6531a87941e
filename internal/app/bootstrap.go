package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"placement-engine/internal/config"
	"placement-engine/internal/delivery/http/handler"
	"placement-engine/internal/delivery/http/middleware"
	"placement-engine/internal/delivery/http/routes"
	"placement-engine/internal/pkg/logger"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the fiber app around an already constructed container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:      c.Config.App.AppName,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	registerGlobalMiddleware(f, c)
	registry(c).Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(ctx context.Context, cfg config.Config, log logger.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	accessMw := middleware.NewAccessLogMiddleware(c.Logger, c.Metrics)
	errMw := middleware.NewErrorMiddleware(c.Logger)
	app.Use(accessMw.Middleware())
	app.Use(errMw.Middleware())
}

func registry(c *Container) *routes.Registry {
	return &routes.Registry{
		Health:          handler.NewHealthHandler(c.HealthChecks()),
		Metrics:         handler.NewMetricsHandler(c.Metrics.Handler()),
		Recommendations: handler.NewRecommendationHandler(c.Recommendations),
		Peers:           handler.NewPeerHandler(c.Peers),
		JobFit:          handler.NewJobFitHandler(c.JobFit),
	}
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
