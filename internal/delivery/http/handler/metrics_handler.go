package handler

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
)

type MetricsHandler struct {
	h http.Handler
}

func NewMetricsHandler(h http.Handler) *MetricsHandler {
	return &MetricsHandler{h: h}
}

func (h *MetricsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/metrics", h.Serve)
}

// Serve bridges the net/http exposition handler onto fiber.
func (h *MetricsHandler) Serve(c fiber.Ctx) error {
	if h == nil || h.h == nil {
		return fiber.ErrServiceUnavailable
	}
	return adaptor.HTTPHandler(h.h)(c)
}
