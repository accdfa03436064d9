package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Chidwan3578/Veridex-Local/internal/pkg/response"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			dbStatus = "down"
		}
	}
	cacheStatus := "ok"
	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			cacheStatus = "degraded"
		}
	}

	status := fiber.StatusOK
	if dbStatus != "ok" {
		status = fiber.StatusServiceUnavailable
	}

	data := map[string]string{
		"database": dbStatus,
		"cache":    cacheStatus,
	}
	return response.Success(c, status, response.MessageOK, data)
}
