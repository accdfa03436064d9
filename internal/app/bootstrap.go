package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/Chidwan3578/Veridex-Local/internal/config"
	"github.com/Chidwan3578/Veridex-Local/internal/delivery/http/handler"
	"github.com/Chidwan3578/Veridex-Local/internal/delivery/http/middleware"
	"github.com/Chidwan3578/Veridex-Local/internal/delivery/http/routes"
	"github.com/Chidwan3578/Veridex-Local/internal/ws"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container, the fiber app and the route tree, and
// starts the hub loop. The returned cleanup closes everything the container
// owns.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	errMw := middleware.NewErrorMiddleware()
	accessMw := middleware.NewAccessLogMiddleware(logger)
	authMw := middleware.NewAuthMiddleware(c.JWT)
	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())

	registry := routes.Registry{
		Auth:    handler.NewAuthHandler(c.Usecases.Auth),
		Profile: handler.NewProfileHandler(c.Usecases.Profile),
		Skill:   handler.NewSkillHandler(c.Usecases.Skill),
		Job:     handler.NewJobHandler(c.Usecases.Job),
		Match:   handler.NewMatchHandler(c.Usecases.Match, c.Usecases.Simulation),
		Health:  handler.NewHealthHandler(c.DB, c.Cache),
		WS:      ws.NewHandler(c.Hub, c.Usecases.Simulation, logger),
		AuthMW:  authMw,
	}
	registry.Register(f)

	go c.Hub.Run()

	cleanup := func() error {
		return c.Close()
	}
	return &App{Fiber: f, Container: c}, cleanup, nil
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
