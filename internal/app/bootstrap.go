package app

import (
	"fmt"
	"strings"

	"jobboard/internal/config"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())

	registry := routes.NewRegistry(c.Config, c.DB, c.Cache, c.Dispatcher, c.JWT, c.Hub, c.Logger)
	registry.Register(f)

	return &App{Fiber: f, Container: c}
}

// Bootstrap builds the container and the fiber app on top of it. The cleanup
// function releases everything the container owns.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := New(container)
	return app, container.Close, nil
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
