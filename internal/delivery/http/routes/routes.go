package routes

import (
	"log"

	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/delivery/http/handler"
	v1 "jobboard/internal/delivery/http/routes/v1"
	"jobboard/internal/infrastructure/cache"
	"jobboard/internal/notify"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	deps   v1.Deps
	health *handler.HealthHandler
	wsh    *ws.Handler
}

func NewRegistry(
	cfg config.Config,
	db database.DB,
	c *cache.Redis,
	dispatcher notify.Dispatcher,
	jwtSvc jwt.Service,
	hub *ws.Hub,
	logger *log.Logger,
) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{
		deps: v1.Deps{
			Config:     cfg,
			DB:         db,
			Cache:      c,
			Dispatcher: dispatcher,
			JWT:        jwtSvc,
			Logger:     logger,
		},
		health: handler.NewHealthHandler(db),
		wsh:    ws.NewHandler(hub, jwtSvc, logger),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	app.Get("/ws/notifications", r.wsh.HandleNotificationsWS)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.deps)
}
