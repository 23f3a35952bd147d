package app

import (
	"context"
	"log"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/database"
	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/internal/infrastructure/cache"
	"jobboard/internal/notify"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/repository"
	"jobboard/internal/ws"
)

// Container owns the process-lifetime dependencies: the connection pool, the
// cache client, the websocket hub and the notification dispatcher built on
// top of them.
type Container struct {
	Config     config.Config
	DB         database.DB
	Cache      *cache.Redis
	Hub        *ws.Hub
	JWT        jwt.Service
	Dispatcher notify.Dispatcher
	Logger     *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.Default()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.Bootstrap(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	hub := ws.NewHub(logger)
	dispatcher := notify.NewService(repository.NewPostgresNotificationRepository(db), hub, logger)

	return &Container{
		Config:     cfg,
		DB:         db,
		Cache:      cache.NewRedis(cfg.Redis, logger),
		Hub:        hub,
		JWT:        jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn),
		Dispatcher: dispatcher,
		Logger:     logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			c.Logger.Printf("Cache close error | err=%v", err)
		}
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
