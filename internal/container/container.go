package container

import (
	"fmt"
	"log/slog"

	"github.com/ritu748888/boxcourt/internal/api"
	"github.com/ritu748888/boxcourt/internal/config"
	"github.com/ritu748888/boxcourt/internal/session"
)

// Container holds all application dependencies
type Container struct {
	Logger       *slog.Logger
	Config       *config.Config
	Client       *api.Client
	SessionStore *session.Store
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config) (*Container, error) {
	client, err := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, logger)
	if err != nil {
		return nil, fmt.Errorf("init api client: %w", err)
	}

	store, err := session.NewStore(cfg.SessionDir)
	if err != nil {
		return nil, fmt.Errorf("init session store: %w", err)
	}

	return &Container{
		Logger:       logger,
		Config:       cfg,
		Client:       client,
		SessionStore: store,
	}, nil
}
