package commands

import (
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/api"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/config"
	apierrors "github.com/NYBSA/Loadmovegh-platform-sub000/internal/errors"
)

// newAssistantClient builds an API client from the saved configuration.
// Declared as a variable so tests can substitute a mock.
var newAssistantClient = func(cfg config.Config) (api.AssistantClient, error) {
	if cfg.AccessToken == "" {
		return nil, apierrors.NewUnauthorizedError("no access token configured; run 'loadmove-assistant config set-token'")
	}

	opts := []api.ClientOption{
		api.WithPageSize(cfg.PageSize),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, api.WithBaseURL(cfg.BaseURL))
	}
	return api.NewClient(cfg.AccessToken, cfg.TimeoutSeconds, opts...)
}

// loadConfigAndClient is the common preamble for commands that talk to the
// service.
func loadConfigAndClient() (config.Config, api.AssistantClient, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return cfg, nil, err
	}
	client, err := newAssistantClient(cfg)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, client, nil
}
