package cli

import (
	"fmt"

	"github.com/oratioflow/prayerwall/internal/api"
	"github.com/oratioflow/prayerwall/internal/config"
	"github.com/oratioflow/prayerwall/internal/logger"
	"github.com/oratioflow/prayerwall/internal/session"
	"github.com/oratioflow/prayerwall/internal/wall"
)

// app bundles the wired-up client pieces every command needs: preferences,
// the session and the wall mirror, all over one API client.
type app struct {
	cfg     *config.Config
	store   *session.Store
	session *session.Session
	client  *api.Client
	wall    *wall.Wall
}

// newApp wires the client stack. The session store doubles as the API
// client's token source, so whatever login state is on disk is picked up
// here.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("Failed to load config, using defaults", logger.F("error", err))
		cfg = config.DefaultConfig()
	}

	storePath, err := session.DefaultStorePath()
	if err != nil {
		return nil, fmt.Errorf("failed to locate session store: %w", err)
	}

	store := session.Open(storePath)
	client := api.NewClient(cfg.ServerURL, store)

	return &app{
		cfg:     cfg,
		store:   store,
		session: session.New(client, store),
		client:  client,
		wall:    wall.New(client),
	}, nil
}

// requireAuth fails fast with a hint when no token is held. The server
// still has the final say; this only saves a doomed round-trip.
func (a *app) requireAuth() error {
	if !a.session.IsAuthenticated() {
		return fmt.Errorf("not logged in (run 'prayerwall auth login' first)")
	}
	return nil
}
