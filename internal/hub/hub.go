// Package hub assembles the storage backend and the services on top of it.
// The server and the CLI share it.
package hub

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/advisor"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/config"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/database"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/gateway"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/identity"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/kvstore"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/mindset"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/theme"
)

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

type Hub struct {
	Config    *config.Config
	Backend   string
	KV        kvstore.Store
	Identity  *identity.Holder
	Data      *appdata.Store
	Platforms *catalog.Registry
	Advisor   *advisor.Advisor
	Themes    *theme.Service
	Journal   *mindset.Journal

	closers []func() error
}

// Open connects the configured backend, wires the services and resumes the
// last session.
func Open(ctx context.Context, cfg *config.Config) (*Hub, error) {
	h := &Hub{Config: cfg, Backend: cfg.DBDriver}

	if err := h.openBackend(); err != nil {
		return nil, err
	}

	platforms, err := catalog.LoadFromFile(cfg.PlatformsConfigPath)
	if err != nil {
		h.Close()
		return nil, fmt.Errorf("load platform catalog: %w", err)
	}
	h.Platforms = platforms

	h.Identity = identity.NewHolder(h.KV)
	h.Data = appdata.NewStore(h.KV, platforms, appdata.WithSyncDelay(cfg.SyncDelay))
	h.Data.Attach(h.Identity)
	h.Advisor = advisor.New(gateway.FromConfig(cfg), advisor.DefaultFallbacks())
	h.Themes = theme.NewService(h.KV)
	h.Journal = mindset.NewJournal(h.KV)

	if err := h.Identity.Restore(ctx); err != nil {
		h.Close()
		return nil, fmt.Errorf("restore session: %w", err)
	}
	slog.Info("hub ready",
		"backend", h.Backend,
		"platforms", len(platforms.All()),
		"identity", h.Identity.Current(),
	)
	return h, nil
}

func (h *Hub) openBackend() error {
	switch h.Backend {
	case BackendMemory:
		h.KV = kvstore.NewMemory()
	case BackendSQLite:
		db, err := kvstore.OpenSQLite(h.Config.SQLitePath)
		if err != nil {
			return err
		}
		h.KV = db
		h.closers = append(h.closers, db.Close)
	case BackendPostgres:
		if err := database.Connect(h.Config); err != nil {
			return err
		}
		h.closers = append(h.closers, database.Close)
		if err := database.Migrate(); err != nil {
			h.Close()
			return fmt.Errorf("migrate: %w", err)
		}
		h.KV = kvstore.NewGorm(database.DB)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, h.Backend)
	}
	return nil
}

// Deps exposes the services to the views.
func (h *Hub) Deps() *apps.Deps {
	return &apps.Deps{
		Config:    h.Config,
		Identity:  h.Identity,
		Data:      h.Data,
		Platforms: h.Platforms,
		Advisor:   h.Advisor,
		Themes:    h.Themes,
		Journal:   h.Journal,
		Now:       time.Now,
	}
}

// Close releases the backend in reverse order of opening.
func (h *Hub) Close() error {
	var errs []error
	for i := len(h.closers) - 1; i >= 0; i-- {
		errs = append(errs, h.closers[i]())
	}
	h.closers = nil
	return errors.Join(errs...)
}
