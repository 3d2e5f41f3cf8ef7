// Package appstest wires a complete in-memory hub behind a Fiber app for
// view tests.
package appstest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"iter"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/advisor"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/config"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/dto"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/gateway"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/identity"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/kvstore"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/mindset"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/services"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/theme"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const User = "maya@example.com"

// Now is the pinned clock: Friday 2024-03-15 10:00 UTC.
var Now = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

// Generator is a scripted stand-in for the gateway client.
type Generator struct {
	mu sync.Mutex

	Text      string
	Err       error
	Script    string
	ScriptErr error
	Audio     string
	AudioErr  error
	Chunks    []string
	ChunkErr  error

	Prompts []string
	History []gateway.ChatMessage
}

func (g *Generator) record(prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Prompts = append(g.Prompts, prompt)
	return g.Text, g.Err
}

func (g *Generator) AnalyticsInsights(context.Context, []appdata.PlatformPerformance, *appdata.Onboarding) (string, error) {
	return g.record("analytics")
}

func (g *Generator) ReflectionPrompt(_ context.Context, _ []appdata.PlatformPerformance, journal string, _ *appdata.Onboarding) (string, error) {
	return g.record(journal)
}

func (g *Generator) ContentIdeas(_ context.Context, prompt string, _ *appdata.Onboarding) (string, error) {
	return g.record(prompt)
}

func (g *Generator) VisualMockup(_ context.Context, idea string) (string, error) {
	return g.record(idea)
}

func (g *Generator) SoundscapeScript(context.Context, string) (string, error) {
	return g.Script, g.ScriptErr
}

func (g *Generator) Speech(context.Context, string) (string, error) {
	return g.Audio, g.AudioErr
}

func (g *Generator) StreamChat(_ context.Context, history []gateway.ChatMessage, _ *appdata.Onboarding) iter.Seq2[string, error] {
	g.mu.Lock()
	g.History = append([]gateway.ChatMessage(nil), history...)
	g.mu.Unlock()
	return func(yield func(string, error) bool) {
		for _, c := range g.Chunks {
			if !yield(c, nil) {
				return
			}
		}
		if g.ChunkErr != nil {
			yield("", g.ChunkErr)
		}
	}
}

// LastHistory returns the history passed to the most recent chat.
func (g *Generator) LastHistory() []gateway.ChatMessage {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.History
}

type Harness struct {
	App      *fiber.App
	Deps     *apps.Deps
	KV       *kvstore.Memory
	Gen      *Generator
	Sessions *services.SessionService
	Token    string
}

// New builds the hub, logs User in and mounts plugins under /api/p.
func New(t *testing.T, plugins ...apps.Plugin) *Harness {
	t.Helper()

	cfg := &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
		SyncDelay: time.Millisecond,
	}
	kv := kvstore.NewMemory()
	holder := identity.NewHolder(kv)
	platforms := catalog.Default()
	data := appdata.NewStore(kv, platforms,
		appdata.WithClock(func() time.Time { return Now }),
		appdata.WithSyncDelay(cfg.SyncDelay),
	)
	data.Attach(holder)

	gen := &Generator{}
	deps := &apps.Deps{
		Config:    cfg,
		Identity:  holder,
		Data:      data,
		Platforms: platforms,
		Advisor:   advisor.New(gen, advisor.DefaultFallbacks()),
		Themes:    theme.NewService(kv),
		Journal:   mindset.NewJournal(kv),
		Now:       func() time.Time { return Now },
	}

	sessions := services.NewSessionService(cfg, holder, data)
	session, err := sessions.Login(context.Background(), &dto.LoginRequest{Email: User})
	require.NoError(t, err)

	app := fiber.New()
	protected := app.Group("/api/p", middleware.JWTProtected(cfg), middleware.CurrentIdentity(holder))
	for _, p := range plugins {
		p.RegisterRoutes(protected, deps)
	}

	return &Harness{
		App:      app,
		Deps:     deps,
		KV:       kv,
		Gen:      gen,
		Sessions: sessions,
		Token:    session.AccessToken,
	}
}

// Do sends an authenticated request. body is encoded as JSON unless nil.
func (h *Harness) Do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Authorization", "Bearer "+h.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.App.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// DecodeJSON reads resp into v and closes the body.
func DecodeJSON(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// Body reads resp as text and closes it.
func Body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

// Record returns the loaded app data.
func (h *Harness) Record(t *testing.T) appdata.AppRecord {
	t.Helper()
	rec, ok := h.Deps.Data.Snapshot()
	require.True(t, ok)
	return rec
}
