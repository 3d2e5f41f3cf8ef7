package hub

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	return &config.Config{
		DBDriver:   backend,
		SQLitePath: filepath.Join(t.TempDir(), "hub.db"),
		JWTSecret:  "test-secret",
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), testConfig(t, "redis"))
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestOpen_MemoryStartsLoggedOut(t *testing.T) {
	h, err := Open(context.Background(), testConfig(t, BackendMemory))
	require.NoError(t, err)
	defer h.Close()

	assert.False(t, h.Identity.LoggedIn())
	assert.False(t, h.Data.Ready())
	assert.Len(t, h.Platforms.All(), 7)
}

func TestOpen_SQLiteResumesSession(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, BackendSQLite)

	h, err := Open(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, h.Identity.Login(ctx, "maya@example.com"))
	require.NoError(t, h.Data.AddWin(ctx, "Shipped the planner"))
	require.NoError(t, h.Close())

	h, err = Open(ctx, cfg)
	require.NoError(t, err)
	defer h.Close()

	assert.Equal(t, "maya@example.com", h.Identity.Current())
	rec, ok := h.Data.Snapshot()
	require.True(t, ok)
	require.Len(t, rec.Wins, 1)
	assert.Equal(t, "Shipped the planner", rec.Wins[0].Text)
}
