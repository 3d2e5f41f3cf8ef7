package dashboard

import (
	"context"
	"net/http"
	"testing"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps/appstest"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_NewUser(t *testing.T) {
	h := appstest.New(t, New())

	resp := h.Do(t, http.MethodGet, "/api/p/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got SummaryResponse
	appstest.DecodeJSON(t, resp, &got)
	assert.Equal(t, "Maya", got.DisplayName)
	assert.True(t, got.IsNewUser)
	assert.False(t, got.IsSyncing)
	assert.Empty(t, got.ConnectedPlatforms)
	assert.Equal(t, "0k", got.AnalyticsSummary.TotalFollowers)
	assert.Len(t, got.GrowthData, 6)
	assert.Len(t, got.Affirmations, 3)
	assert.Zero(t, got.NetProfit)
}

func TestSummary_AfterConnect(t *testing.T) {
	h := appstest.New(t, New())
	require.NoError(t, h.Deps.Data.ConnectPlatform(context.Background(), "Stan Store"))

	var got SummaryResponse
	appstest.DecodeJSON(t, h.Do(t, http.MethodGet, "/api/p/dashboard", nil), &got)
	assert.False(t, got.IsNewUser)
	assert.Equal(t, []string{"Stan Store"}, got.ConnectedPlatforms)
	assert.Equal(t, "12.8k", got.AnalyticsSummary.TotalFollowers)
	assert.InDelta(t, 374.0, got.NetProfit, 0.001)
}

func TestAddWin_KeepsFiveMostRecent(t *testing.T) {
	h := appstest.New(t, New())

	for _, text := range []string{"one", "two", "three", "four", "five", "six"} {
		resp := h.Do(t, http.MethodPost, "/api/p/wins", dto.TextRequest{Text: text})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	var got SummaryResponse
	appstest.DecodeJSON(t, h.Do(t, http.MethodGet, "/api/p/dashboard", nil), &got)
	require.Len(t, got.RecentWins, 5)
	assert.Equal(t, "six", got.RecentWins[0].Text)
	assert.Len(t, h.Record(t).Wins, 6)
}

func TestAddWin_RejectsBlank(t *testing.T) {
	h := appstest.New(t, New())

	resp := h.Do(t, http.MethodPost, "/api/p/wins", dto.TextRequest{Text: "   "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
	assert.Empty(t, h.Record(t).Wins)
}

func TestSync_BumpsFollowers(t *testing.T) {
	h := appstest.New(t, New())
	require.NoError(t, h.Deps.Data.ConnectPlatform(context.Background(), "Instagram"))

	resp := h.Do(t, http.MethodPost, "/api/p/sync", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got SummaryResponse
	appstest.DecodeJSON(t, resp, &got)
	assert.Equal(t, "10.6k", got.AnalyticsSummary.TotalFollowers)
	assert.False(t, got.IsSyncing)
}

func TestRoutes_RejectStaleToken(t *testing.T) {
	h := appstest.New(t, New())
	_, err := h.Sessions.Login(context.Background(), &dto.LoginRequest{Email: "someone@else.com"})
	require.NoError(t, err)

	resp := h.Do(t, http.MethodGet, "/api/p/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
