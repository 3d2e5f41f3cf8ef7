package dashboard

import (
	"context"
	"errors"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/dto"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/mindset"
	"github.com/gofiber/fiber/v2"
)

const recentWins = 5

type SummaryResponse struct {
	DisplayName        string                   `json:"displayName"`
	IsNewUser          bool                     `json:"isNewUser"`
	IsSyncing          bool                     `json:"isSyncing"`
	ConnectedPlatforms []string                 `json:"connectedPlatforms"`
	AnalyticsSummary   appdata.AnalyticsSummary `json:"analyticsSummary"`
	GrowthData         []appdata.GrowthPoint    `json:"growthData"`
	FinancialSummary   appdata.FinancialSummary `json:"financialSummary"`
	NetProfit          float64                  `json:"netProfit"`
	RecentWins         []appdata.Win            `json:"recentWins"`
	Affirmations       []string                 `json:"affirmations"`
}

type DashboardHandler struct {
	deps *apps.Deps
}

func NewDashboardHandler(deps *apps.Deps) *DashboardHandler {
	return &DashboardHandler{deps: deps}
}

// Summary handles GET /api/p/dashboard
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	rec, ok, err := apps.Record(c, h.deps)
	if !ok {
		return err
	}
	return c.JSON(h.summary(rec))
}

func (h *DashboardHandler) summary(rec appdata.AppRecord) SummaryResponse {
	connected := rec.Connected(h.deps.Platforms.Names())
	return SummaryResponse{
		DisplayName:        h.deps.Identity.DisplayName(),
		IsNewUser:          len(connected) == 0,
		IsSyncing:          h.deps.Data.IsSyncing(),
		ConnectedPlatforms: connected,
		AnalyticsSummary:   rec.AnalyticsSummary,
		GrowthData:         rec.GrowthSeries,
		FinancialSummary:   rec.FinancialSummary,
		NetProfit:          rec.NetProfit(),
		RecentWins:         rec.RecentWins(recentWins),
		Affirmations:       mindset.DailyAffirmations(h.deps.Clock()),
	}
}

// AddWin handles POST /api/p/wins
func (h *DashboardHandler) AddWin(c *fiber.Ctx) error {
	var req dto.TextRequest
	if err := c.BodyParser(&req); err != nil {
		return apps.InvalidBody(c)
	}
	if err := h.deps.Data.AddWin(c.UserContext(), req.Text); err != nil {
		return apps.MutationError(c, "add_win", err)
	}

	rec, ok, err := apps.Record(c, h.deps)
	if !ok {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"wins": rec.RecentWins(recentWins),
	})
}

// Sync handles POST /api/p/sync. It waits for the refresh and answers
// with the updated dashboard.
func (h *DashboardHandler) Sync(c *fiber.Ctx) error {
	if err := h.deps.Data.SyncData(c.UserContext()); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{
				Error: true, Message: "Sync cancelled",
			})
		}
		return apps.MutationError(c, "sync_data", err)
	}

	rec, ok, err := apps.Record(c, h.deps)
	if !ok {
		return err
	}
	return c.JSON(h.summary(rec))
}
