package analytics

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/advisor"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type OverviewResponse struct {
	AnalyticsSummary    appdata.AnalyticsSummary      `json:"analyticsSummary"`
	PlatformPerformance []appdata.PlatformPerformance `json:"platformPerformance"`
	GrowthData          []appdata.GrowthPoint         `json:"growthData"`
	ConnectedPlatforms  []string                      `json:"connectedPlatforms"`
}

type InsightResponse struct {
	Insight string `json:"insight"`
}

type AnalyticsHandler struct {
	deps *apps.Deps
}

func NewAnalyticsHandler(deps *apps.Deps) *AnalyticsHandler {
	return &AnalyticsHandler{deps: deps}
}

// Overview handles GET /api/p/analytics
func (h *AnalyticsHandler) Overview(c *fiber.Ctx) error {
	rec, ok, err := apps.Record(c, h.deps)
	if !ok {
		return err
	}
	return c.JSON(OverviewResponse{
		AnalyticsSummary:    rec.AnalyticsSummary,
		PlatformPerformance: rec.PlatformPerformance,
		GrowthData:          rec.GrowthSeries,
		ConnectedPlatforms:  rec.Connected(h.deps.Platforms.Names()),
	})
}

// Insights handles POST /api/p/analytics/insights. The answer is always
// showable; a failed call yields the analytics fallback.
func (h *AnalyticsHandler) Insights(c *fiber.Ctx) error {
	rec, ok, err := apps.Record(c, h.deps)
	if !ok {
		return err
	}
	insight := h.deps.Advisor.Insights(c.UserContext(), rec.PlatformPerformance, h.deps.Onboarding())
	return c.JSON(InsightResponse{Insight: insight})
}

// SaveInsight handles POST /api/p/analytics/insights/note. The insight is
// appended to today's planner note.
func (h *AnalyticsHandler) SaveInsight(c *fiber.Ctx) error {
	var req dto.TextRequest
	if err := c.BodyParser(&req); err != nil {
		return apps.InvalidBody(c)
	}
	if strings.TrimSpace(req.Text) == "" {
		return apps.MutationError(c, "save_insight", appdata.ErrEmptyNote)
	}
	if err := h.deps.Data.AddNoteForToday(c.UserContext(), advisor.InsightNotePrefix+req.Text); err != nil {
		return apps.MutationError(c, "save_insight", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Saved to today's planner"})
}
