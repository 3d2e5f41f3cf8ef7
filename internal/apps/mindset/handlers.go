package mindset

import (
	"encoding/base64"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/dto"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/middleware"
	hubmindset "github.com/ahmetcoskunkizilkaya/soulful-hub/internal/mindset"
	"github.com/gofiber/fiber/v2"
)

type JournalResponse struct {
	Text string `json:"text"`
}

type ReflectionResponse struct {
	Prompt string `json:"prompt"`
}

type AffirmationsResponse struct {
	Affirmations []string `json:"affirmations"`
}

type SoundscapeRequest struct {
	Feeling string `json:"feeling"`
}

// SoundscapeResponse carries either a playable clip or a message. Audio is
// a base64 WAV file.
type SoundscapeResponse struct {
	Script     string `json:"script,omitempty"`
	Audio      string `json:"audio,omitempty"`
	DurationMs int64  `json:"durationMs,omitempty"`
	Message    string `json:"message,omitempty"`
}

type MindsetHandler struct {
	deps *apps.Deps
}

func NewMindsetHandler(deps *apps.Deps) *MindsetHandler {
	return &MindsetHandler{deps: deps}
}

// GetJournal handles GET /api/p/mindset/journal
func (h *MindsetHandler) GetJournal(c *fiber.Ctx) error {
	text, err := h.deps.Journal.Get(c.UserContext(), middleware.GetIdentity(c))
	if err != nil {
		slog.Error("journal read failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load your journal",
		})
	}
	return c.JSON(JournalResponse{Text: text})
}

// SaveJournal handles PUT /api/p/mindset/journal
func (h *MindsetHandler) SaveJournal(c *fiber.Ctx) error {
	var req dto.TextRequest
	if err := c.BodyParser(&req); err != nil {
		return apps.InvalidBody(c)
	}
	if err := h.deps.Journal.Save(c.UserContext(), middleware.GetIdentity(c), req.Text); err != nil {
		slog.Error("journal save failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save your journal",
		})
	}
	return c.JSON(JournalResponse{Text: req.Text})
}

// Reflection handles POST /api/p/mindset/reflection. The prompt draws on
// the saved journal and the connected platforms.
func (h *MindsetHandler) Reflection(c *fiber.Ctx) error {
	rec, ok, err := apps.Record(c, h.deps)
	if !ok {
		return err
	}
	journal, err := h.deps.Journal.Get(c.UserContext(), middleware.GetIdentity(c))
	if err != nil {
		slog.Warn("journal unavailable for reflection", "error", err)
	}
	prompt := h.deps.Advisor.Reflection(c.UserContext(), rec.PlatformPerformance, journal, h.deps.Onboarding())
	return c.JSON(ReflectionResponse{Prompt: prompt})
}

// Affirmations handles GET /api/p/mindset/affirmations
func (h *MindsetHandler) Affirmations(c *fiber.Ctx) error {
	return c.JSON(AffirmationsResponse{
		Affirmations: hubmindset.DailyAffirmations(h.deps.Clock()),
	})
}

// Soundscape handles POST /api/p/mindset/soundscape
func (h *MindsetHandler) Soundscape(c *fiber.Ctx) error {
	var req SoundscapeRequest
	if err := c.BodyParser(&req); err != nil {
		return apps.InvalidBody(c)
	}
	feeling := strings.TrimSpace(req.Feeling)
	if feeling == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Tell me how you're feeling",
		})
	}

	s := h.deps.Advisor.Soundscape(c.UserContext(), feeling)
	resp := SoundscapeResponse{Script: s.Script, Message: s.Message}
	if s.Clip != nil {
		resp.Audio = base64.StdEncoding.EncodeToString(s.Clip.WAV())
		resp.DurationMs = s.Clip.Duration().Milliseconds()
	}
	return c.JSON(resp)
}
