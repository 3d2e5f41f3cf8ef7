package planner

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// NotesResponse carries the calendar notes keyed by day of month. Today
// is the day the "add to today" action writes to.
type NotesResponse struct {
	Today int            `json:"today"`
	Notes map[int]string `json:"notes"`
}

type IdeasResponse struct {
	Ideas string `json:"ideas"`
}

type PlannerHandler struct {
	deps *apps.Deps
}

func NewPlannerHandler(deps *apps.Deps) *PlannerHandler {
	return &PlannerHandler{deps: deps}
}

// Notes handles GET /api/p/planner/notes
func (h *PlannerHandler) Notes(c *fiber.Ctx) error {
	rec, ok, err := apps.Record(c, h.deps)
	if !ok {
		return err
	}
	return c.JSON(h.notes(rec))
}

func (h *PlannerHandler) notes(rec appdata.AppRecord) NotesResponse {
	return NotesResponse{Today: h.deps.Clock().Day(), Notes: rec.CalendarNotes}
}

// SetNote handles PUT /api/p/planner/notes/:day. A blank text clears the day.
func (h *PlannerHandler) SetNote(c *fiber.Ctx) error {
	day, err := c.ParamsInt("day")
	if err != nil {
		return apps.MutationError(c, "update_calendar_note", appdata.ErrInvalidDay)
	}
	var req dto.TextRequest
	if err := c.BodyParser(&req); err != nil {
		return apps.InvalidBody(c)
	}
	if err := h.deps.Data.UpdateCalendarNote(c.UserContext(), day, req.Text); err != nil {
		return apps.MutationError(c, "update_calendar_note", err)
	}
	return h.respond(c, fiber.StatusOK)
}

// AddToday handles POST /api/p/planner/notes/today
func (h *PlannerHandler) AddToday(c *fiber.Ctx) error {
	var req dto.TextRequest
	if err := c.BodyParser(&req); err != nil {
		return apps.InvalidBody(c)
	}
	if err := h.deps.Data.AddNoteForToday(c.UserContext(), req.Text); err != nil {
		return apps.MutationError(c, "add_note_for_today", err)
	}
	return h.respond(c, fiber.StatusCreated)
}

// Ideas handles POST /api/p/planner/ideas
func (h *PlannerHandler) Ideas(c *fiber.Ctx) error {
	var req dto.TextRequest
	if err := c.BodyParser(&req); err != nil {
		return apps.InvalidBody(c)
	}
	if strings.TrimSpace(req.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Tell me what you'd like ideas about",
		})
	}
	ideas := h.deps.Advisor.Ideas(c.UserContext(), req.Text, h.deps.Onboarding())
	return c.JSON(IdeasResponse{Ideas: ideas})
}

func (h *PlannerHandler) respond(c *fiber.Ctx, status int) error {
	rec, ok, err := apps.Record(c, h.deps)
	if !ok {
		return err
	}
	return c.Status(status).JSON(h.notes(rec))
}
