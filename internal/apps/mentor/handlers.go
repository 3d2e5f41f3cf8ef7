package mentor

import (
	"bufio"
	"context"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/advisor"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/dto"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/gateway"
	"github.com/gofiber/fiber/v2"
)

type ChatRequest struct {
	Messages []gateway.ChatMessage `json:"messages"`
}

type CompassRequest struct {
	Goal string `json:"goal"`
}

type GreetingResponse struct {
	Greeting string `json:"greeting"`
}

// ReplyResponse is returned instead of a stream when the caller asks for
// ?stream=false.
type ReplyResponse struct {
	Reply    string `json:"reply"`
	Fallback bool   `json:"fallback"`
}

type MentorHandler struct {
	deps *apps.Deps
}

func NewMentorHandler(deps *apps.Deps) *MentorHandler {
	return &MentorHandler{deps: deps}
}

// Greeting handles GET /api/p/mentor/greeting
func (h *MentorHandler) Greeting(c *fiber.Ctx) error {
	return c.JSON(GreetingResponse{
		Greeting: advisor.Greeting(h.deps.Identity.DisplayName(), h.deps.Onboarding()),
	})
}

// Chat handles POST /api/p/mentor/chat. messages is the whole conversation
// ending with the new user message.
func (h *MentorHandler) Chat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return apps.InvalidBody(c)
	}
	if msg := validateHistory(req.Messages); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: msg})
	}
	return h.reply(c, req.Messages)
}

// Compass handles POST /api/p/mentor/compass, opening a guided session
// for the given goal.
func (h *MentorHandler) Compass(c *fiber.Ctx) error {
	var req CompassRequest
	if err := c.BodyParser(&req); err != nil {
		return apps.InvalidBody(c)
	}
	goal := strings.TrimSpace(req.Goal)
	if goal == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "A goal is required",
		})
	}
	history := []gateway.ChatMessage{{Role: gateway.RoleUser, Text: advisor.CompassPrompt(goal)}}
	return h.reply(c, history)
}

// SaveNote handles POST /api/p/mentor/note
func (h *MentorHandler) SaveNote(c *fiber.Ctx) error {
	var req dto.TextRequest
	if err := c.BodyParser(&req); err != nil {
		return apps.InvalidBody(c)
	}
	if strings.TrimSpace(req.Text) == "" {
		return apps.MutationError(c, "save_mentor_note", appdata.ErrEmptyNote)
	}
	if err := h.deps.Data.AddNoteForToday(c.UserContext(), advisor.MentorNotePrefix+req.Text); err != nil {
		return apps.MutationError(c, "save_mentor_note", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Saved to today's planner"})
}

func (h *MentorHandler) reply(c *fiber.Ctx, history []gateway.ChatMessage) error {
	ob := h.deps.Onboarding()

	if c.Query("stream") == "false" {
		text, fallback := h.deps.Advisor.Reply(c.UserContext(), history, ob)
		return c.JSON(ReplyResponse{Reply: text, Fallback: fallback})
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	// The writer runs after the handler returns, so it cannot use the
	// request context.
	events := h.deps.Advisor.Chat(context.Background(), history, ob)
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		for ev := range events {
			if ev.Fallback {
				w.WriteString("event: fallback\n")
			}
			w.Write(gateway.SSEFrame(ev.Text))
			if err := w.Flush(); err != nil {
				slog.Debug("chat client went away", "error", err)
				return
			}
		}
		w.WriteString("event: done\ndata: {}\n\n")
		w.Flush()
	})
	return nil
}

func validateHistory(history []gateway.ChatMessage) string {
	if len(history) == 0 {
		return "messages must not be empty"
	}
	for _, m := range history {
		if m.Role != gateway.RoleUser && m.Role != gateway.RoleModel {
			return "message role must be user or model"
		}
	}
	last := history[len(history)-1]
	if last.Role != gateway.RoleUser || strings.TrimSpace(last.Text) == "" {
		return "the last message must be a non-empty user message"
	}
	return ""
}
