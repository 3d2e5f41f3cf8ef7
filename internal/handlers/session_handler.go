package handlers

import (
	"errors"
	"math/rand/v2"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/dto"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/identity"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/mindset"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/services"
	"github.com/gofiber/fiber/v2"
)

var onboardingQuestions = []dto.OnboardingQuestion{
	{
		ID:          "growth_area",
		Question:    "Where are you growing right now?",
		Placeholder: "e.g., Building my community on Instagram...",
	},
	{
		ID:          "success_feeling",
		Question:    "What does success feel like to you?",
		Placeholder: "e.g., Calm, aligned, and financially free...",
	},
}

type SessionHandler struct {
	sessions *services.SessionService
	rng      *rand.Rand
}

// NewSessionHandler builds the handler. rng picks the welcome affirmation;
// nil uses the global source.
func NewSessionHandler(sessions *services.SessionService, rng *rand.Rand) *SessionHandler {
	return &SessionHandler{sessions: sessions, rng: rng}
}

func (h *SessionHandler) Welcome(c *fiber.Ctx) error {
	return c.JSON(dto.WelcomeResponse{
		Affirmation: mindset.LoginAffirmation(h.rng),
		Questions:   onboardingQuestions,
	})
}

func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.sessions.Login(c.UserContext(), &req)
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(resp)
}

func (h *SessionHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.sessions.Signup(c.UserContext(), &req)
	if err != nil {
		return sessionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Logout(c.UserContext()); err != nil {
		return sessionError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Logged out"})
}

func (h *SessionHandler) Me(c *fiber.Ctx) error {
	me, err := h.sessions.Me()
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(me)
}

func (h *SessionHandler) SetAvatar(c *fiber.Ctx) error {
	var req dto.AvatarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	me, err := h.sessions.SetAvatar(c.UserContext(), req.DataURI)
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(me)
}

func sessionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidEmail),
		errors.Is(err, services.ErrOnboardingRequired),
		errors.Is(err, identity.ErrEmptyIdentity),
		errors.Is(err, identity.ErrEmptyAvatar):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrNotLoggedIn), errors.Is(err, identity.ErrNoIdentity):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}
