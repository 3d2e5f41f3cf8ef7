package settings

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/dto"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/theme"
	"github.com/gofiber/fiber/v2"
)

type ThemeResponse struct {
	Theme        string              `json:"theme"`
	CustomColors theme.Palette       `json:"customColors"`
	Colors       theme.Palette       `json:"colors"`
	CSSVariables []theme.CSSVariable `json:"cssVariables"`
	Presets      []theme.Preset      `json:"presets"`
}

type SetThemeRequest struct {
	Theme string `json:"theme"`
}

type SetColorRequest struct {
	Hex string `json:"hex"`
}

func themeResponse(s theme.State) ThemeResponse {
	colors := s.Colors()
	return ThemeResponse{
		Theme:        s.Theme,
		CustomColors: s.Custom,
		Colors:       colors,
		CSSVariables: colors.CSSVariables(),
		Presets:      theme.Presets(),
	}
}

type SettingsHandler struct {
	deps *apps.Deps
}

func NewSettingsHandler(deps *apps.Deps) *SettingsHandler {
	return &SettingsHandler{deps: deps}
}

// GetTheme handles GET /api/p/settings/theme
func (h *SettingsHandler) GetTheme(c *fiber.Ctx) error {
	state, err := h.deps.Themes.Load(c.UserContext(), middleware.GetIdentity(c))
	if err != nil {
		return themeError(c, err)
	}
	return c.JSON(themeResponse(state))
}

// SetTheme handles PUT /api/p/settings/theme
func (h *SettingsHandler) SetTheme(c *fiber.Ctx) error {
	var req SetThemeRequest
	if err := c.BodyParser(&req); err != nil {
		return apps.InvalidBody(c)
	}
	state, err := h.deps.Themes.SetTheme(c.UserContext(), middleware.GetIdentity(c), req.Theme)
	if err != nil {
		return themeError(c, err)
	}
	return c.JSON(themeResponse(state))
}

// SetColor handles PUT /api/p/settings/theme/colors/:field. The custom
// palette changes; the selected theme does not.
func (h *SettingsHandler) SetColor(c *fiber.Ctx) error {
	var req SetColorRequest
	if err := c.BodyParser(&req); err != nil {
		return apps.InvalidBody(c)
	}
	state, err := h.deps.Themes.SetCustomColor(c.UserContext(), middleware.GetIdentity(c), c.Params("field"), req.Hex)
	if err != nil {
		return themeError(c, err)
	}
	return c.JSON(themeResponse(state))
}

// Stylesheet handles GET /api/p/settings/theme.css
func (h *SettingsHandler) Stylesheet(c *fiber.Ctx) error {
	state, err := h.deps.Themes.Load(c.UserContext(), middleware.GetIdentity(c))
	if err != nil {
		return themeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/css; charset=utf-8")
	return c.SendString(state.Colors().CSS())
}

func themeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, theme.ErrUnknownTheme) ||
		errors.Is(err, theme.ErrUnknownField) ||
		errors.Is(err, theme.ErrInvalidHex) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	slog.Error("theme operation failed", "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Failed to update your theme",
	})
}
