package templates

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type ListResponse struct {
	SwipeFiles       []appdata.Template `json:"swipeFiles"`
	Campaigns        []appdata.Template `json:"campaigns"`
	CustomSwipeFiles []appdata.Template `json:"customSwipeFiles"`
	CustomCampaigns  []appdata.Template `json:"customCampaigns"`
}

type MockupResponse struct {
	Mockup string `json:"mockup"`
}

func byType(ts []appdata.Template, typ appdata.TemplateType) []appdata.Template {
	out := []appdata.Template{}
	for _, t := range ts {
		if t.Type == typ {
			out = append(out, t)
		}
	}
	return out
}

func list(rec appdata.AppRecord) ListResponse {
	return ListResponse{
		SwipeFiles:       byType(library, appdata.TemplateSwipe),
		Campaigns:        byType(library, appdata.TemplateCampaign),
		CustomSwipeFiles: byType(rec.CustomTemplates, appdata.TemplateSwipe),
		CustomCampaigns:  byType(rec.CustomTemplates, appdata.TemplateCampaign),
	}
}

type TemplatesHandler struct {
	deps *apps.Deps
}

func NewTemplatesHandler(deps *apps.Deps) *TemplatesHandler {
	return &TemplatesHandler{deps: deps}
}

// List handles GET /api/p/templates
func (h *TemplatesHandler) List(c *fiber.Ctx) error {
	rec, ok, err := apps.Record(c, h.deps)
	if !ok {
		return err
	}
	return c.JSON(list(rec))
}

// Create handles POST /api/p/templates
func (h *TemplatesHandler) Create(c *fiber.Ctx) error {
	var req appdata.TemplateInput
	if err := c.BodyParser(&req); err != nil {
		return apps.InvalidBody(c)
	}
	if err := h.deps.Data.AddTemplate(c.UserContext(), req); err != nil {
		return apps.MutationError(c, "add_template", err)
	}

	rec, ok, err := apps.Record(c, h.deps)
	if !ok {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(list(rec))
}

// Mockup handles POST /api/p/templates/mockup
func (h *TemplatesHandler) Mockup(c *fiber.Ctx) error {
	var req dto.TextRequest
	if err := c.BodyParser(&req); err != nil {
		return apps.InvalidBody(c)
	}
	if strings.TrimSpace(req.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Describe the post you have in mind",
		})
	}
	return c.JSON(MockupResponse{Mockup: h.deps.Advisor.Mockup(c.UserContext(), req.Text)})
}
