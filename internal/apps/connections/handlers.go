package connections

import (
	"net/url"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type Connection struct {
	Name       string       `json:"name"`
	Kind       catalog.Kind `json:"kind"`
	Engagement float64      `json:"engagement"`
	Reach      int          `json:"reach"`
	Connected  bool         `json:"connected"`
}

type ListResponse struct {
	Platforms []Connection `json:"platforms"`
}

type ConnectionsHandler struct {
	deps *apps.Deps
}

func NewConnectionsHandler(deps *apps.Deps) *ConnectionsHandler {
	return &ConnectionsHandler{deps: deps}
}

// List handles GET /api/p/connections
func (h *ConnectionsHandler) List(c *fiber.Ctx) error {
	rec, ok, err := apps.Record(c, h.deps)
	if !ok {
		return err
	}
	return c.JSON(h.list(rec))
}

func (h *ConnectionsHandler) list(rec appdata.AppRecord) ListResponse {
	all := h.deps.Platforms.All()
	out := make([]Connection, len(all))
	for i, p := range all {
		out[i] = Connection{
			Name:       p.Name,
			Kind:       p.Kind,
			Engagement: p.Engagement,
			Reach:      p.Reach,
			Connected:  rec.ConnectedPlatforms[p.Name],
		}
	}
	return ListResponse{Platforms: out}
}

// Connect handles POST /api/p/connections/:platform. Connecting twice is
// a no-op.
func (h *ConnectionsHandler) Connect(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("platform"))
	if err != nil {
		return apps.InvalidBody(c)
	}
	if err := h.deps.Data.ConnectPlatform(c.UserContext(), name); err != nil {
		return apps.MutationError(c, "connect_platform", err)
	}
	return h.respond(c)
}

// Disconnect handles DELETE /api/p/connections/:platform
func (h *ConnectionsHandler) Disconnect(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("platform"))
	if err != nil {
		return apps.InvalidBody(c)
	}
	rec, ok, err := apps.Record(c, h.deps)
	if !ok {
		return err
	}
	if !rec.ConnectedPlatforms[name] && !h.deps.Platforms.Exists(name) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Unknown platform",
		})
	}
	if err := h.deps.Data.DisconnectPlatform(c.UserContext(), name); err != nil {
		return apps.MutationError(c, "disconnect_platform", err)
	}
	return h.respond(c)
}

func (h *ConnectionsHandler) respond(c *fiber.Ctx) error {
	rec, ok, err := apps.Record(c, h.deps)
	if !ok {
		return err
	}
	return c.JSON(h.list(rec))
}
