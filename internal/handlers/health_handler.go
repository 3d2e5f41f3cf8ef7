package handlers

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/database"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/dto"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/identity"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	storage string
	holder  *identity.Holder
}

// NewHealthHandler reports storage as the name of the active key-value
// backend.
func NewHealthHandler(storage string, holder *identity.Holder) *HealthHandler {
	return &HealthHandler{storage: storage, holder: holder}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Storage:   h.storage,
		DB:        dbStatus,
		LoggedIn:  h.holder.LoggedIn(),
	})
}
