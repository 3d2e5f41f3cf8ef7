package apps

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/dto"
	"github.com/gofiber/fiber/v2"
)

var badRequest = []error{
	appdata.ErrUnknownPlatform,
	appdata.ErrInvalidAmount,
	appdata.ErrEmptyDescription,
	appdata.ErrInvalidDay,
	appdata.ErrInvalidRating,
	appdata.ErrInvalidDate,
	appdata.ErrInvalidTemplateType,
	appdata.ErrEmptyTemplate,
	appdata.ErrEmptyWin,
	appdata.ErrEmptyNote,
}

// Record returns a snapshot of the loaded app data. When nothing is loaded
// it writes a 503 and ok is false; the caller returns err as is.
func Record(c *fiber.Ctx, deps *Deps) (rec appdata.AppRecord, ok bool, err error) {
	rec, ok = deps.Data.Snapshot()
	if !ok {
		return rec, false, NotReady(c)
	}
	return rec, true, nil
}

func NotReady(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
		Error: true, Message: "App data is still loading",
	})
}

func InvalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: "Invalid request body",
	})
}

// MutationError maps a failed store operation to a response. Validation
// failures are the caller's fault; anything else is logged.
func MutationError(c *fiber.Ctx, op string, err error) error {
	for _, target := range badRequest {
		if errors.Is(err, target) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
	}
	slog.Error("app data operation failed", "op", op, "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Failed to save your changes",
	})
}
