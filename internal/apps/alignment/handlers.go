package alignment

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps"
	"github.com/gofiber/fiber/v2"
)

const journeyDays = 30

type TodayResponse struct {
	Date    string             `json:"date"`
	Log     appdata.DailyLog   `json:"log"`
	Saved   bool               `json:"saved"`
	Journey []appdata.DailyLog `json:"journey"`
}

type LogRequest struct {
	Ratings     appdata.Ratings  `json:"ratings"`
	Notes       appdata.LogNotes `json:"notes"`
	WinOfTheDay string           `json:"winOfTheDay"`
}

type AlignmentHandler struct {
	deps *apps.Deps
}

func NewAlignmentHandler(deps *apps.Deps) *AlignmentHandler {
	return &AlignmentHandler{deps: deps}
}

// Today handles GET /api/p/alignment/today. Today is the server's local
// calendar date.
func (h *AlignmentHandler) Today(c *fiber.Ctx) error {
	rec, ok, err := apps.Record(c, h.deps)
	if !ok {
		return err
	}
	date := h.deps.Clock().Format(appdata.DateLayout)
	_, saved := rec.DailyLogs[date]
	return c.JSON(TodayResponse{
		Date:    date,
		Log:     rec.LogFor(date),
		Saved:   saved,
		Journey: rec.Journey(journeyDays),
	})
}

// GetLog handles GET /api/p/alignment/logs/:date
func (h *AlignmentHandler) GetLog(c *fiber.Ctx) error {
	date := c.Params("date")
	if _, err := time.Parse(appdata.DateLayout, date); err != nil {
		return apps.MutationError(c, "get_daily_log", appdata.ErrInvalidDate)
	}
	rec, ok, err := apps.Record(c, h.deps)
	if !ok {
		return err
	}
	return c.JSON(rec.LogFor(date))
}

// SaveLog handles PUT /api/p/alignment/logs/:date, replacing any log
// already saved for that date.
func (h *AlignmentHandler) SaveLog(c *fiber.Ctx) error {
	var req LogRequest
	if err := c.BodyParser(&req); err != nil {
		return apps.InvalidBody(c)
	}
	log := appdata.DailyLog{
		Date:        c.Params("date"),
		Ratings:     req.Ratings,
		Notes:       req.Notes,
		WinOfTheDay: req.WinOfTheDay,
	}
	if err := h.deps.Data.SaveDailyLog(c.UserContext(), log); err != nil {
		return apps.MutationError(c, "save_daily_log", err)
	}

	rec, ok, err := apps.Record(c, h.deps)
	if !ok {
		return err
	}
	return c.JSON(rec.LogFor(log.Date))
}
