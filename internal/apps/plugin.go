package apps

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/advisor"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/config"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/identity"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/mindset"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/theme"
	"github.com/gofiber/fiber/v2"
)

// Deps is everything a view needs. One instance is shared by all plugins.
type Deps struct {
	Config    *config.Config
	Identity  *identity.Holder
	Data      *appdata.Store
	Platforms *catalog.Registry
	Advisor   *advisor.Advisor
	Themes    *theme.Service
	Journal   *mindset.Journal

	// Now is the wall clock; tests pin it.
	Now func() time.Time
}

func (d *Deps) Clock() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// Onboarding returns the loaded identity's answers, or nil.
func (d *Deps) Onboarding() *appdata.Onboarding {
	if ob, ok := d.Data.Onboarding(); ok {
		return &ob
	}
	return nil
}

// Plugin defines the interface every view implements.
type Plugin interface {
	// ID returns the unique view identifier.
	ID() string

	// RegisterRoutes mounts the view's routes on the given Fiber group.
	// The group is already prefixed with /api/p and only admits the
	// current identity's token.
	RegisterRoutes(router fiber.Router, deps *Deps)
}
