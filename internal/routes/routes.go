package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	deps *apps.Deps,
	sessionHandler *handlers.SessionHandler,
	healthHandler *handlers.HealthHandler,
	plugins []apps.Plugin,
) {
	api := app.Group("/api")

	// General API rate limiter: 120 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Session: public, stricter limit
	session := api.Group("/session")
	session.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	session.Get("/welcome", sessionHandler.Welcome)
	session.Post("/login", sessionHandler.Login)
	session.Post("/signup", sessionHandler.Signup)

	// Session: token required, apply middleware to individual routes
	current := []fiber.Handler{middleware.JWTProtected(deps.Config), middleware.CurrentIdentity(deps.Identity)}
	session.Post("/logout", append(current, sessionHandler.Logout)...)
	session.Get("/me", append(current, sessionHandler.Me)...)
	session.Put("/avatar", append(current, sessionHandler.SetAvatar)...)

	// Views: only the identity that is logged in right now
	protected := api.Group("/p", current...)
	for _, p := range plugins {
		p.RegisterRoutes(protected, deps)
	}
}
