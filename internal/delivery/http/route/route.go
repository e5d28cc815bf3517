package route

import (
	"github.com/evandrarf/cryptolearn-be/internal/delivery/http/handler"
	"github.com/evandrarf/cryptolearn-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	Api             *fiber.App
	Middleware      *middleware.Middleware
	GlossaryHandler handler.GlossaryHandler
	SessionHandler  handler.SessionHandler
	MarketHandler   handler.MarketHandler
	TutorHandler    handler.TutorHandler
}

func Setup(c *RouteConfig) {
	c.Api.Use(c.Middleware.Recover())
	c.Api.Use(c.Middleware.RequestLogger())
	c.Api.Use(c.Middleware.CorsMiddleware())

	c.Api.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	SetupGlossaryRoute(c.Api, c.GlossaryHandler)
	SetupSessionRoute(c.Api, c.SessionHandler)
	SetupMarketRoute(c.Api, c.MarketHandler)
	SetupTutorRoute(c.Api, c.TutorHandler)
}
