package route

import (
	"github.com/evandrarf/cryptolearn-be/internal/delivery/http/handler"
	"github.com/gofiber/fiber/v2"
)

func SetupGlossaryRoute(api *fiber.App, handler handler.GlossaryHandler) {
	router := api.Group("/terms")
	{
		router.Get("/", handler.List)
		router.Get("/random", handler.Random)
		router.Get("/:term", handler.Get)
	}

	catalogRouter := api.Group("/catalog")
	{
		catalogRouter.Get("/categories", handler.Categories)
		catalogRouter.Get("/tags", handler.Tags)
		catalogRouter.Get("/stats", handler.Stats)
	}
}
