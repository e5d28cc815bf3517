package route

import (
	"github.com/evandrarf/cryptolearn-be/internal/delivery/http/handler"
	"github.com/gofiber/fiber/v2"
)

func SetupMarketRoute(api *fiber.App, handler handler.MarketHandler) {
	router := api.Group("/market")
	{
		router.Get("/prices", handler.Prices)
		router.Get("/trending", handler.Trending)
	}
}

func SetupTutorRoute(api *fiber.App, handler handler.TutorHandler) {
	router := api.Group("/tutor")
	{
		router.Post("/terms/:term", handler.Ask)
	}
}
