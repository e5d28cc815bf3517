package route

import (
	"github.com/evandrarf/cryptolearn-be/internal/delivery/http/handler"
	"github.com/gofiber/fiber/v2"
)

func SetupSessionRoute(api *fiber.App, handler handler.SessionHandler) {
	router := api.Group("/sessions")
	{
		router.Post("/", handler.Create)
		router.Delete("/:session_id", handler.Delete)
		router.Get("/:session_id/progress", handler.Progress)
		router.Post("/:session_id/learned", handler.MarkLearned)
		router.Delete("/:session_id/learned/:term", handler.UnmarkLearned)
	}

	quizRouter := router.Group("/:session_id/quiz")
	{
		quizRouter.Get("/next", handler.NextQuestion)
		quizRouter.Post("/answer", handler.SubmitAnswer)
	}
}
