package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func (m *Middleware) CorsMiddleware() fiber.Handler {
	allowOrigins := "*"
	if m != nil && m.Config != nil {
		if v := m.Config.GetStringSlice("api.cors.origins"); len(v) > 0 {
			allowOrigins = strings.Join(v, ", ")
		}
	}

	return cors.New(cors.Config{
		AllowHeaders:  "Origin, Content-Type, Accept, Content-Length, Accept-Encoding",
		AllowMethods:  "GET, POST, DELETE",
		AllowOrigins:  allowOrigins,
		ExposeHeaders: "Content-Length, Content-Type",
	})
}
