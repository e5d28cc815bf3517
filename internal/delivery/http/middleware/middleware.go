package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type MiddlewareConfig struct {
	Log    *logrus.Logger
	Config *viper.Viper
}

type Middleware struct {
	Log    *logrus.Logger
	Config *viper.Viper
}

func NewMiddleware(c *MiddlewareConfig) *Middleware {
	if c == nil {
		return &Middleware{}
	}

	return &Middleware{
		Log:    c.Log,
		Config: c.Config,
	}
}

func (m *Middleware) Recover() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: m.Log != nil && m.Log.IsLevelEnabled(logrus.DebugLevel),
	})
}

// RequestLogger writes one line per request through the application logger,
// so request lines share its output and level.
func (m *Middleware) RequestLogger() fiber.Handler {
	cfg := logger.Config{
		Format:     "[${ip}]:${port} ${status} - ${method} ${path} ${latency}\n",
		TimeFormat: "2006-01-02T15:04:05Z07:00",
	}
	if m.Log != nil {
		cfg.Output = m.Log.WriterLevel(logrus.InfoLevel)
	}
	return logger.New(cfg)
}
