package config

import (
	"github.com/evandrarf/cryptolearn-be/internal/delivery/http/domain"
	"github.com/evandrarf/cryptolearn-be/internal/delivery/http/handler"
	"github.com/evandrarf/cryptolearn-be/internal/delivery/http/middleware"
	"github.com/evandrarf/cryptolearn-be/internal/delivery/http/route"
	"github.com/evandrarf/cryptolearn-be/internal/delivery/http/usecase"
	"github.com/evandrarf/cryptolearn-be/internal/glossary"
	"github.com/evandrarf/cryptolearn-be/internal/pkg/llm"
	"github.com/evandrarf/cryptolearn-be/internal/pkg/pricefeed"
	"github.com/evandrarf/cryptolearn-be/internal/pkg/validate"
	"github.com/evandrarf/cryptolearn-be/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	Log       *logrus.Logger
	Validator *validate.Validator
	Catalog   *glossary.Catalog
	Sessions  *session.Store
	Prices    usecase.PriceSource
	Tutor     usecase.ChatModel
	Generator *glossary.Generator
}

// Bootstrap wires usecases, handlers and routes onto config.Api. Prices,
// Tutor and Generator are built from config.Config when nil.
func Bootstrap(config *BootstrapConfig) {
	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
	})

	if config.Prices == nil {
		config.Prices = NewPriceFeed(config.Config, config.Log)
	}
	if config.Tutor == nil {
		config.Tutor = llm.NewClient(
			config.Config.GetString("llm.api_key"),
			config.Config.GetString("llm.model"),
			config.Config.GetString("llm.base_url"),
		)
	}
	if config.Generator == nil {
		config.Generator = glossary.NewGenerator(nil)
	}
	tracker := glossary.NewTracker(config.Catalog)

	glossaryUsecase := usecase.NewGlossaryUsecase(usecase.GlossaryConfig{
		Catalog:   config.Catalog,
		Tracker:   tracker,
		Generator: config.Generator,
		Sessions:  config.Sessions,
		Log:       config.Log,
	})
	learningUsecase := usecase.NewLearningUsecase(usecase.LearningConfig{
		Catalog:     config.Catalog,
		Tracker:     tracker,
		Generator:   config.Generator,
		Sessions:    config.Sessions,
		Distractors: config.Config.GetInt("quiz.distractors"),
		Log:         config.Log,
	})
	marketUsecase := usecase.NewMarketUsecase(usecase.MarketConfig{
		Prices: config.Prices,
		Notice: domain.MARKET_UNAVAILABLE,
		Log:    config.Log,
	})
	tutorUsecase := usecase.NewTutorUsecase(usecase.TutorConfig{
		Catalog: config.Catalog,
		Model:   config.Tutor,
		Log:     config.Log,
	})

	route.Setup(&route.RouteConfig{
		Api:             config.Api,
		Middleware:      mid,
		GlossaryHandler: handler.NewGlossaryHandler(config.Validator, config.Log, glossaryUsecase),
		SessionHandler:  handler.NewSessionHandler(config.Validator, config.Log, learningUsecase),
		MarketHandler:   handler.NewMarketHandler(config.Validator, config.Log, marketUsecase),
		TutorHandler:    handler.NewTutorHandler(config.Validator, config.Log, tutorUsecase),
	})
}

func NewPriceFeed(config *viper.Viper, log *logrus.Logger) *pricefeed.Client {
	return pricefeed.NewClient(pricefeed.Config{
		BaseURL:         config.GetString("pricefeed.base_url"),
		Timeout:         config.GetDuration("pricefeed.timeout"),
		TTL:             config.GetDuration("pricefeed.ttl"),
		TrendingTTL:     config.GetDuration("pricefeed.trending_ttl"),
		FailureCooldown: config.GetDuration("pricefeed.failure_cooldown"),
		DefaultCoins:    config.GetStringSlice("pricefeed.coins"),
	}, log)
}

func NewSessionStore(config *viper.Viper) *session.Store {
	return session.NewStore(config.GetDuration("session.ttl"))
}
