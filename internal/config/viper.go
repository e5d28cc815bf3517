package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// NewViper reads config.yaml (config.prod.yaml when ENV=production) from the
// working directory. A missing file is fine: defaults and environment
// variables still apply, with PRICEFEED_TIMEOUT overriding pricefeed.timeout.
func NewViper() *viper.Viper {
	_ = godotenv.Load()

	config := viper.New()

	if os.Getenv("ENV") == "production" {
		config.SetConfigName("config.prod")
	} else {
		config.SetConfigName("config")
	}

	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()
	SetDefaults(config)

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	return config
}

func SetDefaults(config *viper.Viper) {
	config.SetDefault("app.name", "cryptolearn")
	config.SetDefault("api.port", 8080)
	config.SetDefault("api.prefork", false)
	config.SetDefault("log.level", "info")

	config.SetDefault("catalog.source", CatalogSourceSeed)
	config.SetDefault("catalog.xlsx.sheet", "Glossary")

	config.SetDefault("pricefeed.base_url", "https://api.coingecko.com/api/v3")
	config.SetDefault("pricefeed.timeout", "10s")
	config.SetDefault("pricefeed.ttl", "5m")
	config.SetDefault("pricefeed.trending_ttl", "10m")
	config.SetDefault("pricefeed.failure_cooldown", "30s")
	config.SetDefault("pricefeed.sweep_interval", "10m")

	config.SetDefault("quiz.distractors", 3)
	config.SetDefault("session.ttl", "2h")
	config.SetDefault("session.sweep_interval", "10m")

	config.SetDefault("llm.model", "gpt-4o-mini")
	config.SetDefault("llm.base_url", "https://api.openai.com/v1")
}
