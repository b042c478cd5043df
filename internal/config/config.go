package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds environment-based settings
type Config struct {
	Environment    string `env:"APP_ENV,default=development"`
	ServerAddress  string `env:"SERVER_ADDRESS,default=:3000"`
	DatabaseURL    string `env:"DATABASE_URL,required"`
	MigrationsPath string `env:"MIGRATIONS_PATH,default=./migrations"`
	JWTSecret      string `env:"JWT_SECRET,required"`
	LogLevel       string `env:"LOG_LEVEL,default=info"`

	RedisAddress  string `env:"REDIS_ADDRESS"`
	RedisUsername string `env:"REDIS_USERNAME"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	MQTTBrokerURL string `env:"MQTT_BROKER_URL"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL,default=gemini-2.0-flash"`

	PrayerTimesURL     string        `env:"PRAYER_TIMES_URL"`
	QuranAPIURL        string        `env:"QURAN_API_URL"`
	UpstreamTimeout    time.Duration `env:"UPSTREAM_TIMEOUT,default=15s"`
	PrayerCacheTTL     time.Duration `env:"PRAYER_CACHE_TTL,default=6h"`
	SehriCheckInterval time.Duration `env:"SEHRI_CHECK_INTERVAL,default=30s"`
	GoldPricePerGram   float64       `env:"GOLD_PRICE_PER_GRAM,default=65"`

	AIRatePerSecond float64 `env:"AI_RATE_PER_SECOND,default=0.5"`
	AIRateBurst     int     `env:"AI_RATE_BURST,default=5"`
}

func (c *Config) IsProduction() bool { return c.Environment == "production" }

func (c *Config) IsDevelopment() bool { return c.Environment == "development" }

// Load reads a .env file (outside production) and then the process environment.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Debug().Err(err).Msg("no .env file loaded")
		}
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive")
	}
	if c.SehriCheckInterval <= 0 {
		return fmt.Errorf("SEHRI_CHECK_INTERVAL must be positive")
	}
	if c.GoldPricePerGram <= 0 {
		return fmt.Errorf("GOLD_PRICE_PER_GRAM must be positive")
	}
	if c.AIRatePerSecond <= 0 || c.AIRateBurst <= 0 {
		return fmt.Errorf("AI_RATE_PER_SECOND and AI_RATE_BURST must be positive")
	}
	return nil
}
