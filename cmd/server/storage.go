package main

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/assistant"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/config"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/notify"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/prayertimes"
	redisclient "github.com/MOSHAROF-4246/Ramadan-Super-App/internal/redis"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/tasbih"
)

// Backends are the optional collaborators. Each falls back to an in-process
// implementation when it is not configured or unreachable.
type Backends struct {
	PrayerCache prayertimes.Cache // nil disables caching
	Tasbih      tasbih.Store
	Notifier    notify.Notifier

	redis *goredis.Client
	mqtt  *notify.MQTTNotifier
}

// InitBackends selects Redis and MQTT when configured.
func InitBackends(ctx context.Context, cfg *config.Config) *Backends {
	b := &Backends{
		Tasbih:   tasbih.NewMemoryStore(),
		Notifier: notify.LogNotifier{},
	}

	if cfg.RedisAddress != "" {
		rdb := redisclient.NewClient(cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword)
		if err := redisclient.Ping(ctx, rdb); err != nil {
			log.Warn().Err(err).Str("address", cfg.RedisAddress).Msg("redis unavailable, using in-memory state")
			_ = rdb.Close()
		} else {
			log.Info().Str("address", cfg.RedisAddress).Msg("using redis for cache and tasbih state")
			b.redis = rdb
			b.PrayerCache = redisclient.NewCache(rdb)
			b.Tasbih = redisclient.NewTasbihStore(rdb)
		}
	} else {
		log.Info().Msg("REDIS_ADDRESS not set, using in-memory tasbih state")
	}

	if cfg.MQTTBrokerURL != "" {
		n, err := notify.Connect(cfg.MQTTBrokerURL, "ramadan-server")
		if err != nil {
			log.Warn().Err(err).Msg("MQTT unavailable, sehri alerts will only be logged")
		} else {
			b.mqtt = n
			b.Notifier = n
		}
	}

	return b
}

func (b *Backends) Close() {
	if b.mqtt != nil {
		b.mqtt.Close()
	}
	if b.redis != nil {
		if err := b.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		}
	}
}

// InitAssistant returns nil when no API key is configured.
func InitAssistant(ctx context.Context, cfg *config.Config) assistant.Assistant {
	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set, dua and coach endpoints will fail")
		return nil
	}
	g, err := assistant.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Warn().Err(err).Msg("could not create gemini client")
		return nil
	}
	return g
}
