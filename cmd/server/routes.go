package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/assistant"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/config"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/db"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api"
	authapi "github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api/auth/endpoints"
	guidanceapi "github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api/guidance/endpoints"
	logsapi "github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api/logs/endpoints"
	prayerapi "github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api/prayer/endpoints"
	quranapi "github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api/quran/endpoints"
	systemapi "github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api/system/endpoints"
	toolsapi "github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api/tools/endpoints"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/middleware"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/metrics"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/prayertimes"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/quran"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/schedule"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/tasbih"
)

type Dependencies struct {
	Store     db.Store
	Prayer    *prayertimes.Client
	Quran     *quran.Client
	Assistant assistant.Assistant
	Tasbih    *tasbih.Service
}

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps Dependencies) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
	},
		systemapi.SystemModule(cfg.Environment, schedule.SystemClock),
		prayerapi.PrayerModule(deps.Prayer),
		logsapi.LogsModule(deps.Store),
		quranapi.QuranModule(deps.Quran, deps.Store),
		toolsapi.ZakatModule(decimal.NewFromFloat(cfg.GoldPricePerGram)),
		toolsapi.TasbihModule(deps.Tasbih),
		authapi.AuthPublicModule(cfg.JWTSecret, deps.Store),
	)

	// generated content is rate limited per client
	api.MountGroup(r, api.GroupConfig{
		Prefix:     "/api",
		Middleware: []gin.HandlerFunc{middleware.NewRateLimiter(cfg.AIRatePerSecond, cfg.AIRateBurst).Middleware()},
	},
		guidanceapi.GuidanceModule(deps.Assistant),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api",
		Auth:      true,
		SecretKey: cfg.JWTSecret,
		Users:     deps.Store,
	},
		authapi.AuthSessionModule(cfg.JWTSecret, deps.Store),
	)
}
