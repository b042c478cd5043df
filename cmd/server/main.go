package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/config"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/db"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/middleware"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/metrics"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/prayertimes"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/quran"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/reminder"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/tasbih"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	ConfigureLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// initialize PostgreSQL
	if err := db.Init(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}
	defer db.DB.Close()

	// run pending migrations
	if err := db.RunMigrations(db.DB, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}
	store := db.NewStore(db.DB)

	backends := InitBackends(ctx, cfg)
	defer backends.Close()

	var prayerOpts []prayertimes.Option
	if backends.PrayerCache != nil {
		prayerOpts = append(prayerOpts, prayertimes.WithCache(backends.PrayerCache, cfg.PrayerCacheTTL))
	}
	prayerClient := prayertimes.New(cfg.PrayerTimesURL, cfg.UpstreamTimeout, prayerOpts...)

	reminders := reminder.New(store, prayerClient, backends.Notifier)
	if err := reminders.Start(cfg.SehriCheckInterval); err != nil {
		log.Fatal().Err(err).Msg("sehri reminder")
	}
	defer reminders.Stop()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), metrics.Middleware())

	RegisterRoutes(r, cfg, Dependencies{
		Store:     store,
		Prayer:    prayerClient,
		Quran:     quran.New(cfg.QuranAPIURL, cfg.UpstreamTimeout),
		Assistant: InitAssistant(ctx, cfg),
		Tasbih:    tasbih.NewService(backends.Tasbih),
	})

	srv := &http.Server{Addr: cfg.ServerAddress, Handler: r}
	go func() {
		log.Info().Str("address", cfg.ServerAddress).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
