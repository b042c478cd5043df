package endpoints

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api/prayer/packets"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/model"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/prayertimes"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/schedule"
)

const (
	msgPrayerTimesFailed = "Failed to fetch prayer times"
	msgCalendarFailed    = "Failed to fetch calendar"
	msgLocationRequired  = "city and country, or latitude and longitude, are required"
)

// PrayerTimesSource is satisfied by *prayertimes.Client.
type PrayerTimesSource interface {
	Timings(ctx context.Context, q prayertimes.Query) ([]byte, error)
	Calendar(ctx context.Context, q prayertimes.CalendarQuery) ([]byte, error)
	Timetable(ctx context.Context, q prayertimes.Query) (model.Timetable, error)
}

type PrayerController struct {
	times          PrayerTimesSource
	clock          schedule.Clock
	streamInterval time.Duration
}

type Option func(*PrayerController)

func WithClock(clock schedule.Clock) Option {
	return func(p *PrayerController) { p.clock = clock }
}

// WithStreamInterval sets how often the countdown stream emits.
func WithStreamInterval(d time.Duration) Option {
	return func(p *PrayerController) { p.streamInterval = d }
}

// PrayerModule mounts the prayer time endpoints.
func PrayerModule(times PrayerTimesSource, opts ...Option) api.Module {
	ctl := &PrayerController{times: times, clock: schedule.SystemClock, streamInterval: time.Second}
	for _, opt := range opts {
		opt(ctl)
	}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/prayer-times", ctl.prayerTimes)
		c.PUBLIC_GET("/calendar", ctl.calendar)
		c.PUBLIC_GET("/next-prayer", ctl.nextPrayer)
		c.STREAM("/next-prayer/stream", ctl.nextPrayerStream)
	})
}

func bindLocation(ctx *gin.Context) (packets.LocationQuery, *api.APIError) {
	var q packets.LocationQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		return q, api.BadRequest(err.Error())
	}
	if !q.Valid() {
		return q, api.BadRequest(msgLocationRequired)
	}
	return q, nil
}

// GET /api/prayer-times
func (p *PrayerController) prayerTimes(ctx *gin.Context) (any, *api.APIError) {
	q, apiErr := bindLocation(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	raw, err := p.times.Timings(ctx.Request.Context(), q.ToQuery())
	if err != nil {
		log.Error().Err(err).Str("city", q.City).Str("country", q.Country).Msg("failed to fetch prayer times")
		return nil, api.Internal(msgPrayerTimesFailed)
	}
	return json.RawMessage(raw), nil
}

// GET /api/calendar
func (p *PrayerController) calendar(ctx *gin.Context) (any, *api.APIError) {
	var q packets.CalendarQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	if !q.Valid() {
		return nil, api.BadRequest(msgLocationRequired)
	}
	raw, err := p.times.Calendar(ctx.Request.Context(), q.ToQuery())
	if err != nil {
		log.Error().Err(err).Int("month", q.Month).Int("year", q.Year).Msg("failed to fetch calendar")
		return nil, api.Internal(msgCalendarFailed)
	}
	return json.RawMessage(raw), nil
}

func (p *PrayerController) resolve(table model.Timetable, now time.Time) packets.NextPrayerResponse {
	loc := table.Location(now.Location())
	next, ok := schedule.ResolveNext(table.Times, now.In(loc))
	if !ok {
		return packets.NextPrayerResponse{Available: false}
	}
	return packets.NextPrayerResponse{Available: true, Timezone: loc.String(), Next: &next}
}

// GET /api/next-prayer
func (p *PrayerController) nextPrayer(ctx *gin.Context) (any, *api.APIError) {
	q, apiErr := bindLocation(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	table, err := p.times.Timetable(ctx.Request.Context(), q.ToQuery())
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch timetable for next prayer")
		return nil, api.Internal(msgPrayerTimesFailed)
	}
	return p.resolve(table, p.clock()), nil
}

// GET /api/next-prayer/stream
func (p *PrayerController) nextPrayerStream(ctx *gin.Context) {
	q, apiErr := bindLocation(ctx)
	if apiErr != nil {
		ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
		return
	}
	table, err := p.times.Timetable(ctx.Request.Context(), q.ToQuery())
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch timetable for countdown stream")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": msgPrayerTimesFailed})
		return
	}

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Status(http.StatusOK)

	schedule.Every(ctx.Request.Context(), p.streamInterval, p.clock, func(now time.Time) {
		ctx.SSEvent("countdown", p.resolve(table, now))
		ctx.Writer.Flush()
	})
}
