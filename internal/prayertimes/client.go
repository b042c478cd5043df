// Package prayertimes talks to the aladhan.com prayer-times API.
package prayertimes

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/metrics"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/model"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/schedule"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/upstream"
)

const (
	DefaultBaseURL = "https://api.aladhan.com/v1"
	DefaultMethod  = "2" // ISNA
	serviceName    = "aladhan"
)

var ErrUpstream = upstream.ErrUpstream

// Query selects a location. Coordinates win over city/country when both are set.
type Query struct {
	City      string
	Country   string
	Latitude  string
	Longitude string
	Method    string
}

func (q Query) hasCoordinates() bool {
	return q.Latitude != "" && q.Longitude != ""
}

func (q Query) values() url.Values {
	v := url.Values{}
	if q.hasCoordinates() {
		v.Set("latitude", q.Latitude)
		v.Set("longitude", q.Longitude)
	} else {
		v.Set("city", q.City)
		v.Set("country", q.Country)
	}
	method := q.Method
	if method == "" {
		method = DefaultMethod
	}
	v.Set("method", method)
	return v
}

// QueryForUser builds the query for a user's saved location.
func QueryForUser(u model.User) Query {
	q := Query{}
	if u.Latitude != nil && u.Longitude != nil {
		q.Latitude = strconv.FormatFloat(*u.Latitude, 'f', -1, 64)
		q.Longitude = strconv.FormatFloat(*u.Longitude, 'f', -1, 64)
	}
	if u.City != nil {
		q.City = *u.City
	}
	if u.Country != nil {
		q.Country = *u.Country
	}
	return q
}

// CalendarQuery selects a month; zero Month/Year mean the current month.
type CalendarQuery struct {
	Query
	Month int
	Year  int
}

// Cache stores raw upstream bodies.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

type Client struct {
	api   *upstream.Client
	cache Cache
	ttl   time.Duration
	clock schedule.Clock
}

type Option func(*Client)

// WithCache serves repeated queries for the same day from cache for ttl.
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.ttl = ttl
	}
}

func WithClock(clock schedule.Clock) Option {
	return func(c *Client) { c.clock = clock }
}

func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		api:   upstream.New(serviceName, baseURL, timeout),
		clock: schedule.SystemClock,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Timings returns today's timings for the location, as the upstream JSON.
func (c *Client) Timings(ctx context.Context, q Query) ([]byte, error) {
	path := "timingsByCity"
	if q.hasCoordinates() {
		path = "timings"
	}
	return c.fetch(ctx, path, q.values())
}

// Calendar returns a month of timings, as the upstream JSON.
func (c *Client) Calendar(ctx context.Context, q CalendarQuery) ([]byte, error) {
	now := c.clock()
	if q.Year == 0 {
		q.Year = now.Year()
	}
	if q.Month == 0 {
		q.Month = int(now.Month())
	}
	if q.Month < 1 || q.Month > 12 {
		return nil, fmt.Errorf("month %d out of range", q.Month)
	}

	prefix := "calendarByCity"
	if q.hasCoordinates() {
		prefix = "calendar"
	}
	return c.fetch(ctx, fmt.Sprintf("%s/%d/%d", prefix, q.Year, q.Month), q.values())
}

// Timetable fetches and parses today's timings.
func (c *Client) Timetable(ctx context.Context, q Query) (model.Timetable, error) {
	raw, err := c.Timings(ctx, q)
	if err != nil {
		return model.Timetable{}, err
	}
	return ParseTimings(raw)
}

func (c *Client) fetch(ctx context.Context, path string, query url.Values) ([]byte, error) {
	key := ""
	if c.cache != nil {
		now := c.clock()
		key = fmt.Sprintf("prayer:%s:%s", now.UTC().Format("2006-01-02"), c.api.URL(path, query))
		if body, ok := c.cache.Get(ctx, key); ok {
			// The location's day can roll over before the server's does.
			if isCurrent(body, now) {
				metrics.RecordUpstreamCacheHit(serviceName)
				return body, nil
			}
			log.Debug().Str("key", key).Msg("cached prayer times are for another day")
		}
	}

	body, err := c.api.GetJSON(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("fetch prayer times: %w", err)
	}

	if c.cache != nil {
		c.cache.Set(ctx, key, body, c.ttl)
		log.Debug().Str("key", key).Msg("cached prayer times")
	}
	return body, nil
}
