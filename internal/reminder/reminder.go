// Package reminder runs the periodic Sehri alert check for subscribed users.
package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/metrics"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/model"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/notify"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/prayertimes"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/schedule"
)

const dateLayout = "2006-01-02"

type Subscribers interface {
	ListAlertSubscribers(ctx context.Context) ([]model.User, error)
}

type TimetableSource interface {
	Timetable(ctx context.Context, q prayertimes.Query) (model.Timetable, error)
}

type userState struct {
	alert *schedule.SehriAlert
	table model.Timetable
	day   string // calendar date of table in its own zone
}

type Service struct {
	users    Subscribers
	times    TimetableSource
	notifier notify.Notifier
	clock    schedule.Clock
	fallback *time.Location
	seq      *schedule.Sequencer

	mu     sync.Mutex
	states map[string]*userState

	cron *cron.Cron
}

type Option func(*Service)

func WithClock(clock schedule.Clock) Option {
	return func(s *Service) { s.clock = clock }
}

// WithLocation sets the zone used when a timetable reports none.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.fallback = loc }
}

func New(users Subscribers, times TimetableSource, notifier notify.Notifier, opts ...Option) *Service {
	s := &Service{
		users:    users,
		times:    times,
		notifier: notifier,
		clock:    schedule.SystemClock,
		fallback: time.UTC,
		seq:      schedule.NewSequencer(),
		states:   make(map[string]*userState),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start schedules Tick every interval. Overlapping runs are skipped.
func (s *Service) Start(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("reminder interval must be positive, got %s", interval)
	}
	s.cron = cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := s.cron.AddFunc("@every "+interval.String(), func() {
		s.Tick(context.Background())
	}); err != nil {
		return fmt.Errorf("schedule sehri check: %w", err)
	}
	s.cron.Start()
	log.Info().Dur("interval", interval).Msg("sehri reminder started")
	return nil
}

// Stop halts the schedule and waits for a running tick to finish.
func (s *Service) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

// Tick runs one check over all subscribers.
func (s *Service) Tick(ctx context.Context) {
	users, err := s.users.ListAlertSubscribers(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list sehri alert subscribers")
		return
	}
	now := s.clock()

	s.prune(users)
	s.refresh(ctx, users, now)

	for _, alert := range s.evaluate(users, now) {
		if err := s.notifier.NotifySehri(ctx, alert); err != nil {
			log.Error().Err(err).Str("user_id", alert.UserID).Msg("failed to send sehri alert")
			continue
		}
		metrics.RecordSehriAlert()
	}
}

func (s *Service) prune(users []model.User) {
	active := make(map[string]struct{}, len(users))
	for _, u := range users {
		active[u.ID] = struct{}{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.states {
		if _, ok := active[id]; !ok {
			delete(s.states, id)
		}
	}
}

func (s *Service) stale(u model.User, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[u.ID]
	if !ok || st.day == "" {
		return true
	}
	return now.In(st.table.Location(s.fallback)).Format(dateLayout) != st.day
}

// refresh fetches timetables concurrently for users whose table is missing or
// from a previous day. Only the latest request per user is applied.
func (s *Service) refresh(ctx context.Context, users []model.User, now time.Time) {
	var wg sync.WaitGroup
	for _, u := range users {
		if !s.stale(u, now) {
			continue
		}
		id := s.seq.Issue(u.ID)
		wg.Add(1)
		go func(u model.User, id uint64) {
			defer wg.Done()
			table, err := s.times.Timetable(ctx, prayertimes.QueryForUser(u))
			if err != nil {
				log.Warn().Err(err).Str("user_id", u.ID).Msg("failed to refresh timetable")
				return
			}
			s.mu.Lock()
			defer s.mu.Unlock()
			if !s.seq.Accept(u.ID, id) {
				return
			}
			st := s.state(u)
			st.table = table
			st.day = now.In(table.Location(s.fallback)).Format(dateLayout)
		}(u, id)
	}
	wg.Wait()
}

// state returns the user's state, creating it. Caller holds s.mu.
func (s *Service) state(u model.User) *userState {
	st, ok := s.states[u.ID]
	if !ok {
		st = &userState{alert: schedule.NewSehriAlert(u.SehriAlertMinutes)}
		s.states[u.ID] = st
	}
	return st
}

func (s *Service) evaluate(users []model.User, now time.Time) []notify.SehriAlert {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due []notify.SehriAlert
	for _, u := range users {
		st, ok := s.states[u.ID]
		if !ok || st.day == "" {
			continue
		}
		imsak, ok := st.table.Times[model.Imsak]
		if !ok {
			continue
		}
		st.alert.SetLead(u.SehriAlertMinutes)
		if st.alert.Check(imsak, now.In(st.table.Location(s.fallback))) {
			due = append(due, notify.NewSehriAlert(u.ID, imsak, u.SehriAlertMinutes))
		}
	}
	return due
}
