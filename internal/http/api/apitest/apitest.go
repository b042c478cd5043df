// Package apitest holds helpers shared by the endpoint tests.
package apitest

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/db"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/model"
)

// Router mounts modules under /api on a fresh test engine.
func Router(modules ...api.Module) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{Prefix: "/api"}, modules...)
	return r
}

// Do sends a request with an optional JSON body and returns the recorder.
func Do(r http.Handler, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Store is an in-memory db.Store. Set Err to make every call fail, or
// LookupErr to make only GetUserByEmail fail.
type Store struct {
	mu        sync.Mutex
	Err       error
	LookupErr error
	Logs     map[string]model.DailyLog // user_id|date
	Users    map[string]*model.User
	Progress map[string]model.QuranProgress
}

var _ db.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		Logs:     make(map[string]model.DailyLog),
		Users:    make(map[string]*model.User),
		Progress: make(map[string]model.QuranProgress),
	}
}

func (s *Store) UpsertDailyLog(_ context.Context, entry model.DailyLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if entry.UserID == "" {
		return db.ErrPersistence
	}
	s.Logs[entry.UserID+"|"+entry.Date] = entry
	return nil
}

func (s *Store) ListDailyLogsByUser(_ context.Context, userID string) ([]model.DailyLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := []model.DailyLog{}
	for _, l := range s.Logs {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (s *Store) CreateUser(_ context.Context, user db.NewUser) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	for _, u := range s.Users {
		if u.Email == user.Email {
			return "", db.ErrEmailTaken
		}
	}
	id := uuid.NewString()
	now := time.Now()
	lang := user.Language
	if lang == "" {
		lang = "en"
	}
	s.Users[id] = &model.User{
		ID: id, Email: user.Email, HashedPassword: user.HashedPassword, Name: user.Name,
		City: user.City, Country: user.Country, Language: lang,
		SehriAlertMinutes: db.DefaultSehriAlertMinutes, CreatedAt: now, UpdatedAt: now,
	}
	return id, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LookupErr != nil {
		return nil, s.LookupErr
	}
	for _, u := range s.Users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *Store) GetUserByID(_ context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.Users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *u
	return &cp, nil
}

func (s *Store) UpdateUserProfile(_ context.Context, id string, p db.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	u, ok := s.Users[id]
	if !ok {
		return sql.ErrNoRows
	}
	for otherID, other := range s.Users {
		if otherID != id && other.Email == p.Email {
			return db.ErrEmailTaken
		}
	}
	u.Email, u.Name, u.City, u.Country = p.Email, p.Name, p.City, p.Country
	u.Latitude, u.Longitude = p.Latitude, p.Longitude
	u.Language, u.SehriAlertMinutes = p.Language, p.SehriAlertMinutes
	u.UpdatedAt = time.Now()
	return nil
}

func (s *Store) ListAlertSubscribers(context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.User
	for _, u := range s.Users {
		if u.SehriAlertMinutes > 0 && u.HasLocation() {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (s *Store) UpsertQuranProgress(_ context.Context, p model.QuranProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	p.UpdatedAt = time.Now()
	s.Progress[p.UserID+"|"+strconv.Itoa(p.SurahID)] = p
	return nil
}

func (s *Store) ListQuranProgress(_ context.Context, userID string) ([]model.QuranProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := []model.QuranProgress{}
	for _, p := range s.Progress {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SurahID < out[j].SurahID })
	return out, nil
}
