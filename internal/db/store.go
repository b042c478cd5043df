// exposes a Store interface that is passed to API calls w/ param requirements
package db

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/model"
)

// ErrPersistence wraps every failure to read or write daily logs and reading
// progress, validation included. Callers show a generic save error.
var ErrPersistence = errors.New("persistence failure")

// ErrEmailTaken is returned by CreateUser when the email is already registered.
var ErrEmailTaken = errors.New("email already registered")

type Store interface {
	// daily log functions
	UpsertDailyLog(ctx context.Context, entry model.DailyLog) error
	ListDailyLogsByUser(ctx context.Context, userID string) ([]model.DailyLog, error)

	// user functions
	CreateUser(ctx context.Context, user NewUser) (string, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	UpdateUserProfile(ctx context.Context, id string, profile Profile) error
	ListAlertSubscribers(ctx context.Context) ([]model.User, error)

	// quran reading progress
	UpsertQuranProgress(ctx context.Context, progress model.QuranProgress) error
	ListQuranProgress(ctx context.Context, userID string) ([]model.QuranProgress, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(conn *sqlx.DB) Store {
	return &pgStore{db: conn}
}
