package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/model"
)

// DefaultSehriAlertMinutes is the lead time new accounts start with.
const DefaultSehriAlertMinutes = 15

const uniqueViolation = "23505"

type NewUser struct {
	Email          string
	HashedPassword string
	Name           *string
	City           *string
	Country        *string
	Language       string
}

// Profile is the editable part of a user.
type Profile struct {
	Email             string
	Name              *string
	City              *string
	Country           *string
	Latitude          *float64
	Longitude         *float64
	Language          string
	SehriAlertMinutes int
}

const userColumns = `id, email, hashed_password, name, city, country, latitude, longitude,
	       language, sehri_alert_minutes, created_at, updated_at`

// inserts new user into table, returns new user ID.
func (s *pgStore) CreateUser(ctx context.Context, user NewUser) (string, error) {
	if user.Language == "" {
		user.Language = "en"
	}
	id := uuid.NewString()
	const q = `
	INSERT INTO users (id, email, hashed_password, name, city, country, language, sehri_alert_minutes, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now());`
	_, err := s.db.ExecContext(ctx, q, id, user.Email, user.HashedPassword, user.Name,
		user.City, user.Country, user.Language, DefaultSehriAlertMinutes)
	if err != nil {
		if isUniqueViolation(err) {
			return "", ErrEmailTaken
		}
		log.Error().Err(err).Msg("failed to create user")
		return "", err
	}
	return id, nil
}

// fetches user by email. returns nil, sql.ErrNoRows if not found.
func (s *pgStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := s.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE email = $1;`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Msg("failed to get user by email")
		return nil, err
	}
	return &u, nil
}

// fetches a user by ID. Returns nil, sql.ErrNoRows if not found.
func (s *pgStore) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	err := s.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE id = $1;`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Str("user_id", id).Msg("failed to get user by id")
		return nil, err
	}
	return &u, nil
}

// replaces the user's profile fields and bumps updated_at.
// returns an error if no rows were affected (e.g. user ID doesn’t exist).
func (s *pgStore) UpdateUserProfile(ctx context.Context, id string, profile Profile) error {
	const q = `
	UPDATE users
	   SET email = $2,
	       name = $3,
	       city = $4,
	       country = $5,
	       latitude = $6,
	       longitude = $7,
	       language = $8,
	       sehri_alert_minutes = $9,
	       updated_at = now()
	 WHERE id = $1;`
	res, err := s.db.ExecContext(ctx, q, id, profile.Email, profile.Name, profile.City, profile.Country,
		profile.Latitude, profile.Longitude, profile.Language, profile.SehriAlertMinutes)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		log.Error().Err(err).Str("user_id", id).Msg("failed to update user profile - exec")
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		log.Error().Err(err).Msg("failed to update user profile - rows affected")
		return err
	}
	if rows == 0 {
		log.Error().Str("user_id", id).Msg("failed to update user profile - no such user")
		return errors.New("no such user")
	}
	return nil
}

// lists users who want Sehri reminders and have a location to compute them for.
func (s *pgStore) ListAlertSubscribers(ctx context.Context) ([]model.User, error) {
	out := []model.User{}
	const q = `
	SELECT ` + userColumns + `
	  FROM users
	 WHERE sehri_alert_minutes > 0
	   AND ((latitude IS NOT NULL AND longitude IS NOT NULL)
	        OR (coalesce(city, '') <> '' AND coalesce(country, '') <> ''))
	 ORDER BY id;`
	if err := s.db.SelectContext(ctx, &out, q); err != nil {
		log.Error().Err(err).Msg("ListAlertSubscribers failed")
		return nil, err
	}
	return out, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
