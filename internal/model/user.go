package model

import "time"

type User struct {
	ID                string    `db:"id"`
	Email             string    `db:"email"`
	HashedPassword    string    `db:"hashed_password"`
	Name              *string   `db:"name"`
	City              *string   `db:"city"`
	Country           *string   `db:"country"`
	Latitude          *float64  `db:"latitude"`
	Longitude         *float64  `db:"longitude"`
	Language          string    `db:"language"`
	SehriAlertMinutes int       `db:"sehri_alert_minutes"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// HasLocation reports whether prayer times can be fetched for the user.
func (u User) HasLocation() bool {
	if u.Latitude != nil && u.Longitude != nil {
		return true
	}
	return u.City != nil && *u.City != "" && u.Country != nil && *u.Country != ""
}
