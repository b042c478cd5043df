package packets

import (
	"time"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/model"
)

type TokenResponse struct {
	Token string `json:"token"`
}

// returned for profile endpoints
type ProfileResponse struct {
	ID                string   `json:"id"`
	Email             string   `json:"email"`
	Name              *string  `json:"name"`
	City              *string  `json:"city"`
	Country           *string  `json:"country"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	Language          string   `json:"language"`
	SehriAlertMinutes int      `json:"sehri_alert_minutes"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}

func NewProfileResponse(u *model.User) ProfileResponse {
	return ProfileResponse{
		ID:                u.ID,
		Email:             u.Email,
		Name:              u.Name,
		City:              u.City,
		Country:           u.Country,
		Latitude:          u.Latitude,
		Longitude:         u.Longitude,
		Language:          u.Language,
		SehriAlertMinutes: u.SehriAlertMinutes,
		CreatedAt:         u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         u.UpdatedAt.Format(time.RFC3339),
	}
}
