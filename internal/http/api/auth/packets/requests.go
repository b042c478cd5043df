package packets

// body for registering
type SignupRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     *string `json:"name"`
	City     *string `json:"city"`
	Country  *string `json:"country"`
	Language string  `json:"language" binding:"omitempty,oneof=en bn"`
}

// body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateCurrentProfileRequest struct {
	Email             string   `json:"email" binding:"required,email"`
	Name              *string  `json:"name"`
	City              *string  `json:"city"`
	Country           *string  `json:"country"`
	Latitude          *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude         *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Language          string   `json:"language" binding:"omitempty,oneof=en bn"`
	SehriAlertMinutes *int     `json:"sehri_alert_minutes" binding:"omitempty,min=0,max=120"`
}
