package endpoints

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/db"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api/auth/packets"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/middleware"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/model"
)

// AuthPublicModule mounts public auth endpoints (/auth/signup, /auth/login)
func AuthPublicModule(jwtSecret string, store db.Store) api.Module {
	ctl := newAccountManager(jwtSecret, store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/auth/signup", ctl.userSignup)
		c.PUBLIC_POST("/auth/login", ctl.userLogin)
	})
}

// AuthSessionModule mounts private session/profile endpoints (JWT required)
func AuthSessionModule(jwtSecret string, store db.Store) api.Module {
	ctl := newAccountManager(jwtSecret, store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/auth/current_profile", ctl.getCurrentProfile)
		c.PUT("/auth/current_profile", ctl.updateCurrentProfile)
	})
}

type AccountManager struct {
	jwtSecret string
	store     db.Store
}

func newAccountManager(secret string, store db.Store) *AccountManager {
	return &AccountManager{jwtSecret: secret, store: store}
}

func emailTaken() *api.APIError {
	return &api.APIError{Code: http.StatusConflict, Message: "email already registered"}
}

// POST /api/auth/signup
func (a *AccountManager) userSignup(ctx *gin.Context) (any, *api.APIError) {
	var request packets.SignupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	reqCtx := ctx.Request.Context()

	existing, err := a.store.GetUserByEmail(reqCtx, request.Email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Error().Err(err).Msg("could not look up signup email")
		return nil, api.Internal("could not create user")
	}
	if existing != nil {
		log.Warn().Str("email", request.Email).Msg("signup email already registered")
		return nil, emailTaken()
	}

	hashed, err := middleware.HashPassword(request.Password)
	if err != nil {
		log.Error().Err(err).Msg("could not hash password")
		return nil, api.Internal("could not hash password")
	}

	userID, err := a.store.CreateUser(reqCtx, db.NewUser{
		Email:          request.Email,
		HashedPassword: hashed,
		Name:           request.Name,
		City:           request.City,
		Country:        request.Country,
		Language:       request.Language,
	})
	if errors.Is(err, db.ErrEmailTaken) {
		log.Warn().Str("email", request.Email).Msg("signup email registered concurrently")
		return nil, emailTaken()
	}
	if err != nil {
		return nil, api.Internal("could not create user")
	}

	token, err := middleware.GenerateJWT(userID, a.jwtSecret)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("could not generate token")
		return nil, api.Internal("could not generate token")
	}

	return packets.TokenResponse{Token: token}, nil
}

// POST /api/auth/login
func (a *AccountManager) userLogin(ctx *gin.Context) (any, *api.APIError) {
	var request packets.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}

	foundUser, err := a.store.GetUserByEmail(ctx.Request.Context(), request.Email)
	if err != nil || foundUser == nil || !middleware.CheckPassword(foundUser.HashedPassword, request.Password) {
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: "invalid credentials"}
	}

	token, err := middleware.GenerateJWT(foundUser.ID, a.jwtSecret)
	if err != nil {
		return nil, api.Internal("could not generate token")
	}

	return packets.TokenResponse{Token: token}, nil
}

// GET /api/auth/current_profile
func (a *AccountManager) getCurrentProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return packets.NewProfileResponse(user), nil
}

// PUT /api/auth/current_profile
func (a *AccountManager) updateCurrentProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdateCurrentProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	reqCtx := ctx.Request.Context()

	if request.Email != user.Email {
		other, err := a.store.GetUserByEmail(reqCtx, request.Email)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			log.Error().Err(err).Str("user_id", user.ID).Msg("could not look up profile email")
			return nil, api.Internal("could not update profile")
		}
		if other != nil {
			return nil, &api.APIError{Code: http.StatusConflict, Message: "email already in use"}
		}
	}

	profile := db.Profile{
		Email:             request.Email,
		Name:              request.Name,
		City:              request.City,
		Country:           request.Country,
		Latitude:          request.Latitude,
		Longitude:         request.Longitude,
		Language:          request.Language,
		SehriAlertMinutes: user.SehriAlertMinutes,
	}
	if profile.Language == "" {
		profile.Language = user.Language
	}
	if request.SehriAlertMinutes != nil {
		profile.SehriAlertMinutes = *request.SehriAlertMinutes
	}

	err := a.store.UpdateUserProfile(reqCtx, user.ID, profile)
	if errors.Is(err, db.ErrEmailTaken) {
		return nil, &api.APIError{Code: http.StatusConflict, Message: "email already in use"}
	}
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("could not update profile")
		return nil, api.Internal("could not update profile")
	}

	updated, err := a.store.GetUserByID(reqCtx, user.ID)
	if err != nil {
		return nil, api.Internal("could not fetch updated profile")
	}

	return packets.NewProfileResponse(updated), nil
}
