package endpoints

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/db"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api/quran/packets"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/model"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/quran"
)

// Reader is satisfied by *quran.Client.
type Reader interface {
	Surahs(ctx context.Context) ([]model.Surah, error)
	Surah(ctx context.Context, number int) (model.SurahText, error)
}

type QuranController struct {
	reader Reader
	store  db.Store
}

// QuranModule mounts surah browsing and reading progress.
func QuranModule(reader Reader, store db.Store) api.Module {
	ctl := &QuranController{reader: reader, store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/quran/surahs", ctl.listSurahs)
		c.PUBLIC_GET("/quran/surahs/:number", ctl.getSurah)
		c.PUBLIC_POST("/quran/progress", ctl.saveProgress)
		c.PUBLIC_GET("/quran/progress/:userId", ctl.listProgress)
	})
}

// GET /api/quran/surahs
func (q *QuranController) listSurahs(ctx *gin.Context) (any, *api.APIError) {
	surahs, err := q.reader.Surahs(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch surah list")
		return nil, api.Internal("Failed to fetch surahs")
	}
	return surahs, nil
}

// GET /api/quran/surahs/:number
func (q *QuranController) getSurah(ctx *gin.Context) (any, *api.APIError) {
	number, err := strconv.Atoi(ctx.Param("number"))
	if err != nil || number < 1 || number > quran.SurahCount {
		return nil, api.BadRequest("surah number must be between 1 and 114")
	}
	surah, err := q.reader.Surah(ctx.Request.Context(), number)
	if err != nil {
		log.Error().Err(err).Int("surah", number).Msg("failed to fetch surah")
		return nil, api.Internal("Failed to fetch surah")
	}
	return surah, nil
}

// POST /api/quran/progress
func (q *QuranController) saveProgress(ctx *gin.Context) (any, *api.APIError) {
	var request packets.ProgressRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	if err := q.store.UpsertQuranProgress(ctx.Request.Context(), request.ToModel()); err != nil {
		log.Error().Err(err).Str("user_id", request.UserID).Int("surah", request.SurahID).Msg("failed to save quran progress")
		return nil, api.Internal("Failed to save progress")
	}
	return gin.H{"success": true}, nil
}

// GET /api/quran/progress/:userId
func (q *QuranController) listProgress(ctx *gin.Context) (any, *api.APIError) {
	userID := ctx.Param("userId")
	progress, err := q.store.ListQuranProgress(ctx.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to fetch quran progress")
		return nil, api.Internal("Failed to fetch progress")
	}
	return progress, nil
}
