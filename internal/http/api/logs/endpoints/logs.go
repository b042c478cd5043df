package endpoints

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/db"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api/logs/packets"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/metrics"
)

const (
	msgSaveFailed  = "Failed to save log"
	msgFetchFailed = "Failed to fetch logs"
)

type LogsController struct {
	store db.Store
}

// LogsModule mounts the daily log endpoints.
func LogsModule(store db.Store) api.Module {
	ctl := &LogsController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/logs", ctl.upsertLog)
		c.PUBLIC_GET("/logs/:userId", ctl.listLogs)
	})
}

// POST /api/logs
func (l *LogsController) upsertLog(ctx *gin.Context) (any, *api.APIError) {
	var request packets.DailyLogRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		log.Warn().Err(err).Msg("invalid daily log body")
		return nil, api.Internal(msgSaveFailed)
	}

	err := l.store.UpsertDailyLog(ctx.Request.Context(), request.ToModel())
	metrics.RecordDailyLogUpsert(err)
	if err != nil {
		log.Error().Err(err).Str("user_id", request.UserID).Str("date", request.Date).Msg("failed to save daily log")
		return nil, api.Internal(msgSaveFailed)
	}

	return packets.SuccessResponse{Success: true}, nil
}

// GET /api/logs/:userId
func (l *LogsController) listLogs(ctx *gin.Context) (any, *api.APIError) {
	userID := ctx.Param("userId")
	logs, err := l.store.ListDailyLogsByUser(ctx.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to fetch daily logs")
		return nil, api.Internal(msgFetchFailed)
	}
	return logs, nil
}
