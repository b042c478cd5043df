package endpoints

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api/tools/packets"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/tasbih"
)

const msgTasbihFailed = "Failed to update tasbih"

type TasbihController struct {
	counters *tasbih.Service
}

// TasbihModule mounts the per-user tasbih counter.
func TasbihModule(counters *tasbih.Service) api.Module {
	ctl := &TasbihController{counters: counters}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/tasbih/:userId", ctl.get)
		c.PUBLIC_POST("/tasbih/:userId/increment", ctl.increment)
		c.PUBLIC_POST("/tasbih/:userId/reset", ctl.reset)
		c.PUBLIC_POST("/tasbih/:userId/target", ctl.setTarget)
	})
}

func tasbihResult(userID string, counter tasbih.Counter, err error) (any, *api.APIError) {
	if errors.Is(err, tasbih.ErrInvalidTarget) {
		return nil, api.BadRequest(err.Error())
	}
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("tasbih update failed")
		return nil, api.Internal(msgTasbihFailed)
	}
	return counter, nil
}

// GET /api/tasbih/:userId
func (t *TasbihController) get(ctx *gin.Context) (any, *api.APIError) {
	userID := ctx.Param("userId")
	counter, err := t.counters.Get(ctx.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to load tasbih")
		return nil, api.Internal("Failed to fetch tasbih")
	}
	return counter, nil
}

// POST /api/tasbih/:userId/increment
func (t *TasbihController) increment(ctx *gin.Context) (any, *api.APIError) {
	userID := ctx.Param("userId")
	counter, err := t.counters.Increment(ctx.Request.Context(), userID)
	return tasbihResult(userID, counter, err)
}

// POST /api/tasbih/:userId/reset
func (t *TasbihController) reset(ctx *gin.Context) (any, *api.APIError) {
	userID := ctx.Param("userId")
	counter, err := t.counters.Reset(ctx.Request.Context(), userID)
	return tasbihResult(userID, counter, err)
}

// POST /api/tasbih/:userId/target
func (t *TasbihController) setTarget(ctx *gin.Context) (any, *api.APIError) {
	var request packets.TasbihTargetRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	userID := ctx.Param("userId")
	counter, err := t.counters.SetTarget(ctx.Request.Context(), userID, request.Target)
	return tasbihResult(userID, counter, err)
}
