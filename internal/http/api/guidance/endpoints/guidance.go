package endpoints

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/assistant"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api"
)

const (
	msgDuaFailed   = "Failed to fetch Dua"
	msgCoachFailed = "Failed to fetch coach advice"
)

type GuidanceController struct {
	assistant assistant.Assistant
}

// GuidanceModule mounts the generated dua and coaching endpoints. A nil
// assistant leaves the routes in place but failing.
func GuidanceModule(a assistant.Assistant) api.Module {
	ctl := &GuidanceController{assistant: a}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/dua", ctl.dua)
		c.PUBLIC_POST("/coach", ctl.coach)
	})
}

// GET /api/dua?mood=
func (g *GuidanceController) dua(ctx *gin.Context) (any, *api.APIError) {
	if g.assistant == nil {
		log.Warn().Msg("dua requested but no assistant is configured")
		return nil, api.Internal(msgDuaFailed)
	}
	mood := ctx.Query("mood")
	dua, err := g.assistant.Dua(ctx.Request.Context(), mood)
	if err != nil {
		log.Error().Err(err).Str("mood", mood).Msg("failed to fetch dua")
		return nil, api.Internal(msgDuaFailed)
	}
	return dua, nil
}

// POST /api/coach?lang=
func (g *GuidanceController) coach(ctx *gin.Context) (any, *api.APIError) {
	if g.assistant == nil {
		log.Warn().Msg("coach advice requested but no assistant is configured")
		return nil, api.Internal(msgCoachFailed)
	}
	// An empty body, chunked or not, means no progress yet.
	progress := map[string]any{}
	if err := ctx.ShouldBindJSON(&progress); err != nil && !errors.Is(err, io.EOF) {
		log.Warn().Err(err).Msg("invalid coach progress body")
		return nil, api.Internal(msgCoachFailed)
	}
	advice, err := g.assistant.Coach(ctx.Request.Context(), progress, ctx.Query("lang"))
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch coach advice")
		return nil, api.Internal(msgCoachFailed)
	}
	return advice, nil
}
