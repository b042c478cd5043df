package endpoints

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/schedule"
)

type SystemController struct {
	environment string
	clock       schedule.Clock
}

// SystemModule mounts GET /health.
func SystemModule(environment string, clock schedule.Clock) api.Module {
	ctl := &SystemController{environment: environment, clock: clock}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/health", ctl.health)
	})
}

// GET /api/health
func (s *SystemController) health(ctx *gin.Context) (any, *api.APIError) {
	return gin.H{
		"status":      "ok",
		"environment": s.environment,
		"time":        s.clock().UTC().Format(time.RFC3339),
	}, nil
}
