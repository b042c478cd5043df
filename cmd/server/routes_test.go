package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/config"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api/apitest"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/prayertimes"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/quran"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/tasbih"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Environment:      "test",
		JWTSecret:        "secret",
		GoldPricePerGram: 65,
		AIRatePerSecond:  0.001,
		AIRateBurst:      1,
	}
	r := gin.New()
	RegisterRoutes(r, cfg, Dependencies{
		Store:  apitest.NewStore(),
		Prayer: prayertimes.New("http://127.0.0.1:0", time.Second),
		Quran:  quran.New("http://127.0.0.1:0", time.Second),
		Tasbih: tasbih.NewService(tasbih.NewMemoryStore()),
	})
	return r
}

func TestRegisterRoutes(t *testing.T) {
	r := testRouter()

	cases := []struct {
		method string
		path   string
		code   int
	}{
		{http.MethodGet, "/api/health", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/logs/u1", http.StatusOK},
		{http.MethodGet, "/api/tasbih/u1", http.StatusOK},
		{http.MethodGet, "/api/auth/current_profile", http.StatusUnauthorized},
		{http.MethodGet, "/api/prayer-times", http.StatusBadRequest},
	}
	for _, tc := range cases {
		w := apitest.Do(r, tc.method, tc.path, nil)
		assert.Equal(t, tc.code, w.Code, tc.path)
	}
}

func TestGuidanceIsRateLimited(t *testing.T) {
	r := testRouter()

	w := apitest.Do(r, http.MethodGet, "/api/dua", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code, "no assistant configured")

	w = apitest.Do(r, http.MethodGet, "/api/dua", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
