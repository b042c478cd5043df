package endpoints

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api/apitest"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/tasbih"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/zakat"
)

func TestZakat(t *testing.T) {
	r := apitest.Router(ZakatModule(decimal.NewFromInt(65)))

	w := apitest.Do(r, http.MethodPost, "/api/zakat", map[string]any{
		"assets":      map[string]any{"cash": 10000},
		"liabilities": map[string]any{"debts": 1000},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res zakat.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Eligible)
	assert.Equal(t, "9000", res.NetWealth.String())
	assert.Equal(t, "5686.2", res.Nisab.String())
	assert.Equal(t, "225", res.ZakatDue.String())
}

func TestZakat_BelowNisabWithPriceOverride(t *testing.T) {
	r := apitest.Router(ZakatModule(decimal.NewFromInt(65)))

	w := apitest.Do(r, http.MethodPost, "/api/zakat", map[string]any{
		"assets":              map[string]any{"cash": 10000},
		"gold_price_per_gram": 200,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res zakat.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.Eligible)
	assert.True(t, res.ZakatDue.IsZero())
}

func TestZakat_RejectsNegative(t *testing.T) {
	r := apitest.Router(ZakatModule(decimal.NewFromInt(65)))

	w := apitest.Do(r, http.MethodPost, "/api/zakat", map[string]any{"assets": map[string]any{"cash": -1}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = apitest.Do(r, http.MethodPost, "/api/zakat", map[string]any{"gold_price_per_gram": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTasbih(t *testing.T) {
	r := apitest.Router(TasbihModule(tasbih.NewService(tasbih.NewMemoryStore())))

	w := apitest.Do(r, http.MethodGet, "/api/tasbih/u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"phrase":"SubhanAllah","count":0,"target":33}`, w.Body.String())

	w = apitest.Do(r, http.MethodPost, "/api/tasbih/u1/target", map[string]any{"target": 2})
	require.Equal(t, http.StatusOK, w.Code)

	for i := 0; i < 3; i++ {
		w = apitest.Do(r, http.MethodPost, "/api/tasbih/u1/increment", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.JSONEq(t, `{"phrase":"Alhamdulillah","count":1,"target":2}`, w.Body.String())

	w = apitest.Do(r, http.MethodPost, "/api/tasbih/u1/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"phrase":"Alhamdulillah","count":0,"target":2}`, w.Body.String())

	w = apitest.Do(r, http.MethodPost, "/api/tasbih/u1/target", map[string]any{"target": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
