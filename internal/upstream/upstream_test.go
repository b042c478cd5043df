package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/ok":
			assert.Equal(t, "Dhaka", r.URL.Query().Get("city"))
			w.Write([]byte(`{"code":200}`))
		case "/v1/text":
			w.Write([]byte(`<html>`))
		default:
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"code":400}`))
		}
	}))
	defer srv.Close()

	c := New("test", srv.URL+"/v1/", time.Second)

	body, err := c.GetJSON(context.Background(), "/ok", url.Values{"city": {"Dhaka"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":200}`, string(body))

	_, err = c.GetJSON(context.Background(), "text", nil)
	assert.ErrorIs(t, err, ErrUpstream)

	_, err = c.GetJSON(context.Background(), "missing", nil)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestGetJSON_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := New("test", base, time.Second).GetJSON(context.Background(), "x", nil)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestURL(t *testing.T) {
	c := New("test", "https://api.example.com/v1/", time.Second)
	assert.Equal(t, "https://api.example.com/v1/timings?a=1&b=2", c.URL("/timings", url.Values{"b": {"2"}, "a": {"1"}}))
	assert.Equal(t, "https://api.example.com/v1/surah", c.URL("surah", nil))
}
