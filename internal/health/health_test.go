package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(ctx context.Context) error { return f.err }

func serve(t *testing.T, c *Checker, path string) (*httptest.ResponseRecorder, ReadyResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c.Register(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body ReadyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHealthAndLive(t *testing.T) {
	c := NewChecker("paddock", "1.0.0", nil)

	rec, body := serve(t, c, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body.Status)

	rec, _ = serve(t, c, "/live")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyRequiresFlagAndDatabase(t *testing.T) {
	c := NewChecker("paddock", "1.0.0", fakePinger{})

	rec, body := serve(t, c, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "not_ready", body.Checks["service"])

	c.SetReady(true)
	rec, body = serve(t, c, "/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body.Checks["database"])

	c.db = fakePinger{err: errors.New("connection refused")}
	rec, body = serve(t, c, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "error: connection refused", body.Checks["database"])
}
