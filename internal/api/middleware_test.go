package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/yourusername/paddock/internal/metrics"
)

func pingRouter(middleware ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware...)
	r.GET("/ping/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestRateLimit(t *testing.T) {
	r := pingRouter(RateLimit(1, 2))
	before := testutil.ToFloat64(metrics.RateLimitedTotal)

	codes := make([]int, 3)
	for i := range codes {
		codes[i] = do(r, http.MethodGet, "/ping/1", nil).Code
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.RateLimitedTotal))
}

func TestRateLimitDisabled(t *testing.T) {
	r := pingRouter(RateLimit(0, 0))

	for i := 0; i < 20; i++ {
		assert.Equal(t, http.StatusNoContent, do(r, http.MethodGet, "/ping/1", nil).Code)
	}
}

func TestMetricsUseRouteTemplate(t *testing.T) {
	r := pingRouter(Metrics())
	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/ping/:id", "204")
	before := testutil.ToFloat64(counter)

	do(r, http.MethodGet, "/ping/a", nil)
	do(r, http.MethodGet, "/ping/b", nil)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.HTTPRequestsInFlight))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	r := pingRouter(RequestLogger(log))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping/7", nil))

	out := buf.String()
	assert.Contains(t, out, `"route":"/ping/:id"`)
	assert.Contains(t, out, `"path":"/ping/7"`)
	assert.Contains(t, out, `"status":204`)
}
