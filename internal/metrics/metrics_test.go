package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistry(t *testing.T) {
	InitRegistry()
	registry := GetRegistry()

	assert.NotNil(t, registry)
	assert.IsType(t, &prometheus.Registry{}, registry)
	assert.Same(t, registry, InitRegistry())
}

func TestRecordHTTPRequest(t *testing.T) {
	InitRegistry()
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/cars/:id", "404"))

	RecordHTTPRequest("GET", "/api/cars/:id", http.StatusNotFound, 0.01)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/cars/:id", "404"))
	assert.Equal(t, before+1, after)
}

func TestRecordRaceResultBatch(t *testing.T) {
	InitRegistry()
	persisted := testutil.ToFloat64(RaceResultsPersistedTotal)
	unique := testutil.ToFloat64(RaceResultsFailedTotal.WithLabelValues("unique"))

	RecordRaceResultBatch(3, []string{"unique"})

	assert.Equal(t, persisted+3, testutil.ToFloat64(RaceResultsPersistedTotal))
	assert.Equal(t, unique+1, testutil.ToFloat64(RaceResultsFailedTotal.WithLabelValues("unique")))
}

func TestRecordTeamDriversDroppedIgnoresZero(t *testing.T) {
	InitRegistry()
	before := testutil.ToFloat64(TeamDriversDroppedTotal)

	RecordTeamDriversDropped(0)
	RecordTeamDriversDropped(2)

	assert.Equal(t, before+2, testutil.ToFloat64(TeamDriversDroppedTotal))
}

func TestHandlerServesMetrics(t *testing.T) {
	InitRegistry()
	RecordEntityWrite("car", "created")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "paddock_entity_writes_total")
}
