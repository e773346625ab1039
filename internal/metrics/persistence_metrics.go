package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	EntityWritesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_writes_total",
		Help:      "Total number of entity writes by entity and action",
	}, []string{"entity", "action"})

	RaceResultsPersistedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "race_results_persisted_total",
		Help:      "Total number of race results persisted through race batches",
	})

	RaceResultsFailedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "race_results_failed_total",
		Help:      "Total number of race results rejected in race batches by reason",
	}, []string{"reason"})

	TeamDriversDroppedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "team_drivers_dropped_total",
		Help:      "Total number of unknown driver ids dropped while saving teams",
	})
)

// RecordEntityWrite records a save or delete of entity.
func RecordEntityWrite(entity, action string) {
	EntityWritesTotal.WithLabelValues(entity, action).Inc()
}

// RecordRaceResultBatch records the outcome of one race result batch.
func RecordRaceResultBatch(persisted int, failureReasons []string) {
	RaceResultsPersistedTotal.Add(float64(persisted))
	for _, reason := range failureReasons {
		RaceResultsFailedTotal.WithLabelValues(reason).Inc()
	}
}

// RecordTeamDriversDropped records driver ids that resolved to no stored driver.
func RecordTeamDriversDropped(count int) {
	if count > 0 {
		TeamDriversDroppedTotal.Add(float64(count))
	}
}
