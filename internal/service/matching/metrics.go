package matching

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BatchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_batches_total",
			Help: "Total number of matching batch runs",
		},
	)

	AssignmentsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_assignments_created_total",
			Help: "Total number of assignments created by the matching engine",
		},
	)

	ShiftsSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_shifts_skipped_total",
			Help: "Open shifts left unassigned in a batch run",
		},
		[]string{"reason"},
	)

	BatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_batch_duration_seconds",
			Help:    "Duration of a full matching batch run",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
	)
)

const (
	skipNoCandidates = "no_candidates"
	skipAllBusy      = "all_candidates_busy"
	skipLostRace     = "lost_race"
	skipStoreError   = "store_error"
)
