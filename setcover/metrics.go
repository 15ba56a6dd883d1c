// SPDX-License-Identifier: MIT

package setcover

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "setcover")

var (
	// solvesTotal counts solver calls.
	// Labels: algorithm ("exact", "greedy"), result ("complete", "partial", "error").
	solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "setcover_solves_total",
		Help: "Total set cover solves by algorithm and result",
	}, []string{"algorithm", "result"})

	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "setcover_solve_duration_seconds",
		Help:    "Set cover solve duration",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10},
	}, []string{"algorithm"})

	selectedSets = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "setcover_selected_sets",
		Help:    "Number of sets in returned covers",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
	})
)

// observe records one finished solve.
func observe(algo Algorithm, start time.Time, c Cover, err error) {
	result := "complete"
	switch {
	case err != nil:
		result = "error"
	case !c.Complete:
		result = "partial"
	}
	solvesTotal.WithLabelValues(algo.String(), result).Inc()
	solveDuration.WithLabelValues(algo.String()).Observe(time.Since(start).Seconds())
	if err == nil {
		selectedSets.Observe(float64(c.Len()))
	}
}
