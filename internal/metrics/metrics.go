package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ResolveTotal counts resolve requests by outcome (matched, unmatched).
	ResolveTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "synonym_resolve_total",
			Help: "Total number of free-text queries resolved against the synonym table",
		},
		[]string{"outcome"},
	)

	// ResolveCacheTotal counts resolve cache lookups by result (hit, miss, error).
	ResolveCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "synonym_resolve_cache_total",
			Help: "Resolve cache lookups by result",
		},
		[]string{"result"},
	)

	// TableTerms is the number of canonical terms in the loaded table.
	TableTerms = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "synonym_table_terms",
			Help: "Number of canonical terms in the synonym table",
		},
	)

	// TableCollisions is the number of authored terms overwritten by a later definition.
	TableCollisions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "synonym_table_collisions",
			Help: "Number of duplicate authored terms resolved by last definition wins",
		},
	)
)

func init() {
	prometheus.MustRegister(ResolveTotal)
	prometheus.MustRegister(ResolveCacheTotal)
	prometheus.MustRegister(TableTerms)
	prometheus.MustRegister(TableCollisions)
}
