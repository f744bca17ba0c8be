package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Solve outcomes used as the "outcome" label of SolvesTotal.
const (
	OutcomeSuccess        = "success"
	OutcomeNoIntersection = "no_intersection"
	OutcomeDegenerate     = "degenerate"
	OutcomeInvalidInput   = "invalid_input"
	OutcomeAnchorError    = "anchor_error"
	OutcomeError          = "error"
)

// Anchor lookup sources used as the "source" label of AnchorLookups.
const (
	SourceInline   = "inline"
	SourceCatalog  = "catalog"
	SourceGeocoder = "geocoder"
)

type Metrics struct {
	SolvesTotal    *prometheus.CounterVec
	SolveSeconds   prometheus.Histogram
	AnchorLookups  *prometheus.CounterVec
	GeocoderErrors prometheus.Counter
	HTTPRequests   *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		SolvesTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "locus_solves_total",
			Help: "Total number of trilateration requests by outcome.",
		}, []string{"outcome"}),
		SolveSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "locus_solve_duration_seconds",
			Help:    "Duration of a locate request, including anchor resolution.",
			Buckets: prometheus.DefBuckets,
		}),
		AnchorLookups: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "locus_anchor_lookups_total",
			Help: "Reference points resolved, by where their coordinates came from.",
		}, []string{"source"}),
		GeocoderErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "locus_geocoder_errors_total",
			Help: "Total number of errors received from the geocoding provider.",
		}),
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "locus_http_requests_total",
			Help: "HTTP requests served, by route and status code.",
		}, []string{"route", "status"}),
	}
}
