package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"nicspectra/internal/calc/calcerr"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	httpInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Number of HTTP requests currently being served",
		},
	)

	calculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nicspectra_calculations_total",
			Help: "Calculations run, by pipeline and outcome",
		},
		[]string{"pipeline", "outcome"},
	)
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Metrics records request counts and latencies. The route label is the mux
// path template so cardinality stays bounded.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		labels := prometheus.Labels{
			"method": r.Method,
			"route":  route,
			"status": strconv.Itoa(rec.status),
		}
		httpRequestsTotal.With(labels).Inc()
		httpRequestDuration.With(labels).Observe(time.Since(start).Seconds())
	})
}

// ObserveCalculation counts one run of a pipeline by its error kind.
func ObserveCalculation(pipeline string, err error) {
	calculationsTotal.WithLabelValues(pipeline, Outcome(err)).Inc()
}

func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case calcerr.IsCodeProhibition(err):
		return "code_prohibition"
	case calcerr.IsNotFound(err):
		return "not_found"
	case calcerr.IsInvalidCombination(err):
		return "invalid_combination"
	case calcerr.IsDegenerate(err):
		return "degenerate_input"
	case calcerr.IsValidation(err):
		return "validation"
	default:
		return "error"
	}
}
