// Package metrics exposes search counters for Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rvtools/leveler/internal/level"
	"github.com/rvtools/leveler/internal/survey"
)

// Recorder owns a registry so that tests and multiple servers do not collide
// on the global one.
type Recorder struct {
	registry *prometheus.Registry

	searches   *prometheus.CounterVec
	steps      prometheus.Counter
	evaluated  prometheus.Counter
	correction prometheus.Histogram
	residual   *prometheus.GaugeVec
	surveys    *prometheus.CounterVec
}

// NewRecorder creates and registers all collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leveler_searches_total",
				Help: "Ramp placement searches, by profile",
			},
			[]string{"profile"},
		),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "leveler_search_steps_total",
			Help: "Accepted moves across all searches",
		}),
		evaluated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "leveler_candidates_evaluated_total",
			Help: "Feasible candidate placements built across all searches",
		}),
		correction: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "leveler_correction_ratio",
			Help:    "Share of the initial tilt removed by the chosen placement",
			Buckets: []float64{0, 0.25, 0.5, 0.75, 0.9, 0.99, 1},
		}),
		residual: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "leveler_residual_tilt_degrees",
				Help: "Combined tilt left after the most recent search, by profile",
			},
			[]string{"profile"},
		),
		surveys: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leveler_survey_trials_total",
				Help: "Random tilts solved by coverage surveys, by profile",
			},
			[]string{"profile"},
		),
	}
	r.registry.MustRegister(r.searches, r.steps, r.evaluated, r.correction, r.residual, r.surveys)
	return r
}

// ObservePlan records one search.
func (r *Recorder) ObservePlan(profile string, p level.Plan) {
	r.searches.WithLabelValues(profile).Inc()
	r.steps.Add(float64(p.Steps))
	r.evaluated.Add(float64(p.Evaluated))
	r.correction.Observe(p.Correction)
	r.residual.WithLabelValues(profile).Set(p.Best.Total)
}

// ObserveSurvey records a coverage survey.
func (r *Recorder) ObserveSurvey(profile string, res survey.Result) {
	r.surveys.WithLabelValues(profile).Add(float64(res.Trials))
	r.steps.Add(float64(res.Steps))
	r.evaluated.Add(float64(res.Evaluated))
}

// Registry returns the recorder's registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
