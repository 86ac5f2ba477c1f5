// Package metrics holds the Prometheus collectors exported at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	labelOutcome = "outcome"
	labelSource  = "source"
)

// Metrics groups every collector the service records to. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	scrapeDuration     *prometheus.SummaryVec
	stylesheetFailures prometheus.Counter
	stylesheetFetches  prometheus.Counter
	creatives          *prometheus.CounterVec
	imageGenDuration   prometheus.Summary
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		scrapeDuration: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name:       "brandscout_scrape_duration_seconds",
				Help:       "brand scrape duration including page and stylesheet fetches",
				Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			},
			[]string{labelOutcome},
		),
		stylesheetFetches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "brandscout_stylesheet_fetches_total",
			Help: "linked stylesheets requested while scraping",
		}),
		stylesheetFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "brandscout_stylesheet_fetch_failures_total",
			Help: "linked stylesheets that could not be fetched and were skipped",
		}),
		creatives: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "brandscout_creatives_total",
			Help: "creatives stored, by source",
		}, []string{labelSource}),
		imageGenDuration: prometheus.NewSummary(prometheus.SummaryOpts{
			Name:       "brandscout_image_generation_duration_seconds",
			Help:       "latency of the external image generation call",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01},
		}),
	}

	reg.MustRegister(
		m.scrapeDuration,
		m.stylesheetFetches,
		m.stylesheetFailures,
		m.creatives,
		m.imageGenDuration,
	)
	return m
}

// ObserveScrape records one scrape. outcome is "ok" or "error".
func (m *Metrics) ObserveScrape(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.scrapeDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// StylesheetFetched records one stylesheet attempt.
func (m *Metrics) StylesheetFetched(ok bool) {
	if m == nil {
		return
	}
	m.stylesheetFetches.Inc()
	if !ok {
		m.stylesheetFailures.Inc()
	}
}

// CreativeStored records a persisted creative. source is "generated" or "manual".
func (m *Metrics) CreativeStored(source string, n int) {
	if m == nil {
		return
	}
	m.creatives.WithLabelValues(source).Add(float64(n))
}

func (m *Metrics) ObserveImageGeneration(d time.Duration) {
	if m == nil {
		return
	}
	m.imageGenDuration.Observe(d.Seconds())
}
