/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Seednode/dugout/games/lineup"
)

const metricsNamespace = "dugout"

// gameMetrics holds the counters exported at /metrics. A nil *gameMetrics
// records nothing.
type gameMetrics struct {
	registry *prometheus.Registry

	roundsStarted prometheus.Counter
	roundsActive  prometheus.Gauge
	roundsReaped  prometheus.Counter
	submissions   *prometheus.CounterVec
	positions     *prometheus.CounterVec
	percentage    prometheus.Histogram
	rateLimited   prometheus.Counter
}

func newGameMetrics() *gameMetrics {
	m := &gameMetrics{
		registry: prometheus.NewRegistry(),
		roundsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rounds_started_total",
			Help:      "Rounds created.",
		}),
		roundsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "rounds_active",
			Help:      "Rounds currently held in memory.",
		}),
		roundsReaped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rounds_reaped_total",
			Help:      "Rounds discarded after going idle.",
		}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "submissions_total",
			Help:      "Guess submissions scored, by transport.",
		}, []string{"transport"}),
		positions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "positions_scored_total",
			Help:      "Positions scored, by outcome.",
		}, []string{"outcome"}),
		percentage: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "score_percentage",
			Help:      "Distribution of submission percentages.",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rate_limited_total",
			Help:      "Guess submissions rejected by the rate limiter.",
		}),
	}

	m.registry.MustRegister(
		m.roundsStarted,
		m.roundsActive,
		m.roundsReaped,
		m.submissions,
		m.positions,
		m.percentage,
		m.rateLimited,
	)

	return m
}

func (m *gameMetrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *gameMetrics) roundStarted(active int) {
	if m == nil {
		return
	}
	m.roundsStarted.Inc()
	m.roundsActive.Set(float64(active))
}

func (m *gameMetrics) roundsRemoved(reaped, active int) {
	if m == nil {
		return
	}
	m.roundsReaped.Add(float64(reaped))
	m.roundsActive.Set(float64(active))
}

func (m *gameMetrics) scored(transport string, summary lineup.ScoreSummary) {
	if m == nil {
		return
	}

	m.submissions.WithLabelValues(transport).Inc()
	m.percentage.Observe(summary.Percentage)

	for _, result := range summary.Results {
		switch {
		case result.Correct:
			m.positions.WithLabelValues("correct").Inc()
		case result.Message == lineup.NoGuessMessage:
			m.positions.WithLabelValues("blank").Inc()
		default:
			m.positions.WithLabelValues("incorrect").Inc()
		}
	}
}

func (m *gameMetrics) limited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}
