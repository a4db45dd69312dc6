// Package metrics records solve timings and failures as Prometheus metrics.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/ports"
)

// Recorder is a ports.Observer backed by its own registry, so a run can be
// exported without the Go runtime collectors.
type Recorder struct {
	reg *prometheus.Registry

	// solveDuration measures how long one part takes, parsing included.
	// Labels: year, day, part
	solveDuration *prometheus.HistogramVec

	// solveFailures counts parts that returned an error.
	// Labels: year, day, part
	solveFailures *prometheus.CounterVec

	// lastAnswerTime is when a part last produced an answer.
	// Labels: year, day, part
	lastAnswerTime *prometheus.GaugeVec
}

var _ ports.Observer = (*Recorder)(nil)

func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	labels := []string{"year", "day", "part"}
	return &Recorder{
		reg: reg,
		solveDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "aoc",
			Name:      "solve_duration_seconds",
			Help:      "Time to parse the input and solve one part",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, labels),
		solveFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aoc",
			Name:      "solve_failures_total",
			Help:      "Parts that returned an error",
		}, labels),
		lastAnswerTime: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "aoc",
			Name:      "last_answer_timestamp_seconds",
			Help:      "Unix time a part last produced an answer",
		}, labels),
	}
}

// Registry exposes the collectors, for tests and exporters.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Observe records one finished part. Parts without a solution are ignored.
func (r *Recorder) Observe(res domain.Result) {
	if res.Err != nil && !res.Failed() {
		return
	}
	lv := []string{strconv.Itoa(res.Date.Year), strconv.Itoa(res.Date.Day), res.Part.String()}
	if res.Failed() {
		r.solveFailures.WithLabelValues(lv...).Inc()
		return
	}
	r.solveDuration.WithLabelValues(lv...).Observe(res.Duration.Seconds())
	r.lastAnswerTime.WithLabelValues(lv...).SetToCurrentTime()
}

// WriteFile writes every metric to path in the text exposition format, for
// node_exporter's textfile collector.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
