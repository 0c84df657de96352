package metrics

import (
	"context"

	errorsUtils "github.com/Egor213/NewsReport/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

type Counter interface {
	Inc(labels ...string)
}

type Observer interface {
	Observe(value float64, labels ...string)
}

type Counters struct {
	ReportRuns     Counter
	ReportRows     Observer
	ReportDuration Observer

	registry *prometheus.Registry
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func NewPrometheusCounter(reg prometheus.Registerer, name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: help,
		}, labels),
	}
	reg.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

type PrometheusGauge struct {
	gauge *prometheus.GaugeVec
}

func NewPrometheusGauge(reg prometheus.Registerer, name, help string, labels []string) *PrometheusGauge {
	g := &PrometheusGauge{
		gauge: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: name,
			Help: help,
		}, labels),
	}
	reg.MustRegister(g.gauge)
	return g
}

func (p *PrometheusGauge) Observe(value float64, labels ...string) {
	p.gauge.WithLabelValues(labels...).Set(value)
}

type PrometheusHistogram struct {
	histogram *prometheus.HistogramVec
}

func NewPrometheusHistogram(reg prometheus.Registerer, name, help string, labels []string) *PrometheusHistogram {
	h := &PrometheusHistogram{
		histogram: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		}, labels),
	}
	reg.MustRegister(h.histogram)
	return h
}

func (p *PrometheusHistogram) Observe(value float64, labels ...string) {
	p.histogram.WithLabelValues(labels...).Observe(value)
}

// New registers report metrics in a private registry, so a push carries only
// what this run produced.
func New() *Counters {
	reg := prometheus.NewRegistry()

	return &Counters{
		ReportRuns: NewPrometheusCounter(reg,
			"newsreport_report_runs_total",
			"Number of report runs",
			[]string{"report", "status"},
		),
		ReportRows: NewPrometheusGauge(reg,
			"newsreport_report_rows",
			"Rows produced by the last report run",
			[]string{"report"},
		),
		ReportDuration: NewPrometheusHistogram(reg,
			"newsreport_report_duration_seconds",
			"Time spent querying and printing a report",
			[]string{"report"},
		),
		registry: reg,
	}
}

func NewTestCounters() *Counters {
	return New()
}

func (c *Counters) Gatherer() prometheus.Gatherer {
	return c.registry
}

// Push sends the collected metrics to a Prometheus Pushgateway under job.
func (c *Counters) Push(ctx context.Context, url, job string) error {
	err := push.New(url, job).
		Gatherer(c.registry).
		PushContext(ctx)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}
