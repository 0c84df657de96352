package report

import (
	"context"
	"time"

	"github.com/Egor213/NewsReport/internal/broker"
	"github.com/Egor213/NewsReport/internal/metrics"
	"github.com/Egor213/NewsReport/internal/service"
	errorsUtils "github.com/Egor213/NewsReport/pkg/errors"
	json "github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
)

const (
	ReportArticles  = "articles"
	ReportAuthors   = "authors"
	ReportErrorDays = "error_days"

	statusOK     = "ok"
	statusFailed = "failed"
)

type RunnerConfig struct {
	App               string
	TopArticles       int
	ErrorThresholdPct float64
}

type RunnerDependencies struct {
	Reports  service.Report
	Printer  *Printer
	Counters *metrics.Counters
	Producer broker.Producer
}

type Runner struct {
	reports  service.Report
	printer  *Printer
	counters *metrics.Counters
	producer broker.Producer
	cfg      RunnerConfig
}

func NewRunner(deps RunnerDependencies, cfg RunnerConfig) *Runner {
	producer := deps.Producer
	if producer == nil {
		producer = broker.NopProducer{}
	}

	return &Runner{
		reports:  deps.Reports,
		printer:  deps.Printer,
		counters: deps.Counters,
		producer: producer,
		cfg:      cfg,
	}
}

// Run prints articles, authors and error days in that order. It stops at the
// first failure; reports printed before it stay printed.
func (r *Runner) Run(ctx context.Context) error {
	steps := []struct {
		name string
		run  func(ctx context.Context) (int, error)
	}{
		{ReportArticles, r.articles},
		{ReportAuthors, r.authors},
		{ReportErrorDays, r.errorDays},
	}

	for _, step := range steps {
		logStarted(step.name)
		start := time.Now()

		rows, err := step.run(ctx)

		took := time.Since(start)
		r.record(ctx, step.name, rows, took, err)
		if err != nil {
			logFailed(step.name, took, err)
			return errorsUtils.WrapPathErr(err)
		}
		logFinished(step.name, rows, took)
	}

	return nil
}

func (r *Runner) articles(ctx context.Context) (int, error) {
	rows, err := r.reports.TopArticles(ctx, r.cfg.TopArticles)
	if err != nil {
		return 0, err
	}
	return len(rows), r.printer.Articles(r.cfg.TopArticles, rows)
}

func (r *Runner) authors(ctx context.Context) (int, error) {
	rows, err := r.reports.TopAuthors(ctx)
	if err != nil {
		return 0, err
	}
	return len(rows), r.printer.Authors(rows)
}

func (r *Runner) errorDays(ctx context.Context) (int, error) {
	rows, err := r.reports.HighErrorDays(ctx, r.cfg.ErrorThresholdPct)
	if err != nil {
		return 0, err
	}
	return len(rows), r.printer.ErrorDays(r.cfg.ErrorThresholdPct, rows)
}

// record updates metrics and publishes a run event. Event delivery is best
// effort and never fails the report.
func (r *Runner) record(ctx context.Context, name string, rows int, took time.Duration, runErr error) {
	status := statusOK
	if runErr != nil {
		status = statusFailed
	}

	if r.counters != nil {
		r.counters.ReportRuns.Inc(name, status)
		r.counters.ReportDuration.Observe(took.Seconds(), name)
		if runErr == nil {
			r.counters.ReportRows.Observe(float64(rows), name)
		}
	}

	event := broker.RunEvent{
		App:        r.cfg.App,
		Report:     name,
		Status:     status,
		Rows:       rows,
		DurationMs: took.Milliseconds(),
		FinishedAt: time.Now().UTC(),
	}
	if runErr != nil {
		event.Error = runErr.Error()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).Warn("Failed to encode run event")
		return
	}
	if err := r.producer.SendMessage(ctx, name, payload); err != nil {
		log.WithError(err).WithField("report", name).Warn("Failed to publish run event")
	}
}
