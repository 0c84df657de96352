package app

import (
	"context"
	"io"
	"time"

	"github.com/Egor213/NewsReport/internal/broker"
	kafkabroker "github.com/Egor213/NewsReport/internal/broker/kafka"
	"github.com/Egor213/NewsReport/internal/config"
	"github.com/Egor213/NewsReport/internal/metrics"
	"github.com/Egor213/NewsReport/internal/repo"
	"github.com/Egor213/NewsReport/internal/report"
	"github.com/Egor213/NewsReport/internal/service"
	errorsUtils "github.com/Egor213/NewsReport/pkg/errors"
	"github.com/Egor213/NewsReport/pkg/logger"
	"github.com/Egor213/NewsReport/pkg/postgres"

	log "github.com/sirupsen/logrus"
)

const metricsPushTimeout = 5 * time.Second

// Setup loads config and configures the logger.
func Setup() (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	logger.SetupLogger(cfg.Log.Level)
	log.Debug("Logger has been set up")

	return cfg, nil
}

// Run prints the three reports to out.
func Run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	// Migrations
	if cfg.Migrations.Enabled {
		if err := Migrate(cfg.PG.URL, cfg.Migrations.Path, cfg.PG.ConnAttempts); err != nil {
			return errorsUtils.WrapPathErr(err)
		}
	}

	// DB connecting
	log.Debug("Connecting to DB")
	pg, err := postgres.New(ctx, cfg.PG.URL,
		postgres.MaxPoolSize(cfg.PG.MaxPoolSize),
		postgres.ConnAttempts(cfg.PG.ConnAttempts),
		postgres.ConnTimeout(cfg.PG.ConnTimeout),
	)
	if err != nil {
		err = &service.DataAccessError{Op: "connect", Err: err}
		explain(cfg, err)
		return errorsUtils.WrapPathErr(err)
	}
	defer pg.Close()
	log.Debug("Connected to DB")

	// Repos
	repositories, err := repo.NewRepositories(pg, cfg.Report.Strategy)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	// Services
	deps := service.ServicesDependencies{
		Repos:      repositories,
		Transactor: pg.TrManager,
		Settings: service.ReportSettings{
			SuccessStatus:     cfg.Report.SuccessStatus,
			ArticlePathPrefix: cfg.Report.ArticlePathPrefix,
			IncludeZeroViews:  cfg.Report.IncludeZeroViews(),
		},
	}
	services := service.NewServices(deps)

	// Run events
	var producer broker.Producer = broker.NopProducer{}
	if cfg.Kafka.Enabled {
		p := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		defer func() {
			if err := p.Close(); err != nil {
				log.Warn(errorsUtils.WrapPathErr(err))
			}
		}()
		producer = p
	}

	counters := metrics.New()
	defer pushMetrics(cfg, counters)

	runner := report.NewRunner(report.RunnerDependencies{
		Reports:  services.Report,
		Printer:  report.NewPrinter(out),
		Counters: counters,
		Producer: producer,
	}, report.RunnerConfig{
		App:               cfg.App.Name,
		TopArticles:       cfg.Report.TopArticles,
		ErrorThresholdPct: cfg.Report.ErrorThresholdPct,
	})

	if err := runner.Run(ctx); err != nil {
		explain(cfg, err)
		return errorsUtils.WrapPathErr(err)
	}

	return nil
}

func pushMetrics(cfg *config.Config, counters *metrics.Counters) {
	if cfg.Metrics.PushgatewayURL == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), metricsPushTimeout)
	defer cancel()

	if err := counters.Push(ctx, cfg.Metrics.PushgatewayURL, cfg.Metrics.Job); err != nil {
		log.Warn(errorsUtils.WrapPathErr(err))
	}
}

func explain(cfg *config.Config, err error) {
	switch {
	case errorsUtils.IsUndefinedTable(err) && cfg.Report.Strategy == repo.StrategyViews:
		log.Error("Report views are missing, run `newsreport migrate` or use report.strategy=raw")
	case errorsUtils.IsUndefinedTable(err):
		log.Error("News tables are missing, check postgres.url points at the news database")
	case errorsUtils.IsInsufficientPrivilege(err):
		log.Error("Database user cannot read the news tables")
	case errorsUtils.IsConnectionErr(err):
		log.Error("Database is unreachable")
	}
}
