package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	errorsUtils "github.com/Egor213/NewsReport/pkg/errors"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type (
	Config struct {
		App        `yaml:"app"`
		Log        `yaml:"log"`
		PG         `yaml:"postgres"`
		Migrations `yaml:"migrations"`
		Report     `yaml:"report"`
		Metrics    `yaml:"metrics"`
		Kafka      `yaml:"kafka"`
	}

	App struct {
		Name    string `yaml:"name" env:"APP_NAME" env-default:"newsreport"`
		Version string `yaml:"version" env:"APP_VERSION" env-default:"dev"`
	}

	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	}

	PG struct {
		URL          string        `env-required:"true" env:"PG_URL" yaml:"url"`
		MaxPoolSize  int           `yaml:"max_pool_size" env:"MAX_POOL_SIZE" env-default:"2"`
		ConnAttempts int           `yaml:"conn_attempts" env:"PG_CONN_ATTEMPTS" env-default:"1"`
		ConnTimeout  time.Duration `yaml:"conn_timeout" env:"PG_CONN_TIMEOUT" env-default:"1s"`
	}

	Migrations struct {
		Enabled bool   `yaml:"enabled" env:"MIGRATIONS_ENABLED" env-default:"false"`
		Path    string `yaml:"path" env:"MIGRATIONS_PATH" env-default:"migrations"`
	}

	// ZeroViews is a string rather than a bool: cleanenv applies env-default
	// over a zero value read from YAML, so "false" could never be set there.
	Report struct {
		TopArticles       int     `yaml:"top_articles" env:"REPORT_TOP_ARTICLES" env-default:"3"`
		ErrorThresholdPct float64 `yaml:"error_threshold_pct" env:"REPORT_ERROR_THRESHOLD_PCT" env-default:"1.0"`
		SuccessStatus     string  `yaml:"success_status" env:"REPORT_SUCCESS_STATUS" env-default:"200 OK"`
		ArticlePathPrefix string  `yaml:"article_path_prefix" env:"REPORT_ARTICLE_PATH_PREFIX" env-default:"/article/"`
		ZeroViews         string  `yaml:"zero_views" env:"REPORT_ZERO_VIEWS" env-default:"include"`
		Strategy          string  `yaml:"strategy" env:"REPORT_STRATEGY" env-default:"raw"`
	}

	Metrics struct {
		PushgatewayURL string `yaml:"pushgateway_url" env:"METRICS_PUSHGATEWAY_URL"`
		Job            string `yaml:"job" env:"METRICS_JOB" env-default:"newsreport"`
	}

	Kafka struct {
		Enabled bool     `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
		Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
		Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"newsreport.runs"`
	}
)

const (
	ZeroViewsInclude = "include"
	ZeroViewsExclude = "exclude"
)

const (
	ENV_PATH            = ".env"
	DEFAULT_CONFIG_PATH = "config/config.yaml"
)

var ErrInvalidConfig = errors.New("invalid config")

func New() (*Config, error) {
	if err := godotenv.Load(ENV_PATH); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errorsUtils.WrapPathErr(err)
	}

	cfg := &Config{}

	pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
	if !ok || pathToConfig == "" {
		log.WithField("env_var", "APP_CONFIG_PATH").
			Debug("Config path is not set, using default")
		pathToConfig = DEFAULT_CONFIG_PATH
	}

	if err := read(pathToConfig, cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}

// read loads the YAML file when it exists; env always has the last word.
func read(path string, cfg *Config) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		log.WithField("path", path).Debug("Config file not found, reading env only")
		return cleanenv.ReadEnv(cfg)
	}
	return cleanenv.ReadConfig(path, cfg)
}

func (c *Config) Validate() error {
	if c.PG.ConnAttempts < 1 {
		return fmt.Errorf("%w: postgres.conn_attempts must be at least 1, got %d", ErrInvalidConfig, c.PG.ConnAttempts)
	}
	if c.Report.TopArticles < 1 {
		return fmt.Errorf("%w: report.top_articles must be at least 1, got %d", ErrInvalidConfig, c.Report.TopArticles)
	}
	if c.Report.ErrorThresholdPct < 0 || c.Report.ErrorThresholdPct > 100 {
		return fmt.Errorf("%w: report.error_threshold_pct must be within [0, 100], got %g", ErrInvalidConfig, c.Report.ErrorThresholdPct)
	}
	switch c.Report.Strategy {
	case "raw", "views":
	default:
		return fmt.Errorf("%w: report.strategy must be raw or views, got %q", ErrInvalidConfig, c.Report.Strategy)
	}
	switch c.Report.ZeroViews {
	case ZeroViewsInclude, ZeroViewsExclude:
	default:
		return fmt.Errorf("%w: report.zero_views must be include or exclude, got %q", ErrInvalidConfig, c.Report.ZeroViews)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("%w: kafka.brokers must be set when kafka is enabled", ErrInvalidConfig)
	}
	return nil
}

func (r Report) IncludeZeroViews() bool {
	return r.ZeroViews == ZeroViewsInclude
}
