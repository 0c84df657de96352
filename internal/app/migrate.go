package app

import (
	"errors"
	"net/url"
	"os"
	"time"

	errorsUtils "github.com/Egor213/NewsReport/pkg/errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	log "github.com/sirupsen/logrus"
)

const retryTimeout = time.Second

// Migrate applies all up migrations. connAttempts below 1 is treated as 1.
func Migrate(pgUrl, migrationsPath string, connAttempts int) error {
	pgUrl = withSSLModeDisabled(pgUrl)
	log.WithField("path", migrationsPath).Info("Applying migrations")

	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		return errorsUtils.WrapPathErr(err)
	}

	var (
		err  error
		mgrt *migrate.Migrate
	)

	for attempt := 1; ; attempt++ {
		mgrt, err = migrate.New("file://"+migrationsPath, pgUrl)
		if err == nil {
			break
		}
		if attempt >= connAttempts {
			return errorsUtils.WrapPathErr(err)
		}

		log.Infof("Postgres trying to connect, attempts left: %d", connAttempts-attempt)
		time.Sleep(retryTimeout)
	}
	defer mgrt.Close()

	if err = mgrt.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errorsUtils.WrapPathErr(err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("Migration no change")
		return nil
	}

	log.Info("Migration successful up")
	return nil
}

// withSSLModeDisabled keeps an explicit sslmode and adds sslmode=disable
// otherwise.
func withSSLModeDisabled(pgUrl string) string {
	u, err := url.Parse(pgUrl)
	if err != nil {
		return pgUrl
	}
	q := u.Query()
	if q.Has("sslmode") {
		return pgUrl
	}
	q.Set("sslmode", "disable")
	u.RawQuery = q.Encode()
	return u.String()
}
