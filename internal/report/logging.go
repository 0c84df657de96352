package report

import (
	"time"

	log "github.com/sirupsen/logrus"
)

func logStarted(name string) {
	log.WithField("report", name).Debug("Running report")
}

func logFinished(name string, rows int, took time.Duration) {
	log.WithFields(log.Fields{
		"report":      name,
		"rows":        rows,
		"duration_ms": took.Milliseconds(),
	}).Info("Report finished")
}

func logFailed(name string, took time.Duration, err error) {
	log.WithFields(log.Fields{
		"report":      name,
		"duration_ms": took.Milliseconds(),
		"error":       err,
	}).Error("Report failed")
}
