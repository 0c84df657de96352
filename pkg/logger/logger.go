package logger

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"

	log "github.com/sirupsen/logrus"
)

// SetupLogger keeps stdout free for report text, so logs default to stderr.
func SetupLogger(level string) {
	SetupLoggerWithOutput(level, os.Stderr)
}

func SetupLoggerWithOutput(level string, out io.Writer) {
	loggerLevel, err := log.ParseLevel(level)
	log.SetReportCaller(true)
	log.SetOutput(out)

	log.SetFormatter(&log.JSONFormatter{
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			return "", fmt.Sprintf("%s:%d", path.Base(frame.File), frame.Line)
		},
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err != nil {
		log.Infof("Level setup default INFO, err: %v", err)
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(loggerLevel)
	}
}
