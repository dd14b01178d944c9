package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the application logger: text output in dev, JSON in prod.
// An unknown level falls back to info.
func New(mode, level string) *logrus.Logger {
	return newLogger(os.Stdout, mode, level)
}

func newLogger(out io.Writer, mode, level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	if mode == "prod" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("Invalid log level '%s', using default 'info'", level)
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// Component returns an entry tagged with the component name
func Component(log *logrus.Logger, name string) *logrus.Entry {
	return log.WithField("component", name)
}
