package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New creates the console logger. Unknown levels fall back to info.
func New(service, level string) *logrus.Entry {
	return newWithOutput(service, level, os.Stdout)
}

func newWithOutput(service, level string, out io.Writer) *logrus.Entry {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	log.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log.WithField("service", service)
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}
