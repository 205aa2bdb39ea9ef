package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New builds the application logger. Production gets JSON lines, everything
// else a human readable text format.
func New(output io.Writer, level, env string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetOutput(output)
	l.SetLevel(lvl)
	if env == "production" {
		l.SetFormatter(new(logrus.JSONFormatter))
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l, nil
}
