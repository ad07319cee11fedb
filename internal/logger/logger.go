package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Options controls how New builds the logger.
type Options struct {
	Level  string // logrus level name; invalid names fall back to warn
	Format string // "text" or "json"
	Output io.Writer
}

// New builds the application logger. Logs go to stderr by default so they
// never interleave with the task tables printed on stdout.
func New(opts Options) *logrus.Logger {
	log := logrus.New()

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	log.SetOutput(out)

	if opts.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "ts",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.WarnLevel
	}
	log.SetLevel(level)

	return log
}
