package internal

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// InitLogger configures logrus. Diagnostics go to stderr (or a file) so
// that stdout stays clean for the report stream; colors only on a real
// terminal.
func InitLogger(logfile, level string) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:   isatty.IsTerminal(os.Stderr.Fd()),
		FullTimestamp: true,
		DisableQuote:  true,
		PadLevelText:  true,
	})
	if lvl, err := logrus.ParseLevel(level); err == nil {
		logrus.SetLevel(lvl)
	} else {
		logrus.Warnf("Unknown log level %q, using warn", level)
		logrus.SetLevel(logrus.WarnLevel)
	}
	if logfile != "" {
		file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			logrus.SetOutput(file)
		} else {
			logrus.Warn("Failed to open log file, logging to stderr")
		}
	}
}
