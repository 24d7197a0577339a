// Package logging builds the logrus logger shared by the CLI and the
// preview server.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to w. Verbose enables debug output,
// quiet restricts output to errors. Quiet wins when both are set.
func New(w io.Writer, verbose, quiet bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		FullTimestamp:    true,
		QuoteEmptyFields: true,
	})
	log.SetLevel(Level(verbose, quiet))
	return log
}

// Level maps the CLI verbosity flags to a logrus level.
func Level(verbose, quiet bool) logrus.Level {
	switch {
	case quiet:
		return logrus.ErrorLevel
	case verbose:
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}
