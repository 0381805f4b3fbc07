// Package logging builds the logrus logger used by the CLI commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// DefaultLevel keeps stderr quiet unless something goes wrong.
const DefaultLevel = logrus.WarnLevel

// Options configures New.
type Options struct {
	Level   string // debug, info, warn, error
	Format  string // text, json
	Verbose bool   // forces debug and caller reporting
}

// New returns a logger writing to out.
// An unknown level falls back to DefaultLevel.
func New(opts Options, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = DefaultLevel
	}
	if opts.Verbose {
		level = logrus.DebugLevel
		logger.SetReportCaller(true)
	}
	logger.SetLevel(level)
	logger.SetFormatter(newFormatter(opts.Format, isTerminal(out)))

	return logger
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newFormatter(format string, tty bool) logrus.Formatter {
	callerPretty := func(frame *runtime.Frame) (function string, file string) {
		return "", fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
	}

	switch strings.ToLower(format) {
	case "json":
		return &logrus.JSONFormatter{
			TimestampFormat:  "2006-01-02 15:04:05",
			CallerPrettyfier: callerPretty,
		}
	default:
		return &logrus.TextFormatter{
			FullTimestamp:    true,
			TimestampFormat:  "2006-01-02 15:04:05",
			CallerPrettyfier: callerPretty,
			DisableColors:    !tty,
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
