// Package log provides named, leveled loggers for the renderer, the scene
// presets and the command line tool, backed by go-logging.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is a verbosity threshold, ordered from most to least chatty
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// backendLevels maps each Level to its go-logging counterpart
var backendLevels = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

// Every line carries wall time, the emitting module and the level
var lineFormat = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} [%{module}] %{level:-7s}%{color:reset} %{message}`,
)

var backend logging.LeveledBackend

// Logger is what packages accept for progress and diagnostics
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Notice(v ...interface{})
	Noticef(format string, v ...interface{})
	Warning(v ...interface{})
	Warningf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for module name
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects all loggers to sink at Info level
func SetSink(sink io.Writer) {
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), lineFormat)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(logging.INFO, "")
	logging.SetBackend(backend)
}

// SetLevel changes the threshold for every module
func SetLevel(level Level) {
	backend.SetLevel(toBackendLevel(level), "")
}

// ForVerbosity picks the level for the -v and -vv command line switches.
// Without either switch only notices and above are shown.
func ForVerbosity(verbose, veryVerbose bool) Level {
	switch {
	case veryVerbose:
		return Debug
	case verbose:
		return Info
	default:
		return Notice
	}
}

func toBackendLevel(level Level) logging.Level {
	if l, ok := backendLevels[level]; ok {
		return l
	}
	return logging.NOTICE
}

func init() {
	SetSink(os.Stderr)
	SetLevel(Notice)
}
