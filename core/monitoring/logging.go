package monitoring

import (
	"io"

	"github.com/sirupsen/logrus"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) logrusLevel() logrus.Level {
	switch l {
	case DEBUG:
		return logrus.DebugLevel
	case INFO:
		return logrus.InfoLevel
	case WARN:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

// Logger emits structured events for a component.
type Logger interface {
	Log(level LogLevel, eventType string, message string, details map[string]interface{})
}

type logger struct {
	entry *logrus.Entry
}

// NewLogger returns a Logger that writes JSON lines tagged with component
// through base. A nil base uses the logrus standard logger.
func NewLogger(component string, base *logrus.Logger) Logger {
	if base == nil {
		base = logrus.StandardLogger()
	}
	return &logger{
		entry: base.WithField("component", component),
	}
}

// NewJSONLogger builds a dedicated logrus logger writing JSON to w at level.
func NewJSONLogger(component string, w io.Writer, level LogLevel) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(level.logrusLevel())
	return NewLogger(component, l)
}

// NopLogger discards everything.
func NopLogger() Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return NewLogger("", l)
}

func (l *logger) Log(level LogLevel, eventType string, message string, details map[string]interface{}) {
	lvl := level.logrusLevel()
	if !l.entry.Logger.IsLevelEnabled(lvl) {
		return
	}
	l.entry.
		WithField("event_type", eventType).
		WithFields(logrus.Fields(details)).
		Log(lvl, message)
}
