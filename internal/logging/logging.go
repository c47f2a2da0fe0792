package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// scopeFieldName defines the key for the "scope" field in structured logs.
const scopeFieldName = "scope"

// NewLogger creates a human-readable console logger writing to out at the
// given level. Components derive their own loggers from it with WithScope.
func NewLogger(out io.Writer, level zerolog.Level) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.TimestampFieldName,
			scopeFieldName,
			zerolog.MessageFieldName,
		},
		// render the scope as [SCOPE] in front of the message
		FormatPrepare: func(m map[string]any) error {
			if v, ok := m[scopeFieldName].(string); ok && v != "" {
				m[scopeFieldName] = fmt.Sprintf("[%s]", v)
			} else {
				m[scopeFieldName] = ""
			}
			return nil
		},
		FieldsExclude: []string{scopeFieldName},
	}

	return zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()
}

// WithScope returns a sub-logger tagged with a component name.
func WithScope(logger zerolog.Logger, scope string) zerolog.Logger {
	return logger.With().Str(scopeFieldName, scope).Logger()
}

// ParseLevel converts a level name such as "debug" or "warn" to a
// zerolog.Level. The empty string means info.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	l, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return l, nil
}
