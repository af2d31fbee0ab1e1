package transporters

import (
	"io"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"commentgate/pkg/log"
)

// Console renders entries as human-readable lines through zerolog's
// ConsoleWriter. Meant for local development.
type Console struct {
	logger zerolog.Logger
}

// NewConsole writes to os.Stderr with colors.
func NewConsole() *Console {
	return newConsole(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// NewConsoleWithWriter writes to w without colors.
func NewConsoleWithWriter(w io.Writer) *Console {
	return newConsole(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true})
}

func newConsole(w zerolog.ConsoleWriter) *Console {
	return &Console{logger: zerolog.New(w)}
}

func (c *Console) Name() string { return "console" }

// Write emits entry with its fields in key order.
func (c *Console) Write(entry log.Entry) error {
	ev := c.logger.WithLevel(zerologLevel(entry.Level)).Time(zerolog.TimestampFieldName, entry.Timestamp)
	if entry.Caller != "" {
		ev = ev.Str(zerolog.CallerFieldName, entry.Caller)
	}
	if entry.RequestID != "" {
		ev = ev.Str("request_id", entry.RequestID)
	}

	keys := make([]string, 0, len(entry.Fields))
	for k := range entry.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := entry.Fields[k]
		switch {
		case log.IsSensitive(k):
			ev = ev.Str(k, log.Redacted)
		default:
			if err, ok := v.(error); ok {
				ev = ev.Str(k, err.Error())
				continue
			}
			ev = ev.Interface(k, v)
		}
	}

	ev.Msg(entry.Message)
	return nil
}

func (c *Console) Close() error { return nil }

func zerologLevel(l log.Level) zerolog.Level {
	switch l {
	case log.Trace:
		return zerolog.TraceLevel
	case log.Debug:
		return zerolog.DebugLevel
	case log.Info:
		return zerolog.InfoLevel
	case log.Warn:
		return zerolog.WarnLevel
	case log.Error:
		return zerolog.ErrorLevel
	case log.Fatal:
		return zerolog.FatalLevel
	default:
		return zerolog.NoLevel
	}
}
