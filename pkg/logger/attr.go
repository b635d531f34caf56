package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records a form field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Fields records a list of form field names under the key "fields".
func Fields(names []string) slog.Attr {
	return slog.Any("fields", names)
}

// Outcome records a submission outcome under the key "outcome".
func Outcome(outcome string) slog.Attr {
	return slog.String("outcome", outcome)
}

// State records a state machine transition under the key "state".
func State(from, to string) slog.Attr {
	return slog.Group("state", slog.String("from", from), slog.String("to", to))
}

// Route records a navigation target under the key "route".
func Route(route string) slog.Attr {
	return slog.String("route", route)
}

// SessionID records the registration session identifier under the key "session_id".
// If id is nil, it returns an empty Attr.
func SessionID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("session_id", id)
}

// Count records a number of items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Duration records an elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
