package logging

import (
	"context"
	"log/slog"
	"slices"
)

// Attr is the attribute type accepted by the helpers in this package.
type Attr = slog.Attr

func String(key string, value string) Attr { return slog.String(key, value) }

func Int(key string, value int) Attr { return slog.Int(key, value) }

func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// Args converts attributes into the variadic form slog methods accept.
func Args(attrs ...Attr) []any {
	args := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		args = append(args, attr)
	}
	return args
}

func NewNop() *slog.Logger {
	return slog.New(NoopHandler{})
}

// NewComponentLogger creates a logger with a standardized component attribute.
// If logger is nil, a no-op logger is used as the base.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}

// eventDefaults holds the fallback hint and impact for a severity. An empty
// value means the field is only written when the caller supplies it.
type eventDefaults struct {
	hint   string
	impact string
}

var (
	warnDefaults = eventDefaults{
		hint:   "rerun with --log-level debug for the full classification trace",
		impact: "processing continued with reduced coverage",
	}
	errorDefaults = eventDefaults{
		hint: "check that the path exists and is readable",
	}
)

func eventAttrs(eventType string, defaults eventDefaults, attrs []Attr) []any {
	has := func(key string) bool {
		return slices.ContainsFunc(attrs, func(a Attr) bool { return a.Key == key })
	}
	if !has(FieldEventType) {
		attrs = append(attrs, String(FieldEventType, eventType))
	}
	if defaults.hint != "" && !has(FieldErrorHint) {
		attrs = append(attrs, String(FieldErrorHint, defaults.hint))
	}
	if defaults.impact != "" && !has(FieldImpact) {
		attrs = append(attrs, String(FieldImpact, defaults.impact))
	}
	return Args(attrs...)
}

// WarnWithContext logs a recoverable problem. event_type, error_hint and
// impact are always present; missing ones get defaults.
func WarnWithContext(logger *slog.Logger, msg, eventType string, attrs ...Attr) {
	if logger == nil {
		return
	}
	logger.Warn(msg, eventAttrs(eventType, warnDefaults, attrs)...)
}

// ErrorWithContext logs a failure that ends the current operation. event_type
// and error_hint are always present.
func ErrorWithContext(logger *slog.Logger, msg, eventType string, attrs ...Attr) {
	if logger == nil {
		return
	}
	logger.Error(msg, eventAttrs(eventType, errorDefaults, attrs)...)
}

// NoopHandler discards all log output.
type NoopHandler struct{}

func (NoopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (NoopHandler) Handle(context.Context, slog.Record) error { return nil }

func (NoopHandler) WithAttrs([]slog.Attr) slog.Handler { return NoopHandler{} }

func (NoopHandler) WithGroup(string) slog.Handler { return NoopHandler{} }
