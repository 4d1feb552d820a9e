package logging

import (
	"context"
	"errors"
	"log/slog"
	"slices"
)

// sinkHandler sends each record to the console sink and every file sink that
// accepts its level. Sinks keep their own level and attribute state.
type sinkHandler struct {
	sinks []slog.Handler
}

func newFanoutHandler(handlers ...slog.Handler) slog.Handler {
	sinks := slices.DeleteFunc(slices.Clone(handlers), func(h slog.Handler) bool { return h == nil })
	switch len(sinks) {
	case 0:
		return NoopHandler{}
	case 1:
		return sinks[0]
	}
	return &sinkHandler{sinks: sinks}
}

func (h *sinkHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return slices.ContainsFunc(h.sinks, func(s slog.Handler) bool { return s.Enabled(ctx, level) })
}

// Handle writes to every enabled sink and reports all sink failures together.
func (h *sinkHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, sink := range h.sinks {
		if !sink.Enabled(ctx, record.Level) {
			continue
		}
		if err := sink.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *sinkHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(func(s slog.Handler) slog.Handler { return s.WithAttrs(attrs) })
}

func (h *sinkHandler) WithGroup(name string) slog.Handler {
	return h.derive(func(s slog.Handler) slog.Handler { return s.WithGroup(name) })
}

func (h *sinkHandler) derive(fn func(slog.Handler) slog.Handler) slog.Handler {
	next := make([]slog.Handler, len(h.sinks))
	for i, sink := range h.sinks {
		next[i] = fn(sink)
	}
	return &sinkHandler{sinks: next}
}
