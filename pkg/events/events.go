// Package events provides an explicit analytics event sink abstraction.
// Producers emit named events with attributes; what happens to them is the
// sink's business. Tests inject NopSink or a recording fake instead of
// asserting on a shared mutable queue.
package events

import (
	"context"
	"log/slog"
)

// Sink receives analytics events.
type Sink interface {
	Emit(ctx context.Context, event string, attrs ...slog.Attr)
}

// LogSink writes events to a structured logger.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink returns a Sink backed by the given logger.
func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Emit(ctx context.Context, event string, attrs ...slog.Attr) {
	s.log.LogAttrs(ctx, slog.LevelInfo, event, attrs...)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Emit(ctx context.Context, event string, attrs ...slog.Attr) {}
