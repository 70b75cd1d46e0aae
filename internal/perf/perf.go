// Package perf records in-process timing spans for diagnostics.
//
// Spans are only collected after Init is called with Enabled set; until then
// StartSpan hands out no-op spans, so instrumented code never has to check.
package perf

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zamoon6/greetsync/internal/constants"
)

type Config struct {
	Enabled bool
}

var (
	mu       sync.RWMutex
	provider *sdktrace.TracerProvider
	exporter *spanExporter
	tracer   trace.Tracer = noopTracer()
)

func noopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(constants.AppName)
}

// Init starts collecting spans. Calling it again while collection is active is a no-op.
func Init(cfg Config) error {
	if !cfg.Enabled {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	if provider != nil {
		return nil
	}

	if exporter == nil {
		exporter = newSpanExporter()
	}
	provider = sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	tracer = provider.Tracer(constants.AppName)
	return nil
}

// Enabled reports whether spans are currently being collected.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return provider != nil
}

func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	mu.RLock()
	active := tracer
	mu.RUnlock()

	if len(attrs) == 0 {
		return active.Start(ctx, name)
	}
	return active.Start(ctx, name, trace.WithAttributes(attrs...))
}

// Shutdown stops collection. Spans recorded so far stay available to GetSpans until Reset.
func Shutdown(ctx context.Context) error {
	mu.Lock()
	current := provider
	provider = nil
	tracer = noopTracer()
	mu.Unlock()

	if current == nil {
		return nil
	}
	return current.Shutdown(ctx)
}

// Reset stops collection and drops every recorded span (tests only).
func Reset() {
	_ = Shutdown(context.Background())

	mu.Lock()
	defer mu.Unlock()
	exporter = nil
}

// SnapshotSpans returns the raw spans recorded so far.
func SnapshotSpans() ([]sdktrace.ReadOnlySpan, error) {
	mu.RLock()
	current := exporter
	mu.RUnlock()

	if current == nil {
		return []sdktrace.ReadOnlySpan{}, nil
	}
	return current.Snapshot(), nil
}
