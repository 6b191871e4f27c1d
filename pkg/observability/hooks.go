// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about each stage of a sprintdeck run: reading the table,
// computing the layout, rendering formats and writing files.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for each event category
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, so the pipeline package
// has no knowledge of any particular backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(observability.NewLogHooks(logger))
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnReadStart(ctx, path)
//	// ... read the table ...
//	observability.Pipeline().OnReadComplete(ctx, path, rows, duration, err)
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the generation pipeline.
type PipelineHooks interface {
	// Read events
	OnReadStart(ctx context.Context, path string)
	OnReadComplete(ctx context.Context, path string, rows int, duration time.Duration, err error)

	// Layout events
	OnLayoutStart(ctx context.Context, direction string, rows int)
	OnLayoutComplete(ctx context.Context, direction string, boxes int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)

	// OnWrite records one output file, successful or not.
	OnWrite(ctx context.Context, path string, size int, err error)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnReadStart(context.Context, string)                                 {}
func (NoopPipelineHooks) OnReadComplete(context.Context, string, int, time.Duration, error)   {}
func (NoopPipelineHooks) OnLayoutStart(context.Context, string, int)                          {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                             {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error)    {}
func (NoopPipelineHooks) OnWrite(context.Context, string, int, error)                         {}

// =============================================================================
// Logging Implementation
// =============================================================================

// LogHooks reports every event to a logger at debug level. Failures are
// left to the caller to report.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that log to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{Logger: logger}
}

func (h *LogHooks) complete(stage string, d time.Duration, err error, kv ...any) {
	kv = append(kv, "duration", d)
	if err != nil {
		h.Logger.Debug(stage+" failed", append(kv, "err", err)...)
		return
	}
	h.Logger.Debug(stage+" done", kv...)
}

func (h *LogHooks) OnReadStart(_ context.Context, path string) {
	h.Logger.Debug("read start", "path", path)
}

func (h *LogHooks) OnReadComplete(_ context.Context, path string, rows int, d time.Duration, err error) {
	h.complete("read", d, err, "path", path, "rows", rows)
}

func (h *LogHooks) OnLayoutStart(_ context.Context, direction string, rows int) {
	h.Logger.Debug("layout start", "direction", direction, "rows", rows)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, direction string, boxes int, d time.Duration, err error) {
	h.complete("layout", d, err, "direction", direction, "boxes", boxes)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render start", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.complete("render", d, err, "formats", formats)
}

func (h *LogHooks) OnWrite(_ context.Context, path string, size int, err error) {
	if err != nil {
		h.Logger.Debug("write failed", "path", path, "err", err)
		return
	}
	h.Logger.Debug("wrote file", "path", path, "bytes", size)
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
