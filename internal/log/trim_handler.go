package log

import (
	"context"
	"io"
	"log/slog"
)

// MaxAttrLen is the maximum length, in runes, of a logged string attribute
// value. Longer values are truncated and suffixed with an ellipsis.
const MaxAttrLen = 256

// ellipsis marks truncated attribute values.
const ellipsis = "..."

// TrimHandler wraps an slog.Handler to cap the length of string attributes.
// It intercepts log records and truncates attribute values that exceed
// MaxAttrLen runes before passing them to the underlying handler.
//
// Analysis records carry localized disease descriptions, treatment warnings,
// and encoded document payloads. Logging one of those fields verbatim can put
// kilobytes on a single terminal line.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Truncation applies uniformly, including attributes added with With
type TrimHandler struct {
	// handler is the underlying slog handler that receives trimmed records.
	handler slog.Handler

	// maxLen is the attribute value cap in runes.
	maxLen int
}

// NewTrimHandler creates a new TrimHandler wrapping the given handler.
// String attributes longer than MaxAttrLen runes are truncated before being
// passed to the underlying handler.
// If handler is nil, the returned TrimHandler will use slog.Default().Handler().
func NewTrimHandler(handler slog.Handler) *TrimHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &TrimHandler{handler: handler, maxLen: MaxAttrLen}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *TrimHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle trims the record's attributes and passes it to the underlying handler.
func (h *TrimHandler) Handle(ctx context.Context, r slog.Record) error {
	// Create a new record with trimmed attributes
	trimmed := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	// Trim each attribute
	r.Attrs(func(a slog.Attr) bool {
		trimmed.AddAttrs(h.trimAttr(a))
		return true
	})

	return h.handler.Handle(ctx, trimmed)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are trimmed before being added.
func (h *TrimHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	trimmedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		trimmedAttrs[i] = h.trimAttr(a)
	}
	return &TrimHandler{handler: h.handler.WithAttrs(trimmedAttrs), maxLen: h.maxLen}
}

// WithGroup returns a new handler with the given group name.
func (h *TrimHandler) WithGroup(name string) slog.Handler {
	return &TrimHandler{handler: h.handler.WithGroup(name), maxLen: h.maxLen}
}

// trimAttr trims a single attribute, recursively handling groups.
func (h *TrimHandler) trimAttr(a slog.Attr) slog.Attr {
	// Handle groups recursively
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		trimmedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			trimmedAttrs[i] = h.trimAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(trimmedAttrs...)}
	}

	if a.Value.Kind() == slog.KindString {
		if shortened, ok := h.trimString(a.Value.String()); ok {
			return slog.String(a.Key, shortened)
		}
	}

	return a
}

// trimString caps s at maxLen runes. The second return value reports whether
// the string was shortened. Truncation counts runes, not bytes, so multibyte
// text such as Arabic is never cut mid-character.
func (h *TrimHandler) trimString(s string) (string, bool) {
	// Byte length at or under the cap implies the rune count is too.
	if len(s) <= h.maxLen {
		return s, false
	}
	runes := []rune(s)
	if len(runes) <= h.maxLen {
		return s, false
	}
	return string(runes[:h.maxLen]) + ellipsis, true
}

// NewLogger creates a new slog.Logger for terminal output.
// String attributes are capped at MaxAttrLen runes.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
//
// Returns a *slog.Logger that can be used with slog.SetDefault() or passed
// to components that accept *slog.Logger.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	textHandler := slog.NewTextHandler(w, opts)
	trimHandler := NewTrimHandler(textHandler)

	return slog.New(trimHandler)
}

// NewJSONLogger creates a new slog.Logger that outputs JSON format.
// Useful for structured log aggregation.
//
// Parameters:
//   - w: The io.Writer to write log output to
//   - verbose: If true, sets log level to Debug; otherwise Warn
//
// Returns a *slog.Logger configured for JSON output with truncation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	jsonHandler := slog.NewJSONHandler(w, opts)
	trimHandler := NewTrimHandler(jsonHandler)

	return slog.New(trimHandler)
}
