package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/FM-Hayajneh/FM.Hayajneh/internal/host"
	"github.com/FM-Hayajneh/FM.Hayajneh/internal/model"
)

// JSONWriter outputs the raw analysis in JSON format.
// This format is designed for tool integration and programmatic processing.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because:
// 1. It's part of the standard library (no extra dependencies)
// 2. It's sufficient for our needs
// 3. It provides consistent behavior across Go versions
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter:   newBaseWriter(output),
		indent:       false,
		indentPrefix: "",
		indentString: "",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the analysis as-is in JSON format. The locale parameter is
// unused: the raw record carries every locale variant.
func (w *JSONWriter) Write(result *model.AnalysisResult, _ model.Language) (int, error) {
	if result == nil {
		return 0, ErrNilResult
	}
	return w.writeJSON(result)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}

// Envelope wraps an analysis with output metadata.
//
// Design decision: We wrap the analysis rather than adding fields to
// AnalysisResult because this keeps output-specific metadata out of the
// core data structure that mirrors the upstream payload.
type Envelope struct {
	// Version is the toolkit version that produced this output.
	Version string `json:"version"`

	// Language is the locale the caller asked for.
	Language model.Language `json:"language"`

	// GeneratedAt is when the output was produced.
	GeneratedAt time.Time `json:"generatedAt"`

	// Result is the full analysis record.
	Result *model.AnalysisResult `json:"result"`
}

// FullJSONWriter outputs analyses wrapped in an Envelope.
type FullJSONWriter struct {
	*JSONWriter

	// version is the toolkit version string.
	version string

	// clock stamps the envelope.
	clock host.Clock
}

// NewFullJSONWriter creates a writer for enveloped output with version
// metadata.
func NewFullJSONWriter(output io.Writer, version string, opts ...JSONWriterOption) *FullJSONWriter {
	return &FullJSONWriter{
		JSONWriter: NewJSONWriter(output, opts...),
		version:    version,
		clock:      host.SystemClock{},
	}
}

// Write outputs the analysis wrapped with metadata.
func (w *FullJSONWriter) Write(result *model.AnalysisResult, lang model.Language) (int, error) {
	if result == nil {
		return 0, ErrNilResult
	}
	return w.writeJSON(&Envelope{
		Version:     w.version,
		Language:    lang,
		GeneratedAt: w.clock.Now(),
		Result:      result,
	})
}
