package report

import (
	"io"

	"github.com/FM-Hayajneh/FM.Hayajneh/internal/model"
)

// Writer defines the interface for report output.
// Implementations render an analysis in various formats.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or network
// connections with the same API. Compact output is its own format
// (TextWriter) rather than a second interface method.
type Writer interface {
	// Write renders the analysis for the locale to the configured
	// destination. Returns the number of bytes written and any error
	// encountered.
	Write(result *model.AnalysisResult, lang model.Language) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because our Writer interface is different
// from io.Writer - we write analyses, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write renders the analysis to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(result *model.AnalysisResult, lang model.Language) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(result, lang)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
