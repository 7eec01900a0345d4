package report

import (
	"io"

	"github.com/FM-Hayajneh/FM.Hayajneh/internal/host"
	"github.com/FM-Hayajneh/FM.Hayajneh/internal/model"
)

// HTMLWriter outputs the printable HTML document.
// This is the format injected into print surfaces and shipped to users who
// want a browser-viewable report.
type HTMLWriter struct {
	baseWriter

	// clock dates the document header.
	clock host.Clock
}

// NewHTMLWriter creates an HTMLWriter that outputs to the given writer.
func NewHTMLWriter(output io.Writer) *HTMLWriter {
	return &HTMLWriter{
		baseWriter: newBaseWriter(output),
		clock:      host.SystemClock{},
	}
}

// Write renders the printable document for the locale.
func (w *HTMLWriter) Write(result *model.AnalysisResult, lang model.Language) (int, error) {
	doc, err := RenderPrintable(result, lang, w.clock.Now())
	if err != nil {
		return 0, err
	}
	return io.WriteString(w.output, doc)
}
