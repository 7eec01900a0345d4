package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/FM-Hayajneh/FM.Hayajneh/internal/host"
	"github.com/FM-Hayajneh/FM.Hayajneh/internal/model"
)

const (
	// DefaultEncodeDelay matches the generation latency the simulated
	// encoder stands in for.
	DefaultEncodeDelay = 2 * time.Second

	// DefaultFileExtension is the extension of documents produced by the
	// default encoder.
	DefaultFileExtension = ".pdf"

	// pdfContentType is the media type of the placeholder payload.
	pdfContentType = "application/pdf"
)

// DocumentEncoder turns an analysis into a binary report document. It is
// the renderer's extension point: swapping the encoder changes the produced
// format without touching the generation, download, or print flows.
type DocumentEncoder interface {
	// Encode produces the document payload. Implementations must honor
	// context cancellation for long-running encodings.
	Encode(ctx context.Context, result *model.AnalysisResult, lang model.Language) ([]byte, error)

	// ContentType returns the payload media type.
	ContentType() string

	// FileExtension returns the download extension including the dot.
	FileExtension() string
}

// SimulatedEncoder stands in for a real PDF encoder. It waits the configured
// delay, honoring context cancellation, then emits a fixed-structure
// placeholder payload that embeds the localized report title and the
// generation date. It does not produce a valid PDF document.
//
// Design decision: The default encoder keeps the latency of the real
// pipeline it replaces because:
// 1. Timeout handling and cancellation stay exercised under realistic timing
// 2. The single-flight guard is meaningful: overlapping requests actually
//    overlap
// 3. Swapping in a real encoder later changes output quality, not behavior
type SimulatedEncoder struct {
	// Delay is how long encoding takes. Zero means no wait.
	Delay time.Duration

	// Clock stamps the payload. Nil means the system clock.
	Clock host.Clock
}

// Encode waits the configured delay and returns the placeholder payload.
func (e *SimulatedEncoder) Encode(ctx context.Context, result *model.AnalysisResult, lang model.Language) ([]byte, error) {
	if result == nil {
		return nil, ErrNilResult
	}
	if !lang.Valid() {
		return nil, fmt.Errorf("%w: code %d", model.ErrUnsupportedLanguage, int(lang))
	}

	if e.Delay > 0 {
		timer := time.NewTimer(e.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := labels(lang)

	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")
	b.WriteString("% Placeholder report document produced by the simulated encoder.\n")
	fmt.Fprintf(&b, "%% Title: %s\n", p.Sprintf(labelTitle))
	fmt.Fprintf(&b, "%% Date: %s\n", formatISODate(e.now()))
	fmt.Fprintf(&b, "%% Language: %s\n", lang)
	b.WriteString("1 0 obj\n<< /Type /Catalog >>\nendobj\n")
	b.WriteString("trailer\n<< /Root 1 0 R >>\n")
	b.WriteString("%%EOF\n")

	return b.Bytes(), nil
}

// ContentType returns the PDF media type.
func (e *SimulatedEncoder) ContentType() string {
	return pdfContentType
}

// FileExtension returns ".pdf".
func (e *SimulatedEncoder) FileExtension() string {
	return DefaultFileExtension
}

func (e *SimulatedEncoder) now() time.Time {
	if e.Clock != nil {
		return e.Clock.Now()
	}
	return time.Now()
}
