package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/FM-Hayajneh/FM.Hayajneh/internal/host"
	"github.com/FM-Hayajneh/FM.Hayajneh/internal/model"
)

// Artifact is a generated report document parked for download.
type Artifact struct {
	// Filename is the locale-aware download name.
	Filename string

	// Locator is the opaque handle for one-time retrieval from the
	// artifact store. It is spent by Download.
	Locator string

	// Payload is the encoded document.
	Payload []byte

	// ContentType is the payload media type.
	ContentType string

	// GeneratedAt is the clock reading used for the filename.
	GeneratedAt time.Time

	// Language is the locale the document was produced in.
	Language model.Language
}

// Renderer turns analysis results into downloadable report documents and
// printable HTML views.
//
// A Renderer admits one generation at a time: a second Generate call while
// one is in flight fails fast with ErrGenerationInProgress instead of
// queueing. Batch work therefore uses one Renderer per job (see
// BatchGenerator).
type Renderer struct {
	encoder DocumentEncoder
	store   *host.ArtifactStore
	saver   host.Saver
	opener  host.SurfaceOpener
	clock   host.Clock
	logger  *slog.Logger

	// busy is the single-flight guard. It is acquired with CompareAndSwap
	// and released on every exit path, including panics, via defer.
	busy atomic.Bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithEncoder replaces the default simulated document encoder.
func WithEncoder(encoder DocumentEncoder) Option {
	return func(r *Renderer) {
		r.encoder = encoder
	}
}

// WithClock sets the time source used for filenames and document dates.
func WithClock(clock host.Clock) Option {
	return func(r *Renderer) {
		r.clock = clock
	}
}

// WithLogger sets the renderer's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithArtifactStore sets the store that parks generated documents behind
// one-time locators. Renderers sharing a store share its locator space.
func WithArtifactStore(store *host.ArtifactStore) Option {
	return func(r *Renderer) {
		r.store = store
	}
}

// WithSaver enables the download flow. Without a saver, Download reports
// the save capability unavailable.
func WithSaver(saver host.Saver) Option {
	return func(r *Renderer) {
		r.saver = saver
	}
}

// WithSurfaceOpener enables the print flow. Without an opener, OpenPrintView
// reports the print capability unavailable.
func WithSurfaceOpener(opener host.SurfaceOpener) Option {
	return func(r *Renderer) {
		r.opener = opener
	}
}

// NewRenderer creates a Renderer. By default it encodes with a
// SimulatedEncoder at DefaultEncodeDelay, reads the system clock, parks
// artifacts in a fresh store, and has no save or print capability.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		clock:  host.SystemClock{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.store == nil {
		r.store = host.NewArtifactStore()
	}
	if r.encoder == nil {
		r.encoder = &SimulatedEncoder{Delay: DefaultEncodeDelay, Clock: r.clock}
	}
	return r
}

// Generate encodes the analysis into a report document and parks it behind
// a one-time locator.
//
// Only one generation may be in flight per Renderer: concurrent calls fail
// fast with ErrGenerationInProgress. The busy flag is released on every
// exit path, so a failed or canceled generation never wedges the renderer.
func (r *Renderer) Generate(ctx context.Context, result *model.AnalysisResult, lang model.Language) (*Artifact, error) {
	if result == nil {
		return nil, ErrNilResult
	}
	if !lang.Valid() {
		return nil, fmt.Errorf("%w: code %d", model.ErrUnsupportedLanguage, int(lang))
	}

	if !r.busy.CompareAndSwap(false, true) {
		return nil, ErrGenerationInProgress
	}
	defer r.busy.Store(false)

	now := r.clock.Now()
	filename := buildFilename(result, lang, now, r.encoder.FileExtension())

	r.logger.Debug("encoding report document",
		"language", lang.String(),
		"filename", filename,
	)

	payload, err := r.encoder.Encode(ctx, result, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report document: %w", err)
	}
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}

	locator := r.store.Put(payload, r.encoder.ContentType())

	r.logger.Info("report document generated",
		"filename", filename,
		"bytes", len(payload),
		"locator", locator,
	)

	return &Artifact{
		Filename:    filename,
		Locator:     locator,
		Payload:     payload,
		ContentType: r.encoder.ContentType(),
		GeneratedAt: now,
		Language:    lang,
	}, nil
}

// Filename returns the download filename Generate would use for the
// analysis right now.
func (r *Renderer) Filename(result *model.AnalysisResult, lang model.Language) string {
	return buildFilename(result, lang, r.clock.Now(), r.encoder.FileExtension())
}

// RenderHTML renders the printable HTML document dated by the renderer's
// clock.
func (r *Renderer) RenderHTML(result *model.AnalysisResult, lang model.Language) (string, error) {
	return RenderPrintable(result, lang, r.clock.Now())
}

// Download retrieves the artifact's payload through its one-time locator
// and hands it to the configured saver under the artifact's filename. The
// locator is released whether or not the save succeeds.
func (r *Renderer) Download(ctx context.Context, artifact *Artifact) error {
	if artifact == nil {
		return ErrNilArtifact
	}
	if r.saver == nil {
		return &host.UnavailableError{
			Capability: host.CapabilitySave,
			Err:        errors.New("no saver configured"),
		}
	}

	// Take consumes the locator; Revoke backstops the error paths between
	// here and the end of the save.
	defer r.store.Revoke(artifact.Locator)

	blob, err := r.store.Take(artifact.Locator)
	if err != nil {
		return fmt.Errorf("failed to retrieve report document: %w", err)
	}

	if err := r.saver.Save(ctx, artifact.Filename, blob.Payload); err != nil {
		return fmt.Errorf("failed to save report document: %w", err)
	}

	r.logger.Info("report document saved",
		"filename", artifact.Filename,
		"bytes", len(blob.Payload),
	)
	return nil
}

// OpenPrintView renders the printable document, presents it on a freshly
// opened host surface, and triggers printing. Every failure surfaces as an
// error; the user is never left with a silently missing print dialog.
func (r *Renderer) OpenPrintView(ctx context.Context, result *model.AnalysisResult, lang model.Language) error {
	if r.opener == nil {
		return &host.UnavailableError{
			Capability: host.CapabilityPrint,
			Err:        errors.New("no print surface configured"),
		}
	}

	doc, err := r.RenderHTML(result, lang)
	if err != nil {
		return err
	}

	surface, err := r.opener.OpenSurface(ctx)
	if err != nil {
		return fmt.Errorf("failed to open print surface: %w", err)
	}
	defer func() {
		_ = surface.Close()
	}()

	if err := surface.Present(ctx, doc); err != nil {
		return fmt.Errorf("failed to present report document: %w", err)
	}
	if err := surface.Print(ctx); err != nil {
		return fmt.Errorf("failed to trigger print: %w", err)
	}

	r.logger.Info("print view opened",
		"language", lang.String(),
		"bytes", len(doc),
	)
	return nil
}
