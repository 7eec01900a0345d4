package report

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/FM-Hayajneh/FM.Hayajneh/internal/model"
)

// BatchJob pairs an analysis with the locale to render it in.
type BatchJob struct {
	Result   *model.AnalysisResult
	Language model.Language
}

// BatchOutcome is the result of one job. Err is set when the job failed and
// the artifact is nil in that case.
type BatchOutcome struct {
	Job      BatchJob
	Artifact *Artifact
	Err      error
}

// BatchGenerator generates report documents for multiple analyses
// concurrently. It uses errgroup to manage goroutines and respect
// concurrency limits.
//
// Design decision: We use a separate BatchGenerator rather than adding
// batch functionality to Renderer because:
// 1. It keeps the Renderer focused on single-document generation
// 2. The single-flight guard is per Renderer, so batch work needs a fresh
//    Renderer per job, created through the factory
// 3. It allows different batch strategies (rate limiting, retries) later
type BatchGenerator struct {
	// rendererFactory creates a new Renderer for each job.
	// A fresh instance per job keeps the single-flight guards from
	// colliding across concurrent generations.
	rendererFactory func() *Renderer

	// concurrency is the maximum number of concurrent generations.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchGenerator.
type BatchOption func(*BatchGenerator)

// WithBatchLogger sets a custom logger for batch generation.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchGenerator) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent generations.
// Default is 4 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchGenerator) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchGenerator creates a new BatchGenerator.
//
// The rendererFactory function is called for each job to create a fresh
// Renderer instance. This ensures renderer state does not leak between jobs
// and allows per-job customization if needed.
func NewBatchGenerator(rendererFactory func() *Renderer, opts ...BatchOption) *BatchGenerator {
	b := &BatchGenerator{
		rendererFactory: rendererFactory,
		concurrency:     4,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.Default()
	}

	return b
}

// GenerateAll generates documents for all jobs concurrently.
// It respects the configured concurrency limit and context cancellation.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
// Each job gets its own goroutine, but only 'concurrency' goroutines run
// simultaneously.
//
// Outcomes are returned in job order, including failed jobs. The error
// return indicates whether the batch itself was cancelled.
func (b *BatchGenerator) GenerateAll(ctx context.Context, jobs []BatchJob) ([]BatchOutcome, error) {
	b.logger.Info("starting batch generation",
		"total_jobs", len(jobs),
		"concurrency", b.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate outcomes so each goroutine writes only its own index.
	outcomes := make([]BatchOutcome, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, job := range jobs {
		g.Go(func() error {
			// Check for cancellation before starting
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			renderer := b.rendererFactory()
			artifact, err := renderer.Generate(ctx, job.Result, job.Language)
			outcomes[i] = BatchOutcome{Job: job, Artifact: artifact, Err: err}

			if err != nil {
				// Record the failure in the outcome and keep the batch
				// going; one bad record must not sink the rest.
				b.logger.Warn("report generation failed",
					"index", i+1,
					"total", len(jobs),
					"error", err,
				)
				return nil
			}

			b.logger.Info("report generated",
				"index", i+1,
				"total", len(jobs),
				"filename", artifact.Filename,
			)
			return nil
		})
	}

	err := g.Wait()

	b.logger.Info("batch generation complete",
		"total_jobs", len(jobs),
		"elapsed", time.Since(startTime),
	)

	return outcomes, err
}

// GenerateAllWithCallback generates documents for all jobs and calls the
// callback for each completed job. This is useful for streaming results.
//
// The callback receives the outcome and the index of the job in the
// original slice. It is called from the goroutine that completed the job,
// so it should be thread-safe if it accesses shared state.
func (b *BatchGenerator) GenerateAllWithCallback(
	ctx context.Context,
	jobs []BatchJob,
	callback func(outcome BatchOutcome, index int),
) error {
	b.logger.Info("starting batch generation with callback",
		"total_jobs", len(jobs),
		"concurrency", b.concurrency,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, job := range jobs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			renderer := b.rendererFactory()
			artifact, err := renderer.Generate(ctx, job.Result, job.Language)
			callback(BatchOutcome{Job: job, Artifact: artifact, Err: err}, i)

			return nil
		})
	}

	return g.Wait()
}
