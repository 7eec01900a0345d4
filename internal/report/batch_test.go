package report

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/FM-Hayajneh/FM.Hayajneh/internal/model"
)

// newTestBatchGenerator builds a batch generator whose renderers encode
// instantly and log nowhere.
func newTestBatchGenerator(opts ...BatchOption) *BatchGenerator {
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	factory := func() *Renderer {
		return newTestRenderer()
	}
	return NewBatchGenerator(factory, append([]BatchOption{WithBatchLogger(quiet)}, opts...)...)
}

// TestBatchGeneratorGenerateAll tests concurrent batch generation.
func TestBatchGeneratorGenerateAll(t *testing.T) {
	t.Parallel()

	t.Run("outcomes keep job order", func(t *testing.T) {
		t.Parallel()

		jobs := []BatchJob{
			{Result: createTestResult(), Language: model.LanguageArabic},
			{Result: createTestResult(), Language: model.LanguageEnglish},
			{Result: createTestResult(), Language: model.LanguageArabic},
			{Result: createTestResult(), Language: model.LanguageEnglish},
			{Result: createTestResult(), Language: model.LanguageArabic},
		}

		b := newTestBatchGenerator()
		outcomes, err := b.GenerateAll(context.Background(), jobs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(outcomes) != len(jobs) {
			t.Fatalf("expected %d outcomes, got %d", len(jobs), len(outcomes))
		}

		for i, outcome := range outcomes {
			if outcome.Err != nil {
				t.Errorf("job %d failed: %v", i, outcome.Err)
				continue
			}
			if outcome.Artifact == nil {
				t.Errorf("job %d has no artifact", i)
				continue
			}
			if outcome.Job.Language != jobs[i].Language {
				t.Errorf("outcome %d belongs to the wrong job", i)
			}
			wantPrefix := "تقرير-تشخيص"
			if jobs[i].Language == model.LanguageEnglish {
				wantPrefix = "diagnosis-report"
			}
			if !strings.HasPrefix(outcome.Artifact.Filename, wantPrefix) {
				t.Errorf("job %d: unexpected filename %q", i, outcome.Artifact.Filename)
			}
		}
	})

	t.Run("one bad record does not sink the batch", func(t *testing.T) {
		t.Parallel()

		broken := createTestResult()
		delete(broken.Disease.Name, model.LanguageEnglish)
		delete(broken.Disease.Name, model.LanguageArabic)

		jobs := []BatchJob{
			{Result: createTestResult(), Language: model.LanguageArabic},
			{Result: nil, Language: model.LanguageArabic},
			{Result: broken, Language: model.LanguageEnglish},
		}

		b := newTestBatchGenerator()
		outcomes, err := b.GenerateAll(context.Background(), jobs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if outcomes[0].Err != nil {
			t.Errorf("expected job 0 to succeed, got %v", outcomes[0].Err)
		}
		if !errors.Is(outcomes[1].Err, ErrNilResult) {
			t.Errorf("expected ErrNilResult for job 1, got %v", outcomes[1].Err)
		}
		// A record with no disease name still generates; only the filename
		// degrades to the unknown token.
		if outcomes[2].Err != nil {
			t.Errorf("expected job 2 to succeed, got %v", outcomes[2].Err)
		}
		if outcomes[2].Artifact == nil || !strings.Contains(outcomes[2].Artifact.Filename, "unknown") {
			t.Errorf("expected unknown token in filename, got %+v", outcomes[2].Artifact)
		}
	})

	t.Run("respects the concurrency limit", func(t *testing.T) {
		t.Parallel()

		var current, peak atomic.Int32
		gauge := &gaugeEncoder{current: &current, peak: &peak}

		quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
		b := NewBatchGenerator(func() *Renderer {
			return newTestRenderer(WithEncoder(gauge))
		}, WithBatchLogger(quiet), WithConcurrency(2))

		jobs := make([]BatchJob, 8)
		for i := range jobs {
			jobs[i] = BatchJob{Result: createTestResult(), Language: model.LanguageArabic}
		}

		if _, err := b.GenerateAll(context.Background(), jobs); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := peak.Load(); got > 2 {
			t.Errorf("expected at most 2 concurrent generations, saw %d", got)
		}
	})

	t.Run("cancellation stops queued jobs", func(t *testing.T) {
		t.Parallel()

		quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
		b := NewBatchGenerator(func() *Renderer {
			return newTestRenderer(WithEncoder(&SimulatedEncoder{Delay: time.Minute}))
		}, WithBatchLogger(quiet), WithConcurrency(1))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		jobs := []BatchJob{
			{Result: createTestResult(), Language: model.LanguageArabic},
			{Result: createTestResult(), Language: model.LanguageArabic},
			{Result: createTestResult(), Language: model.LanguageArabic},
		}

		outcomes, err := b.GenerateAll(ctx, jobs)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected DeadlineExceeded, got %v", err)
		}
		if len(outcomes) != len(jobs) {
			t.Fatalf("expected %d outcomes, got %d", len(jobs), len(outcomes))
		}
	})

	t.Run("empty batch completes immediately", func(t *testing.T) {
		t.Parallel()

		b := newTestBatchGenerator()
		outcomes, err := b.GenerateAll(context.Background(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(outcomes) != 0 {
			t.Errorf("expected no outcomes, got %d", len(outcomes))
		}
	})
}

// TestBatchGeneratorGenerateAllWithCallback tests the streaming variant.
func TestBatchGeneratorGenerateAllWithCallback(t *testing.T) {
	t.Parallel()

	t.Run("callback fires once per job", func(t *testing.T) {
		t.Parallel()

		jobs := []BatchJob{
			{Result: createTestResult(), Language: model.LanguageArabic},
			{Result: createTestResult(), Language: model.LanguageEnglish},
			{Result: createTestResult(), Language: model.LanguageArabic},
		}

		var mu sync.Mutex
		seen := make(map[int]BatchOutcome)

		b := newTestBatchGenerator()
		err := b.GenerateAllWithCallback(context.Background(), jobs, func(outcome BatchOutcome, index int) {
			mu.Lock()
			defer mu.Unlock()
			seen[index] = outcome
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(seen) != len(jobs) {
			t.Fatalf("expected %d callbacks, got %d", len(jobs), len(seen))
		}
		for i := range jobs {
			outcome, ok := seen[i]
			if !ok {
				t.Errorf("no callback for job %d", i)
				continue
			}
			if outcome.Err != nil {
				t.Errorf("job %d failed: %v", i, outcome.Err)
			}
		}
	})
}

// gaugeEncoder tracks how many encodings run at once.
type gaugeEncoder struct {
	current *atomic.Int32
	peak    *atomic.Int32
}

func (e *gaugeEncoder) Encode(ctx context.Context, _ *model.AnalysisResult, _ model.Language) ([]byte, error) {
	n := e.current.Add(1)
	for {
		p := e.peak.Load()
		if n <= p || e.peak.CompareAndSwap(p, n) {
			break
		}
	}
	defer e.current.Add(-1)

	timer := time.NewTimer(5 * time.Millisecond)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}
	return []byte("document"), nil
}

func (e *gaugeEncoder) ContentType() string   { return pdfContentType }
func (e *gaugeEncoder) FileExtension() string { return DefaultFileExtension }
