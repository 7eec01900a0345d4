package report

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/FM-Hayajneh/FM.Hayajneh/internal/host"
	"github.com/FM-Hayajneh/FM.Hayajneh/internal/model"
)

// TestSimulatedEncoder tests the placeholder document encoder.
func TestSimulatedEncoder(t *testing.T) {
	t.Parallel()

	t.Run("payload embeds title, date, and locale", func(t *testing.T) {
		t.Parallel()

		enc := &SimulatedEncoder{Clock: host.FixedClock{Instant: fixedRenderTime}}

		payload, err := enc.Encode(context.Background(), createTestResult(), model.LanguageEnglish)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		doc := string(payload)
		if !strings.HasPrefix(doc, "%PDF-1.4\n") {
			t.Error("expected PDF header")
		}
		if !strings.Contains(doc, "Title: Poultry Diagnosis Report") {
			t.Error("expected localized title comment")
		}
		if !strings.Contains(doc, "Date: 2026-01-15") {
			t.Error("expected ISO generation date")
		}
		if !strings.Contains(doc, "Language: en") {
			t.Error("expected locale comment")
		}
		if !strings.HasSuffix(doc, "%%EOF\n") {
			t.Error("expected EOF marker")
		}
	})

	t.Run("Arabic payload embeds the Arabic title", func(t *testing.T) {
		t.Parallel()

		enc := &SimulatedEncoder{Clock: host.FixedClock{Instant: fixedRenderTime}}

		payload, err := enc.Encode(context.Background(), createTestResult(), model.LanguageArabic)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(string(payload), "تقرير تشخيص الدواجن") {
			t.Error("expected Arabic title comment")
		}
	})

	t.Run("waits the configured delay", func(t *testing.T) {
		t.Parallel()

		enc := &SimulatedEncoder{Delay: 50 * time.Millisecond}

		start := time.Now()
		if _, err := enc.Encode(context.Background(), createTestResult(), model.LanguageArabic); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
			t.Errorf("expected at least 50ms of encoding delay, took %v", elapsed)
		}
	})

	t.Run("cancellation interrupts the delay", func(t *testing.T) {
		t.Parallel()

		enc := &SimulatedEncoder{Delay: time.Minute}

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		start := time.Now()
		_, err := enc.Encode(ctx, createTestResult(), model.LanguageArabic)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected DeadlineExceeded, got %v", err)
		}
		if elapsed := time.Since(start); elapsed > 10*time.Second {
			t.Errorf("cancellation took too long: %v", elapsed)
		}
	})

	t.Run("canceled context fails even without delay", func(t *testing.T) {
		t.Parallel()

		enc := &SimulatedEncoder{}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := enc.Encode(ctx, createTestResult(), model.LanguageArabic); !errors.Is(err, context.Canceled) {
			t.Errorf("expected Canceled, got %v", err)
		}
	})

	t.Run("nil result is rejected", func(t *testing.T) {
		t.Parallel()

		enc := &SimulatedEncoder{}

		if _, err := enc.Encode(context.Background(), nil, model.LanguageArabic); !errors.Is(err, ErrNilResult) {
			t.Errorf("expected ErrNilResult, got %v", err)
		}
	})

	t.Run("unknown locale is rejected", func(t *testing.T) {
		t.Parallel()

		enc := &SimulatedEncoder{}

		_, err := enc.Encode(context.Background(), createTestResult(), model.Language(42))
		if !errors.Is(err, model.ErrUnsupportedLanguage) {
			t.Errorf("expected ErrUnsupportedLanguage, got %v", err)
		}
	})

	t.Run("describes its output format", func(t *testing.T) {
		t.Parallel()

		enc := &SimulatedEncoder{}
		if got := enc.ContentType(); got != "application/pdf" {
			t.Errorf("expected application/pdf, got %q", got)
		}
		if got := enc.FileExtension(); got != ".pdf" {
			t.Errorf("expected .pdf, got %q", got)
		}
	})
}
