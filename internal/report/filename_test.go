package report

import (
	"testing"
	"time"

	"github.com/FM-Hayajneh/FM.Hayajneh/internal/model"
)

// TestBuildFilename tests download filename construction.
func TestBuildFilename(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC)

	t.Run("English pattern", func(t *testing.T) {
		t.Parallel()

		got := BuildFilename(createTestResult(), model.LanguageEnglish, now)
		want := "diagnosis-report-Newcastle Disease-2026-01-15.pdf"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("Arabic pattern", func(t *testing.T) {
		t.Parallel()

		got := BuildFilename(createTestResult(), model.LanguageArabic, now)
		want := "تقرير-تشخيص-مرض النيوكاسل-2026-01-15.pdf"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("missing disease name degrades to unknown", func(t *testing.T) {
		t.Parallel()

		result := createTestResult()
		delete(result.Disease.Name, model.LanguageEnglish)

		got := BuildFilename(result, model.LanguageEnglish, now)
		want := "diagnosis-report-unknown-2026-01-15.pdf"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("blank disease name counts as missing", func(t *testing.T) {
		t.Parallel()

		result := createTestResult()
		result.Disease.Name[model.LanguageArabic] = "   "

		got := BuildFilename(result, model.LanguageArabic, now)
		want := "تقرير-تشخيص-unknown-2026-01-15.pdf"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("nil result degrades to unknown", func(t *testing.T) {
		t.Parallel()

		got := BuildFilename(nil, model.LanguageEnglish, now)
		want := "diagnosis-report-unknown-2026-01-15.pdf"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("path separators are replaced", func(t *testing.T) {
		t.Parallel()

		result := createTestResult()
		result.Disease.Name[model.LanguageEnglish] = `Avian/Influenza\H5N1`

		got := BuildFilename(result, model.LanguageEnglish, now)
		want := "diagnosis-report-Avian-Influenza-H5N1-2026-01-15.pdf"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("single digit dates are zero padded", func(t *testing.T) {
		t.Parallel()

		early := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
		got := BuildFilename(createTestResult(), model.LanguageEnglish, early)
		want := "diagnosis-report-Newcastle Disease-2026-03-05.pdf"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})
}
