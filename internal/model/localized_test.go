package model

import "testing"

// TestLocalizedTextGet verifies lookup semantics including the treatment of
// absent and whitespace-only variants.
func TestLocalizedTextGet(t *testing.T) {
	t.Parallel()

	text := LocalizedText{
		LanguageArabic:  "دجاج بلدي",
		LanguageEnglish: "   ",
	}

	t.Run("returns present variant", func(t *testing.T) {
		t.Parallel()

		got, ok := text.Get(LanguageArabic)
		if !ok {
			t.Fatal("expected Arabic variant to be present")
		}
		if got != "دجاج بلدي" {
			t.Errorf("unexpected variant: %q", got)
		}
	})

	t.Run("whitespace-only variant counts as missing", func(t *testing.T) {
		t.Parallel()

		if _, ok := text.Get(LanguageEnglish); ok {
			t.Error("expected whitespace-only variant to be reported missing")
		}
	})

	t.Run("absent variant is missing", func(t *testing.T) {
		t.Parallel()

		if _, ok := (LocalizedText{}).Get(LanguageEnglish); ok {
			t.Error("expected absent variant to be reported missing")
		}
	})

	t.Run("nil map is safe", func(t *testing.T) {
		t.Parallel()

		var nilText LocalizedText
		if _, ok := nilText.Get(LanguageArabic); ok {
			t.Error("expected lookup on nil map to report missing")
		}
	})
}

// TestLocalizedTextGetOr verifies fallback behavior.
func TestLocalizedTextGetOr(t *testing.T) {
	t.Parallel()

	text := LocalizedText{LanguageEnglish: "Newcastle Disease"}

	if got := text.GetOr(LanguageEnglish, "unknown"); got != "Newcastle Disease" {
		t.Errorf("expected stored variant, got %q", got)
	}
	if got := text.GetOr(LanguageArabic, "unknown"); got != "unknown" {
		t.Errorf("expected fallback, got %q", got)
	}
}

// TestLocalizedTextHas verifies presence checks.
func TestLocalizedTextHas(t *testing.T) {
	t.Parallel()

	text := LocalizedText{LanguageArabic: "إنروفلوكساسين"}

	if !text.Has(LanguageArabic) {
		t.Error("expected Arabic variant to be present")
	}
	if text.Has(LanguageEnglish) {
		t.Error("expected English variant to be missing")
	}
}
