package model

import "strings"

// LocalizedText holds the per-locale variants of a single display string.
// Analysis payloads carry both Arabic and English variants for every
// human-readable field; a variant may still be absent or blank when the
// upstream model produced a partial record.
type LocalizedText map[Language]string

// Get returns the variant for the requested language. The second return
// value is false when the variant is absent or contains only whitespace,
// forcing every lookup site to decide how a gap is handled.
func (t LocalizedText) Get(lang Language) (string, bool) {
	s, ok := t[lang]
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// GetOr returns the variant for the requested language, or fallback when
// the variant is absent or blank. Used on paths where a placeholder is the
// documented behavior, such as filename construction.
func (t LocalizedText) GetOr(lang Language, fallback string) string {
	if s, ok := t.Get(lang); ok {
		return s
	}
	return fallback
}

// Has reports whether a usable variant exists for the requested language.
func (t LocalizedText) Has(lang Language) bool {
	_, ok := t.Get(lang)
	return ok
}
