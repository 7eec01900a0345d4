package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language identifies one of the report locales supported by the renderer.
//
// Design decision: We use iota-based constants rather than raw locale strings
// because:
// 1. The compiler catches switches that forget a locale when a new one lands
// 2. Comparisons and map keys are cheap ints instead of string compares
// 3. The zero value is the Arabic default, so an uninitialized Language is
//    already the documented fallback
type Language int

const (
	// LanguageArabic is the default report locale. Rendered documents use
	// right-to-left layout.
	LanguageArabic Language = iota

	// LanguageEnglish renders documents with left-to-right layout.
	LanguageEnglish
)

// DefaultLanguage is used whenever a caller does not specify a locale.
const DefaultLanguage = LanguageArabic

// supportedTags lists the BCP 47 tags accepted by ParseLanguage.
// Order must mirror the Language constants: the matcher returns an index
// into this slice and we convert it straight into a Language value.
var supportedTags = []language.Tag{
	language.Arabic,
	language.English,
}

var languageMatcher = language.NewMatcher(supportedTags)

// String returns the ISO 639-1 code for the language.
func (l Language) String() string {
	switch l {
	case LanguageArabic:
		return "ar"
	case LanguageEnglish:
		return "en"
	default:
		return "unknown"
	}
}

// Tag returns the BCP 47 tag for the language.
func (l Language) Tag() language.Tag {
	switch l {
	case LanguageEnglish:
		return language.English
	default:
		return language.Arabic
	}
}

// Direction returns the HTML text direction attribute value for the
// language: "rtl" for Arabic, "ltr" otherwise.
func (l Language) Direction() string {
	if l == LanguageArabic {
		return "rtl"
	}
	return "ltr"
}

// Valid reports whether the language is one of the supported locales.
func (l Language) Valid() bool {
	return l >= LanguageArabic && l <= LanguageEnglish
}

// AllLanguages returns every supported locale in declaration order.
func AllLanguages() []Language {
	return []Language{LanguageArabic, LanguageEnglish}
}

// ParseLanguage resolves a locale code to a supported Language.
//
// An empty code selects DefaultLanguage. Regional and script variants
// resolve through a language matcher, so "en-US" or "ar-EG" map onto the
// base locales. Codes that match no supported locale return
// ErrUnsupportedLanguage wrapped with the offending code.
func ParseLanguage(code string) (Language, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return DefaultLanguage, nil
	}

	tag, err := language.Parse(code)
	if err != nil {
		return DefaultLanguage, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}

	_, index, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return DefaultLanguage, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	return Language(index), nil
}

// MarshalText implements encoding.TextMarshaler so a Language can serve as
// a JSON object key and a YAML scalar.
func (l Language) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: code %d", ErrUnsupportedLanguage, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Language) UnmarshalText(text []byte) error {
	parsed, err := ParseLanguage(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
