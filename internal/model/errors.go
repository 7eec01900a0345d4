package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedLanguage is returned when a locale code cannot be
	// resolved to one of the supported report languages.
	ErrUnsupportedLanguage = errors.New("unsupported report language")
)

// MissingLocalizationError reports that an analysis field has no usable
// variant for the requested language. Document body rendering fails fast
// with this error rather than emitting a partially translated report.
type MissingLocalizationError struct {
	// Field is the dotted path of the offending field, e.g. "disease.name".
	Field string

	// Language is the locale the lookup asked for.
	Language Language
}

// Error implements the error interface.
func (e *MissingLocalizationError) Error() string {
	return fmt.Sprintf("field %q has no %q localization", e.Field, e.Language)
}
