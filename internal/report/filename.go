package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/FM-Hayajneh/FM.Hayajneh/internal/model"
)

// Filename prefixes per locale. The full pattern is
// <prefix>-<disease>-<YYYY-MM-DD><ext>, mirroring the download names the
// upstream application has always produced.
const (
	filenamePrefixArabic  = "تقرير-تشخيص"
	filenamePrefixEnglish = "diagnosis-report"

	// UnknownDiseaseToken substitutes the disease name when the requested
	// locale has no variant. It is a fixed literal in both locales so
	// scripts that glob download directories keep working.
	UnknownDiseaseToken = "unknown"
)

// filenameSanitizer keeps the disease name a single path element. Spaces
// and non-ASCII text pass through untouched.
var filenameSanitizer = strings.NewReplacer("/", "-", "\\", "-", "\x00", "-")

// BuildFilename returns the download filename for a report generated at now,
// using the default document extension.
//
// The disease display name degrades to UnknownDiseaseToken when the locale
// variant is absent. This is the only rendering path that substitutes a
// placeholder instead of failing: a download must always have a name, while
// a half-translated document body must not exist at all.
func BuildFilename(result *model.AnalysisResult, lang model.Language, now time.Time) string {
	return buildFilename(result, lang, now, DefaultFileExtension)
}

// buildFilename is BuildFilename with the extension supplied by the active
// document encoder.
func buildFilename(result *model.AnalysisResult, lang model.Language, now time.Time, ext string) string {
	disease := UnknownDiseaseToken
	if result != nil {
		disease = result.Disease.Name.GetOr(lang, UnknownDiseaseToken)
	}
	disease = filenameSanitizer.Replace(disease)

	prefix := filenamePrefixEnglish
	if lang == model.LanguageArabic {
		prefix = filenamePrefixArabic
	}
	return fmt.Sprintf("%s-%s-%s%s", prefix, disease, formatISODate(now), ext)
}
