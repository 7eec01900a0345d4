package report

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/FM-Hayajneh/FM.Hayajneh/internal/model"
)

// Message keys for the static UI strings of a report. Every key must be
// registered for both locales in newLabelCatalog; rendering never falls back
// to a key name.
const (
	labelTitle             = "report.title"
	labelSubtitle          = "report.subtitle"
	labelDate              = "report.date"
	labelOverallConfidence = "report.overallConfidence"
	labelDisclaimer        = "report.disclaimer"
	labelPrintHint         = "report.printHint"
	labelFooter            = "report.footer"

	labelSectionBreed     = "section.breed"
	labelSectionWeight    = "section.weight"
	labelSectionDisease   = "section.disease"
	labelSectionTreatment = "section.treatment"

	labelFieldName        = "field.name"
	labelFieldConfidence  = "field.confidence"
	labelFieldEstimated   = "field.estimated"
	labelFieldMethod      = "field.method"
	labelFieldErrorMargin = "field.errorMargin"
	labelFieldProbability = "field.probability"
	labelFieldMedication  = "field.medication"
	labelFieldDosage      = "field.dosage"
	labelFieldDuration    = "field.duration"
	labelFieldWarnings    = "field.warnings"

	labelColumnField = "column.field"
	labelColumnValue = "column.value"

	labelUnitKilogram = "unit.kilogram"
)

// labelCatalog holds the static UI strings per locale.
//
// Design decision: We use x/text's message catalog rather than bare maps
// because:
// 1. The printer resolves regional variants through the same matcher rules
//    as the rest of the toolkit
// 2. Messages with arguments gain locale-aware formatting for free when we
//    need them
// 3. Missing registrations surface at startup, not mid-render
var labelCatalog = newLabelCatalog()

func newLabelCatalog() catalog.Catalog {
	entries := []struct {
		key string
		ar  string
		en  string
	}{
		{labelTitle, "تقرير تشخيص الدواجن", "Poultry Diagnosis Report"},
		{labelSubtitle, "ملخص نتائج التحليل بالذكاء الاصطناعي", "AI analysis summary"},
		{labelDate, "التاريخ", "Date"},
		{labelOverallConfidence, "نسبة الثقة الإجمالية", "Overall Confidence"},
		{
			labelDisclaimer,
			"هذا التقرير أُنشئ تلقائيًا ولا يغني عن استشارة الطبيب البيطري المختص. يُرجى مراجعة طبيب بيطري مرخص قبل تطبيق أي علاج.",
			"This report was generated automatically and is not a substitute for professional veterinary advice. Consult a licensed veterinarian before applying any treatment.",
		},
		{
			labelPrintHint,
			"استخدم نافذة الطباعة في المتصفح لحفظ التقرير بصيغة PDF.",
			"Use the browser print dialog to save this report as a PDF.",
		},
		{labelFooter, "أُنشئ بواسطة منصة رعاية الدواجن", "Generated by the Poultry Care platform"},

		{labelSectionBreed, "تحديد السلالة", "Breed Identification"},
		{labelSectionWeight, "تقدير الوزن", "Weight Estimate"},
		{labelSectionDisease, "المرض المشتبه به", "Suspected Disease"},
		{labelSectionTreatment, "خطة العلاج", "Treatment Plan"},

		{labelFieldName, "الاسم", "Name"},
		{labelFieldConfidence, "نسبة الثقة", "Confidence"},
		{labelFieldEstimated, "الوزن التقديري", "Estimated Weight"},
		{labelFieldMethod, "طريقة التقدير", "Estimation Method"},
		{labelFieldErrorMargin, "هامش الخطأ", "Error Margin"},
		{labelFieldProbability, "الاحتمالية", "Probability"},
		{labelFieldMedication, "الدواء", "Medication"},
		{labelFieldDosage, "الجرعة", "Dosage"},
		{labelFieldDuration, "مدة العلاج", "Duration"},
		{labelFieldWarnings, "تحذيرات", "Warnings"},

		{labelColumnField, "الحقل", "Field"},
		{labelColumnValue, "القيمة", "Value"},

		{labelUnitKilogram, "كجم", "kg"},
	}

	builder := catalog.NewBuilder(catalog.Fallback(language.Arabic))
	for _, e := range entries {
		if err := builder.SetString(language.Arabic, e.key, e.ar); err != nil {
			panic(fmt.Sprintf("report: invalid Arabic label %q: %v", e.key, err))
		}
		if err := builder.SetString(language.English, e.key, e.en); err != nil {
			panic(fmt.Sprintf("report: invalid English label %q: %v", e.key, err))
		}
	}
	return builder
}

// labels returns a printer that resolves static UI strings for the locale.
func labels(lang model.Language) *message.Printer {
	return message.NewPrinter(lang.Tag(), message.Catalog(labelCatalog))
}

// arabicMonths are the Gregorian month names used across Arabic locales.
var arabicMonths = map[time.Month]string{
	time.January:   "يناير",
	time.February:  "فبراير",
	time.March:     "مارس",
	time.April:     "أبريل",
	time.May:       "مايو",
	time.June:      "يونيو",
	time.July:      "يوليو",
	time.August:    "أغسطس",
	time.September: "سبتمبر",
	time.October:   "أكتوبر",
	time.November:  "نوفمبر",
	time.December:  "ديسمبر",
}

// formatDate renders the human-readable header date. Digits stay Western in
// both locales so header dates line up with the ISO date in filenames.
func formatDate(t time.Time, lang model.Language) string {
	if lang == model.LanguageArabic {
		return fmt.Sprintf("%d %s %d", t.Day(), arabicMonths[t.Month()], t.Year())
	}
	return t.Format("January 2, 2006")
}

// formatISODate renders the compact YYYY-MM-DD date used in filenames and
// datetime attributes.
func formatISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

// formatPercent renders a confidence or probability the way the upstream
// model reports it: 87 stays "87%", fractional values keep their fraction.
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// clampPercent bounds a value to the 0-100 range for CSS meter widths.
// Display text always shows the raw value; only geometry is clamped.
func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// displayOr substitutes fallback for empty display values.
func displayOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
