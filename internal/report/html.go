package report

import (
	"fmt"
	"html"
	"strings"
	"time"

	"golang.org/x/text/message"

	"github.com/FM-Hayajneh/FM.Hayajneh/internal/model"
)

// htmlStyles is the stylesheet embedded in every printable document. The
// @media print block hides on-screen chrome and removes page margins so the
// printed sheet carries only report content.
const htmlStyles = `    :root {
      --ink: #1f2933;
      --muted: #616e7c;
      --accent: #0f766e;
      --paper: #ffffff;
      --rule: #d9e2ec;
    }
    * { box-sizing: border-box; }
    body {
      margin: 0 auto;
      padding: 24px;
      max-width: 800px;
      background: var(--paper);
      color: var(--ink);
      font-family: "Segoe UI", Tahoma, Arial, sans-serif;
      line-height: 1.6;
    }
    .report-header { border-bottom: 3px solid var(--accent); padding-bottom: 12px; margin-bottom: 16px; }
    .report-header h1 { margin: 0 0 4px; color: var(--accent); font-size: 1.6em; }
    .subtitle { margin: 0; color: var(--muted); }
    .report-date { margin: 8px 0 0; color: var(--muted); font-size: 0.9em; }
    .confidence-block { display: flex; align-items: center; gap: 12px; margin: 16px 0; }
    .confidence-label { font-weight: 600; }
    .confidence-value { font-size: 1.3em; font-weight: 700; color: var(--accent); }
    .confidence-meter { flex: 1; height: 10px; background: var(--rule); border-radius: 5px; overflow: hidden; }
    .confidence-fill { height: 100%; background: var(--accent); }
    .disclaimer { background: #fff8e6; border: 1px solid #f0d58c; border-radius: 6px; padding: 10px 14px; font-size: 0.9em; margin: 16px 0; }
    .report-section { border: 1px solid var(--rule); border-radius: 8px; padding: 14px 18px; margin: 14px 0; page-break-inside: avoid; }
    .report-section h2 { margin: 0 0 10px; font-size: 1.1em; color: var(--accent); }
    .report-section dl { display: grid; grid-template-columns: 12em 1fr; row-gap: 6px; margin: 0; }
    .report-section dt { color: var(--muted); }
    .report-section dd { margin: 0; font-weight: 600; }
    .report-footer { margin-top: 24px; color: var(--muted); font-size: 0.85em; border-top: 1px solid var(--rule); padding-top: 10px; }
    .print-toolbar { margin-top: 16px; padding: 10px 14px; background: #eef6f6; border-radius: 6px; color: var(--muted); font-size: 0.9em; }
    @media print {
      body { margin: 0; padding: 0; max-width: none; }
      .no-print { display: none; }
      .report-section { border-color: #bbbbbb; }
    }
    @page { margin: 12mm; }
`

// sectionRow is one label/value line inside a report section.
type sectionRow struct {
	label string
	value string
}

// RenderPrintable renders the complete printable HTML document for an
// analysis. The output is a pure function of (result, lang, now): rendering
// the same inputs twice yields byte-identical documents.
//
// The document is self-contained: styles are embedded and no external
// resources are referenced, so it prints identically wherever it is opened.
// Any localized field required by the body that lacks a variant for the
// requested locale fails the whole render with
// *model.MissingLocalizationError.
func RenderPrintable(result *model.AnalysisResult, lang model.Language, now time.Time) (string, error) {
	if result == nil {
		return "", ErrNilResult
	}
	if !lang.Valid() {
		return "", fmt.Errorf("%w: code %d", model.ErrUnsupportedLanguage, int(lang))
	}

	// Resolve every localized field up front so a gap fails the render
	// before a single byte is produced.
	breedName, err := localize("breed.name", result.Breed.Name, lang)
	if err != nil {
		return "", err
	}
	weightMethod, err := localize("weight.method", result.Weight.Method, lang)
	if err != nil {
		return "", err
	}
	diseaseName, err := localize("disease.name", result.Disease.Name, lang)
	if err != nil {
		return "", err
	}
	medication, err := localize("treatment.medication", result.Treatment.Medication, lang)
	if err != nil {
		return "", err
	}
	dosage, err := localize("treatment.dosage", result.Treatment.Dosage, lang)
	if err != nil {
		return "", err
	}
	duration, err := localize("treatment.duration", result.Treatment.Duration, lang)
	if err != nil {
		return "", err
	}
	warnings, err := localize("treatment.warnings", result.Treatment.Warnings, lang)
	if err != nil {
		return "", err
	}

	p := labels(lang)
	kg := p.Sprintf(labelUnitKilogram)

	var b strings.Builder
	b.Grow(8 * 1024)

	b.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(&b, "<html lang=%q dir=%q>\n", lang.String(), lang.Direction())

	writeHTMLHead(&b, p.Sprintf(labelTitle))

	b.WriteString("<body>\n")
	writeHTMLHeader(&b, p, lang, now)
	writeConfidenceBlock(&b, p, result.OverallConfidence)
	fmt.Fprintf(&b, "  <div class=\"disclaimer\">%s</div>\n", html.EscapeString(p.Sprintf(labelDisclaimer)))

	// The four content sections appear in a fixed order regardless of
	// locale: breed, weight, disease, treatment.
	b.WriteString("  <main>\n")
	writeSection(&b, "breed", p.Sprintf(labelSectionBreed), []sectionRow{
		{p.Sprintf(labelFieldName), breedName},
		{p.Sprintf(labelFieldConfidence), formatPercent(result.Breed.Confidence)},
	})
	writeSection(&b, "weight", p.Sprintf(labelSectionWeight), []sectionRow{
		{p.Sprintf(labelFieldEstimated), displayOr(quantity(result.Weight.Estimated.String(), kg), "-")},
		{p.Sprintf(labelFieldMethod), weightMethod},
		{p.Sprintf(labelFieldErrorMargin), displayOr(margin(result.Weight.ErrorMargin.String(), kg), "-")},
	})
	writeSection(&b, "disease", p.Sprintf(labelSectionDisease), []sectionRow{
		{p.Sprintf(labelFieldName), diseaseName},
		{p.Sprintf(labelFieldProbability), formatPercent(result.Disease.Probability)},
	})
	writeSection(&b, "treatment", p.Sprintf(labelSectionTreatment), []sectionRow{
		{p.Sprintf(labelFieldMedication), medication},
		{p.Sprintf(labelFieldDosage), dosage},
		{p.Sprintf(labelFieldDuration), duration},
		{p.Sprintf(labelFieldWarnings), warnings},
	})
	b.WriteString("  </main>\n")

	fmt.Fprintf(&b, "  <footer class=\"report-footer\">%s</footer>\n", html.EscapeString(p.Sprintf(labelFooter)))
	fmt.Fprintf(&b, "  <div class=\"print-toolbar no-print\">%s</div>\n", html.EscapeString(p.Sprintf(labelPrintHint)))

	b.WriteString("</body>\n")
	b.WriteString("</html>\n")

	return b.String(), nil
}

// localize resolves one localized field for the document body, failing with
// the field's dotted path when the variant is absent.
func localize(field string, text model.LocalizedText, lang model.Language) (string, error) {
	v, ok := text.Get(lang)
	if !ok {
		return "", &model.MissingLocalizationError{Field: field, Language: lang}
	}
	return v, nil
}

// quantity renders a number with its unit, or empty when the number is empty.
func quantity(n, unit string) string {
	if n == "" {
		return ""
	}
	return n + " " + unit
}

// margin renders a symmetric error margin, or empty when the number is empty.
func margin(n, unit string) string {
	if n == "" {
		return ""
	}
	return "±" + n + " " + unit
}

func writeHTMLHead(b *strings.Builder, title string) {
	b.WriteString("<head>\n")
	b.WriteString("  <meta charset=\"utf-8\">\n")
	fmt.Fprintf(b, "  <title>%s</title>\n", html.EscapeString(title))
	b.WriteString("  <style>\n")
	b.WriteString(htmlStyles)
	b.WriteString("  </style>\n")
	b.WriteString("</head>\n")
}

func writeHTMLHeader(b *strings.Builder, p *message.Printer, lang model.Language, now time.Time) {
	b.WriteString("  <header class=\"report-header\">\n")
	fmt.Fprintf(b, "    <h1>%s</h1>\n", html.EscapeString(p.Sprintf(labelTitle)))
	fmt.Fprintf(b, "    <p class=\"subtitle\">%s</p>\n", html.EscapeString(p.Sprintf(labelSubtitle)))
	fmt.Fprintf(b, "    <p class=\"report-date\">%s: <time datetime=%q>%s</time></p>\n",
		html.EscapeString(p.Sprintf(labelDate)), formatISODate(now), html.EscapeString(formatDate(now, lang)))
	b.WriteString("  </header>\n")
}

func writeConfidenceBlock(b *strings.Builder, p *message.Printer, confidence float64) {
	b.WriteString("  <div class=\"confidence-block\">\n")
	fmt.Fprintf(b, "    <span class=\"confidence-label\">%s</span>\n", html.EscapeString(p.Sprintf(labelOverallConfidence)))
	fmt.Fprintf(b, "    <span class=\"confidence-value\">%s</span>\n", formatPercent(confidence))
	fmt.Fprintf(b, "    <div class=\"confidence-meter\"><div class=\"confidence-fill\" style=\"width: %s\"></div></div>\n",
		formatPercent(clampPercent(confidence)))
	b.WriteString("  </div>\n")
}

func writeSection(b *strings.Builder, id, heading string, rows []sectionRow) {
	fmt.Fprintf(b, "    <section class=\"report-section\" id=%q>\n", id)
	fmt.Fprintf(b, "      <h2>%s</h2>\n", html.EscapeString(heading))
	b.WriteString("      <dl>\n")
	for _, row := range rows {
		fmt.Fprintf(b, "        <dt>%s</dt>\n", html.EscapeString(row.label))
		fmt.Fprintf(b, "        <dd>%s</dd>\n", html.EscapeString(row.value))
	}
	b.WriteString("      </dl>\n")
	b.WriteString("    </section>\n")
}
