package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/message"

	"github.com/FM-Hayajneh/FM.Hayajneh/internal/host"
	"github.com/FM-Hayajneh/FM.Hayajneh/internal/model"
)

// TextWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII rules rather than ANSI
// colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type TextWriter struct {
	baseWriter

	// clock dates the report header.
	clock host.Clock

	// compact limits output to the headline finding and confidence.
	compact bool
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithCompact limits output to the suspected disease and the overall
// confidence. This suits list views and shell pipelines.
func WithCompact() TextWriterOption {
	return func(w *TextWriter) {
		w.compact = true
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter: newBaseWriter(output),
		clock:      host.SystemClock{},
		compact:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report as terminal text. Missing localized fields fail
// the whole write before any output is produced.
func (w *TextWriter) Write(result *model.AnalysisResult, lang model.Language) (int, error) {
	if result == nil {
		return 0, ErrNilResult
	}

	p := labels(lang)

	diseaseName, err := localize("disease.name", result.Disease.Name, lang)
	if err != nil {
		return 0, err
	}

	var sb strings.Builder

	if w.compact {
		fmt.Fprintf(&sb, "%s: %s (%s)\n",
			p.Sprintf(labelSectionDisease), diseaseName, formatPercent(result.Disease.Probability))
		fmt.Fprintf(&sb, "%s: %s\n",
			p.Sprintf(labelOverallConfidence), formatPercent(result.OverallConfidence))
		return io.WriteString(w.output, sb.String())
	}

	breedName, err := localize("breed.name", result.Breed.Name, lang)
	if err != nil {
		return 0, err
	}
	weightMethod, err := localize("weight.method", result.Weight.Method, lang)
	if err != nil {
		return 0, err
	}
	medication, err := localize("treatment.medication", result.Treatment.Medication, lang)
	if err != nil {
		return 0, err
	}
	dosage, err := localize("treatment.dosage", result.Treatment.Dosage, lang)
	if err != nil {
		return 0, err
	}
	duration, err := localize("treatment.duration", result.Treatment.Duration, lang)
	if err != nil {
		return 0, err
	}
	warnings, err := localize("treatment.warnings", result.Treatment.Warnings, lang)
	if err != nil {
		return 0, err
	}

	kg := p.Sprintf(labelUnitKilogram)

	w.writeHeader(&sb, p, lang, result.OverallConfidence)

	writeTextSection(&sb, p.Sprintf(labelSectionBreed), []sectionRow{
		{p.Sprintf(labelFieldName), breedName},
		{p.Sprintf(labelFieldConfidence), formatPercent(result.Breed.Confidence)},
	})
	writeTextSection(&sb, p.Sprintf(labelSectionWeight), []sectionRow{
		{p.Sprintf(labelFieldEstimated), displayOr(quantity(result.Weight.Estimated.String(), kg), "-")},
		{p.Sprintf(labelFieldMethod), weightMethod},
		{p.Sprintf(labelFieldErrorMargin), displayOr(margin(result.Weight.ErrorMargin.String(), kg), "-")},
	})
	writeTextSection(&sb, p.Sprintf(labelSectionDisease), []sectionRow{
		{p.Sprintf(labelFieldName), diseaseName},
		{p.Sprintf(labelFieldProbability), formatPercent(result.Disease.Probability)},
	})
	writeTextSection(&sb, p.Sprintf(labelSectionTreatment), []sectionRow{
		{p.Sprintf(labelFieldMedication), medication},
		{p.Sprintf(labelFieldDosage), dosage},
		{p.Sprintf(labelFieldDuration), duration},
		{p.Sprintf(labelFieldWarnings), warnings},
	})

	w.writeFooter(&sb, p)

	return io.WriteString(w.output, sb.String())
}

// writeHeader writes the report title, date, confidence, and disclaimer.
func (w *TextWriter) writeHeader(sb *strings.Builder, p *message.Printer, lang model.Language, confidence float64) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString(p.Sprintf(labelTitle))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	fmt.Fprintf(sb, "%s: %s\n", p.Sprintf(labelDate), formatDate(w.clock.Now(), lang))
	fmt.Fprintf(sb, "%s: %s\n", p.Sprintf(labelOverallConfidence), formatPercent(confidence))

	sb.WriteString("\n")
	sb.WriteString(p.Sprintf(labelDisclaimer))
	sb.WriteString("\n")
}

// writeFooter writes the closing rule and attribution line.
func (w *TextWriter) writeFooter(sb *strings.Builder, p *message.Printer) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString(p.Sprintf(labelFooter))
	sb.WriteString("\n")
}

// writeTextSection writes one finding section with a ruled heading.
func writeTextSection(sb *strings.Builder, heading string, rows []sectionRow) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(heading)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	for _, row := range rows {
		fmt.Fprintf(sb, "%s: %s\n", row.label, row.value)
	}
}
