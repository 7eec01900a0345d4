package report

import (
	"io"

	"github.com/nao1215/markdown"
	"golang.org/x/text/message"

	"github.com/FM-Hayajneh/FM.Hayajneh/internal/host"
	"github.com/FM-Hayajneh/FM.Hayajneh/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation, tickets, and sharing in chat.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter

	// clock dates the report header.
	clock host.Clock
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		clock:      host.SystemClock{},
	}
}

// Write outputs the report in Markdown format. The section order matches
// the printable document: breed, weight, disease, treatment. Missing
// localized fields fail the whole write before any output is produced.
func (w *MarkdownWriter) Write(result *model.AnalysisResult, lang model.Language) (int, error) {
	if result == nil {
		return 0, ErrNilResult
	}

	breedName, err := localize("breed.name", result.Breed.Name, lang)
	if err != nil {
		return 0, err
	}
	weightMethod, err := localize("weight.method", result.Weight.Method, lang)
	if err != nil {
		return 0, err
	}
	diseaseName, err := localize("disease.name", result.Disease.Name, lang)
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

	p := labels(lang)
	kg := p.Sprintf(labelUnitKilogram)
	md := markdown.NewMarkdown(w.output)

	// Header
	md.H1(p.Sprintf(labelTitle))
	md.PlainText(p.Sprintf(labelSubtitle))
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{p.Sprintf(labelColumnField), p.Sprintf(labelColumnValue)},
		Rows: [][]string{
			{p.Sprintf(labelDate), formatDate(w.clock.Now(), lang)},
			{p.Sprintf(labelOverallConfidence), formatPercent(result.OverallConfidence)},
		},
	})
	md.PlainText("")
	md.Warningf("%s", p.Sprintf(labelDisclaimer))
	md.PlainText("")

	// Findings in the same fixed order as the printable document
	w.writeSection(md, p, p.Sprintf(labelSectionBreed), [][]string{
		{p.Sprintf(labelFieldName), breedName},
		{p.Sprintf(labelFieldConfidence), formatPercent(result.Breed.Confidence)},
	})
	w.writeSection(md, p, p.Sprintf(labelSectionWeight), [][]string{
		{p.Sprintf(labelFieldEstimated), displayOr(quantity(result.Weight.Estimated.String(), kg), "-")},
		{p.Sprintf(labelFieldMethod), weightMethod},
		{p.Sprintf(labelFieldErrorMargin), displayOr(margin(result.Weight.ErrorMargin.String(), kg), "-")},
	})
	w.writeSection(md, p, p.Sprintf(labelSectionDisease), [][]string{
		{p.Sprintf(labelFieldName), diseaseName},
		{p.Sprintf(labelFieldProbability), formatPercent(result.Disease.Probability)},
	})
	w.writeSection(md, p, p.Sprintf(labelSectionTreatment), [][]string{
		{p.Sprintf(labelFieldMedication), medication},
		{p.Sprintf(labelFieldDosage), dosage},
		{p.Sprintf(labelFieldDuration), duration},
		{p.Sprintf(labelFieldWarnings), warnings},
	})

	// Footer
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*%s*", p.Sprintf(labelFooter))

	return len(md.String()), md.Build()
}

// writeSection writes one finding section as a heading plus a field table.
func (w *MarkdownWriter) writeSection(md *markdown.Markdown, p *message.Printer, heading string, rows [][]string) {
	md.H2(heading)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{p.Sprintf(labelColumnField), p.Sprintf(labelColumnValue)},
		Rows:   rows,
	})
	md.PlainText("")
}
