package model

import "encoding/json"

// AnalysisResult is the outcome of an upstream diagnosis run for a single
// bird or flock case. The renderer consumes it as-is: every value here was
// computed elsewhere, and this package never derives new medical facts.
//
// Field names mirror the upstream JSON payload, which uses camelCase keys.
type AnalysisResult struct {
	// === Aggregate ===

	// OverallConfidence is the model confidence for the whole analysis,
	// expressed in percent (0-100).
	OverallConfidence float64 `json:"overallConfidence"`

	// === Findings ===

	Breed     BreedAssessment `json:"breed"`
	Weight    WeightEstimate  `json:"weight"`
	Disease   DiseaseFinding  `json:"disease"`
	Treatment TreatmentPlan   `json:"treatment"`
}

// BreedAssessment identifies the most likely breed.
type BreedAssessment struct {
	// Name is the breed display name per locale.
	Name LocalizedText `json:"name"`

	// Confidence is the breed identification confidence in percent (0-100).
	Confidence float64 `json:"confidence"`
}

// WeightEstimate carries the estimated live weight in kilograms.
//
// Design decision: Estimated and ErrorMargin are json.Number because the
// upstream payload emits them sometimes as JSON numbers and sometimes as
// numeric strings. json.Number accepts both without loss.
type WeightEstimate struct {
	// Estimated is the estimated weight in kilograms.
	Estimated json.Number `json:"estimated"`

	// Method describes how the estimate was produced, per locale.
	Method LocalizedText `json:"method"`

	// ErrorMargin is the symmetric estimation error in kilograms.
	ErrorMargin json.Number `json:"errorMargin"`
}

// DiseaseFinding names the suspected disease.
type DiseaseFinding struct {
	// Name is the disease display name per locale.
	Name LocalizedText `json:"name"`

	// Probability is the disease likelihood in percent (0-100).
	Probability float64 `json:"probability"`
}

// TreatmentPlan is the recommended course of treatment. All fields are
// free-form localized text authored by the upstream model.
type TreatmentPlan struct {
	Medication LocalizedText `json:"medication"`
	Dosage     LocalizedText `json:"dosage"`
	Duration   LocalizedText `json:"duration"`
	Warnings   LocalizedText `json:"warnings"`
}

// localizedField pairs a dotted field path with its localized text, used
// for validation error reporting.
type localizedField struct {
	path string
	text LocalizedText
}

// localizedFields lists every field the printable document body requires.
// The filename path is deliberately absent: disease.name gaps degrade to a
// placeholder there instead of failing.
func (r *AnalysisResult) localizedFields() []localizedField {
	return []localizedField{
		{"breed.name", r.Breed.Name},
		{"weight.method", r.Weight.Method},
		{"disease.name", r.Disease.Name},
		{"treatment.medication", r.Treatment.Medication},
		{"treatment.dosage", r.Treatment.Dosage},
		{"treatment.duration", r.Treatment.Duration},
		{"treatment.warnings", r.Treatment.Warnings},
	}
}

// ValidateFor checks that every localized field required by the printable
// document body has a usable variant for the requested language. It returns
// a *MissingLocalizationError naming the first gap, or nil.
func (r *AnalysisResult) ValidateFor(lang Language) error {
	for _, f := range r.localizedFields() {
		if !f.text.Has(lang) {
			return &MissingLocalizationError{Field: f.path, Language: lang}
		}
	}
	return nil
}
