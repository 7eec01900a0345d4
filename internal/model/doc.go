// Package model defines the core data structures shared across the report
// toolkit.
//
// This package contains the following main types:
//   - Language: Enumerated report locale (Arabic default, English)
//   - LocalizedText: Per-locale variants of a display string
//   - AnalysisResult: The upstream diagnosis record the renderer consumes
//
// Design decision: We separate models into their own package to avoid
// circular dependencies. Multiple packages (report, archive, cmd) need these
// types, so centralizing them prevents import cycles.
//
// The models are designed to round-trip through JSON: AnalysisResult mirrors
// the upstream payload's camelCase keys, and Language marshals as its ISO
// 639-1 code so it can serve as a JSON object key.
package model
