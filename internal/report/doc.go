// Package report turns diagnosis analyses into user-facing reports.
//
// The Renderer is the core type. It generates downloadable report documents
// through a pluggable DocumentEncoder, parks them behind one-time locators,
// drives the download and print-view flows, and enforces a single in-flight
// generation per instance. BatchGenerator fans generation out over many
// analyses with bounded concurrency.
//
// This package also contains writers for different output formats:
//   - HTMLWriter: The complete printable document (RTL for Arabic)
//   - MarkdownWriter: Markdown for documentation and sharing
//   - JSONWriter / FullJSONWriter: Structured output for tool integration
//   - TextWriter: Human-readable text for terminal display
//
// Design decision: We separate report writing from report data structures
// (which are in the model package) to follow the single responsibility
// principle. This allows adding new output formats without modifying
// the core data structures.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output.
package report
