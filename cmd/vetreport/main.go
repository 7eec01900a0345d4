// Package main provides the entry point for the vetreport CLI.
//
// vetreport renders poultry diagnosis analyses as printable documents,
// downloadable report files, and terminal summaries in Arabic or English.
//
// Usage:
//
//	vetreport render analysis.json
//	vetreport generate --language en case1.json case2.json
//
// See --help for all available options.
package main

// main is the entry point for vetreport.
func main() {
	Execute()
}
