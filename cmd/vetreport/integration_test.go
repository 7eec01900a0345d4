package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// skipIfShort skips the test if -short flag is set.
// The workflow tests exercise the SQLite archive and concurrent generation,
// which is more than unit-level work.
func skipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping workflow test in short mode")
	}
}

// TestRenderArchiveWorkflow runs the full render, archive, history, and
// re-render cycle through the command layer.
func TestRenderArchiveWorkflow(t *testing.T) {
	// Note: Not using t.Parallel() because history captures os.Stdout.
	skipIfShort(t)

	tmpDir := t.TempDir()
	analysisPath := writeAnalysisFile(t, tmpDir)
	archiveDir := filepath.Join(tmpDir, "archive")
	configPath := writeConfigFile(t, tmpDir, "archiveDir: "+archiveDir+"\n")

	// Render and archive the analysis.
	reportPath := filepath.Join(tmpDir, "report.html")
	cmd := NewRenderCmd()
	cmd.SetArgs([]string{
		"--config", configPath,
		"--archive", "--case-id", "flock-7",
		"-o", reportPath,
		analysisPath,
	})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if _, err := os.Stat(reportPath); err != nil {
		t.Fatalf("expected report file: %v", err)
	}
	t.Logf("rendered %s", reportPath)

	// The history lists the archived record.
	histCmd := NewHistoryCmd()
	histCmd.SetArgs([]string{"--config", configPath})

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := histCmd.Execute()

	w.Close()
	os.Stdout = oldStdout

	if err != nil {
		t.Fatalf("history failed: %v", err)
	}

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()

	if !strings.Contains(output, "Archived analyses (1)") {
		t.Errorf("expected 1 archived record, got: %s", output)
	}
	if !strings.Contains(output, "flock-7") {
		t.Errorf("expected case identifier, got: %s", output)
	}

	// Re-rendering the record reproduces the document byte for byte.
	rerenderPath := filepath.Join(tmpDir, "rerender.html")
	cmd = NewRenderCmd()
	cmd.SetArgs([]string{
		"--config", configPath,
		"--archive-id", "1",
		"-o", rerenderPath,
	})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("re-render failed: %v", err)
	}

	original, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	rerendered, err := os.ReadFile(rerenderPath)
	if err != nil {
		t.Fatalf("failed to read re-render: %v", err)
	}
	if !bytes.Equal(original, rerendered) {
		t.Error("expected re-rendered document to match the original")
	}
}

// TestGenerateWorkflow generates documents for several analyses through the
// command layer with the configuration file supplying the output directory.
func TestGenerateWorkflow(t *testing.T) {
	// Note: Not using t.Parallel() because generate writes to os.Stdout.
	skipIfShort(t)

	tmpDir := t.TempDir()
	first := writeAnalysisFile(t, tmpDir)
	second := writeSecondAnalysis(t, tmpDir)
	outputDir := filepath.Join(tmpDir, "reports")
	configPath := writeConfigFile(t, tmpDir, "outputDir: "+outputDir+"\nencodeDelay: 0\n")

	cmd := NewGenerateCmd()
	cmd.SetArgs([]string{"--config", configPath, "--language", "en", first, second})

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := cmd.Execute()

	w.Close()
	os.Stdout = oldStdout

	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()

	if !strings.Contains(output, "Generated 2 of 2") {
		t.Errorf("expected summary for 2 documents, got: %s", output)
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatalf("failed to read output dir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(entries))
	}
	for _, e := range entries {
		t.Logf("generated %s", e.Name())
		if !strings.HasPrefix(e.Name(), "diagnosis-report-") {
			t.Errorf("expected English filename prefix, got %q", e.Name())
		}
	}
}

// TestRootCommandWorkflow drives a subcommand through the root command the
// way the binary does.
func TestRootCommandWorkflow(t *testing.T) {
	skipIfShort(t)

	tmpDir := t.TempDir()
	analysisPath := writeAnalysisFile(t, tmpDir)
	reportPath := filepath.Join(tmpDir, "report.html")

	root := NewRootCmd()
	root.SetArgs([]string{"render", "--verbose", "-o", reportPath, analysisPath})

	if err := root.Execute(); err != nil {
		t.Fatalf("root render failed: %v", err)
	}

	content, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if !strings.Contains(string(content), "<!DOCTYPE html>") {
		t.Error("expected an HTML document")
	}
}

// TestPrintWorkflow opens the print view through the command layer with a
// viewer that exists on any Unix host.
func TestPrintWorkflow(t *testing.T) {
	skipIfShort(t)
	if runtime.GOOS == "windows" {
		t.Skip("skipping viewer test on Windows")
	}

	analysisPath := writeAnalysisFile(t, t.TempDir())

	cmd := NewPrintCmd()
	cmd.SetArgs([]string{"--viewer", "true", "--language", "en", analysisPath})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("print failed: %v", err)
	}
}
