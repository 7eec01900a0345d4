package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/FM-Hayajneh/FM.Hayajneh/internal/archive"
	"github.com/FM-Hayajneh/FM.Hayajneh/internal/config"
	"github.com/FM-Hayajneh/FM.Hayajneh/internal/model"
	"github.com/FM-Hayajneh/FM.Hayajneh/internal/report"
	"github.com/spf13/cobra"
)

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [analysis-file]",
		Short: "Render an analysis as a printable report",
		Long: `Render produces a report for a single analysis result.

The default output is a self-contained printable HTML document: Arabic
reports are laid out right-to-left, English reports left-to-right, and the
print stylesheet hides the on-screen toolbar. Alternate formats are
available for terminals and toolchains.

The analysis comes from a JSON file argument or, with --archive-id, from
a record in the local archive.

Examples:
  # Render the printable document to stdout (Arabic by default)
  vetreport render analysis.json

  # Render in English to a file
  vetreport render --language en --output report.html analysis.json

  # Markdown summary for a chat or ticket
  vetreport render --markdown analysis.json

  # Plain text summary on the terminal
  vetreport render --text analysis.json

  # Re-render an archived analysis in its stored language
  vetreport render --archive-id 12

  # Record the input in the archive while rendering
  vetreport render --archive --case-id flock-7 analysis.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRenderCmd,
	}

	cmd.Flags().StringP("language", "l", config.DefaultLanguage,
		"Report language: ar or en")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown and --text)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown (mutually exclusive with --json and --text)")
	cmd.Flags().BoolP("text", "t", false,
		"Output plain text (mutually exclusive with --json and --markdown)")
	cmd.Flags().StringP("output", "o", "",
		"Write the report to the specified file path (creates directories if needed)")
	cmd.Flags().Int64P("archive-id", "i", 0,
		"Render the archived analysis with this ID instead of a file")
	cmd.Flags().BoolP("archive", "a", false,
		"Record the input analysis in the local archive")
	cmd.Flags().String("case-id", "",
		"Case identifier used when archiving (e.g. a flock tag)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .vetreport.yml in current or home directory)")

	return cmd
}

// runRenderCmd executes the render command.
func runRenderCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildRenderConfig(cmd, args)
	if err != nil {
		return err
	}

	if len(cfg.Inputs) > 0 && cfg.ArchiveID > 0 {
		return errors.New("specify an analysis file or --archive-id, not both")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(getVerboseFlag(cmd))
	slog.SetDefault(logger)

	ctx := context.Background()

	result, lang, err := resolveSingleInput(ctx, cmd, cfg)
	if err != nil {
		return err
	}

	// The JSON envelope round-trips the raw record; every other format
	// localizes, so gaps must surface before the output file is touched.
	if !cfg.JSONReport {
		if err := result.ValidateFor(lang); err != nil {
			return err
		}
	}

	if err := outputReport(cfg, result, lang); err != nil {
		return err
	}

	if cfg.SaveToArchive {
		if err := saveToArchive(ctx, cfg, lang, result, logger); err != nil {
			logger.Error("failed to archive analysis", "error", err)
		}
	}

	return nil
}

// buildRenderConfig creates a Config from render command flags.
// Flags override configuration file values only when set on the command line.
func buildRenderConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	if err := applyConfigFile(cmd, cfg); err != nil {
		return nil, err
	}

	var err error

	if cmd.Flags().Changed("language") {
		if cfg.Language, err = cmd.Flags().GetString("language"); err != nil {
			return nil, err
		}
	}

	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.TextReport, err = cmd.Flags().GetBool("text"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
		return nil, err
	}
	if cfg.ArchiveID, err = cmd.Flags().GetInt64("archive-id"); err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("archive") {
		if cfg.SaveToArchive, err = cmd.Flags().GetBool("archive"); err != nil {
			return nil, err
		}
	}
	if cfg.CaseID, err = cmd.Flags().GetString("case-id"); err != nil {
		return nil, err
	}

	cfg.Inputs = args

	return cfg, nil
}

// outputReport writes the rendered report in the requested format.
func outputReport(cfg *config.Config, result *model.AnalysisResult, lang model.Language) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Reports carry medical details, so keep them owner-readable only
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	case cfg.TextReport:
		writer = report.NewTextWriter(output)
	default:
		// Printable HTML document
		writer = report.NewHTMLWriter(output)
	}

	_, err := writer.Write(result, lang)
	return err
}

// saveToArchive records the analysis input in the local archive, creating
// the archive on first use.
func saveToArchive(ctx context.Context, cfg *config.Config, lang model.Language, result *model.AnalysisResult, logger *slog.Logger) error {
	arc, err := archive.Open(cfg.ArchiveDir, archive.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer arc.Close()

	id, err := arc.SaveAnalysis(ctx, cfg.CaseID, lang, result)
	if err != nil {
		return err
	}

	logger.Info("analysis archived", "id", id, "case", cfg.CaseID)
	return nil
}
