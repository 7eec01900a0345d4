package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/FM-Hayajneh/FM.Hayajneh/internal/config"
	"github.com/FM-Hayajneh/FM.Hayajneh/internal/host"
	"github.com/FM-Hayajneh/FM.Hayajneh/internal/report"
	"github.com/spf13/cobra"
)

// NewPrintCmd creates the print command.
func NewPrintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print [analysis-file]",
		Short: "Open an analysis report in the host print view",
		Long: `Print renders the printable document and hands it to the host's viewer
so its print dialog can take over.

The document is written to a temporary file and opened with the configured
viewer command (xdg-open by default). When the host has no usable viewer,
the command fails with a capability error instead of silently doing
nothing.

Examples:
  # Open the Arabic print view
  vetreport print analysis.json

  # English print view through a specific browser
  vetreport print --language en --viewer firefox analysis.json

  # Print an archived analysis
  vetreport print --archive-id 12`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPrintCmd,
	}

	cmd.Flags().StringP("language", "l", config.DefaultLanguage,
		"Report language: ar or en")
	cmd.Flags().Int64P("archive-id", "i", 0,
		"Print the archived analysis with this ID instead of a file")
	cmd.Flags().String("viewer", "",
		"Viewer command used to open the print view (default from configuration)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .vetreport.yml in current or home directory)")

	return cmd
}

// runPrintCmd executes the print command.
func runPrintCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildPrintConfig(cmd, args)
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

	opener := &host.CommandOpener{Command: cfg.OpenCommand}
	renderer := report.NewRenderer(
		report.WithSurfaceOpener(opener),
		report.WithLogger(logger),
	)

	if err := renderer.OpenPrintView(ctx, result, lang); err != nil {
		return err
	}

	fmt.Printf("Print view opened with %s\n", cfg.OpenCommand)
	return nil
}

// buildPrintConfig creates a Config from print command flags.
// Flags override configuration file values only when set on the command line.
func buildPrintConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
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
	if cmd.Flags().Changed("viewer") {
		if cfg.OpenCommand, err = cmd.Flags().GetString("viewer"); err != nil {
			return nil, err
		}
	}
	if cfg.ArchiveID, err = cmd.Flags().GetInt64("archive-id"); err != nil {
		return nil, err
	}

	cfg.Inputs = args

	return cfg, nil
}
