package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/FM-Hayajneh/FM.Hayajneh/internal/archive"
	"github.com/FM-Hayajneh/FM.Hayajneh/internal/config"
	"github.com/FM-Hayajneh/FM.Hayajneh/internal/log"
	"github.com/FM-Hayajneh/FM.Hayajneh/internal/model"
	"github.com/spf13/cobra"
)

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger based on verbosity setting.
// Oversized attribute values are trimmed so debug output stays readable.
func setupLogger(verbose bool) *slog.Logger {
	return log.NewLogger(os.Stderr, verbose)
}

// applyConfigFile merges the configuration file into cfg.
// If the user explicitly specified a config file path, error if not found.
// If no path was specified, a missing file is fine and cfg keeps its defaults.
func applyConfigFile(cmd *cobra.Command, cfg *config.Config) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg.ConfigFilePath = path

	found := config.FindConfigFile(path)
	if found == "" {
		if path != "" {
			return fmt.Errorf("configuration file not found: %s", path)
		}
		return nil
	}

	file, err := config.LoadConfigFile(found)
	if err != nil {
		return fmt.Errorf("failed to load config file %s: %w", found, err)
	}
	return file.ApplyTo(cfg)
}

// loadAnalysisFile reads and decodes one analysis result from a JSON file.
func loadAnalysisFile(path string) (*model.AnalysisResult, error) {
	data, err := os.ReadFile(path) //nolint:gosec // the user chose the input file
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis file: %w", err)
	}

	var result model.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis file %s: %w", path, err)
	}
	return &result, nil
}

// loadArchiveRecord fetches an archived analysis by record ID. The archive
// must already exist; reading never creates one.
func loadArchiveRecord(ctx context.Context, dir string, id int64) (*archive.Record, error) {
	arc, err := archive.Open(dir, archive.Options{EnableWAL: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer arc.Close()

	rec, err := arc.Analysis(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load archived analysis: %w", err)
	}
	if rec == nil {
		return nil, fmt.Errorf("no archived analysis with id %d", id)
	}
	return rec, nil
}

// resolveSingleInput returns the analysis to render, either from the
// configured input file or from the archive.
//
// An archived record re-renders in its stored language unless --language was
// set on the command line; file inputs use the configured language.
func resolveSingleInput(ctx context.Context, cmd *cobra.Command, cfg *config.Config) (*model.AnalysisResult, model.Language, error) {
	lang, err := model.ParseLanguage(cfg.Language)
	if err != nil {
		return nil, model.DefaultLanguage, err
	}

	if cfg.ArchiveID > 0 {
		rec, err := loadArchiveRecord(ctx, cfg.ArchiveDir, cfg.ArchiveID)
		if err != nil {
			return nil, model.DefaultLanguage, err
		}
		if !cmd.Flags().Changed("language") {
			lang = rec.Language
		}
		return rec.Result, lang, nil
	}

	result, err := loadAnalysisFile(cfg.Inputs[0])
	if err != nil {
		return nil, model.DefaultLanguage, err
	}
	return result, lang, nil
}
