package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FM-Hayajneh/FM.Hayajneh/internal/archive"
	"github.com/FM-Hayajneh/FM.Hayajneh/internal/config"
	"github.com/FM-Hayajneh/FM.Hayajneh/internal/host"
	"github.com/FM-Hayajneh/FM.Hayajneh/internal/model"
	"github.com/FM-Hayajneh/FM.Hayajneh/internal/report"
	"github.com/spf13/cobra"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [analysis-file...]",
		Short: "Generate downloadable report documents",
		Long: `Generate encodes analyses into report documents and saves them under
locale-aware filenames.

Each input produces one document named after the suspected disease and the
generation date, for example:

  diagnosis-report-Newcastle Disease-2026-01-15.pdf

Inputs are processed concurrently up to the batch size. The encoder
simulates the latency of the real encoding pipeline, and each document
holds an exclusive generation slot: a second generation of the same
document fails fast instead of queueing.

Examples:
  # Generate one report into ./reports (Arabic by default)
  vetreport generate analysis.json

  # Generate English reports for several analyses
  vetreport generate --language en --output-dir /srv/reports case1.json case2.json

  # Skip the simulated encoder latency in scripts
  vetreport generate --encode-delay 0 analysis.json

  # Archive every input while generating
  vetreport generate --archive --case-id flock-7 case1.json case2.json`,
		Args: cobra.ArbitraryArgs,
		RunE: runGenerateCmd,
	}

	cmd.Flags().StringP("language", "l", config.DefaultLanguage,
		"Report language: ar or en")
	cmd.Flags().StringP("output-dir", "o", config.DefaultOutputDir,
		"Directory where generated documents are saved")
	cmd.Flags().DurationP("encode-delay", "e", config.DefaultEncodeDelay,
		"Simulated document encoding latency (0 disables it)")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent generations")
	cmd.Flags().BoolP("archive", "a", false,
		"Record each input analysis in the local archive")
	cmd.Flags().String("case-id", "",
		"Case identifier used when archiving (e.g. a flock tag)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .vetreport.yml in current or home directory)")

	return cmd
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildGenerateConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(getVerboseFlag(cmd))
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runGenerate(ctx, cfg, logger)
}

// buildGenerateConfig creates a Config from generate command flags.
// Flags override configuration file values only when set on the command line.
func buildGenerateConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
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
	if cmd.Flags().Changed("output-dir") {
		if cfg.OutputDir, err = cmd.Flags().GetString("output-dir"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("encode-delay") {
		if cfg.EncodeDelay, err = cmd.Flags().GetDuration("encode-delay"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("batch") {
		if cfg.BatchSize, err = cmd.Flags().GetInt("batch"); err != nil {
			return nil, err
		}
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

// runGenerate loads every input, generates the documents concurrently, and
// saves each one through its one-time locator.
func runGenerate(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	lang, err := model.ParseLanguage(cfg.Language)
	if err != nil {
		return err
	}

	// Load all inputs up front so a bad file fails the run before any
	// document is generated.
	jobs := make([]report.BatchJob, 0, len(cfg.Inputs))
	for _, path := range cfg.Inputs {
		result, err := loadAnalysisFile(path)
		if err != nil {
			return err
		}
		jobs = append(jobs, report.BatchJob{Result: result, Language: lang})
	}

	// Open the archive once if inputs are recorded
	var arc *archive.Archive
	if cfg.SaveToArchive {
		arc, err = archive.Open(cfg.ArchiveDir, archive.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		defer arc.Close()
		logger.Info("archive opened", "dir", cfg.ArchiveDir)
	}

	logger.Info("starting generation",
		"inputs", len(jobs),
		"language", lang.String(),
		"batchSize", cfg.BatchSize,
		"outputDir", cfg.OutputDir,
	)

	// Every renderer shares one artifact store so the download step below
	// can redeem the locators the generation step issued.
	store := host.NewArtifactStore()
	saver := &host.FileSaver{Dir: cfg.OutputDir}

	factory := func() *report.Renderer {
		return report.NewRenderer(
			report.WithEncoder(&report.SimulatedEncoder{Delay: cfg.EncodeDelay}),
			report.WithArtifactStore(store),
			report.WithSaver(saver),
			report.WithLogger(logger),
		)
	}

	generator := report.NewBatchGenerator(factory,
		report.WithConcurrency(cfg.BatchSize),
		report.WithBatchLogger(logger),
	)

	fmt.Printf("Generating %d report(s) (concurrency: %d)...\n\n", len(jobs), cfg.BatchSize)
	startTime := time.Now()

	outcomes, err := generator.GenerateAll(ctx, jobs)
	if err != nil {
		return fmt.Errorf("generation cancelled: %w", err)
	}

	// Each artifact is redeemed through its one-time locator and saved
	// under its locale-aware filename.
	downloader := report.NewRenderer(
		report.WithArtifactStore(store),
		report.WithSaver(saver),
		report.WithLogger(logger),
	)

	failures := 0
	for i, outcome := range outcomes {
		if outcome.Err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "Generation error for %s: %v\n", cfg.Inputs[i], outcome.Err)
			continue
		}

		if err := downloader.Download(ctx, outcome.Artifact); err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "Download error for %s: %v\n", cfg.Inputs[i], err)
			continue
		}

		fmt.Printf("[%d/%d] %s\n", i+1, len(outcomes), outcome.Artifact.Filename)

		if arc != nil {
			if id, err := arc.SaveAnalysis(ctx, cfg.CaseID, lang, outcome.Job.Result); err != nil {
				logger.Error("failed to archive analysis", "input", cfg.Inputs[i], "error", err)
			} else {
				logger.Info("analysis archived", "id", id, "case", cfg.CaseID)
			}
		}
	}

	elapsed := time.Since(startTime)
	fmt.Printf("\nGenerated %d of %d report(s) in %s\n",
		len(outcomes)-failures, len(outcomes), elapsed.Round(time.Millisecond))
	fmt.Printf("Saved to %s\n", cfg.OutputDir)

	if failures > 0 {
		return fmt.Errorf("%d of %d report(s) failed", failures, len(outcomes))
	}
	return nil
}
