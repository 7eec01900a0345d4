package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/FM-Hayajneh/FM.Hayajneh/internal/archive"
	"github.com/FM-Hayajneh/FM.Hayajneh/internal/config"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command.
// It lists the analysis inputs recorded in the local archive.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived analyses",
		Long: `History lists the analysis records stored in the local archive.

The archive stores analysis inputs, not generated documents: any record can
be re-rendered at any time with 'vetreport render --archive-id'.

Examples:
  # List all archived analyses, newest first
  vetreport history

  # Full history for one flock
  vetreport history --case flock-7

  # Only the three most recent records
  vetreport history --limit 3

  # List the case identifiers present in the archive
  vetreport history --list-cases`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().StringP("case", "C", "",
		"Only list records for this case identifier")
	cmd.Flags().IntP("limit", "n", 0,
		"Maximum number of records to list (0 lists all)")
	cmd.Flags().BoolP("list-cases", "L", false,
		"List the case identifiers present in the archive")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .vetreport.yml in current or home directory)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	cfg := config.NewConfig()
	if err := applyConfigFile(cmd, cfg); err != nil {
		return err
	}

	logger := setupLogger(getVerboseFlag(cmd))
	slog.SetDefault(logger)

	listCases, err := cmd.Flags().GetBool("list-cases")
	if err != nil {
		return err
	}
	caseID, err := cmd.Flags().GetString("case")
	if err != nil {
		return err
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	// Reading never creates an archive; a missing one is reported as such.
	arc, err := archive.Open(cfg.ArchiveDir, archive.Options{EnableWAL: true})
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer arc.Close()

	ctx := context.Background()

	if listCases {
		return listArchiveCases(ctx, arc)
	}
	return listArchiveHistory(ctx, arc, caseID, limit)
}

// listArchiveCases lists every case identifier present in the archive.
func listArchiveCases(ctx context.Context, arc *archive.Archive) error {
	cases, err := arc.Cases(ctx)
	if err != nil {
		return fmt.Errorf("failed to list cases: %w", err)
	}

	if len(cases) == 0 {
		fmt.Println("No archived analyses found.")
		fmt.Println("\nUse 'vetreport render --archive <file>' to record one.")
		return nil
	}

	fmt.Printf("Archived cases (%d):\n\n", len(cases))
	for _, c := range cases {
		fmt.Printf("  • %s\n", displayCase(c))
	}
	fmt.Println("\nUse 'vetreport history --case <id>' to see the records for a case.")

	return nil
}

// listArchiveHistory lists archived analyses, newest first.
func listArchiveHistory(ctx context.Context, arc *archive.Archive, caseID string, limit int) error {
	summaries, err := arc.History(ctx, caseID, limit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(summaries) == 0 {
		if caseID != "" {
			fmt.Printf("No archived analyses found for case %s\n", caseID)
		} else {
			fmt.Println("No archived analyses found.")
		}
		fmt.Println("\nUse 'vetreport render --archive <file>' to record one.")
		return nil
	}

	fmt.Printf("Archived analyses (%d):\n\n", len(summaries))
	fmt.Printf("  %-6s  %-20s  %-12s  %-4s  %-10s  %s\n",
		"ID", "Date", "Case", "Lang", "Confidence", "Disease")
	fmt.Println("  " + strings.Repeat("-", 70))

	for _, s := range summaries {
		fmt.Printf("  %-6d  %-20s  %-12s  %-4s  %-10s  %s\n",
			s.ID,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
			displayCase(s.CaseID),
			s.Language.String(),
			formatConfidence(s.OverallConfidence),
			s.DiseaseNames.GetOr(s.Language, "-"),
		)
	}

	fmt.Println("\nUse 'vetreport render --archive-id <id>' to re-render a record.")

	return nil
}

// displayCase substitutes a placeholder for records archived without a case
// identifier.
func displayCase(caseID string) string {
	if caseID == "" {
		return "(none)"
	}
	return caseID
}

// formatConfidence renders a percent value without trailing zeros, so 87
// reads "87%" and 92.5 reads "92.5%".
func formatConfidence(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
