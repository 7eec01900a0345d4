package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/FM-Hayajneh/FM.Hayajneh/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/vetreport.yaml
var configTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new vetreport configuration file",
		Long: `Initialize creates a new .vetreport.yml configuration file in the current
directory.

The generated file includes:
- Default settings for language, batch size, and output directory
- Commented examples for every available option
- The viewer command and archive location

Examples:
  # Create .vetreport.yml in current directory
  vetreport init

  # Create config file at a specific path
  vetreport init -o myconfig.yml

  # Force overwrite existing file
  vetreport init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	// Check if file already exists
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	// Read template from embedded filesystem
	content, err := configTemplate.ReadFile("templates/vetreport.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// Write configuration file
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Printf("Created configuration file: %s\n", outputPath)
	fmt.Println("\nEdit this file to configure settings such as:")
	fmt.Println("  - Report language (ar or en)")
	fmt.Println("  - Output directory for generated documents")
	fmt.Println("  - Viewer command for the print view")

	return nil
}
