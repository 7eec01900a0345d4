package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These values mirror the behavior of the diagnosis application the report
// tooling grew out of, where applicable.
const (
	// DefaultLanguage is the report locale used when none is requested.
	// Arabic is the default because the primary user base reads Arabic;
	// English is the secondary locale.
	DefaultLanguage = "ar"

	// DefaultEncodeDelay is how long the simulated document encoder takes.
	// Two seconds matches the latency of the real encoding pipeline it
	// stands in for, which keeps progress reporting and cancellation
	// behavior realistic.
	DefaultEncodeDelay = 2 * time.Second

	// DefaultBatchSize of 4 concurrent generations balances throughput with
	// resource usage. Each generation holds a full document in memory, so
	// higher values mostly increase peak memory.
	DefaultBatchSize = 4

	// DefaultOutputDir is where generated documents are saved, relative to
	// the working directory. Users can override this via the --output-dir
	// CLI flag.
	DefaultOutputDir = "reports"

	// DefaultOpenCommand is the program used to open print views.
	// xdg-open delegates to the desktop's configured handler on Linux;
	// other platforms override this via configuration.
	DefaultOpenCommand = "xdg-open"

	// AppName is the application name used for XDG directory paths.
	AppName = "vetreport"
)

// Config holds all configuration options for the report tool.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., RenderConfig, ArchiveConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
// If the configuration grows significantly, consider refactoring into sub-structs.
type Config struct {
	// Language is the report locale code ("ar" or "en").
	// The command layer parses it into the model's language type, so the
	// config stays a plain data carrier.
	Language string

	// EncodeDelay is how long the simulated document encoder takes per
	// document. Zero disables the delay, which is useful for scripted runs.
	EncodeDelay time.Duration

	// BatchSize is the number of concurrent generations when processing
	// multiple inputs.
	BatchSize int

	// OutputDir is the directory where generated documents are saved.
	OutputDir string

	// OpenCommand is the program used to open print views. The rendered
	// document path is appended as the final argument.
	OpenCommand string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .vetreport.yml in the current
	// directory, the user's home directory, and the XDG config directory.
	ConfigFilePath string

	// JSONReport enables JSON output instead of the printable document.
	// Mutually exclusive with MarkdownReport and TextReport.
	JSONReport bool

	// MarkdownReport enables Markdown output instead of the printable
	// document. Mutually exclusive with JSONReport and TextReport.
	MarkdownReport bool

	// TextReport enables plain text output instead of the printable
	// document. Mutually exclusive with JSONReport and MarkdownReport.
	TextReport bool

	// ReportFile is the output file path for rendered reports.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// Inputs is the list of analysis files to process.
	Inputs []string

	// ArchiveDir is the directory holding the SQLite archive of analysis
	// inputs. Defaults to the XDG data directory.
	ArchiveDir string

	// SaveToArchive stores each processed analysis in the archive.
	SaveToArchive bool

	// ArchiveID selects a stored analysis as the input instead of a file.
	ArchiveID int64

	// CaseID tags archived analyses so a flock's history can be listed
	// together.
	CaseID string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (e.g., the locale and the
// encode delay). This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Language:    DefaultLanguage,
		EncodeDelay: DefaultEncodeDelay,
		BatchSize:   DefaultBatchSize,
		OutputDir:   DefaultOutputDir,
		OpenCommand: DefaultOpenCommand,
		ArchiveDir:  XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for the report tool.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/vetreport
// On macOS: ~/Library/Application Support/vetreport
// On Windows: %LOCALAPPDATA%\vetreport
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for the report tool.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/vetreport
// On macOS: ~/Library/Application Support/vetreport
// On Windows: %APPDATA%\vetreport
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for the report tool.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.cache/vetreport
// On macOS: ~/Library/Caches/vetreport
// On Windows: %LOCALAPPDATA%\vetreport\cache
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any generation begins.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// We must have something to render: files or an archived record
	if len(c.Inputs) == 0 && c.ArchiveID <= 0 {
		return ErrNoInput
	}

	// EncodeDelay must be non-negative; zero means no simulated latency
	if c.EncodeDelay < 0 {
		return ErrInvalidEncodeDelay
	}

	// BatchSize must be positive; zero would mean no generation
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	// At most one alternate output format may be selected
	formats := 0
	for _, enabled := range []bool{c.JSONReport, c.MarkdownReport, c.TextReport} {
		if enabled {
			formats++
		}
	}
	if formats > 1 {
		return ErrConflictingReportFormats
	}

	return nil
}
