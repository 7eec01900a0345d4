package config

import (
	"fmt"
	"time"
)

// File represents the structure of the .vetreport.yml configuration file.
// Every field is optional; absent fields leave the built-in defaults in
// place.
type File struct {
	// Language is the default report locale code ("ar" or "en").
	Language string `yaml:"language,omitempty"`

	// EncodeDelay is the simulated encoder latency as a Go duration string,
	// e.g. "2s" or "500ms".
	EncodeDelay string `yaml:"encodeDelay,omitempty"`

	// BatchSize is the default number of concurrent generations.
	BatchSize int `yaml:"batchSize,omitempty"`

	// OutputDir is the default directory for saved documents.
	OutputDir string `yaml:"outputDir,omitempty"`

	// OpenCommand is the program used to open print views.
	OpenCommand string `yaml:"openCommand,omitempty"`

	// ArchiveDir is the directory holding the analysis archive.
	ArchiveDir string `yaml:"archiveDir,omitempty"`

	// SaveToArchive stores each processed analysis in the archive.
	SaveToArchive bool `yaml:"saveToArchive,omitempty"`
}

// ApplyTo merges the file's values into a Config. Only set fields override:
// a field left empty in the file keeps whatever the Config already holds,
// so CLI defaults and file defaults layer cleanly.
func (f *File) ApplyTo(c *Config) error {
	if f.Language != "" {
		c.Language = f.Language
	}
	if f.EncodeDelay != "" {
		delay, err := time.ParseDuration(f.EncodeDelay)
		if err != nil {
			return fmt.Errorf("invalid encodeDelay in configuration file: %w", err)
		}
		c.EncodeDelay = delay
	}
	if f.BatchSize != 0 {
		c.BatchSize = f.BatchSize
	}
	if f.OutputDir != "" {
		c.OutputDir = f.OutputDir
	}
	if f.OpenCommand != "" {
		c.OpenCommand = f.OpenCommand
	}
	if f.ArchiveDir != "" {
		c.ArchiveDir = f.ArchiveDir
	}
	if f.SaveToArchive {
		c.SaveToArchive = true
	}
	return nil
}
