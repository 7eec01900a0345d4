// Package config provides configuration structures and utilities for the
// report tool. It defines the main options for report generation, output
// formats, archive storage, and print handling, along with the YAML defaults
// file and its search order.
package config
