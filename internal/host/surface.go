package host

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// PrintSurface is an opened host view that can display a rendered document
// and hand it to the host's print pipeline.
type PrintSurface interface {
	// Present loads the document into the surface.
	Present(ctx context.Context, doc string) error

	// Print triggers printing of the presented document.
	Print(ctx context.Context) error

	// Close releases the surface.
	Close() error
}

// SurfaceOpener opens print surfaces. Opening fails with *UnavailableError
// when the host has no way to display documents.
type SurfaceOpener interface {
	OpenSurface(ctx context.Context) (PrintSurface, error)
}

// CommandOpener opens documents with an external viewer command, typically
// a browser launcher such as xdg-open. The viewer owns the actual print
// dialog; Print hands it the presented document.
type CommandOpener struct {
	// Command is the viewer executable. Empty means the capability is
	// unavailable on this host.
	Command string

	// Args are placed before the document path on the command line.
	Args []string

	// Dir is where presented documents are written. Empty means the
	// system temp directory.
	Dir string
}

// OpenSurface resolves the viewer command and returns a surface backed by it.
func (o *CommandOpener) OpenSurface(_ context.Context) (PrintSurface, error) {
	if o.Command == "" {
		return nil, &UnavailableError{
			Capability: CapabilityPrint,
			Err:        errors.New("no viewer command configured"),
		}
	}
	path, err := exec.LookPath(o.Command)
	if err != nil {
		return nil, &UnavailableError{Capability: CapabilityPrint, Err: err}
	}
	return &commandSurface{command: path, args: o.Args, dir: o.Dir}, nil
}

// commandSurface writes the presented document to a file and launches the
// viewer command on it.
type commandSurface struct {
	command string
	args    []string
	dir     string
	docPath string
}

// Present writes the document to a temp file the viewer can read.
func (s *commandSurface) Present(ctx context.Context, doc string) error {
	if err := ctx.Err(); err != nil {
		return &UnavailableError{Capability: CapabilityPrint, Err: err}
	}

	f, err := os.CreateTemp(s.dir, "report-*.html")
	if err != nil {
		return &UnavailableError{Capability: CapabilityPrint, Err: err}
	}
	if _, err := f.WriteString(doc); err != nil {
		_ = f.Close()
		return &UnavailableError{Capability: CapabilityPrint, Err: err}
	}
	if err := f.Close(); err != nil {
		return &UnavailableError{Capability: CapabilityPrint, Err: err}
	}
	s.docPath = f.Name()
	return nil
}

// Print launches the viewer on the presented document.
func (s *commandSurface) Print(ctx context.Context) error {
	if s.docPath == "" {
		return &UnavailableError{
			Capability: CapabilityPrint,
			Err:        errors.New("no document presented"),
		}
	}

	args := append(append([]string{}, s.args...), s.docPath)
	cmd := exec.CommandContext(ctx, s.command, args...)
	if err := cmd.Run(); err != nil {
		return &UnavailableError{
			Capability: CapabilityPrint,
			Err:        fmt.Errorf("%s: %w", s.command, err),
		}
	}
	return nil
}

// Close keeps the presented file in place: the viewer reads it
// asynchronously after the launcher command returns.
func (s *commandSurface) Close() error {
	return nil
}

// MemoryOpener hands out in-memory surfaces for tests and headless hosts.
type MemoryOpener struct {
	// Err, when set, makes OpenSurface fail with it.
	Err error

	// LastSurface is the most recently opened surface.
	LastSurface *MemorySurface
}

// OpenSurface returns a fresh MemorySurface.
func (o *MemoryOpener) OpenSurface(_ context.Context) (PrintSurface, error) {
	if o.Err != nil {
		return nil, o.Err
	}
	s := &MemorySurface{}
	o.LastSurface = s
	return s, nil
}

// MemorySurface records what was presented and how often printing was
// triggered.
type MemorySurface struct {
	// PresentErr and PrintErr, when set, fail the corresponding call.
	PresentErr error
	PrintErr   error

	doc    string
	prints int
	closed bool
}

// Present records the document.
func (s *MemorySurface) Present(_ context.Context, doc string) error {
	if s.PresentErr != nil {
		return s.PresentErr
	}
	s.doc = doc
	return nil
}

// Print counts the print trigger.
func (s *MemorySurface) Print(_ context.Context) error {
	if s.PrintErr != nil {
		return s.PrintErr
	}
	s.prints++
	return nil
}

// Close marks the surface closed.
func (s *MemorySurface) Close() error {
	s.closed = true
	return nil
}

// Document returns the presented document.
func (s *MemorySurface) Document() string {
	return s.doc
}

// Prints returns how many times printing was triggered.
func (s *MemorySurface) Prints() int {
	return s.prints
}

// Closed reports whether the surface was closed.
func (s *MemorySurface) Closed() bool {
	return s.closed
}
