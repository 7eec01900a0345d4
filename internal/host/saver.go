package host

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Saver persists a generated document under its download filename. It is
// the save-as half of the download flow.
type Saver interface {
	Save(ctx context.Context, filename string, payload []byte) error
}

// FileSaver writes documents into a directory on the local file system,
// creating it on first use.
type FileSaver struct {
	// Dir is the download directory. Empty means the current directory.
	Dir string
}

// Save writes the payload to Dir/filename. The filename must be a single
// path element; anything that would escape Dir is rejected.
func (s *FileSaver) Save(ctx context.Context, filename string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return &UnavailableError{Capability: CapabilitySave, Err: err}
	}
	if filename == "" || filename != filepath.Base(filename) || filename == "." || filename == ".." {
		return &UnavailableError{
			Capability: CapabilitySave,
			Err:        fmt.Errorf("unsafe download filename %q", filename),
		}
	}

	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return &UnavailableError{Capability: CapabilitySave, Err: err}
	}

	// Documents may carry medical details, so keep them owner-readable only.
	if err := os.WriteFile(filepath.Join(dir, filename), payload, 0600); err != nil {
		return &UnavailableError{Capability: CapabilitySave, Err: err}
	}
	return nil
}

// MemorySaver collects saved documents in memory. It backs tests and
// headless environments where no download directory exists.
type MemorySaver struct {
	mu    sync.Mutex
	files map[string][]byte

	// Err, when set, makes every Save fail with it.
	Err error
}

// NewMemorySaver returns an empty in-memory saver.
func NewMemorySaver() *MemorySaver {
	return &MemorySaver{files: make(map[string][]byte)}
}

// Save records the payload under filename.
func (s *MemorySaver) Save(_ context.Context, filename string, payload []byte) error {
	if s.Err != nil {
		return s.Err
	}

	copied := make([]byte, len(payload))
	copy(copied, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[filename] = copied
	return nil
}

// File returns the payload saved under filename.
func (s *MemorySaver) File(filename string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, ok := s.files[filename]
	return payload, ok
}

// Len returns the number of saved documents.
func (s *MemorySaver) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}
