package host

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// locatorScheme prefixes every artifact locator. The scheme makes locators
// self-describing in logs while keeping them opaque to callers.
const locatorScheme = "artifact://"

// Blob is a stored document payload with its media type.
type Blob struct {
	Payload     []byte
	ContentType string
}

// ArtifactStore holds generated document payloads behind opaque one-time
// locators, mirroring how a browser parks a download behind an object URL
// until the user-facing save completes.
//
// Design decision: Payloads are copied on Put so the store owns its bytes.
// A caller reusing or mutating its buffer after Put cannot corrupt a pending
// download.
type ArtifactStore struct {
	mu    sync.Mutex
	blobs map[string]Blob
}

// NewArtifactStore returns an empty store.
func NewArtifactStore() *ArtifactStore {
	return &ArtifactStore{blobs: make(map[string]Blob)}
}

// Put stores a payload and returns its locator. The locator is valid for
// exactly one Take.
func (s *ArtifactStore) Put(payload []byte, contentType string) string {
	copied := make([]byte, len(payload))
	copy(copied, payload)

	locator := locatorScheme + uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[locator] = Blob{Payload: copied, ContentType: contentType}
	return locator
}

// Take removes and returns the blob behind a locator. A second Take of the
// same locator fails with ErrLocatorNotFound.
func (s *ArtifactStore) Take(locator string) (Blob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, ok := s.blobs[locator]
	if !ok {
		return Blob{}, fmt.Errorf("%w: %s", ErrLocatorNotFound, locator)
	}
	delete(s.blobs, locator)
	return blob, nil
}

// Revoke releases the blob behind a locator if it is still present. Revoking
// an unknown or already consumed locator is a no-op, so callers can defer it
// as a cleanup backstop.
func (s *ArtifactStore) Revoke(locator string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, locator)
}

// Len returns the number of stored blobs.
func (s *ArtifactStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blobs)
}
