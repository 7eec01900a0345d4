package host

import (
	"errors"
	"fmt"
)

// Capability names reported by UnavailableError.
const (
	// CapabilitySave is the save-as capability used for downloads.
	CapabilitySave = "save"

	// CapabilityPrint is the print view capability.
	CapabilityPrint = "print"
)

var (
	// ErrLocatorNotFound is returned when an artifact locator is unknown or
	// was already consumed. Locators are valid for exactly one retrieval.
	ErrLocatorNotFound = errors.New("artifact locator not found or already consumed")
)

// UnavailableError reports that a host capability could not be used. It is
// returned instead of silently skipping the requested action so callers can
// tell the user what failed.
type UnavailableError struct {
	// Capability is one of the Capability* constants.
	Capability string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("host capability %q unavailable", e.Capability)
	}
	return fmt.Sprintf("host capability %q unavailable: %v", e.Capability, e.Err)
}

// Unwrap returns the underlying cause.
func (e *UnavailableError) Unwrap() error {
	return e.Err
}
