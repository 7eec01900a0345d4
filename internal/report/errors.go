package report

import "errors"

var (
	// ErrGenerationInProgress is returned when Generate is called while a
	// previous generation on the same Renderer has not finished. Requests
	// are never queued; callers retry once the active generation completes.
	ErrGenerationInProgress = errors.New("report generation already in progress")

	// ErrNilResult is returned when an operation receives a nil analysis.
	ErrNilResult = errors.New("analysis result is nil")

	// ErrNilArtifact is returned when a download is requested for a nil
	// artifact.
	ErrNilArtifact = errors.New("report artifact is nil")

	// ErrEmptyPayload is returned when a document encoder produces no bytes.
	ErrEmptyPayload = errors.New("encoded report document is empty")
)
