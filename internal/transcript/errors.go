package transcript

import (
	"errors"
	"fmt"
)

// ErrNoCaptions means the player response carried no caption tracks for the
// video: captions disabled, video unavailable, or region-locked.
var ErrNoCaptions = errors.New("no caption tracks available for this video")

// ErrEmptyTranscript means the caption document was fetched but yielded no
// fragments.
var ErrEmptyTranscript = errors.New("no transcript fragments could be extracted")

// ExtractionError reports scraped content that did not contain an expected
// pattern. It marks the video or the upstream markup as unusable input
// rather than a transport fault.
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string { return e.Reason }

func extractionErrorf(format string, args ...any) *ExtractionError {
	return &ExtractionError{Reason: fmt.Sprintf(format, args...)}
}
