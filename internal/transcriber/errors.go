package transcriber

import (
	"errors"
	"fmt"
)

var (
	ErrTranscode            = errors.New("transcode failed")
	ErrTranscriptionService = errors.New("transcription service failed")
)

// TranscodeError is returned when the transcoder exits non-zero or cannot start.
type TranscodeError struct {
	Input string
	Err   error
}

func (e *TranscodeError) Error() string {
	return fmt.Sprintf("transcode %s: %v", e.Input, e.Err)
}

func (e *TranscodeError) Unwrap() error { return e.Err }

func (e *TranscodeError) Is(target error) bool { return target == ErrTranscode }

// ServiceError is returned when the speech-to-text service is unreachable,
// answers non-2xx or sends a reply that is not JSON. StatusCode is 0 when no
// response was received.
type ServiceError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transcription service returned %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("transcription service: %v", e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

func (e *ServiceError) Is(target error) bool { return target == ErrTranscriptionService }
