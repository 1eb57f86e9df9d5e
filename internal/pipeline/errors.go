package pipeline

import "fmt"

// Stages reported by StageError.
const (
	StageAcquire    = "acquire"
	StagePlace      = "place"
	StageTranscribe = "transcribe"
	StageSummarize  = "summarize"
)

// StageError is a terminal failure of one pipeline stage.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

// Unwrap exposes the stage error for errors.Is / errors.As.
func (e *StageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
