package summarizer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrToolNotFound         = errors.New("summarization tool not found")
	ErrExternalTool         = errors.New("summarization tool failed")
	ErrSummarizationService = errors.New("summarization service failed")
)

// ToolError reports a non-zero exit of the external summarization tool.
type ToolError struct {
	Tool     string
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s failed with return code %d", e.Tool, e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *ToolError) Is(target error) bool { return target == ErrExternalTool }

// ServiceError reports a failed request to a summarization service.
// StatusCode is 0 when no response was received.
type ServiceError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("summarization service returned %d: %s", e.StatusCode, strings.TrimSpace(e.Body))
	}
	return fmt.Sprintf("summarization service: %v", e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

func (e *ServiceError) Is(target error) bool { return target == ErrSummarizationService }
