package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/transcribe-pipeline/internal/report"
)

// Job is one invocation: a URL or local path and whether to skip the summary.
type Job struct {
	Input     string
	NoSummary bool
}

// Pipeline runs a job end to end.
type Pipeline interface {
	Run(ctx context.Context, job Job) (report.Report, error)
}
