package pipeline

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/transcribe-pipeline/internal/logger"
)

// State is a step of a single pipeline run.
type State string

const (
	StateStart          State = "start"
	StateConfigured     State = "configured"
	StateAcquired       State = "acquired"
	StatePlaced         State = "placed"
	StateTranscribed    State = "transcribed"
	StateSummarized     State = "summarized"
	StateSummarySkipped State = "summary_skipped"
	StateSummaryFailed  State = "summary_failed"
	StateDone           State = "done"
)

var transitions = map[State][]State{
	StateStart:          {StateConfigured},
	StateConfigured:     {StateAcquired},
	StateAcquired:       {StatePlaced},
	StatePlaced:         {StateTranscribed},
	StateTranscribed:    {StateSummarized, StateSummarySkipped, StateSummaryFailed},
	StateSummarized:     {StateDone},
	StateSummarySkipped: {StateDone},
	StateSummaryFailed:  {StateDone},
}

func isValidTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// tracker moves a run forward through its states.
type tracker struct {
	current State
	logger  logger.Logger
}

func newTracker(log logger.Logger) *tracker {
	return &tracker{current: StateStart, logger: log}
}

func (t *tracker) transition(ctx context.Context, next State) error {
	if !isValidTransition(t.current, next) {
		return fmt.Errorf("invalid transition: %s -> %s", t.current, next)
	}
	t.logger.Debug(ctx, "state %s -> %s", t.current, next)
	t.current = next
	return nil
}
