package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/transcribe-pipeline/internal/acquirer"
	"github.com/nguyentantai21042004/transcribe-pipeline/internal/report"
	"github.com/nguyentantai21042004/transcribe-pipeline/internal/workspace"
)

// Run acquires the input, places it in its workspace, transcribes it and,
// unless skipped, summarizes the transcript. A failed summary is reported
// through logs and notifications but does not fail the run.
func (p *implPipeline) Run(ctx context.Context, job Job) (report.Report, error) {
	startTime := time.Now()
	states := newTracker(p.logger)
	if err := states.transition(ctx, StateConfigured); err != nil {
		return report.Report{}, err
	}

	p.logger.Info(ctx, "Starting pipeline: %s", job.Input)

	// Step 1: Acquire
	audioPath, displayName, cleanup, err := p.acquire(ctx, job.Input)
	defer cleanup()
	if err != nil {
		return report.Report{}, &StageError{Stage: StageAcquire, Err: err}
	}
	if err := states.transition(ctx, StateAcquired); err != nil {
		return report.Report{}, err
	}

	// Step 2: Place into workspace
	ws, audioPath, err := p.place(ctx, audioPath, displayName)
	if err != nil {
		p.logger.Error(ctx, "Workspace setup failed: %v", err)
		p.notify(ctx, "Pipeline Failed", err.Error())
		return report.Report{}, &StageError{Stage: StagePlace, Err: err}
	}
	cleanup()
	if err := states.transition(ctx, StatePlaced); err != nil {
		return report.Report{}, err
	}

	// Step 3: Transcribe
	transcriptPath, _, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		if interrupted(ctx, err) {
			return report.Report{}, &StageError{Stage: StageTranscribe, Err: err}
		}
		p.logger.Error(ctx, "Transcription failed: %v", err)
		p.notify(ctx, "Transcription Failed", err.Error())
		return report.Report{}, &StageError{Stage: StageTranscribe, Err: err}
	}
	if err := states.transition(ctx, StateTranscribed); err != nil {
		return report.Report{}, err
	}

	rep := report.Report{
		Workspace:  ws.Dir,
		Audio:      audioPath,
		Transcript: transcriptPath,
	}

	// Step 4: Summarize
	next, err := p.summarize(ctx, job, ws, transcriptPath, displayName, &rep)
	if err != nil {
		return report.Report{}, err
	}
	if err := states.transition(ctx, next); err != nil {
		return report.Report{}, err
	}
	if err := states.transition(ctx, StateDone); err != nil {
		return report.Report{}, err
	}

	p.logger.Info(ctx, "Pipeline finished in %s", time.Since(startTime).Round(time.Millisecond))
	return rep, nil
}

// acquire resolves the input to a local file. For URLs the file lands in a
// scratch directory that the returned cleanup removes; cleanup is always safe to call.
func (p *implPipeline) acquire(ctx context.Context, input string) (string, string, func(), error) {
	noop := func() {}

	if !acquirer.IsURL(input) {
		path, name, err := p.acquirer.Acquire(ctx, input, "")
		if err != nil {
			if errors.Is(err, acquirer.ErrNotFound) {
				p.logger.Error(ctx, "File not found: %v", err)
				p.notify(ctx, "File Not Found", err.Error())
			} else {
				p.logger.Error(ctx, "Cannot read input: %v", err)
				p.notify(ctx, "Acquisition Failed", err.Error())
			}
			return "", "", noop, err
		}
		return path, name, noop, nil
	}

	tmp, err := os.MkdirTemp(p.opts.TempDir, "transcribe-")
	if err != nil {
		err = fmt.Errorf("create download dir: %w", err)
		p.logger.Error(ctx, "Download failed: %v", err)
		p.notify(ctx, "Download Failed", err.Error())
		return "", "", noop, err
	}
	cleanup := func() {
		if err := os.RemoveAll(tmp); err != nil {
			p.logger.Warn(ctx, "Failed to remove temp dir %s: %v", tmp, err)
		}
	}

	path, name, err := p.acquirer.Acquire(ctx, input, tmp)
	if err != nil {
		if interrupted(ctx, err) {
			return "", "", cleanup, err
		}
		p.logger.Error(ctx, "Download failed: %v", err)
		p.notify(ctx, "Download Failed", err.Error())
		return "", "", cleanup, err
	}
	return path, name, cleanup, nil
}

// place moves the audio into <output>/<slug>/ unless it is already there.
func (p *implPipeline) place(ctx context.Context, audioPath, displayName string) (workspace.Workspace, string, error) {
	ws, err := workspace.Prepare(ctx, p.logger, p.opts.OutputDirectory, displayName)
	if err != nil {
		return ws, "", err
	}

	if ws.Contains(audioPath) {
		p.logger.Debug(ctx, "Audio already in workspace: %s", audioPath)
		return ws, audioPath, nil
	}

	placed, err := ws.Adopt(audioPath)
	if err != nil {
		return ws, "", err
	}
	p.logger.Info(ctx, "Moved %s into %s", filepath.Base(placed), ws.Dir)
	return ws, placed, nil
}

// summarize returns the state the run ends the summary step in. Only
// cancellation is returned as an error.
func (p *implPipeline) summarize(ctx context.Context, job Job, ws workspace.Workspace, transcriptPath, displayName string, rep *report.Report) (State, error) {
	if job.NoSummary {
		p.logger.Info(ctx, "Skipping summary generation.")
		p.notify(ctx, "Transcription Complete", "Transcribed "+displayName)
		return StateSummarySkipped, nil
	}

	summaryPath := ws.SummaryPath()
	if err := p.summarizer.Summarize(ctx, transcriptPath, summaryPath, p.opts.SummarizeModel); err != nil {
		if interrupted(ctx, err) {
			return "", &StageError{Stage: StageSummarize, Err: err}
		}
		p.logger.Error(ctx, "Summarization failed: %v", err)
		p.notify(ctx, "Summarization Failed", err.Error())
		return StateSummaryFailed, nil
	}

	rep.Summary = summaryPath
	p.notify(ctx, "Pipeline Complete", "Processed "+displayName)
	return StateSummarized, nil
}

// interrupted reports whether err comes from cancellation rather than a stage failure.
func interrupted(ctx context.Context, err error) bool {
	return errors.Is(err, context.Canceled) || ctx.Err() != nil
}

func (p *implPipeline) notify(ctx context.Context, title, message string) {
	if err := p.notifier.Notify(ctx, title, message); err != nil {
		p.logger.Warn(ctx, "Notification failed: %v", err)
	}
}
