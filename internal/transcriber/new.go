package transcriber

import (
	"github.com/nguyentantai21042004/transcribe-pipeline/internal/logger"
	"github.com/nguyentantai21042004/transcribe-pipeline/pkg/executor"
)

type implTranscriber struct {
	serviceURL string
	transcoder string
	executor   executor.Executor
	uploader   Uploader
	logger     logger.Logger
}

// New creates a Transcriber that transcodes with the transcoder binary and
// uploads to the speech-to-text service at serviceURL.
func New(serviceURL, transcoder string, exec executor.Executor, up Uploader, log logger.Logger) Transcriber {
	if transcoder == "" {
		transcoder = "ffmpeg"
	}
	return &implTranscriber{
		serviceURL: serviceURL,
		transcoder: transcoder,
		executor:   exec,
		uploader:   up,
		logger:     log,
	}
}
