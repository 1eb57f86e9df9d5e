package pipeline

import (
	"github.com/nguyentantai21042004/transcribe-pipeline/internal/acquirer"
	"github.com/nguyentantai21042004/transcribe-pipeline/internal/logger"
	"github.com/nguyentantai21042004/transcribe-pipeline/internal/notifier"
	"github.com/nguyentantai21042004/transcribe-pipeline/internal/summarizer"
	"github.com/nguyentantai21042004/transcribe-pipeline/internal/transcriber"
)

// Options holds the per-run settings taken from the resolved configuration.
type Options struct {
	OutputDirectory string
	SummarizeModel  string
	// TempDir is where download scratch directories are created. Empty uses os.TempDir.
	TempDir string
}

type implPipeline struct {
	opts        Options
	acquirer    acquirer.Acquirer
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	notifier    notifier.Notifier
	logger      logger.Logger
}

// New creates a Pipeline from its stage components.
func New(
	opts Options,
	acq acquirer.Acquirer,
	tr transcriber.Transcriber,
	sum summarizer.Summarizer,
	notify notifier.Notifier,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		opts:        opts,
		acquirer:    acq,
		transcriber: tr,
		summarizer:  sum,
		notifier:    notify,
		logger:      log,
	}
}
