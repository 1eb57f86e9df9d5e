package acquirer

import (
	"github.com/nguyentantai21042004/transcribe-pipeline/internal/logger"
)

type implAcquirer struct {
	downloader Downloader
	opts       map[string]any
	logger     logger.Logger
}

// New creates an Acquirer that downloads through d using the downloader_args opts.
func New(d Downloader, opts map[string]any, log logger.Logger) Acquirer {
	return &implAcquirer{
		downloader: d,
		opts:       opts,
		logger:     log,
	}
}
