package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/transcribe-pipeline/internal/logger"
	"github.com/nguyentantai21042004/transcribe-pipeline/pkg/executor"
)

const defaultGeminiModel = "gemini-2.5-flash"

// Options configures the backends a Summarizer may dispatch to.
type Options struct {
	// ServiceURL is the generate endpoint of the HTTP model server.
	ServiceURL string
	// CLITool is the external command run when the model name selects the CLI.
	CLITool string
	// Backend forces a strategy. Empty selects by model name.
	Backend string
	APIKey  string
	// Docx also renders the written Markdown as <name>.docx.
	Docx bool
}

type generateFunc func(ctx context.Context, apiKey, model, prompt string) (string, error)

type implSummarizer struct {
	opts     Options
	poster   JSONPoster
	executor executor.Executor
	logger   logger.Logger
	generate generateFunc
}

// New creates a Summarizer.
func New(opts Options, poster JSONPoster, exec executor.Executor, log logger.Logger) Summarizer {
	if opts.CLITool == "" {
		opts.CLITool = CLISentinel
	}
	return &implSummarizer{
		opts:     opts,
		poster:   poster,
		executor: exec,
		logger:   log,
		generate: geminiGenerate,
	}
}
