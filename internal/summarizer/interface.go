package summarizer

import "context"

// Summarizer turns a transcript file into a Markdown outline written to outputPath.
type Summarizer interface {
	Summarize(ctx context.Context, transcriptPath, outputPath, model string) error
}

// JSONPoster posts a JSON body and decodes the JSON reply into out.
type JSONPoster interface {
	PostJSON(ctx context.Context, url string, body any, out any) error
}
