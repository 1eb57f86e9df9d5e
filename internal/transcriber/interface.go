package transcriber

import (
	"context"

	"github.com/nguyentantai21042004/transcribe-pipeline/pkg/httpclient"
)

// Transcriber converts an audio file into a plain-text transcript and a
// timestamped segment file, both written next to the audio.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (txtPath string, jsonPath string, err error)
}

// Uploader sends a multipart form and decodes the JSON reply into out.
type Uploader interface {
	PostMultipart(ctx context.Context, url string, form httpclient.MultipartForm, out any) error
}
