package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/transcribe-pipeline/pkg/httpclient"
)

// response is the verbose_json reply. Segments stay raw so fields this
// package does not know about are written back unchanged.
type response struct {
	Text     string            `json:"text"`
	Segments []json.RawMessage `json:"segments"`
}

func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (string, string, error) {
	wav := wavPath(audioPath)
	if err := t.transcode(ctx, audioPath, wav); err != nil {
		removeIntermediate(wav, audioPath)
		return "", "", err
	}
	defer removeIntermediate(wav, audioPath)

	t.logger.Info(ctx, "Uploading to transcription service: %s", t.serviceURL)
	result, err := t.upload(ctx, wav)
	if err != nil {
		return "", "", err
	}

	base := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))
	txtPath := base + ".txt"
	jsonPath := base + "_timestamps.json"

	if err := os.WriteFile(txtPath, []byte(strings.TrimSpace(result.Text)), 0644); err != nil {
		return "", "", fmt.Errorf("write transcript: %w", err)
	}
	if err := writeSegments(jsonPath, result.Segments); err != nil {
		return "", "", fmt.Errorf("write timestamps: %w", err)
	}

	t.logger.Info(ctx, "Transcription saved to %s", filepath.Base(txtPath))
	return txtPath, jsonPath, nil
}

func (t *implTranscriber) upload(ctx context.Context, wav string) (response, error) {
	form := httpclient.MultipartForm{
		Fields: []httpclient.Field{
			{Name: "response_format", Value: "verbose_json"},
			{Name: "temperature", Value: "0.0"},
		},
		File: httpclient.FilePart{
			FieldName:   "file",
			FileName:    filepath.Base(wav),
			ContentType: "audio/wav",
			Path:        wav,
		},
	}

	var result response
	if err := t.uploader.PostMultipart(ctx, t.serviceURL, form, &result); err != nil {
		if errors.Is(err, context.Canceled) {
			return response{}, err
		}
		svcErr := &ServiceError{Err: err}
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) {
			svcErr.StatusCode = statusErr.StatusCode
			svcErr.Body = statusErr.Body
		}
		return response{}, svcErr
	}
	if result.Segments == nil {
		result.Segments = []json.RawMessage{}
	}
	return result, nil
}

func writeSegments(path string, segments []json.RawMessage) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(segments); err != nil {
		return err
	}
	return os.WriteFile(path, bytes.TrimRight(buf.Bytes(), "\n"), 0644)
}

func removeIntermediate(wav, input string) {
	if filepath.Clean(wav) == filepath.Clean(input) {
		return
	}
	_ = os.Remove(wav)
}
