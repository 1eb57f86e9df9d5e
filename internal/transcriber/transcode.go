package transcriber

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/transcribe-pipeline/pkg/executor"
)

// wavPath is the 16 kHz intermediate for audioPath. A .wav input gets a
// "_16k" suffix so the transcoder never writes over its own input.
func wavPath(audioPath string) string {
	ext := filepath.Ext(audioPath)
	base := strings.TrimSuffix(audioPath, ext)
	if strings.EqualFold(ext, ".wav") {
		return base + "_16k.wav"
	}
	return base + ".wav"
}

// transcodeArgs resamples to 16 kHz mono, the format the speech service expects.
func transcodeArgs(in, out string) []string {
	return []string{
		"-y",
		"-i", in,
		"-ar", "16000",
		"-ac", "1",
		"-loglevel", "error",
		out,
	}
}

func (t *implTranscriber) transcode(ctx context.Context, audioPath, out string) error {
	t.logger.Info(ctx, "Converting %s to 16kHz WAV...", filepath.Base(audioPath))

	_, err := t.executor.Run(ctx, executor.Command{
		Name: t.transcoder,
		Args: transcodeArgs(audioPath, out),
	})
	if err != nil {
		return &TranscodeError{Input: audioPath, Err: err}
	}
	return nil
}
