package config

import "github.com/nguyentantai21042004/transcribe-pipeline/internal/summarizer"

// FileName is the override file looked up by Resolve.
const FileName = "transcribe_config.json"

// Default returns a fresh copy of the built-in configuration.
func Default() Config {
	return Config{
		WhisperURL:      "http://localhost:8080/inference",
		OllamaURL:       "http://localhost:11434/api/generate",
		SummarizeModel:  "qwen2.5",
		OutputDirectory: "output/",
		DownloaderArgs: map[string]any{
			"format": "bestaudio/best",
			"postprocessors": []any{
				map[string]any{
					"key":              "FFmpegExtractAudio",
					"preferredcodec":   "mp3",
					"preferredquality": "192",
				},
			},
			"outtmpl":     "%(title)s.%(ext)s",
			"quiet":       true,
			"no_warnings": true,
		},
		TranscoderCommand:    "ffmpeg",
		DownloaderCommand:    "yt-dlp",
		SummarizeCLI:         summarizer.CLISentinel,
		DesktopNotifications: true,
		LogFormat:            "text",
	}
}
