package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Config struct {
	WhisperURL      string         `json:"whisper_url" yaml:"whisper_url"`
	OllamaURL       string         `json:"ollama_url" yaml:"ollama_url"`
	SummarizeModel  string         `json:"summarize_model" yaml:"summarize_model"`
	OutputDirectory string         `json:"output_directory" yaml:"output_directory"`
	DownloaderArgs  map[string]any `json:"downloader_args" yaml:"downloader_args"`

	TranscoderCommand    string `json:"transcoder_command" yaml:"transcoder_command"`
	DownloaderCommand    string `json:"downloader_command" yaml:"downloader_command"`
	SummarizeCLI         string `json:"summarize_cli" yaml:"summarize_cli"`
	SummarizeBackend     string `json:"summarize_backend" yaml:"summarize_backend"`
	GeminiAPIKey         string `json:"gemini_api_key" yaml:"gemini_api_key"`
	SummaryDocx          bool   `json:"summary_docx" yaml:"summary_docx"`
	NtfyURL              string `json:"ntfy_url" yaml:"ntfy_url"`
	DesktopNotifications bool   `json:"desktop_notifications" yaml:"desktop_notifications"`
	LogFile              string `json:"log_file" yaml:"log_file"`
	LogFormat            string `json:"log_format" yaml:"log_format"`
}

// Summarize backends accepted by summarize_backend. Empty selects by model name.
const (
	BackendAuto      = ""
	BackendOllama    = "ollama"
	BackendGeminiCLI = "gemini-cli"
	BackendGeminiAPI = "gemini-api"
)

// Validate checks required endpoints and fills empty helper commands with defaults.
func (c *Config) Validate() error {
	if err := validateEndpoint("whisper_url", c.WhisperURL); err != nil {
		return err
	}
	if err := validateEndpoint("ollama_url", c.OllamaURL); err != nil {
		return err
	}
	if strings.TrimSpace(c.SummarizeModel) == "" {
		return fmt.Errorf("summarize_model is required")
	}

	switch strings.ToLower(strings.TrimSpace(c.SummarizeBackend)) {
	case BackendAuto, BackendOllama, BackendGeminiCLI, BackendGeminiAPI:
	default:
		return fmt.Errorf("summarize_backend: unsupported value %q", c.SummarizeBackend)
	}

	defaults := Default()
	if strings.TrimSpace(c.OutputDirectory) == "" {
		c.OutputDirectory = defaults.OutputDirectory
	}
	if c.DownloaderArgs == nil {
		c.DownloaderArgs = defaults.DownloaderArgs
	}
	if strings.TrimSpace(c.TranscoderCommand) == "" {
		c.TranscoderCommand = defaults.TranscoderCommand
	}
	if strings.TrimSpace(c.DownloaderCommand) == "" {
		c.DownloaderCommand = defaults.DownloaderCommand
	}
	if strings.TrimSpace(c.SummarizeCLI) == "" {
		c.SummarizeCLI = defaults.SummarizeCLI
	}
	if strings.TrimSpace(c.LogFormat) == "" {
		c.LogFormat = defaults.LogFormat
	}

	return nil
}

func validateEndpoint(key, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%s is required", key)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s: scheme must be http or https, got %q", key, raw)
	}
	return nil
}

// WithVerboseDownloader returns a copy whose downloader arguments request verbose output.
func (c Config) WithVerboseDownloader() Config {
	args := cloneMap(c.DownloaderArgs)
	if args == nil {
		args = map[string]any{}
	}
	args["quiet"] = false
	args["no_warnings"] = false
	args["verbose"] = true
	c.DownloaderArgs = args
	return c
}

// Clone returns a deep copy so callers never share the downloader argument tree.
func (c Config) Clone() Config {
	c.DownloaderArgs = cloneMap(c.DownloaderArgs)
	return c
}

func cloneMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		return cloneMap(typed)
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
