package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/transcribe-pipeline/internal/logger"
)

// Resolver locates and applies the optional override file.
type Resolver struct {
	paths  []string
	logger logger.Logger
}

// NewResolver looks in the working directory, then in ~/.config/transcribe.
func NewResolver(log logger.Logger) *Resolver {
	return NewResolverWithPaths(log, DefaultPaths()...)
}

// NewResolverWithPaths checks paths in order; the first that exists wins.
func NewResolverWithPaths(log logger.Logger, paths ...string) *Resolver {
	return &Resolver{
		paths:  paths,
		logger: log,
	}
}

// DefaultPaths returns the well-known override locations in lookup order.
func DefaultPaths() []string {
	paths := []string{FileName}
	if cwd, err := os.Getwd(); err == nil {
		paths[0] = filepath.Join(cwd, FileName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "transcribe", FileName))
	}
	return paths
}

// override mirrors Config with pointer fields so absent keys can be told apart
// from zero values.
type override struct {
	WhisperURL           *string        `json:"whisper_url"`
	OllamaURL            *string        `json:"ollama_url"`
	SummarizeModel       *string        `json:"summarize_model"`
	OutputDirectory      *string        `json:"output_directory"`
	DownloaderArgs       map[string]any `json:"downloader_args"`
	TranscoderCommand    *string        `json:"transcoder_command"`
	DownloaderCommand    *string        `json:"downloader_command"`
	SummarizeCLI         *string        `json:"summarize_cli"`
	SummarizeBackend     *string        `json:"summarize_backend"`
	GeminiAPIKey         *string        `json:"gemini_api_key"`
	SummaryDocx          *bool          `json:"summary_docx"`
	NtfyURL              *string        `json:"ntfy_url"`
	DesktopNotifications *bool          `json:"desktop_notifications"`
	LogFile              *string        `json:"log_file"`
	LogFormat            *string        `json:"log_format"`
}

// Resolve returns the defaults merged key-wise with the first override file found.
// A missing file yields the defaults; an unreadable or malformed one is logged and ignored.
func (r *Resolver) Resolve(ctx context.Context) Config {
	cfg := Default()

	path, ok := r.locate()
	if !ok {
		r.logger.Debug(ctx, "No %s found, using defaults", FileName)
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		r.logger.Warn(ctx, "Failed to read config file %s: %v. Using defaults.", path, err)
		return cfg
	}

	var ov override
	if err := json.Unmarshal(data, &ov); err != nil {
		r.logger.Warn(ctx, "Failed to parse config file %s: %v. Using defaults.", path, err)
		return cfg
	}

	ov.apply(&cfg)
	r.logger.Info(ctx, "Loaded configuration from %s", path)
	return cfg
}

func (r *Resolver) locate() (string, bool) {
	for _, p := range r.paths {
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			return p, true
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			// Present but not stat-able still counts as found; ReadFile reports it.
			return p, true
		}
	}
	return "", false
}

func (o override) apply(cfg *Config) {
	setString(&cfg.WhisperURL, o.WhisperURL)
	setString(&cfg.OllamaURL, o.OllamaURL)
	setString(&cfg.SummarizeModel, o.SummarizeModel)
	setString(&cfg.OutputDirectory, o.OutputDirectory)
	if o.DownloaderArgs != nil {
		cfg.DownloaderArgs = o.DownloaderArgs
	}
	setString(&cfg.TranscoderCommand, o.TranscoderCommand)
	setString(&cfg.DownloaderCommand, o.DownloaderCommand)
	setString(&cfg.SummarizeCLI, o.SummarizeCLI)
	setString(&cfg.SummarizeBackend, o.SummarizeBackend)
	setString(&cfg.GeminiAPIKey, o.GeminiAPIKey)
	setBool(&cfg.SummaryDocx, o.SummaryDocx)
	setString(&cfg.NtfyURL, o.NtfyURL)
	setBool(&cfg.DesktopNotifications, o.DesktopNotifications)
	setString(&cfg.LogFile, o.LogFile)
	setString(&cfg.LogFormat, o.LogFormat)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// ApplyEnv fills secrets that are absent from the file from the environment.
func (c *Config) ApplyEnv() {
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
}

// String summarises the endpoints for startup logging.
func (c Config) String() string {
	return fmt.Sprintf("whisper=%s ollama=%s model=%s output=%s", c.WhisperURL, c.OllamaURL, c.SummarizeModel, c.OutputDirectory)
}
