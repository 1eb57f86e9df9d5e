package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nguyentantai21042004/transcribe-pipeline/internal/logger"
	"github.com/nguyentantai21042004/transcribe-pipeline/internal/summarizer"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestResolveWithoutOverrideReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	r := NewResolverWithPaths(logger.NewNop(),
		filepath.Join(dir, "cwd", FileName),
		filepath.Join(dir, "home", FileName),
	)

	assert.Equal(t, Default(), r.Resolve(context.Background()))
}

func TestResolveMergesPerKey(t *testing.T) {
	dir := t.TempDir()
	cwdPath := filepath.Join(dir, "cwd", FileName)
	writeFile(t, cwdPath, `{"output_directory": "custom_output/", "summarize_model": "llama3"}`)

	cfg := NewResolverWithPaths(logger.NewNop(), cwdPath).Resolve(context.Background())
	want := Default()

	assert.Equal(t, "custom_output/", cfg.OutputDirectory)
	assert.Equal(t, "llama3", cfg.SummarizeModel)
	assert.Equal(t, want.WhisperURL, cfg.WhisperURL)
	assert.Equal(t, want.OllamaURL, cfg.OllamaURL)
	assert.Equal(t, want.DownloaderArgs, cfg.DownloaderArgs)
}

func TestResolveFallsBackToHomeLocation(t *testing.T) {
	dir := t.TempDir()
	cwdPath := filepath.Join(dir, "cwd", FileName)
	homePath := filepath.Join(dir, "home", ".config", "transcribe", FileName)
	writeFile(t, homePath, `{"output_directory": "fallback_output/"}`)

	cfg := NewResolverWithPaths(logger.NewNop(), cwdPath, homePath).Resolve(context.Background())
	assert.Equal(t, "fallback_output/", cfg.OutputDirectory)
}

func TestResolveFirstLocationWins(t *testing.T) {
	dir := t.TempDir()
	cwdPath := filepath.Join(dir, "cwd", FileName)
	homePath := filepath.Join(dir, "home", FileName)
	writeFile(t, cwdPath, `{"summarize_model": "from-cwd"}`)
	writeFile(t, homePath, `{"summarize_model": "from-home", "output_directory": "home_out/"}`)

	cfg := NewResolverWithPaths(logger.NewNop(), cwdPath, homePath).Resolve(context.Background())
	assert.Equal(t, "from-cwd", cfg.SummarizeModel)
	assert.Equal(t, Default().OutputDirectory, cfg.OutputDirectory)
}

func TestResolveMalformedFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	cwdPath := filepath.Join(dir, FileName)
	homePath := filepath.Join(dir, "home", FileName)
	writeFile(t, cwdPath, `{not-json`)
	writeFile(t, homePath, `{"summarize_model": "ignored"}`)

	cfg := NewResolverWithPaths(logger.NewNop(), cwdPath, homePath).Resolve(context.Background())
	assert.Equal(t, Default(), cfg)
}

func TestResolveReplacesDownloaderArgsWholesale(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	writeFile(t, path, `{"downloader_args": {"format": "worstaudio"}}`)

	cfg := NewResolverWithPaths(logger.NewNop(), path).Resolve(context.Background())
	assert.Equal(t, map[string]any{"format": "worstaudio"}, cfg.DownloaderArgs)
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.DownloaderArgs["format"] = "mutated"

	assert.Equal(t, "bestaudio/best", Default().DownloaderArgs["format"])
}

func TestWithVerboseDownloaderDoesNotMutateReceiver(t *testing.T) {
	base := Default()
	verbose := base.WithVerboseDownloader()

	assert.Equal(t, false, verbose.DownloaderArgs["quiet"])
	assert.Equal(t, false, verbose.DownloaderArgs["no_warnings"])
	assert.Equal(t, true, verbose.DownloaderArgs["verbose"])
	assert.Equal(t, true, base.DownloaderArgs["quiet"])
	_, hasVerbose := base.DownloaderArgs["verbose"]
	assert.False(t, hasVerbose)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "missing whisper url", mutate: func(c *Config) { c.WhisperURL = "" }, wantErr: true},
		{name: "bad ollama scheme", mutate: func(c *Config) { c.OllamaURL = "ftp://host/api" }, wantErr: true},
		{name: "missing model", mutate: func(c *Config) { c.SummarizeModel = " " }, wantErr: true},
		{name: "unknown backend", mutate: func(c *Config) { c.SummarizeBackend = "claude" }, wantErr: true},
		{name: "gemini api backend", mutate: func(c *Config) { c.SummarizeBackend = BackendGeminiAPI }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFillsEmptyCommands(t *testing.T) {
	cfg := Default()
	cfg.TranscoderCommand = ""
	cfg.DownloaderCommand = ""
	cfg.OutputDirectory = ""

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "ffmpeg", cfg.TranscoderCommand)
	assert.Equal(t, "yt-dlp", cfg.DownloaderCommand)
	assert.Equal(t, "output/", cfg.OutputDirectory)
}

func TestDumpRedactsSecrets(t *testing.T) {
	cfg := Default()
	cfg.GeminiAPIKey = "secret-key"

	data, err := cfg.Dump()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret-key")

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "qwen2.5", decoded["summarize_model"])
	assert.Equal(t, redacted, decoded["gemini_api_key"])
}

func TestDefaultSummarizeCLIMatchesSentinel(t *testing.T) {
	cfg := Default()
	assert.Equal(t, summarizer.CLISentinel, cfg.SummarizeCLI)
	assert.Equal(t, summarizer.StrategyCLI, summarizer.SelectStrategy(cfg.SummarizeCLI, cfg.SummarizeBackend))
	assert.Equal(t, summarizer.StrategyHTTP, summarizer.SelectStrategy(cfg.SummarizeModel, cfg.SummarizeBackend))
}
