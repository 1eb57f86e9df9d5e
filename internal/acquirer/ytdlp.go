package acquirer

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/transcribe-pipeline/internal/logger"
	"github.com/nguyentantai21042004/transcribe-pipeline/pkg/executor"
)

const defaultOutputTemplate = "%(title)s.%(ext)s"

// Options understood by buildDownloadArgs; everything else is logged and skipped.
var knownOptions = map[string]bool{
	"format":         true,
	"postprocessors": true,
	"outtmpl":        true,
	"quiet":          true,
	"no_warnings":    true,
	"verbose":        true,
	"cookiefile":     true,
	"proxy":          true,
}

type ytdlp struct {
	command  string
	executor executor.Executor
	logger   logger.Logger
}

// NewYTDLP returns a Downloader that shells out to yt-dlp.
func NewYTDLP(command string, exec executor.Executor, log logger.Logger) Downloader {
	if command == "" {
		command = "yt-dlp"
	}
	return &ytdlp{command: command, executor: exec, logger: log}
}

func (y *ytdlp) Download(ctx context.Context, url, destDir string, opts map[string]any) (string, error) {
	args := buildDownloadArgs(opts, destDir, url)
	if _, flattened := outputTemplate(opts, destDir); flattened {
		y.logger.Debug(ctx, "Dropping directories from outtmpl %q: downloads are written directly into %s", stringOpt(opts, "outtmpl"), destDir)
	}
	if unknown := unknownOptions(opts); len(unknown) > 0 {
		y.logger.Debug(ctx, "Ignoring unsupported downloader options: %s", strings.Join(unknown, ", "))
	}
	y.logger.Debug(ctx, "%s %s", y.command, strings.Join(args, " "))

	res, err := y.executor.Run(ctx, executor.Command{
		Name: y.command,
		Args: args,
		Dir:  destDir,
	})
	if stderr := strings.TrimSpace(res.Stderr); stderr != "" {
		y.logger.Debug(ctx, "%s stderr: %s", y.command, stderr)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", y.command, err)
	}

	name := lastLine(res.Stdout)
	if name == "" {
		return "", fmt.Errorf("%s: no file name reported", y.command)
	}
	return name, nil
}

// buildDownloadArgs maps downloader_args onto yt-dlp flags. The output template
// is always rewritten under destDir.
func buildDownloadArgs(opts map[string]any, destDir, url string) []string {
	args := []string{"--no-playlist", "--no-progress"}

	if format := stringOpt(opts, "format"); format != "" {
		args = append(args, "-f", format)
	}
	args = append(args, postprocessorArgs(opts["postprocessors"])...)

	tmpl, _ := outputTemplate(opts, destDir)
	args = append(args, "-o", tmpl)

	if v := stringOpt(opts, "cookiefile"); v != "" {
		args = append(args, "--cookies", v)
	}
	if v := stringOpt(opts, "proxy"); v != "" {
		args = append(args, "--proxy", v)
	}
	if boolOpt(opts, "quiet") {
		args = append(args, "--quiet")
	}
	if boolOpt(opts, "no_warnings") {
		args = append(args, "--no-warnings")
	}
	if boolOpt(opts, "verbose") {
		args = append(args, "--verbose")
	}

	// Print the prepared file name while still downloading.
	args = append(args, "--no-simulate", "--print", "filename", "--", url)
	return args
}

// outputTemplate places the configured outtmpl directly under destDir, where the
// downloaded file is looked up. flattened reports whether directory segments were dropped.
func outputTemplate(opts map[string]any, destDir string) (tmpl string, flattened bool) {
	raw := stringOpt(opts, "outtmpl")
	if raw == "" {
		raw = defaultOutputTemplate
	}
	base := filepath.Base(filepath.Clean(raw))
	return filepath.Join(destDir, base), base != raw
}

func postprocessorArgs(raw any) []string {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	var args []string
	for _, item := range list {
		pp, ok := item.(map[string]any)
		if !ok || stringOpt(pp, "key") != "FFmpegExtractAudio" {
			continue
		}
		args = append(args, "-x")
		if codec := stringOpt(pp, "preferredcodec"); codec != "" {
			args = append(args, "--audio-format", codec)
		}
		if quality := stringOpt(pp, "preferredquality"); quality != "" {
			args = append(args, "--audio-quality", quality)
		}
	}
	return args
}

func unknownOptions(opts map[string]any) []string {
	var unknown []string
	for k := range opts {
		if !knownOptions[k] {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func stringOpt(opts map[string]any, key string) string {
	v, ok := opts[key]
	if !ok || v == nil {
		return ""
	}
	switch typed := v.(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%f", typed), "0"), ".")
	default:
		return fmt.Sprint(typed)
	}
}

func boolOpt(opts map[string]any, key string) bool {
	v, _ := opts[key].(bool)
	return v
}

func lastLine(out string) string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
