package acquirer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Partial download suffixes left behind by the engine are never candidates.
var partialSuffixes = []string{".part", ".ytdl", ".temp"}

func (a *implAcquirer) Acquire(ctx context.Context, input, destDir string) (string, string, error) {
	if IsURL(input) {
		return a.download(ctx, input, destDir)
	}
	return a.resolveLocal(input)
}

func (a *implAcquirer) download(ctx context.Context, url, destDir string) (string, string, error) {
	a.logger.Info(ctx, "Downloading audio from: %s", url)

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", "", &AcquisitionError{URL: url, Err: fmt.Errorf("create download dir: %w", err)}
	}

	expected, err := a.downloader.Download(ctx, url, destDir, a.opts)
	if err != nil {
		return "", "", &AcquisitionError{URL: url, Err: err}
	}

	path, err := findDownloaded(destDir, expected)
	if err != nil {
		return "", "", &AcquisitionError{URL: url, Err: err}
	}

	a.logger.Info(ctx, "Download complete: %s", filepath.Base(path))
	return path, filepath.Base(path), nil
}

func (a *implAcquirer) resolveLocal(input string) (string, string, error) {
	abs, err := filepath.Abs(input)
	if err != nil {
		return "", "", fmt.Errorf("resolve %s: %w", input, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", "", fmt.Errorf("%w: %s", ErrNotFound, abs)
		}
		return "", "", fmt.Errorf("stat %s: %w", abs, err)
	}
	if info.IsDir() {
		return "", "", fmt.Errorf("%w: %s is a directory", ErrNotFound, abs)
	}

	return abs, filepath.Base(abs), nil
}

type candidate struct {
	path    string
	modTime time.Time
}

// findDownloaded picks the newest file in dir named "<stem of expected>.<ext>".
// Post-processing may change the extension, so the expected name itself may be gone.
func findDownloaded(dir, expected string) (string, error) {
	base := filepath.Base(strings.TrimSpace(expected))
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." {
		return "", fmt.Errorf("%w: engine reported no file name", ErrNoCandidate)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read download dir: %w", err)
	}

	var candidates []candidate
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), stem+".") || isPartial(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		candidates = append(candidates, candidate{
			path:    filepath.Join(dir, e.Name()),
			modTime: info.ModTime(),
		})
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: no file matching %s.* in %s", ErrNoCandidate, stem, dir)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].modTime.After(candidates[j].modTime)
	})
	return candidates[0].path, nil
}

func isPartial(name string) bool {
	for _, s := range partialSuffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}
