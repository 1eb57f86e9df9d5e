package workspace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/transcribe-pipeline/internal/logger"
)

// Workspace is the per-input output directory <base>/<slug>.
type Workspace struct {
	Dir  string
	Slug string
}

// Prepare creates (or reuses) the workspace for displayName under baseDir.
// Reuse is not an error: files from a previous run may be overwritten.
func Prepare(ctx context.Context, log logger.Logger, baseDir, displayName string) (Workspace, error) {
	slug := Slug(displayName)
	dir := filepath.Join(baseDir, slug)

	ws := Workspace{Dir: dir, Slug: slug}

	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		log.Warn(ctx, "Directory '%s' already exists. Merging/Overwriting.", slug)
		return ws, nil
	case err == nil:
		return ws, fmt.Errorf("workspace %s exists and is not a directory", dir)
	case !errors.Is(err, os.ErrNotExist):
		return ws, fmt.Errorf("stat workspace: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return ws, fmt.Errorf("create workspace %s: %w", dir, err)
	}
	log.Info(ctx, "Created workspace: %s", dir)
	return ws, nil
}

// Contains reports whether path sits directly inside the workspace directory.
func (w Workspace) Contains(path string) bool {
	absDir, err := filepath.Abs(w.Dir)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return filepath.Dir(absPath) == absDir
}

// Path joins name onto the workspace directory.
func (w Workspace) Path(name string) string {
	return filepath.Join(w.Dir, name)
}

// SummaryPath is where the Markdown summary for this workspace is written.
func (w Workspace) SummaryPath() string {
	return w.Path(w.Slug + "_summary.md")
}

// Adopt moves src into the workspace keeping its base name and returns the new path.
func (w Workspace) Adopt(src string) (string, error) {
	dst := w.Path(filepath.Base(src))
	if err := moveFile(src, dst); err != nil {
		return "", fmt.Errorf("move %s into workspace: %w", filepath.Base(src), err)
	}
	return dst, nil
}

// moveFile renames src to dst, falling back to copy+remove across filesystems.
func moveFile(src, dst string) error {
	renameErr := os.Rename(src, dst)
	if renameErr == nil {
		return nil
	}
	if err := copyFile(src, dst); err != nil {
		_ = os.Remove(dst)
		return renameErr
	}
	return os.Remove(src)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
