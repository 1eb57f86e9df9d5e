package notifier

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/transcribe-pipeline/pkg/executor"
)

const expireMillis = 5000

type desktop struct {
	exec executor.Executor
	goos string
}

// NewDesktop sends notifications through the platform's notification command:
// notify-send on Linux and BSDs, osascript on macOS.
func NewDesktop(exec executor.Executor) Notifier {
	return &desktop{exec: exec, goos: runtime.GOOS}
}

func (d *desktop) Notify(ctx context.Context, title, message string) error {
	name, args, err := desktopCommand(d.goos, title, message)
	if err != nil {
		return err
	}
	if _, err := d.exec.LookPath(name); err != nil {
		return fmt.Errorf("desktop notification: %s not found: %w", name, err)
	}
	if _, err := d.exec.Execute(ctx, name, args...); err != nil {
		return fmt.Errorf("desktop notification: %w", err)
	}
	return nil
}

func desktopCommand(goos, title, message string) (string, []string, error) {
	switch goos {
	case "darwin":
		script := fmt.Sprintf("display notification %s with title %s subtitle %s",
			appleScriptString(message), appleScriptString(appName), appleScriptString(title))
		return "osascript", []string{"-e", script}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "notify-send", []string{
			"--app-name=" + appName,
			"--expire-time=" + strconv.Itoa(expireMillis),
			title,
			message,
		}, nil
	default:
		return "", nil, fmt.Errorf("desktop notification: unsupported platform %s", goos)
	}
}

func appleScriptString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
