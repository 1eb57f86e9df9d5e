package notifier

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/transcribe-pipeline/internal/logger"
	"github.com/nguyentantai21042004/transcribe-pipeline/pkg/executor"
)

type fakeExecutor struct {
	lookPathErr error
	execErr     error
	calls       [][]string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return "", f.execErr
}

func (f *fakeExecutor) Run(ctx context.Context, cmd executor.Command) (executor.Result, error) {
	_, err := f.Execute(ctx, cmd.Name, cmd.Args...)
	return executor.Result{}, err
}

func (f *fakeExecutor) LookPath(name string) (string, error) {
	if f.lookPathErr != nil {
		return "", f.lookPathErr
	}
	return "/usr/bin/" + name, nil
}

type recordingNotifier struct {
	err    error
	titles []string
}

func (r *recordingNotifier) Notify(ctx context.Context, title, message string) error {
	r.titles = append(r.titles, title)
	return r.err
}

func TestDesktopLinuxUsesNotifySend(t *testing.T) {
	exec := &fakeExecutor{}
	d := &desktop{exec: exec, goos: "linux"}

	require.NoError(t, d.Notify(context.Background(), "Pipeline Complete", "Processed talk.mp3"))
	require.Len(t, exec.calls, 1)
	assert.Equal(t, []string{
		"notify-send",
		"--app-name=Transcribe Pipeline",
		"--expire-time=5000",
		"Pipeline Complete",
		"Processed talk.mp3",
	}, exec.calls[0])
}

func TestDesktopDarwinEscapesAppleScript(t *testing.T) {
	name, args, err := desktopCommand("darwin", "Download Failed", `bad "quote"`)
	require.NoError(t, err)
	assert.Equal(t, "osascript", name)
	assert.Contains(t, args[1], `display notification "bad \"quote\""`)
}

func TestDesktopUnsupportedPlatform(t *testing.T) {
	d := &desktop{exec: &fakeExecutor{}, goos: "plan9"}
	assert.Error(t, d.Notify(context.Background(), "t", "m"))
}

func TestDesktopMissingCommand(t *testing.T) {
	exec := &fakeExecutor{lookPathErr: errors.New("not found")}
	d := &desktop{exec: exec, goos: "linux"}

	assert.Error(t, d.Notify(context.Background(), "t", "m"))
	assert.Empty(t, exec.calls)
}

func TestNtfyPublishesTitleAndBody(t *testing.T) {
	var title, priority, body string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		title = r.Header.Get("Title")
		priority = r.Header.Get("Priority")
		data, _ := io.ReadAll(r.Body)
		body = string(data)
	}))
	defer server.Close()

	n := NewNtfy(server.URL, server.Client())
	require.NoError(t, n.Notify(context.Background(), "Transcription Failed", "http 500"))

	assert.Equal(t, "Transcription Failed", title)
	assert.Equal(t, "high", priority)
	assert.Equal(t, "http 500", body)
}

func TestNtfyReportsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	err := NewNtfy(server.URL, server.Client()).Notify(context.Background(), "t", "m")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestMultiDeliversToAllAndJoinsErrors(t *testing.T) {
	first := &recordingNotifier{err: errors.New("first down")}
	second := &recordingNotifier{}

	err := Multi(first, second).Notify(context.Background(), "Pipeline Complete", "done")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first down")
	assert.Equal(t, []string{"Pipeline Complete"}, second.titles)
}

func TestBestEffortSwallowsAndLogs(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.NewWithOptions(logger.Options{Level: "info", Output: &buf})
	require.NoError(t, err)

	n := BestEffort(&recordingNotifier{err: errors.New("dbus unavailable")}, log)
	assert.NoError(t, n.Notify(context.Background(), "t", "m"))
	assert.Contains(t, buf.String(), "Notification failed: dbus unavailable")
}
