package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWithSummary(t *testing.T) {
	r := Report{
		Workspace:  "output/my-talk",
		Audio:      "output/my-talk/My Talk.mp3",
		Transcript: "output/my-talk/My Talk.txt",
		Summary:    "output/my-talk/my-talk_summary.md",
	}

	out := r.Render(false)
	assert.Contains(t, out, "SUCCESS")
	assert.Contains(t, out, "output/my-talk")
	assert.Contains(t, out, "My Talk.mp3")
	assert.Contains(t, out, "My Talk.txt")
	assert.Contains(t, out, "my-talk_summary.md")
	assert.NotContains(t, out, "output/my-talk/My Talk.mp3")
}

func TestRenderWithoutSummary(t *testing.T) {
	out := Report{Workspace: "w", Audio: "a.mp3", Transcript: "a.txt"}.Render(false)
	assert.NotContains(t, out, "Summary")
	assert.Contains(t, out, "Transcript")
}

func TestRenderStyle(t *testing.T) {
	r := Report{Workspace: "w", Audio: "a.mp3", Transcript: "a.txt"}
	assert.Contains(t, r.Render(true), "╭")
	assert.NotContains(t, r.Render(false), "╭")
	assert.True(t, strings.HasPrefix(r.Render(false), "+"))
}

func TestPrintToBufferIsPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Report{Workspace: "w", Audio: "a.mp3", Transcript: "a.txt"}.Print(&buf))
	assert.NotContains(t, buf.String(), "╭")
	assert.Contains(t, buf.String(), "SUCCESS")
}
