package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// Report lists the artifacts of a successful run. Summary is empty when no
// summary was produced.
type Report struct {
	Workspace  string
	Audio      string
	Transcript string
	Summary    string
}

// Render draws the report as a table. fancy selects the rounded box style;
// otherwise plain ASCII is used.
func (r Report) Render(fancy bool) string {
	tw := table.NewWriter()
	if fancy {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}
	tw.SetTitle("SUCCESS")
	tw.Style().Title.Align = text.AlignCenter

	tw.AppendRow(table.Row{"Workspace", r.Workspace})
	tw.AppendRow(table.Row{"Audio", filepath.Base(r.Audio)})
	tw.AppendRow(table.Row{"Transcript", filepath.Base(r.Transcript)})
	if r.Summary != "" {
		tw.AppendRow(table.Row{"Summary", filepath.Base(r.Summary)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
	})
	return tw.Render()
}

// Print writes the report to w, using box drawing only on a terminal.
func (r Report) Print(w io.Writer) error {
	_, err := fmt.Fprintln(w, "\n"+r.Render(isTerminal(w)))
	return err
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
