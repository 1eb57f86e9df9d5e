package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errReported marks failures that were already logged.
var errReported = errors.New("reported")

type rootOptions struct {
	noSummary   bool
	verbose     bool
	printConfig bool
}

func newRootCommand() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           "transcribe [flags] <url-or-path>",
		Short:         "Download, transcribe and summarize audio",
		Long:          "Download (or take a local file), transcribe it through a speech-to-text server and summarize the transcript.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.printConfig && len(args) == 0 {
				_ = cmd.Usage()
				return fmt.Errorf("missing input: a URL or a path to a local audio file is required")
			}
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return execute(cmd.Context(), os.Stdout, input, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.noSummary, "no-summary", false, "Skip summary generation")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging and download progress")
	cmd.Flags().BoolVar(&opts.printConfig, "print-config", false, "Print the resolved configuration and exit")

	return cmd
}
