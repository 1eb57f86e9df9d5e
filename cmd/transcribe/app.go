package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/transcribe-pipeline/internal/acquirer"
	"github.com/nguyentantai21042004/transcribe-pipeline/internal/config"
	"github.com/nguyentantai21042004/transcribe-pipeline/internal/deps"
	"github.com/nguyentantai21042004/transcribe-pipeline/internal/logger"
	"github.com/nguyentantai21042004/transcribe-pipeline/internal/notifier"
	"github.com/nguyentantai21042004/transcribe-pipeline/internal/pipeline"
	"github.com/nguyentantai21042004/transcribe-pipeline/internal/summarizer"
	"github.com/nguyentantai21042004/transcribe-pipeline/internal/transcriber"
	"github.com/nguyentantai21042004/transcribe-pipeline/pkg/executor"
	"github.com/nguyentantai21042004/transcribe-pipeline/pkg/httpclient"
)

func execute(ctx context.Context, stdout io.Writer, input string, opts rootOptions) (err error) {
	// A missing .env is normal.
	_ = godotenv.Load()

	level := "info"
	if opts.verbose {
		level = "debug"
	}
	bootLog := logger.New(level)

	cfg := config.NewResolver(bootLog).Resolve(ctx)
	cfg.ApplyEnv()
	if opts.verbose {
		bootLog.Debug(ctx, "Verbose mode enabled.")
		cfg = cfg.WithVerboseDownloader()
	}
	if err := cfg.Validate(); err != nil {
		bootLog.Error(ctx, "Invalid configuration: %v", err)
		return errReported
	}

	if opts.printConfig {
		out, dumpErr := cfg.Dump()
		if dumpErr != nil {
			return fmt.Errorf("dump config: %w", dumpErr)
		}
		_, err = stdout.Write(out)
		return err
	}

	log, logErr := logger.NewWithOptions(logger.Options{
		Level:  level,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if logErr != nil {
		bootLog.Error(ctx, "Failed to set up logging: %v", logErr)
		return errReported
	}
	log = log.With("run_id", uuid.NewString())
	defer recoverPanic(ctx, log, &err)
	log.Info(ctx, "Loaded configuration.")
	log.Debug(ctx, "%s", cfg.String())

	exec := executor.New()
	notify := notifier.New(cfg, exec, log)

	if err := deps.Verify(exec.LookPath, requirements(cfg, input)); err != nil {
		log.Error(ctx, "%v", err)
		_ = notify.Notify(ctx, "Pipeline Failed", err.Error())
		return errReported
	}

	client := httpclient.New()
	p := pipeline.New(
		pipeline.Options{
			OutputDirectory: cfg.OutputDirectory,
			SummarizeModel:  cfg.SummarizeModel,
		},
		acquirer.New(acquirer.NewYTDLP(cfg.DownloaderCommand, exec, log), cfg.DownloaderArgs, log),
		transcriber.New(cfg.WhisperURL, cfg.TranscoderCommand, exec, client, log),
		summarizer.New(summarizer.Options{
			ServiceURL: cfg.OllamaURL,
			CLITool:    cfg.SummarizeCLI,
			Backend:    cfg.SummarizeBackend,
			APIKey:     cfg.GeminiAPIKey,
			Docx:       cfg.SummaryDocx,
		}, client, exec, log),
		notify,
		log,
	)

	rep, err := p.Run(ctx, pipeline.Job{Input: input, NoSummary: opts.noSummary})
	if err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			return context.Canceled
		}
		// Stage failures are logged by the pipeline itself.
		var stageErr *pipeline.StageError
		if !errors.As(err, &stageErr) {
			log.Error(ctx, "Pipeline failed: %v", err)
		}
		return errReported
	}

	return rep.Print(stdout)
}

// recoverPanic logs a panic with its stack through log and turns it into a
// reported failure.
func recoverPanic(ctx context.Context, log logger.Logger, err *error) {
	if r := recover(); r != nil {
		log.Error(ctx, "unexpected error: %v\n%s", r, debug.Stack())
		*err = errReported
	}
}

// requirements lists the binaries this run needs. The downloader is only
// checked for URL inputs.
func requirements(cfg config.Config, input string) []deps.Requirement {
	reqs := []deps.Requirement{{
		Name:        "transcoder",
		Command:     cfg.TranscoderCommand,
		Description: "converts audio to 16kHz mono WAV",
	}}
	if acquirer.IsURL(input) {
		reqs = append(reqs, deps.Requirement{
			Name:        "downloader",
			Command:     cfg.DownloaderCommand,
			Description: "downloads remote media",
		})
	}
	return reqs
}
