package summarizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/transcribe-pipeline/pkg/executor"
	"github.com/nguyentantai21042004/transcribe-pipeline/pkg/httpclient"
)

// SystemPrompt instructs the model to produce a structured Markdown outline.
const SystemPrompt = `You are an expert technical writer and analyst. Your task is to generate a comprehensive, structured Markdown outline based on the following transcript.

Follow these strict guidelines:
1. **Structure**: Use hierarchical headings (H1 for title, H2 for main topics, H3 for subtopics) to reflect the logical flow.
2. **Detail**: Go beyond high-level summaries. Capture specific facts, decisions, technical specifications, and key arguments.
3. **Clarity**: Use bullet points for readability. Bold key terms and entities.
4. **Action Items**: Explicitly list any action items, next steps, or open questions at the end.
5. **Context**: Preserving the context of the discussion is crucial. Do not over-generalize.
6. **Format**: Return ONLY the Markdown content. Do not include conversational filler like 'Here is the outline'.`

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Summarize reads transcriptPath, asks the selected backend for an outline and
// writes the reply verbatim to outputPath. Nothing is written on failure.
func (s *implSummarizer) Summarize(ctx context.Context, transcriptPath, outputPath, model string) error {
	content, err := os.ReadFile(transcriptPath)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}
	transcript := string(content)

	strategy := SelectStrategy(model, s.opts.Backend)
	s.logger.Info(ctx, "Summarizing %s using %s (%s)...", filepath.Base(transcriptPath), model, strategy)

	var summary string
	switch strategy {
	case StrategyCLI:
		summary, err = s.runCLI(ctx, transcript)
	case StrategyGeminiAPI:
		summary, err = s.callGemini(ctx, model, transcript)
	default:
		summary, err = s.callHTTP(ctx, model, transcript)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(summary), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	s.logger.Info(ctx, "Summary saved to %s", filepath.Base(outputPath))

	if s.opts.Docx {
		docxPath := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".docx"
		title := strings.TrimSuffix(filepath.Base(transcriptPath), filepath.Ext(transcriptPath))
		if err := markdownToDocx(title, summary, docxPath); err != nil {
			s.logger.Warn(ctx, "Failed to write %s: %v", filepath.Base(docxPath), err)
		} else {
			s.logger.Info(ctx, "Summary document saved to %s", filepath.Base(docxPath))
		}
	}
	return nil
}

// runCLI pipes the transcript to the external tool and returns its stdout.
func (s *implSummarizer) runCLI(ctx context.Context, transcript string) (string, error) {
	tool := s.opts.CLITool
	if _, err := s.executor.LookPath(tool); err != nil {
		return "", fmt.Errorf("%w: the '%s' CLI tool is required but not found in PATH", ErrToolNotFound, tool)
	}

	res, err := s.executor.Run(ctx, executor.Command{
		Name:  tool,
		Args:  []string{"-p", SystemPrompt},
		Stdin: transcript,
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		s.logger.Error(ctx, "%s CLI failed: %s", tool, strings.TrimSpace(res.Stderr))
		return "", &ToolError{Tool: tool, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return res.Stdout, nil
}

func (s *implSummarizer) callHTTP(ctx context.Context, model, transcript string) (string, error) {
	req := generateRequest{
		Model:  model,
		Prompt: SystemPrompt + "\n\nTranscript:\n" + transcript,
		Stream: false,
	}

	var resp generateResponse
	if err := s.poster.PostJSON(ctx, s.opts.ServiceURL, req, &resp); err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		svcErr := &ServiceError{Err: err}
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) {
			svcErr.StatusCode = statusErr.StatusCode
			svcErr.Body = statusErr.Body
		}
		return "", svcErr
	}
	return resp.Response, nil
}

// callGemini sends the transcript to the Gemini API.
func (s *implSummarizer) callGemini(ctx context.Context, model, transcript string) (string, error) {
	if s.opts.APIKey == "" {
		return "", &ServiceError{Err: errors.New("gemini_api_key is not set")}
	}
	if strings.EqualFold(model, CLISentinel) {
		model = defaultGeminiModel
	}

	prompt := SystemPrompt + "\n\nTranscript:\n" + transcript
	text, err := s.generate(ctx, s.opts.APIKey, model, prompt)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		return "", &ServiceError{Err: err}
	}
	return text, nil
}

func geminiGenerate(ctx context.Context, apiKey, model, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		return text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}
