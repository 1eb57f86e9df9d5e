package summarizer

import "strings"

// CLISentinel is the model name that routes summarization to the external CLI tool.
const CLISentinel = "gemini"

// Strategy identifies the summarization backend.
type Strategy int

const (
	StrategyHTTP Strategy = iota
	StrategyCLI
	StrategyGeminiAPI
)

func (s Strategy) String() string {
	switch s {
	case StrategyHTTP:
		return "http"
	case StrategyCLI:
		return "cli"
	case StrategyGeminiAPI:
		return "gemini-api"
	default:
		return "unknown"
	}
}

// SelectStrategy picks the backend. An explicit backend wins; otherwise the
// sentinel model name selects the CLI and everything else goes over HTTP.
func SelectStrategy(model, backend string) Strategy {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "gemini-api":
		return StrategyGeminiAPI
	case "gemini-cli":
		return StrategyCLI
	case "ollama":
		return StrategyHTTP
	}
	if strings.EqualFold(strings.TrimSpace(model), CLISentinel) {
		return StrategyCLI
	}
	return StrategyHTTP
}
