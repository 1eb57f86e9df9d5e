package notifier

import (
	"net/http"
	"strings"

	"github.com/nguyentantai21042004/transcribe-pipeline/internal/config"
	"github.com/nguyentantai21042004/transcribe-pipeline/internal/logger"
	"github.com/nguyentantai21042004/transcribe-pipeline/pkg/executor"
)

const appName = "Transcribe Pipeline"

// New builds the notifier chain described by cfg, wrapped so delivery failures
// are logged and never returned.
func New(cfg config.Config, exec executor.Executor, log logger.Logger) Notifier {
	var targets []Notifier
	if cfg.DesktopNotifications {
		targets = append(targets, NewDesktop(exec))
	}
	if topic := strings.TrimSpace(cfg.NtfyURL); topic != "" {
		targets = append(targets, NewNtfy(topic, &http.Client{}))
	}
	return BestEffort(Multi(targets...), log)
}
