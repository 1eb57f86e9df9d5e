package deps

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDependencyMissing is returned by Verify when a required binary is unavailable.
var ErrDependencyMissing = errors.New("dependency missing")

// Requirement defines an external binary the pipeline relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Path        string
	Detail      string
}

// LookPathFunc resolves a command on the search path.
type LookPathFunc func(string) (string, error)

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(lookPath LookPathFunc, requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		path, err := lookPath(cmd)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		status.Path = path
		results = append(results, status)
	}
	return results
}

// Verify fails with ErrDependencyMissing naming every unavailable required binary.
func Verify(lookPath LookPathFunc, requirements []Requirement) error {
	var missing []string
	for _, s := range CheckBinaries(lookPath, requirements) {
		if s.Available || s.Optional {
			continue
		}
		missing = append(missing, fmt.Sprintf("%s (%s)", s.Name, s.Detail))
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s not found in PATH", ErrDependencyMissing, strings.Join(missing, ", "))
}
