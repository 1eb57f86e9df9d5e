package acquirer

import (
	"errors"
	"fmt"
)

var (
	// ErrAcquisition marks a failed download or a download that left no file behind.
	ErrAcquisition = errors.New("acquisition failed")
	// ErrNotFound marks a local input path that does not exist.
	ErrNotFound = errors.New("input file not found")
	// ErrNoCandidate is wrapped when the download engine finished but no matching file exists.
	ErrNoCandidate = errors.New("downloaded file not found")
)

// AcquisitionError describes a failed remote acquisition.
type AcquisitionError struct {
	URL string
	Err error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrAcquisition) match every AcquisitionError.
func (e *AcquisitionError) Is(target error) bool {
	return target == ErrAcquisition
}
