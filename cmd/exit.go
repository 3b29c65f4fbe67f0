package cmd

import (
	"errors"
	"fmt"

	"github.com/AhmedKhchai/vue-i18n-audit/internal/domain"
	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

// Process exit codes.
const (
	exitOK                = 0
	exitThresholdExceeded = 1
	exitInvalidArgs       = 2
	exitFileError         = 3
)

var errThresholdExceeded = errors.New("issue count exceeds threshold")

// exitError carries the process exit code of a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func invalidArgs(err error) error {
	return &exitError{code: exitInvalidArgs, err: err}
}

// workflowError classifies an error returned by the workflow.
func workflowError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrInvalidConfig) {
		return &exitError{code: exitInvalidArgs, err: err}
	}

	return &exitError{code: exitFileError, err: err}
}

// exitCodeFor maps a command error to a process exit code. Errors raised by
// cobra itself (unknown flags, wrong argument counts) are usage errors.
func exitCodeFor(err error) int {
	if err == nil {
		return exitOK
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	return exitInvalidArgs
}

func errUnsupportedReportFormat(format m.ReportFormat) error {
	return fmt.Errorf("reports cannot be written as %s", format)
}
