package commands

import (
	"fmt"
	"io"
	"strings"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// exitError wraps an error with an exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) ExitCode() int {
	return e.code
}

func (e *exitError) Unwrap() error {
	return e.err
}

func exitWithCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

// reportError writes err to w as a single "Error: ..." line.
func reportError(w io.Writer, err error) {
	msg := strings.Join(strings.FieldsFunc(err.Error(), func(r rune) bool {
		return r == '\n' || r == '\r'
	}), " ")
	fmt.Fprintf(w, "Error: %s\n", msg)
}
