package main

import (
	"errors"
	"fmt"
)

// Exit codes.
const (
	exitSuccess      = 0 // all expressions evaluated
	exitFailure      = 1 // an expression failed to evaluate
	exitCommandError = 2 // bad configuration, unusable journal, etc.
)

// exitError is an error with a specific exit code.
type exitError struct {
	code    int
	message string
	err     error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.message, e.err)
	}
	return e.message
}

func (e *exitError) Unwrap() error {
	return e.err
}

func wrapExitError(code int, message string, err error) *exitError {
	return &exitError{code: code, message: message, err: err}
}

// exitCode extracts the exit code from an error.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	return exitCommandError
}
