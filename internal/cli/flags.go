package cli

import (
	"errors"
	"strings"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0
	// ExitError indicates a failed operation, including a password mismatch.
	ExitError = 1
	// ExitInvalidInput indicates invalid user input.
	ExitInvalidInput = 2
)

var (
	// ErrInvalidInput marks errors caused by bad flags or arguments.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPasswordMismatch is returned by "password check" when the password
	// does not match the stored hash.
	ErrPasswordMismatch = errors.New("password does not match")
)

// ExitCodeForError returns ExitSuccess for nil, ExitInvalidInput for user
// input errors and ExitError for everything else.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrInvalidInput) || isInvalidInputError(err.Error()) {
		return ExitInvalidInput
	}
	return ExitError
}

// isInvalidInputError catches cobra errors that bypass the flag error func.
func isInvalidInputError(errMsg string) bool {
	invalidInputPatterns := []string{
		"unknown command",
		"if any flags in the group",
		"required flag",
		"accepts ",
		"requires at least",
		"requires at most",
		"invalid argument",
	}
	for _, pattern := range invalidInputPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}
	return false
}
