package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLoginFieldsNotFound means the mandatory password field never became
// visible within its bound. Terminal for the session, recoverable for the
// run.
var ErrLoginFieldsNotFound = errors.New("password field never became visible")

// ConfigurationError aggregates every missing or invalid setting detected
// before any browser resource is acquired.
type ConfigurationError struct {
	Problems []string
}

func (e *ConfigurationError) Error() string {
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}

// FormatError reports a date or amount string that does not match the shape
// the portal is expected to render. Local to one candidate transaction: the
// candidate is skipped and extraction continues.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed value %q: %s", e.Input, e.Reason)
}

// AccountNotFoundError means the account locator was absent from the
// dashboard even after the accounts-listing fallback retry. Snippet carries
// a bounded slice of the visible page text for diagnostics.
type AccountNotFoundError struct {
	Locator string
	Snippet string
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("account %q not found on dashboard", e.Locator)
}
