// Package shared provides common utility functions used across multiple
// packages in the reqpin codebase.
package shared

import (
	"fmt"
	"regexp"
	"strings"
)

var pipSeparatorRun = regexp.MustCompile(`[-_.]+`)

// NormalizePipName lowercases a Python package name and collapses runs of
// underscores, dots and hyphens into a single hyphen, following PEP 503
// normalization.
func NormalizePipName(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	return pipSeparatorRun.ReplaceAllString(lower, "-")
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}
