package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidateOneOf returns a validator accepting only the listed values,
// compared case-insensitively.
//
// Example:
//
//	result := LoadEnvWithFallback("BYLINE_LOG_FORMAT", "json", ValidateOneOf("json", "text"))
func ValidateOneOf(allowed ...string) func(string) error {
	return func(value string) error {
		if slices.ContainsFunc(allowed, func(a string) bool { return strings.EqualFold(a, value) }) {
			return nil
		}
		return fmt.Errorf("must be one of [%s], got '%s'", strings.Join(allowed, ", "), value)
	}
}
