package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrValidationFailed indicates that a text attribute broke its length
	// or non-emptiness rule.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidReference indicates that an Author or Magazine reference was
	// missing or belongs to another registry.
	ErrInvalidReference = errors.New("invalid reference")
)

// Kind classifies a domain error.
type Kind int

const (
	// KindUnknown is returned for errors that did not come from this package.
	KindUnknown Kind = iota
	// KindValue marks a text attribute that violates its constraint.
	KindValue
	// KindType marks an argument that is not the required entity.
	KindType
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindType:
		return "type"
	default:
		return "unknown"
	}
}

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Is reports whether target is ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ReferenceError reports an Author or Magazine argument that is nil or
// foreign to the registry performing the operation.
type ReferenceError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the reference error.
func (e *ReferenceError) Error() string {
	return fmt.Sprintf("reference error on field '%s': %s", e.Field, e.Message)
}

// Is reports whether target is ErrInvalidReference.
func (e *ReferenceError) Is(target error) bool {
	return target == ErrInvalidReference
}

// KindOf returns the Kind of err, looking through wrapped errors.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrValidationFailed):
		return KindValue
	case errors.Is(err, ErrInvalidReference):
		return KindType
	default:
		return KindUnknown
	}
}

// FieldOf returns the offending field name carried by a domain error, or ""
// when err is not one.
func FieldOf(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Field
	}
	var re *ReferenceError
	if errors.As(err, &re) {
		return re.Field
	}
	return ""
}
