package uritemplate

import "errors"

// Common errors used throughout the uritemplate package
var (
	// ErrUnclosedExpression indicates a '{' without a matching '}'.
	// Template syntax errors
	ErrUnclosedExpression = errors.New("unclosed expression")
	// ErrEmptyExpression indicates an expression with no variables: {}.
	ErrEmptyExpression = errors.New("empty expression")
	// ErrEmptyVariableName indicates a variable token with no name, such as {:3} or {a,,b}.
	ErrEmptyVariableName = errors.New("empty variable name")
	// ErrInvalidPrefixLength indicates a malformed :N modifier (non-digit, zero,
	// out of range, or combined with the explode modifier).
	ErrInvalidPrefixLength = errors.New("invalid prefix length")

	// ErrConfigValidation is returned when configuration validation fails.
	// Configuration errors
	ErrConfigValidation = errors.New("configuration validation failed")
	// ErrEmptyCatalog indicates a template catalog file with no templates.
	ErrEmptyCatalog = errors.New("template catalog has no templates")
)
