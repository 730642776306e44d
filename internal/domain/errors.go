package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Tool errors
	ErrMsgToolBroken       = "tool is too damaged"
	ErrMsgUnknownToolKind  = "unknown tool kind"
	ErrMsgInvalidSelection = "invalid selection"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Catalog errors
	ErrMsgInvalidCatalog = "invalid catalog"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrToolBroken is returned by destructive actions when durability is exhausted
	ErrToolBroken = errors.New(ErrMsgToolBroken)

	// ErrUnknownToolKind is returned when a catalog names a kind outside ToolKinds
	ErrUnknownToolKind = errors.New(ErrMsgUnknownToolKind)

	// ErrInvalidSelection is returned for out-of-range or non-numeric option indexes
	ErrInvalidSelection = errors.New(ErrMsgInvalidSelection)

	// ErrInvalidInput is returned for operator values that fail validation (speed, interval)
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// ErrInvalidCatalog is returned when a toolbox catalog cannot be loaded
	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)
)
