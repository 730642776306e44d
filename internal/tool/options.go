package tool

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/Toolbox_Go/internal/domain"
)

// OptionSet is a fixed list of values selected by 1-based index
type OptionSet[T comparable] struct {
	values []T
}

// NewOptionSet copies values into a new set
func NewOptionSet[T comparable](values ...T) OptionSet[T] {
	return OptionSet[T]{values: append([]T(nil), values...)}
}

// Len returns the number of options
func (s OptionSet[T]) Len() int { return len(s.values) }

// Values returns a copy of the options in display order
func (s OptionSet[T]) Values() []T {
	return append([]T(nil), s.values...)
}

// Contains reports whether v is one of the options
func (s OptionSet[T]) Contains(v T) bool {
	for _, option := range s.values {
		if option == v {
			return true
		}
	}
	return false
}

// Select parses choice as a 1-based index. Only plain digit strings are
// accepted; anything else, or an index outside the set, wraps domain.ErrInvalidSelection.
func (s OptionSet[T]) Select(choice string) (T, error) {
	var zero T
	choice = strings.TrimSpace(choice)
	if !isDigits(choice) {
		return zero, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidSelection, choice)
	}
	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(s.values) {
		return zero, fmt.Errorf("%w: %q is outside 1-%d", domain.ErrInvalidSelection, choice, len(s.values))
	}
	return s.values[idx-1], nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
