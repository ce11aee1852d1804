package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput marks precondition violations: non-positive dimensions,
// empty load lines, inconsistent generator ranges. Callers check it with
// errors.Is.
var ErrInvalidInput = errors.New("invalid input")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// positive reports whether v is a usable dimension: finite and above zero.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
