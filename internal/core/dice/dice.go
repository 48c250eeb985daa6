// Package dice rolls groups of identical dice against a caller-provided
// random source.
package dice

import (
	"math"

	apperrors "github.com/louisbranch/rolldice/internal/platform/errors"
)

// MaxCount is the largest number of dice a single spec may roll.
const MaxCount = 100000

// ErrMissingDice indicates a roll request had no dice specified.
var ErrMissingDice = apperrors.New(apperrors.CodeDiceMissing, "at least one die must be provided")

// ErrInvalidDiceSpec indicates a die specification has invalid fields.
var ErrInvalidDiceSpec = apperrors.New(apperrors.CodeDiceInvalidSpec, "dice must have positive sides and count")

// ErrMissingRandomSource indicates a roll was attempted without a random source.
var ErrMissingRandomSource = apperrors.New(apperrors.CodeDiceMissingRandomSource, "random source is required")

// ErrTotalOutOfRange indicates the combined total of several specs does not fit in an int.
var ErrTotalOutOfRange = apperrors.New(apperrors.CodeDiceTotalOutOfRange, "dice total is out of range")

// Spec describes a die to roll and how many times to roll it.
type Spec struct {
	Sides int
	Count int
}

// Valid reports whether the spec can be rolled: Sides and Count are
// positive, Count is at most MaxCount and Count*Sides fits in an int.
func (s Spec) Valid() bool {
	if s.Sides <= 0 || s.Count <= 0 || s.Count > MaxCount {
		return false
	}
	return s.Sides <= math.MaxInt/s.Count
}

// Min returns the smallest total the spec can produce.
func (s Spec) Min() int {
	return s.Count
}

// Max returns the largest total the spec can produce. Only meaningful for
// valid specs.
func (s Spec) Max() int {
	return s.Count * s.Sides
}

// Roll captures the results for a single dice spec.
type Roll struct {
	Sides   int
	Results []int
	Total   int
}

// Result captures the results from rolling multiple dice specs.
type Result struct {
	Rolls []Roll
	Total int
}
