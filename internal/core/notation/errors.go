package notation

import (
	"errors"
	"strconv"

	"github.com/louisbranch/rolldice/internal/core/dice"
	apperrors "github.com/louisbranch/rolldice/internal/platform/errors"
)

// ErrInvalidExpression indicates the expression has an empty term.
var ErrInvalidExpression = apperrors.New(apperrors.CodeNotationInvalidExpression, "invalid expression")

// ErrInvalidDiceSpec indicates a dice term whose count or faces are not
// positive integers, or whose count or maximum total is out of range.
var ErrInvalidDiceSpec = apperrors.New(apperrors.CodeNotationInvalidDiceSpec, "invalid dice spec")

// ErrInvalidModifier indicates a non-dice term that is not an integer.
var ErrInvalidModifier = apperrors.New(apperrors.CodeNotationInvalidModifier, "invalid modifier")

// ErrTotalOutOfRange indicates the expression total does not fit in an int.
var ErrTotalOutOfRange = apperrors.New(apperrors.CodeNotationTotalOutOfRange, "total out of range")

// ErrUnclassifiedTerm indicates a Term reached evaluation without going
// through Classify or the Constant/DiceRoll constructors.
var ErrUnclassifiedTerm = apperrors.New(apperrors.CodeNotationUnclassifiedTerm, "unclassified term")

var (
	errEmptyNumber     = errors.New("number is empty")
	errNotPositive     = errors.New("number must be positive")
	errTooManyDice     = errors.New("too many dice")
	errFacesOutOfRange = errors.New("maximum total is out of range")
)

// position is 1-based.
func invalidExpression(source string, position int) error {
	return apperrors.WithMetadata(
		apperrors.CodeNotationInvalidExpression,
		"invalid expression "+strconv.Quote(source)+": term "+strconv.Itoa(position)+" is empty",
		map[string]string{
			"Expression": source,
			"Position":   strconv.Itoa(position),
		},
	)
}

func invalidDiceSpec(term string, cause error) error {
	return apperrors.WrapWithMetadata(
		apperrors.CodeNotationInvalidDiceSpec,
		"invalid dice spec "+strconv.Quote(term),
		map[string]string{
			"Term":     term,
			"MaxCount": strconv.Itoa(dice.MaxCount),
		},
		cause,
	)
}

func invalidModifier(term string, cause error) error {
	return apperrors.WrapWithMetadata(
		apperrors.CodeNotationInvalidModifier,
		"invalid modifier "+strconv.Quote(term),
		map[string]string{"Term": term},
		cause,
	)
}

func totalOutOfRange(source string) error {
	return apperrors.WithMetadata(
		apperrors.CodeNotationTotalOutOfRange,
		"total of "+strconv.Quote(source)+" is out of range",
		map[string]string{"Expression": source},
	)
}

func unclassifiedTerm(term string) error {
	return apperrors.WithMetadata(
		apperrors.CodeNotationUnclassifiedTerm,
		"unclassified term "+strconv.Quote(term),
		map[string]string{"Term": term},
	)
}
