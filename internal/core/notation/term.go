package notation

import (
	"strconv"
	"strings"

	"github.com/louisbranch/rolldice/internal/core/dice"
)

const (
	// Separator splits an expression into terms.
	Separator = "+"
	// DiceSeparator splits a dice term into its count and faces.
	DiceSeparator = "d"
)

// Kind identifies what a term evaluates to.
type Kind int

const (
	KindUnspecified Kind = iota
	KindConstant
	KindDice
)

func (k Kind) String() string {
	switch k {
	case KindUnspecified:
		return "Unspecified"
	case KindConstant:
		return "Constant"
	case KindDice:
		return "Dice"
	default:
		return "Unknown"
	}
}

// Term is one classified segment of an expression. Value is set for
// KindConstant terms and Dice for KindDice terms.
type Term struct {
	Raw   string
	Kind  Kind
	Value int
	Dice  dice.Spec
}

// Constant builds a constant modifier term.
func Constant(value int) Term {
	return Term{Raw: strconv.Itoa(value), Kind: KindConstant, Value: value}
}

// DiceRoll builds a dice term rolling count dice with the given faces.
func DiceRoll(count, faces int) Term {
	return Term{
		Raw:  strconv.Itoa(count) + DiceSeparator + strconv.Itoa(faces),
		Kind: KindDice,
		Dice: dice.Spec{Sides: faces, Count: count},
	}
}

// Classify turns a raw term into a constant or dice term.
//
// A term containing "d" is split on its first "d"; both sides must be
// positive integers, the count at most dice.MaxCount and count*faces must
// fit in an int, otherwise ErrInvalidDiceSpec is returned. Any other term
// must parse as a signed integer, otherwise ErrInvalidModifier is returned.
// Whitespace around each number is ignored; the term itself is kept as Raw.
func Classify(raw string) (Term, error) {
	countText, facesText, isDice := strings.Cut(raw, DiceSeparator)
	if !isDice {
		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return Term{}, invalidModifier(raw, err)
		}
		return Term{Raw: raw, Kind: KindConstant, Value: value}, nil
	}

	count, err := parsePositive(countText)
	if err != nil {
		return Term{}, invalidDiceSpec(raw, err)
	}
	faces, err := parsePositive(facesText)
	if err != nil {
		return Term{}, invalidDiceSpec(raw, err)
	}
	spec := dice.Spec{Sides: faces, Count: count}
	if count > dice.MaxCount {
		return Term{}, invalidDiceSpec(raw, errTooManyDice)
	}
	if !spec.Valid() {
		return Term{}, invalidDiceSpec(raw, errFacesOutOfRange)
	}
	return Term{
		Raw:  raw,
		Kind: KindDice,
		Dice: spec,
	}, nil
}

func parsePositive(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, errEmptyNumber
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, err
	}
	if value <= 0 {
		return 0, errNotPositive
	}
	return value, nil
}
