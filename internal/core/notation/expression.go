package notation

import (
	"math"
	"math/rand"
	"strings"

	"github.com/louisbranch/rolldice/internal/core/dice"
)

// Expression is a parsed dice expression.
type Expression struct {
	Source string
	Terms  []Term
}

// HasDice reports whether evaluating the expression draws random numbers.
func (e Expression) HasDice() bool {
	for _, term := range e.Terms {
		if term.Kind == KindDice {
			return true
		}
	}
	return false
}

// Bounds returns the smallest and largest totals the expression can produce.
// It returns ErrTotalOutOfRange when either bound does not fit in an int.
func (e Expression) Bounds() (lo, hi int, err error) {
	for _, term := range e.Terms {
		termLo, termHi := term.Value, term.Value
		if term.Kind == KindDice {
			termLo, termHi = term.Dice.Min(), term.Dice.Max()
		}
		var okLo, okHi bool
		lo, okLo = addInt(lo, termLo)
		hi, okHi = addInt(hi, termHi)
		if !okLo || !okHi {
			return 0, 0, totalOutOfRange(e.Source)
		}
	}
	return lo, hi, nil
}

// addInt returns a+b and whether the sum fits in an int.
func addInt(a, b int) (int, bool) {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		return 0, false
	}
	return a + b, true
}

// TermResult is the evaluated value of one term. Rolls holds the individual
// die values for dice terms and is nil for constants.
type TermResult struct {
	Term  Term
	Value int
	Rolls []int
}

// Result is the outcome of evaluating an expression.
type Result struct {
	Expression Expression
	Terms      []TermResult
	Total      int
}

// Split breaks input into its "+"-separated terms. Terms are not trimmed;
// an empty term anywhere, including an empty input, returns
// ErrInvalidExpression.
func Split(input string) ([]string, error) {
	terms := strings.Split(input, Separator)
	for i, term := range terms {
		if term == "" {
			return nil, invalidExpression(input, i+1)
		}
	}
	return terms, nil
}

// Parse splits and classifies every term of input.
func Parse(input string) (Expression, error) {
	raw, err := Split(input)
	if err != nil {
		return Expression{}, err
	}
	terms := make([]Term, 0, len(raw))
	for _, r := range raw {
		term, err := Classify(r)
		if err != nil {
			return Expression{}, err
		}
		terms = append(terms, term)
	}
	return Expression{Source: input, Terms: terms}, nil
}

// Evaluate rolls every dice term from rng in order and sums all terms.
//
// Each die is an independent draw in [1, faces]; a term NdM consumes exactly
// N values from rng. Constant terms draw nothing, so rng may be nil when the
// expression has no dice. Otherwise a nil rng returns
// dice.ErrMissingRandomSource. A total that does not fit in an int returns
// ErrTotalOutOfRange, and a term of KindUnspecified returns
// ErrUnclassifiedTerm.
func Evaluate(rng *rand.Rand, expr Expression) (Result, error) {
	results := make([]TermResult, 0, len(expr.Terms))
	total := 0

	for _, term := range expr.Terms {
		var value int
		switch term.Kind {
		case KindConstant:
			results = append(results, TermResult{Term: term, Value: term.Value})
			value = term.Value
		case KindDice:
			rolled, err := dice.RollWithRng(rng, []dice.Spec{term.Dice})
			if err != nil {
				return Result{}, err
			}
			results = append(results, TermResult{
				Term:  term,
				Value: rolled.Total,
				Rolls: rolled.Rolls[0].Results,
			})
			value = rolled.Total
		default:
			return Result{}, unclassifiedTerm(term.Raw)
		}

		var ok bool
		if total, ok = addInt(total, value); !ok {
			return Result{}, totalOutOfRange(expr.Source)
		}
	}

	return Result{
		Expression: expr,
		Terms:      results,
		Total:      total,
	}, nil
}

// Roll parses input and evaluates it against rng.
func Roll(rng *rand.Rand, input string) (Result, error) {
	expr, err := Parse(input)
	if err != nil {
		return Result{}, err
	}
	return Evaluate(rng, expr)
}
