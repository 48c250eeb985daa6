package dice

import (
	"math"
	"math/rand"
)

// RollWithRng rolls dice using a provided random source.
//
// # Ordering
//
// Specs are processed in slice order and every die is an independent draw
// of rng.Intn(Sides)+1, so a spec of Count N consumes exactly N values from
// rng. The resulting Roll entries in Result.Rolls appear in the same order
// as specs.
//
// # Totals
//
// For each Roll in Result.Rolls, the Total field is the sum of all values
// in Results for that dice specification. Result.Total is the sum of every
// die rolled across the call.
//
// # Errors
//
//   - rng must not be nil, otherwise ErrMissingRandomSource is returned.
//   - At least one Spec must be provided, otherwise ErrMissingDice is
//     returned.
//   - Each Spec must be Valid (positive Sides and Count, Count at most
//     MaxCount, Count*Sides within int range), otherwise
//     ErrInvalidDiceSpec is returned.
//   - If the sum over all specs would overflow an int, ErrTotalOutOfRange
//     is returned.
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	result, err := RollWithRng(rng, []Spec{
//	    {Sides: 6, Count: 2}, // roll 2d6
//	    {Sides: 8, Count: 1}, // roll 1d8
//	})
func RollWithRng(rng *rand.Rand, specs []Spec) (Result, error) {
	if rng == nil {
		return Result{}, ErrMissingRandomSource
	}
	if len(specs) == 0 {
		return Result{}, ErrMissingDice
	}
	for _, spec := range specs {
		if !spec.Valid() {
			return Result{}, ErrInvalidDiceSpec
		}
	}

	rolls := make([]Roll, 0, len(specs))
	total := 0

	for _, spec := range specs {
		results := make([]int, spec.Count)
		rollTotal := 0
		for i := 0; i < spec.Count; i++ {
			value := rollDie(rng, spec.Sides)
			results[i] = value
			rollTotal += value
		}

		rolls = append(rolls, Roll{
			Sides:   spec.Sides,
			Results: results,
			Total:   rollTotal,
		})
		if total > math.MaxInt-rollTotal {
			return Result{}, ErrTotalOutOfRange
		}
		total += rollTotal
	}

	return Result{
		Rolls: rolls,
		Total: total,
	}, nil
}

// rollDie rolls a single die with the provided number of sides.
func rollDie(rng *rand.Rand, sides int) int {
	return rng.Intn(sides) + 1
}
