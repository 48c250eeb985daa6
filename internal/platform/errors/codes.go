// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Notation errors
	CodeNotationInvalidExpression Code = "NOTATION_INVALID_EXPRESSION"
	CodeNotationInvalidDiceSpec   Code = "NOTATION_INVALID_DICE_SPEC"
	CodeNotationInvalidModifier   Code = "NOTATION_INVALID_MODIFIER"
	CodeNotationTotalOutOfRange   Code = "NOTATION_TOTAL_OUT_OF_RANGE"
	CodeNotationUnclassifiedTerm  Code = "NOTATION_UNCLASSIFIED_TERM"

	// Dice/mechanics errors
	CodeDiceMissing             Code = "DICE_MISSING"
	CodeDiceInvalidSpec         Code = "DICE_INVALID_SPEC"
	CodeDiceMissingRandomSource Code = "DICE_MISSING_RANDOM_SOURCE"
	CodeDiceTotalOutOfRange     Code = "DICE_TOTAL_OUT_OF_RANGE"

	// Random/seed errors
	CodeSeedUnavailable Code = "SEED_UNAVAILABLE"
)
