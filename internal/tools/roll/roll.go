// Package roll implements the roll command: it evaluates one dice
// expression and prints the total.
package roll

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/rolldice/internal/core/notation"
	platformcmd "github.com/louisbranch/rolldice/internal/platform/cmd"
	apperrors "github.com/louisbranch/rolldice/internal/platform/errors"
	"github.com/louisbranch/rolldice/internal/platform/errors/i18n"
	"github.com/louisbranch/rolldice/internal/platform/i18n/catalog"
	"github.com/louisbranch/rolldice/internal/random"
)

const tracerName = "github.com/louisbranch/rolldice/internal/tools/roll"

// Config holds configuration for a roll.
type Config struct {
	Expression string
	Seed       int64  `env:"SEED"`
	Locale     string `env:"LOCALE" envDefault:"en-US"`
	Breakdown  bool   `env:"BREAKDOWN"`
}

// ParseConfig loads env defaults, parses flags and takes the expression
// from the single positional argument. Flags override env. On a usage
// error the returned Config still carries the parsed locale.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	// Flag defaults are written on registration, so env must be read after.
	fs.Int64Var(&cfg.Seed, "seed", 0, "seed for the random source (0 picks one at random)")
	fs.StringVar(&cfg.Locale, "locale", catalog.BaseLocale, "locale for messages (en-US, pt-BR)")
	fs.BoolVar(&cfg.Breakdown, "breakdown", false, "print the value of every term before the total")
	if err := platformcmd.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}

	positional, err := platformcmd.ExactArgs(fs, 1)
	if err != nil {
		return cfg, err
	}
	cfg.Expression = positional[0]
	return cfg, nil
}

// Run evaluates cfg.Expression and writes the announcement, optional
// breakdown and total to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}

	rng, seed, err := random.NewSource(cfg.Seed)
	if err != nil {
		return err
	}

	_, span := otel.Tracer(tracerName).Start(ctx, "roll",
		trace.WithAttributes(
			attribute.String("roll.expression", cfg.Expression),
			attribute.Int64("roll.seed", seed),
		),
	)
	defer span.End()

	result, err := notation.Roll(rng, cfg.Expression)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(apperrors.GetCode(err)))
		return err
	}
	span.SetAttributes(
		attribute.Int("roll.total", result.Total),
		attribute.Bool("roll.has_dice", result.Expression.HasDice()),
	)
	if lo, hi, err := result.Expression.Bounds(); err == nil {
		span.SetAttributes(attribute.Int("roll.min", lo), attribute.Int("roll.max", hi))
	}

	printer := catalog.Default().Printer(cfg.Locale)
	if _, err := fmt.Fprintln(out, printer.Sprintf("core.rolling", cfg.Expression)); err != nil {
		return err
	}
	// Numbers are formatted with strconv so no locale groups their digits.
	if cfg.Breakdown {
		for _, term := range result.Terms {
			var line string
			if term.Term.Kind == notation.KindDice {
				line = printer.Sprintf("core.breakdown.dice", term.Term.Raw, joinRolls(term.Rolls), strconv.Itoa(term.Value))
			} else {
				line = printer.Sprintf("core.breakdown.constant", term.Term.Raw, strconv.Itoa(term.Value))
			}
			if _, err := fmt.Fprintln(out, line); err != nil {
				return err
			}
		}
	}
	_, err = fmt.Fprintln(out, result.Total)
	return err
}

// ErrorMessage renders err for the user in locale. Domain errors use the
// localized catalog; anything else falls back to its own text.
func ErrorMessage(err error, locale string) string {
	if apperrors.IsCode(err, apperrors.CodeUnknown) {
		return err.Error()
	}
	return i18n.Message(err, locale)
}

// Usage returns the localized usage line.
func Usage(locale string) string {
	usage, _ := catalog.Default().Message(locale, "core.usage")
	return usage
}

func joinRolls(rolls []int) string {
	parts := make([]string, len(rolls))
	for i, r := range rolls {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, " + ")
}
