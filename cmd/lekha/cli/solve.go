package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lekha-engine/lekha-engine/internal/equation"
	"github.com/lekha-engine/lekha-engine/internal/money"
	"github.com/lekha-engine/lekha-engine/internal/validate"
)

// SolveOptions carries the equation command inputs. The three equation terms
// are strings so absence is expressible: an empty string means unknown, while
// "0" is a legitimately known zero.
type SolveOptions struct {
	Assets      string `validate:"omitempty,max=32"`
	Liabilities string `validate:"omitempty,max=32"`
	Capital     string `validate:"omitempty,max=32"`

	Drawings          string `validate:"omitempty,max=32"`
	AdditionalCapital string `validate:"omitempty,max=32"`
	ProfitOrLoss      string `validate:"omitempty,max=32"`

	ShowSymbol bool
	Stdout     io.Writer
	Stderr     io.Writer
}

// SolveCommand parses the terms, runs the solver, and renders the worked
// solution. It returns a process exit code.
func SolveCommand(opts SolveOptions) int {
	if err := check.Struct(opts); err != nil {
		return reportError(opts.Stderr, err)
	}

	state := equation.State{}
	terms := []struct {
		raw   string
		field string
		dst   *money.Maybe
	}{
		{opts.Assets, "assets", &state.Assets},
		{opts.Liabilities, "liabilities", &state.Liabilities},
		{opts.Capital, "capital", &state.Capital},
	}
	for _, term := range terms {
		if strings.TrimSpace(term.raw) == "" {
			continue
		}
		value, err := validate.Positive(term.raw, term.field, true)
		if err != nil {
			return reportError(opts.Stderr, err)
		}
		*term.dst = money.Known(value)
	}

	var err error
	if state.Drawings, err = optionalPositive(opts.Drawings, "drawings"); err != nil {
		return reportError(opts.Stderr, err)
	}
	if state.AdditionalCapital, err = optionalPositive(opts.AdditionalCapital, "additional capital"); err != nil {
		return reportError(opts.Stderr, err)
	}
	if state.ProfitOrLoss, err = optionalSigned(opts.ProfitOrLoss, "profit or loss"); err != nil {
		return reportError(opts.Stderr, err)
	}

	sol, err := equation.Solve(state)
	if err != nil {
		return reportError(opts.Stderr, err)
	}

	labels := make([]string, 0, len(sol.Steps))
	amounts := make([]decimal.Decimal, 0, len(sol.Steps))
	for _, step := range sol.Steps {
		labels = append(labels, step.Label)
		amounts = append(amounts, step.Amount)
	}
	renderSteps(opts.Stdout, "Accounting Equation Solution", labels, amounts, opts.ShowSymbol)

	fmt.Fprintf(opts.Stdout, "\nAssets: %s  Liabilities: %s  Capital (adjusted): %s\n",
		money.Format(sol.Assets, opts.ShowSymbol),
		money.Format(sol.Liabilities, opts.ShowSymbol),
		money.Format(sol.AdjustedCapital, opts.ShowSymbol))
	return 0
}

func optionalPositive(raw, field string) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, nil
	}
	return validate.Positive(raw, field, true)
}

func optionalSigned(raw, field string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, nil
	}
	if rest, negative := strings.CutPrefix(trimmed, "-"); negative {
		value, err := validate.Positive(rest, field, true)
		if err != nil {
			return decimal.Zero, err
		}
		return value.Neg(), nil
	}
	return validate.Positive(trimmed, field, true)
}
