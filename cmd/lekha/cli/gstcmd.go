package cli

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/lekha-engine/lekha-engine/internal/gst"
	"github.com/lekha-engine/lekha-engine/internal/money"
	"github.com/lekha-engine/lekha-engine/internal/validate"
)

// GSTOptions carries the GST command inputs.
type GSTOptions struct {
	Amount    string `validate:"required,max=32"`
	Rate      string `validate:"required,max=8"`
	Inclusive bool

	Interstate    bool
	FromState     string `validate:"omitempty,max=64"`
	ToState       string `validate:"omitempty,max=64"`
	ReverseCharge bool

	HSNCode     string `validate:"omitempty,max=16"`
	Description string `validate:"omitempty,max=200"`

	ShowSymbol bool
	Stdout     io.Writer
	Stderr     io.Writer
}

// GSTCommand computes and renders the CGST/SGST/IGST breakdown with its
// worked steps and summary table.
func GSTCommand(opts GSTOptions) int {
	if err := check.Struct(opts); err != nil {
		return reportError(opts.Stderr, err)
	}

	amount, err := validate.Positive(opts.Amount, "amount", false)
	if err != nil {
		return reportError(opts.Stderr, err)
	}
	rate, err := decimal.NewFromString(opts.Rate)
	if err != nil {
		return reportError(opts.Stderr, fmt.Errorf("rate must be a valid number: %q", opts.Rate))
	}

	split, err := gst.Compute(gst.Input{
		Amount:        amount,
		RatePercent:   rate,
		Inclusive:     opts.Inclusive,
		Interstate:    opts.Interstate,
		FromState:     opts.FromState,
		ToState:       opts.ToState,
		ReverseCharge: opts.ReverseCharge,
		HSNCode:       opts.HSNCode,
		Description:   opts.Description,
	})
	if err != nil {
		return reportError(opts.Stderr, err)
	}

	labels := make([]string, 0, len(split.Steps))
	amounts := make([]decimal.Decimal, 0, len(split.Steps))
	for _, step := range split.Steps {
		labels = append(labels, step.Label)
		amounts = append(amounts, step.Amount)
	}
	renderSteps(opts.Stdout, "GST Calculation", labels, amounts, opts.ShowSymbol)

	jurisdiction := "Intrastate"
	if split.Interstate {
		jurisdiction = "Interstate"
	}
	fmt.Fprintf(opts.Stdout, "\n%s @ %s%%  Basic: %s  GST: %s  Total: %s\n",
		jurisdiction, split.RatePercent,
		money.Format(split.Basic, opts.ShowSymbol),
		money.Format(split.Tax, opts.ShowSymbol),
		money.Format(split.Total, opts.ShowSymbol))
	if split.HSNCode != "" {
		fmt.Fprintf(opts.Stdout, "HSN/SAC: %s\n", split.HSNCode)
	}
	if split.ReverseCharge {
		fmt.Fprintln(opts.Stdout, "Reverse charge: GST is payable by the recipient.")
	}
	return 0
}
