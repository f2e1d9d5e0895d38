// Package gst splits a taxed amount into its Indian GST components. An
// intrastate transaction carries CGST and SGST at half the rate each; an
// interstate transaction carries the full rate as IGST.
package gst

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lekha-engine/lekha-engine/internal/validate"
)

var (
	one     = decimal.NewFromInt(1)
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// IsInterstate resolves the transaction jurisdiction. When both state names
// are supplied and differ after trimming and case-folding the transaction is
// interstate; in every other case the explicit selector is authoritative.
func IsInterstate(fromState, toState string, explicit bool) bool {
	from := strings.ToLower(strings.TrimSpace(fromState))
	to := strings.ToLower(strings.TrimSpace(toState))
	if from != "" && to != "" && from != to {
		return true
	}
	return explicit
}

// Compute validates the request and produces the split. A zero rate is legal
// and yields an all-zero tax; the inclusive branch cannot divide by zero
// since the denominator is 1 + rate/100 and the rate is never negative.
func Compute(in Input) (Split, error) {
	amount, err := validate.PositiveAmount(in.Amount, "amount", true)
	if err != nil {
		return Split{}, err
	}
	rate, err := validate.TaxRate(in.RatePercent)
	if err != nil {
		return Split{}, err
	}

	out := Split{
		RatePercent:   rate,
		Interstate:    IsInterstate(in.FromState, in.ToState, in.Interstate),
		ReverseCharge: in.ReverseCharge,
		HSNCode:       in.HSNCode,
		Description:   in.Description,
	}

	if in.Inclusive {
		out.Basic = amount.Div(one.Add(rate.Div(hundred)))
		out.Tax = amount.Sub(out.Basic)
		out.Steps = append(out.Steps,
			Step{Label: "GST Inclusive Amount", Amount: amount},
			Step{Label: "Basic Amount", Amount: out.Basic},
		)
	} else {
		out.Basic = amount
		out.Tax = amount.Mul(rate).Div(hundred)
		out.Steps = append(out.Steps, Step{Label: "Basic Amount", Amount: out.Basic})
	}
	out.Total = out.Basic.Add(out.Tax)
	out.Steps = append(out.Steps, Step{Label: "GST Amount", Amount: out.Tax})

	if out.Interstate {
		out.IGST = out.Tax
		out.Steps = append(out.Steps, Step{Label: "IGST (100%)", Amount: out.IGST})
	} else {
		out.CGST = out.Tax.Div(two)
		out.SGST = out.Tax.Div(two)
		out.Steps = append(out.Steps,
			Step{Label: "CGST (50%)", Amount: out.CGST},
			Step{Label: "SGST (50%)", Amount: out.SGST},
		)
	}
	out.Steps = append(out.Steps, Step{Label: "Grand Total", Amount: out.Total})
	return out, nil
}
