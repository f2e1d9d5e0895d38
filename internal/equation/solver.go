// Package equation solves the fundamental accounting equation
// Assets = Liabilities + Capital for a missing term, applying capital
// adjustments (drawings, additional capital, profit or loss) before the main
// equation is used.
package equation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lekha-engine/lekha-engine/internal/money"
	"github.com/lekha-engine/lekha-engine/internal/shared"
)

// Solve completes the equation from the supplied terms. It fails with
// InsufficientKnownValues when fewer than two of assets, liabilities and
// capital are supplied, and with EquationImbalance when the completed
// equation does not verify within tolerance. The latter is unreachable when a
// term was actually derived; it fires when all three supplied values simply
// do not agree, or signals an arithmetic defect.
func Solve(s State) (Solution, error) {
	known := 0
	for _, term := range []money.Maybe{s.Assets, s.Liabilities, s.Capital} {
		if term.Set {
			known++
		}
	}
	if known < 2 {
		return Solution{}, shared.NewError(shared.KindInsufficientKnownValues, "",
			"at least two of assets, liabilities and capital must be supplied")
	}

	sol := Solution{Solved: TermNone}
	if s.Capital.Set {
		sol.OriginalCapital = s.Capital.Value
		sol.AdjustedCapital = adjustCapital(&sol, s)
	}

	switch {
	case !s.Assets.Set:
		sol.Liabilities = s.Liabilities.Value
		sol.Assets = sol.Liabilities.Add(sol.AdjustedCapital)
		sol.Solved = TermAssets
		sol.Steps = append(sol.Steps, Step{Label: "Assets = Liabilities + Adjusted Capital", Amount: sol.Assets})

	case !s.Liabilities.Set:
		sol.Assets = s.Assets.Value
		sol.Liabilities = sol.Assets.Sub(sol.AdjustedCapital)
		sol.Solved = TermLiabilities
		sol.Steps = append(sol.Steps, Step{Label: "Liabilities = Assets - Adjusted Capital", Amount: sol.Liabilities})

	case !s.Capital.Set:
		sol.Assets = s.Assets.Value
		sol.Liabilities = s.Liabilities.Value
		sol.AdjustedCapital = sol.Assets.Sub(sol.Liabilities)
		// Back out the opening capital from the derived adjusted figure.
		sol.OriginalCapital = sol.AdjustedCapital.
			Sub(s.AdditionalCapital).
			Add(s.Drawings).
			Sub(s.ProfitOrLoss)
		sol.Solved = TermCapital
		sol.Steps = append(sol.Steps,
			Step{Label: "Adjusted Capital = Assets - Liabilities", Amount: sol.AdjustedCapital},
			Step{Label: "Original Capital", Amount: sol.OriginalCapital},
		)

	default:
		sol.Assets = s.Assets.Value
		sol.Liabilities = s.Liabilities.Value
	}

	rhs := sol.Liabilities.Add(sol.AdjustedCapital)
	if !money.EqualWithin(sol.Assets, rhs) {
		return Solution{}, shared.NewError(shared.KindEquationImbalance, "",
			fmt.Sprintf("equation does not balance: assets %s vs liabilities + capital %s (off by %s)",
				sol.Assets, rhs, sol.Assets.Sub(rhs)))
	}
	sol.Steps = append(sol.Steps, Step{Label: "Verified: Assets = Liabilities + Adjusted Capital", Amount: sol.Assets})
	return sol, nil
}

func adjustCapital(sol *Solution, s State) decimal.Decimal {
	profit := decimal.Max(s.ProfitOrLoss, decimal.Zero)
	loss := decimal.Min(s.ProfitOrLoss, decimal.Zero).Abs()
	adjusted := s.Capital.Value.
		Add(s.AdditionalCapital).
		Sub(s.Drawings).
		Add(s.ProfitOrLoss)

	sol.Steps = append(sol.Steps,
		Step{Label: "Opening Capital", Amount: s.Capital.Value},
		Step{Label: "Add: Additional Capital", Amount: s.AdditionalCapital},
		Step{Label: "Add: Profit", Amount: profit},
		Step{Label: "Less: Loss", Amount: loss},
		Step{Label: "Less: Drawings", Amount: s.Drawings},
		Step{Label: "Adjusted Capital", Amount: adjusted},
	)
	return adjusted
}
