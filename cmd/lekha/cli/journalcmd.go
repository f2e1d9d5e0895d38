package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lekha-engine/lekha-engine/internal/gst"
	"github.com/lekha-engine/lekha-engine/internal/journal"
	"github.com/lekha-engine/lekha-engine/internal/validate"
)

// JournalOptions carries the journal command inputs. Type selects the
// archetype; the remaining fields feed whichever template it names.
type JournalOptions struct {
	Type      string `validate:"required,oneof=cashbank purchase sales expense income capital"`
	Date      string `validate:"omitempty,datetime=2006-01-02"`
	Amount    string `validate:"required,max=32"`
	Narration string `validate:"omitempty,max=200"`

	Medium       string `validate:"omitempty,oneof=cash bank"`
	Nature       string `validate:"omitempty,oneof=receipt payment"`
	Counterparty string `validate:"omitempty,max=64"`

	Mode  string `validate:"omitempty,oneof=cash credit"`
	Goods string `validate:"omitempty,max=64"`
	Party string `validate:"omitempty,max=64"`

	Method string `validate:"omitempty,oneof=cash bank credit"`
	Name   string `validate:"omitempty,max=64"`

	Kind  string `validate:"omitempty,oneof=introduced additional drawings withdrawal"`
	Asset string `validate:"omitempty,max=64"`

	WithGST       bool
	Rate          string `validate:"omitempty,max=8"`
	Interstate    bool
	FromState     string `validate:"omitempty,max=64"`
	ToState       string `validate:"omitempty,max=64"`
	ReverseCharge bool

	ShowSymbol bool
	Now        func() time.Time
	Stdout     io.Writer
	Stderr     io.Writer
}

// JournalCommand builds the selected archetype entry and renders it in the
// ledger-book layout with a balance verdict.
func JournalCommand(opts JournalOptions) int {
	if err := check.Struct(opts); err != nil {
		return reportError(opts.Stderr, err)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	date, err := parseDate(opts.Date, now)
	if err != nil {
		return reportError(opts.Stderr, err)
	}
	amount, err := validate.Positive(opts.Amount, "amount", false)
	if err != nil {
		return reportError(opts.Stderr, err)
	}

	var split *gst.Split
	if opts.WithGST {
		rate, rateErr := decimal.NewFromString(strings.TrimSpace(opts.Rate))
		if rateErr != nil {
			return reportError(opts.Stderr, fmt.Errorf("rate must be a valid number: %q", opts.Rate))
		}
		// The journal amount is the invoice total, so the split is derived
		// from the inclusive figure.
		computed, gstErr := gst.Compute(gst.Input{
			Amount:        amount,
			RatePercent:   rate,
			Inclusive:     true,
			Interstate:    opts.Interstate,
			FromState:     opts.FromState,
			ToState:       opts.ToState,
			ReverseCharge: opts.ReverseCharge,
		})
		if gstErr != nil {
			return reportError(opts.Stderr, gstErr)
		}
		split = &computed
	}

	tx, err := transactionFor(opts, split)
	if err != nil {
		return reportError(opts.Stderr, err)
	}

	entry, err := journal.Build(date, amount, opts.Narration, tx)
	if err != nil {
		return reportError(opts.Stderr, err)
	}

	fmt.Fprintln(opts.Stdout, "Journal Entry")
	renderEntry(opts.Stdout, entry, opts.ShowSymbol)
	fmt.Fprintln(opts.Stdout, "Balanced: debits equal credits")
	return 0
}

func transactionFor(opts JournalOptions, split *gst.Split) (journal.Transaction, error) {
	switch opts.Type {
	case "cashbank":
		return journal.CashBank{
			Medium:       mediumFor(opts.Medium),
			Nature:       natureFor(opts.Nature),
			Counterparty: opts.Counterparty,
		}, nil
	case "purchase":
		return journal.Purchase{
			Mode:     modeFor(opts.Mode),
			Goods:    opts.Goods,
			Supplier: opts.Party,
			GST:      split,
		}, nil
	case "sales":
		return journal.Sales{
			Mode:     modeFor(opts.Mode),
			Goods:    opts.Goods,
			Customer: opts.Party,
			GST:      split,
		}, nil
	case "expense":
		return journal.Expense{
			Name:     opts.Name,
			Method:   methodFor(opts.Method),
			Creditor: opts.Party,
		}, nil
	case "income":
		return journal.Income{
			Name:   opts.Name,
			Method: methodFor(opts.Method),
		}, nil
	case "capital":
		return journal.Capital{
			Kind:  capitalKindFor(opts.Kind),
			Asset: opts.Asset,
		}, nil
	}
	return nil, fmt.Errorf("unknown transaction type %q", opts.Type)
}

func mediumFor(raw string) journal.Medium {
	if strings.EqualFold(raw, "bank") {
		return journal.MediumBank
	}
	return journal.MediumCash
}

func natureFor(raw string) journal.Nature {
	if strings.EqualFold(raw, "payment") {
		return journal.NaturePayment
	}
	return journal.NatureReceipt
}

func modeFor(raw string) journal.Mode {
	if strings.EqualFold(raw, "credit") {
		return journal.ModeCredit
	}
	return journal.ModeCash
}

func methodFor(raw string) journal.Method {
	switch {
	case strings.EqualFold(raw, "bank"):
		return journal.MethodBank
	case strings.EqualFold(raw, "credit"):
		return journal.MethodCredit
	}
	return journal.MethodCash
}

func capitalKindFor(raw string) journal.CapitalKind {
	switch {
	case strings.EqualFold(raw, "additional"):
		return journal.CapitalAdditional
	case strings.EqualFold(raw, "drawings"):
		return journal.CapitalDrawings
	case strings.EqualFold(raw, "withdrawal"):
		return journal.CapitalWithdrawal
	}
	return journal.CapitalIntroduced
}
