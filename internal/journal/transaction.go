package journal

import (
	"github.com/shopspring/decimal"

	"github.com/lekha-engine/lekha-engine/internal/gst"
	"github.com/lekha-engine/lekha-engine/internal/shared"
	"github.com/lekha-engine/lekha-engine/internal/validate"
)

// Medium selects the money account for cash/bank movements.
type Medium string

const (
	MediumCash Medium = "Cash"
	MediumBank Medium = "Bank"
)

// Nature distinguishes a receipt from a payment.
type Nature string

const (
	NatureReceipt Nature = "Receipt"
	NaturePayment Nature = "Payment"
)

// Mode distinguishes cash from credit trading.
type Mode string

const (
	ModeCash   Mode = "Cash"
	ModeCredit Mode = "Credit"
)

// Method selects how an expense or income settles.
type Method string

const (
	MethodCash   Method = "Cash"
	MethodBank   Method = "Bank"
	MethodCredit Method = "Credit"
)

// CapitalKind enumerates owner-capital movements.
type CapitalKind string

const (
	CapitalIntroduced CapitalKind = "Introduced"
	CapitalAdditional CapitalKind = "Additional"
	CapitalDrawings   CapitalKind = "Drawings"
	CapitalWithdrawal CapitalKind = "Withdrawal"
)

// Transaction is one of the closed set of posting archetypes. Each variant
// carries exactly the parameters its template needs; the set is not
// extensible outside this package.
type Transaction interface {
	postings(amount decimal.Decimal) ([]Posting, error)
}

// CashBank covers plain receipts into and payments out of Cash or Bank.
type CashBank struct {
	Medium       Medium
	Nature       Nature
	Counterparty string
}

func (t CashBank) postings(amount decimal.Decimal) ([]Posting, error) {
	amount, err := validate.PositiveAmount(amount, "amount", false)
	if err != nil {
		return nil, err
	}
	if t.Nature == NatureReceipt {
		return []Posting{
			Debit(string(t.Medium), amount),
			Credit("To "+fallback(t.Counterparty, "Debtors"), amount),
		}, nil
	}
	return []Posting{
		Debit(fallback(t.Counterparty, "Expense"), amount),
		Credit("To "+string(t.Medium), amount),
	}, nil
}

// Purchase covers cash and credit purchases, optionally with a GST split.
type Purchase struct {
	Mode     Mode
	Goods    string
	Supplier string
	GST      *gst.Split
}

func (t Purchase) postings(amount decimal.Decimal) ([]Posting, error) {
	goods := fallback(t.Goods, "Goods")
	creditAccount := "To Cash/Bank"
	if t.Mode == ModeCredit {
		creditAccount = "To " + fallback(t.Supplier, "Creditors")
	}

	if t.GST != nil {
		if err := refuseReverseCharge(t.GST); err != nil {
			return nil, err
		}
		return []Posting{
			Debit(goods+" Purchase", t.GST.Basic),
			Debit("Input GST", t.GST.Tax),
			Credit(creditAccount, t.GST.Total),
		}, nil
	}

	amount, err := validate.PositiveAmount(amount, "amount", false)
	if err != nil {
		return nil, err
	}
	return []Posting{
		Debit(goods+" Purchase", amount),
		Credit(creditAccount, amount),
	}, nil
}

// Sales covers cash and credit sales, optionally with a GST split.
type Sales struct {
	Mode     Mode
	Goods    string
	Customer string
	GST      *gst.Split
}

func (t Sales) postings(amount decimal.Decimal) ([]Posting, error) {
	goods := fallback(t.Goods, "Goods")
	debitAccount := "Cash/Bank"
	if t.Mode == ModeCredit {
		debitAccount = fallback(t.Customer, "Debtors")
	}

	if t.GST != nil {
		if err := refuseReverseCharge(t.GST); err != nil {
			return nil, err
		}
		return []Posting{
			Debit(debitAccount, t.GST.Total),
			Credit("To "+goods+" Sales", t.GST.Basic),
			Credit("To Output GST", t.GST.Tax),
		}, nil
	}

	amount, err := validate.PositiveAmount(amount, "amount", false)
	if err != nil {
		return nil, err
	}
	return []Posting{
		Debit(debitAccount, amount),
		Credit("To "+goods+" Sales", amount),
	}, nil
}

// Expense covers expense recognition settled in cash, by bank, or on credit.
type Expense struct {
	Name     string
	Method   Method
	Creditor string
}

func (t Expense) postings(amount decimal.Decimal) ([]Posting, error) {
	amount, err := validate.PositiveAmount(amount, "amount", false)
	if err != nil {
		return nil, err
	}
	creditAccount := "To " + string(t.Method)
	if t.Method == MethodCredit {
		creditAccount = "To " + fallback(t.Creditor, "Creditors")
	}
	return []Posting{
		Debit(fallback(t.Name, "Miscellaneous")+" Expense", amount),
		Credit(creditAccount, amount),
	}, nil
}

// Income covers income received in cash or by bank.
type Income struct {
	Name   string
	Method Method
}

func (t Income) postings(amount decimal.Decimal) ([]Posting, error) {
	amount, err := validate.PositiveAmount(amount, "amount", false)
	if err != nil {
		return nil, err
	}
	return []Posting{
		Debit(string(t.Method), amount),
		Credit("To "+fallback(t.Name, "Miscellaneous Income"), amount),
	}, nil
}

// Capital covers owner-capital introduction and withdrawal. Asset names the
// account the capital moves through, Cash by default.
type Capital struct {
	Kind  CapitalKind
	Asset string
}

func (t Capital) postings(amount decimal.Decimal) ([]Posting, error) {
	amount, err := validate.PositiveAmount(amount, "amount", false)
	if err != nil {
		return nil, err
	}
	asset := fallback(t.Asset, "Cash")
	if t.Kind == CapitalIntroduced || t.Kind == CapitalAdditional {
		return []Posting{
			Debit(asset, amount),
			Credit("To Capital", amount),
		}, nil
	}
	return []Posting{
		Debit("Drawings", amount),
		Credit("To "+asset, amount),
	}, nil
}

// Custom carries caller-supplied postings, typically accumulated in a Draft.
type Custom struct {
	Postings []Posting
}

func (t Custom) postings(decimal.Decimal) ([]Posting, error) {
	out := make([]Posting, len(t.Postings))
	copy(out, t.Postings)
	return out, nil
}

func refuseReverseCharge(split *gst.Split) error {
	if split.ReverseCharge {
		return shared.NewError(shared.KindReverseChargeNotPosted, "gst",
			"reverse charge shifts liability to the recipient; standard postings are not generated")
	}
	return nil
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
