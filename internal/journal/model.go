package journal

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Posting is one line of a double-entry record. Exactly one of Debit and
// Credit is non-zero.
type Posting struct {
	Account string
	Debit   decimal.Decimal
	Credit  decimal.Decimal
}

// Debit builds a debit posting line.
func Debit(account string, amount decimal.Decimal) Posting {
	return Posting{Account: account, Debit: amount}
}

// Credit builds a credit posting line. Credit accounts carry the ledger-book
// "To " prefix at template level, not here.
func Credit(account string, amount decimal.Decimal) Posting {
	return Posting{Account: account, Credit: amount}
}

// Entry is a validated journal entry. Debit lines conventionally precede
// credit lines in Postings.
type Entry struct {
	Ref       uuid.UUID
	Date      time.Time
	Postings  []Posting
	Narration string
}

// TotalDebit sums the debit side of the entry.
func (e Entry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, p := range e.Postings {
		total = total.Add(p.Debit)
	}
	return total
}

// TotalCredit sums the credit side of the entry.
func (e Entry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, p := range e.Postings {
		total = total.Add(p.Credit)
	}
	return total
}
