package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lekha-engine/lekha-engine/internal/money"
	"github.com/lekha-engine/lekha-engine/internal/shared"
)

// Draft accumulates postings for a custom entry on behalf of the caller. The
// engine holds no state between calls; a Draft belongs to whoever is building
// the entry and is handed back in full on Finalize.
type Draft struct {
	postings []Posting
}

// NewDraft returns an empty draft.
func NewDraft() *Draft {
	return &Draft{}
}

// Append adds a posting after per-line checks. Balance is only enforced on
// Finalize, so a draft may be transiently unbalanced.
func (d *Draft) Append(p Posting) error {
	if strings.TrimSpace(p.Account) == "" {
		return shared.NewError(shared.KindEmptyAccountName, "account", "account name must not be blank")
	}
	if p.Debit.IsNegative() || p.Credit.IsNegative() {
		return shared.NewError(shared.KindNegative, "amount", "posting amounts cannot be negative")
	}
	if p.Debit.IsZero() == p.Credit.IsZero() {
		return shared.NewError(shared.KindPostingNotOneSided, "amount",
			"a posting must be either a debit line or a credit line")
	}
	d.postings = append(d.postings, p)
	return nil
}

// RemoveAt deletes the posting at index, preserving order.
func (d *Draft) RemoveAt(index int) error {
	if index < 0 || index >= len(d.postings) {
		return fmt.Errorf("journal: posting index %d out of range", index)
	}
	d.postings = append(d.postings[:index], d.postings[index+1:]...)
	return nil
}

// Len reports the number of accumulated postings.
func (d *Draft) Len() int {
	return len(d.postings)
}

// Postings returns a copy of the accumulated lines.
func (d *Draft) Postings() []Posting {
	out := make([]Posting, len(d.postings))
	copy(out, d.postings)
	return out
}

// Totals returns the running debit and credit sums.
func (d *Draft) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, p := range d.postings {
		debit = debit.Add(p.Debit)
		credit = credit.Add(p.Credit)
	}
	return debit, credit
}

// Balanced reports whether the running totals agree within tolerance.
func (d *Draft) Balanced() bool {
	debit, credit := d.Totals()
	return money.EqualWithin(debit, credit)
}

// Finalize validates the accumulated postings and, on success, drains the
// draft and returns the built entry. On failure the draft is left intact for
// correction.
func (d *Draft) Finalize(date time.Time, narration string) (Entry, error) {
	entry, err := Build(date, decimal.Zero, narration, Custom{Postings: d.postings})
	if err != nil {
		return Entry{}, err
	}
	d.postings = nil
	return entry, nil
}
