// Package journal assembles and validates double-entry postings. Templates
// for the closed transaction archetypes live on the Transaction variants;
// Build dispatches to them and enforces the double-entry law before an Entry
// leaves this package.
package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lekha-engine/lekha-engine/internal/money"
	"github.com/lekha-engine/lekha-engine/internal/shared"
)

// Build produces a validated entry for the transaction. GST-bearing
// archetypes take their amounts from the attached split and ignore amount;
// every other archetype posts the given amount.
func Build(date time.Time, amount decimal.Decimal, narration string, tx Transaction) (Entry, error) {
	postings, err := tx.postings(amount)
	if err != nil {
		return Entry{}, err
	}
	if err := Validate(postings); err != nil {
		return Entry{}, err
	}
	return Entry{
		Ref:       uuid.New(),
		Date:      date,
		Postings:  postings,
		Narration: narration,
	}, nil
}

// Validate enforces the posting invariants: at least one line, a non-blank
// account per line, no negative amounts, exactly one side per line, and
// debit and credit totals equal within tolerance. An imbalance is reported,
// never corrected.
func Validate(postings []Posting) error {
	if len(postings) == 0 {
		return shared.NewError(shared.KindNoPostings, "postings", "at least one posting is required")
	}

	debit := decimal.Zero
	credit := decimal.Zero
	for idx, p := range postings {
		field := fmt.Sprintf("postings[%d]", idx)
		if strings.TrimSpace(p.Account) == "" {
			return shared.NewError(shared.KindEmptyAccountName, field, "account name must not be blank")
		}
		if p.Debit.IsNegative() || p.Credit.IsNegative() {
			return shared.NewError(shared.KindNegative, field, "posting amounts cannot be negative")
		}
		if p.Debit.IsZero() == p.Credit.IsZero() {
			return shared.NewError(shared.KindPostingNotOneSided, field,
				"a posting must be either a debit line or a credit line")
		}
		debit = debit.Add(p.Debit)
		credit = credit.Add(p.Credit)
	}

	if !money.EqualWithin(debit, credit) {
		return shared.NewError(shared.KindUnbalanced, "postings",
			fmt.Sprintf("debits %s do not equal credits %s (off by %s)",
				debit, credit, debit.Sub(credit).Abs()))
	}
	return nil
}
