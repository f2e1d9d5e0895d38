// Package cli implements the terminal shell over the calculation engine. All
// rendering, logging, and input parsing happens here; the engine packages
// stay silent and stateless.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/lekha-engine/lekha-engine/internal/journal"
	"github.com/lekha-engine/lekha-engine/internal/money"
	"github.com/lekha-engine/lekha-engine/internal/shared"
)

const dateLayout = "2006-01-02"

// check validates command options before the engine re-validates field
// values on its own terms.
var check = validator.New()

func renderSteps(w io.Writer, title string, labels []string, amounts []decimal.Decimal, showSymbol bool) {
	fmt.Fprintln(w, title)
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	for i, label := range labels {
		fmt.Fprintf(tw, "  %s\t%s\n", label, money.Format(amounts[i], showSymbol))
	}
	tw.Flush()
}

func renderEntry(w io.Writer, entry journal.Entry, showSymbol bool) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Date\tParticulars\tDr Amount\tCr Amount\n")
	for i, p := range entry.Postings {
		date := ""
		if i == 0 {
			date = entry.Date.Format("02-01-2006")
		}
		dr, cr := "", ""
		if p.Debit.IsPositive() {
			dr = money.Format(p.Debit, showSymbol)
		}
		if p.Credit.IsPositive() {
			cr = money.Format(p.Credit, showSymbol)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", date, p.Account, dr, cr)
	}
	if entry.Narration != "" {
		fmt.Fprintf(tw, "\t(%s)\t\t\n", entry.Narration)
	}
	fmt.Fprintf(tw, "\tTOTAL\t%s\t%s\n",
		money.Format(entry.TotalDebit(), showSymbol),
		money.Format(entry.TotalCredit(), showSymbol))
	tw.Flush()
}

func reportError(w io.Writer, err error) int {
	switch {
	case shared.IsDefect(err):
		fmt.Fprintf(w, "internal error: %v\n", err)
		return 2
	default:
		fmt.Fprintf(w, "error: %v\n", err)
		return 1
	}
}

func parseDate(raw string, now func() time.Time) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return now(), nil
	}
	return time.Parse(dateLayout, strings.TrimSpace(raw))
}
