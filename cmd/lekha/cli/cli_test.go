package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	_ "github.com/lekha-engine/lekha-engine/testing"
)

func TestSolveCommandRendersWorkedSolution(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	code := SolveCommand(SolveOptions{
		Liabilities: "50000",
		Capital:     "150000",
		ShowSymbol:  true,
		Stdout:      stdout,
		Stderr:      stderr,
	})
	require.Equal(t, 0, code, stderr.String())
	require.Contains(t, stdout.String(), "₹2 L")
	require.Contains(t, stdout.String(), "Assets = Liabilities + Adjusted Capital")
}

func TestSolveCommandInsufficientValues(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	code := SolveCommand(SolveOptions{
		Assets: "100000",
		Stdout: stdout,
		Stderr: stderr,
	})
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "at least two")
}

func TestSolveCommandInconsistentTermsIsInternalFailure(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	code := SolveCommand(SolveOptions{
		Assets:      "300000",
		Liabilities: "50000",
		Capital:     "150000",
		Stdout:      stdout,
		Stderr:      stderr,
	})
	require.Equal(t, 2, code)
	require.Contains(t, stderr.String(), "internal error")
}

func TestGSTCommandIntrastate(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	code := GSTCommand(GSTOptions{
		Amount:     "1000",
		Rate:       "18",
		ShowSymbol: true,
		Stdout:     stdout,
		Stderr:     stderr,
	})
	require.Equal(t, 0, code, stderr.String())
	require.Contains(t, stdout.String(), "CGST (50%)")
	require.Contains(t, stdout.String(), "₹90")
	require.Contains(t, stdout.String(), "₹1,180")
	require.Contains(t, stdout.String(), "Intrastate")
}

func TestGSTCommandRejectsOffScheduleRate(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	code := GSTCommand(GSTOptions{
		Amount: "1000",
		Rate:   "15",
		Stdout: stdout,
		Stderr: stderr,
	})
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "valid rates")
}

func TestJournalCommandPurchaseWithGST(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	code := JournalCommand(JournalOptions{
		Type:       "purchase",
		Mode:       "credit",
		Party:      "Ramesh Traders",
		Amount:     "1180",
		WithGST:    true,
		Rate:       "18",
		Narration:  "goods purchased on credit",
		ShowSymbol: true,
		Now:        func() time.Time { return time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC) },
		Stdout:     stdout,
		Stderr:     stderr,
	})
	require.Equal(t, 0, code, stderr.String())
	require.Contains(t, stdout.String(), "01-04-2026")
	require.Contains(t, stdout.String(), "Input GST")
	require.Contains(t, stdout.String(), "To Ramesh Traders")
	require.Contains(t, stdout.String(), "Balanced")
}

func TestJournalCommandRequiresAmount(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	code := JournalCommand(JournalOptions{
		Type:   "sales",
		Stdout: stdout,
		Stderr: stderr,
	})
	require.Equal(t, 1, code)
	require.NotEmpty(t, stderr.String())
}

func TestJournalCommandReverseChargeRefused(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	code := JournalCommand(JournalOptions{
		Type:          "sales",
		Mode:          "cash",
		Amount:        "1180",
		WithGST:       true,
		Rate:          "18",
		ReverseCharge: true,
		Stdout:        stdout,
		Stderr:        stderr,
	})
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "reverse charge")
}
