package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/lekha-engine/lekha-engine/cmd/lekha/cli"
	"github.com/lekha-engine/lekha-engine/internal/app"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	logger := app.NewLogger(cfg)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var code int
	switch os.Args[1] {
	case "solve":
		code = runSolve(cfg, os.Args[2:])
	case "gst":
		code = runGST(cfg, os.Args[2:])
	case "journal":
		code = runJournal(cfg, os.Args[2:])
	default:
		usage()
		code = 1
	}
	if code != 0 {
		logger.Debug("command failed", "command", os.Args[1], "exit", code)
	}
	os.Exit(code)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: lekha <solve|gst|journal> [flags]")
}

func runSolve(cfg *app.Config, args []string) int {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	opts := cli.SolveOptions{ShowSymbol: cfg.ShowSymbol, Stdout: os.Stdout, Stderr: os.Stderr}
	fs.StringVar(&opts.Assets, "assets", "", "total assets, omit if unknown")
	fs.StringVar(&opts.Liabilities, "liabilities", "", "total liabilities, omit if unknown")
	fs.StringVar(&opts.Capital, "capital", "", "owner's capital, omit if unknown")
	fs.StringVar(&opts.Drawings, "drawings", "", "drawings")
	fs.StringVar(&opts.AdditionalCapital, "additional-capital", "", "additional capital")
	fs.StringVar(&opts.ProfitOrLoss, "profit", "", "profit, negative for a loss")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	return cli.SolveCommand(opts)
}

func runGST(cfg *app.Config, args []string) int {
	fs := flag.NewFlagSet("gst", flag.ExitOnError)
	opts := cli.GSTOptions{ShowSymbol: cfg.ShowSymbol, Stdout: os.Stdout, Stderr: os.Stderr}
	fs.StringVar(&opts.Amount, "amount", "", "transaction amount")
	fs.StringVar(&opts.Rate, "rate", strconv.Itoa(cfg.DefaultGSTRate), "GST rate percent")
	fs.BoolVar(&opts.Inclusive, "inclusive", false, "amount is GST inclusive")
	fs.BoolVar(&opts.Interstate, "interstate", false, "interstate transaction")
	fs.StringVar(&opts.FromState, "from-state", "", "supplier state")
	fs.StringVar(&opts.ToState, "to-state", "", "recipient state")
	fs.BoolVar(&opts.ReverseCharge, "reverse-charge", false, "reverse charge mechanism")
	fs.StringVar(&opts.HSNCode, "hsn", "", "HSN/SAC code")
	fs.StringVar(&opts.Description, "description", "", "item description")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	return cli.GSTCommand(opts)
}

func runJournal(cfg *app.Config, args []string) int {
	fs := flag.NewFlagSet("journal", flag.ExitOnError)
	opts := cli.JournalOptions{ShowSymbol: cfg.ShowSymbol, Stdout: os.Stdout, Stderr: os.Stderr}
	fs.StringVar(&opts.Type, "type", "", "cashbank, purchase, sales, expense, income or capital")
	fs.StringVar(&opts.Date, "date", "", "entry date (2006-01-02), defaults to today")
	fs.StringVar(&opts.Amount, "amount", "", "transaction amount")
	fs.StringVar(&opts.Narration, "narration", "", "narration")
	fs.StringVar(&opts.Medium, "medium", "cash", "cash or bank")
	fs.StringVar(&opts.Nature, "nature", "receipt", "receipt or payment")
	fs.StringVar(&opts.Counterparty, "counterparty", "", "received from or paid to")
	fs.StringVar(&opts.Mode, "mode", "cash", "cash or credit")
	fs.StringVar(&opts.Goods, "goods", "", "goods or service name")
	fs.StringVar(&opts.Party, "party", "", "supplier, customer or creditor name")
	fs.StringVar(&opts.Method, "method", "cash", "cash, bank or credit")
	fs.StringVar(&opts.Name, "name", "", "expense or income name")
	fs.StringVar(&opts.Kind, "kind", "introduced", "introduced, additional, drawings or withdrawal")
	fs.StringVar(&opts.Asset, "asset", "", "asset account for capital movements")
	fs.BoolVar(&opts.WithGST, "gst", false, "derive GST postings from the amount")
	fs.StringVar(&opts.Rate, "rate", strconv.Itoa(cfg.DefaultGSTRate), "GST rate percent")
	fs.BoolVar(&opts.Interstate, "interstate", false, "interstate transaction")
	fs.StringVar(&opts.FromState, "from-state", "", "supplier state")
	fs.StringVar(&opts.ToState, "to-state", "", "recipient state")
	fs.BoolVar(&opts.ReverseCharge, "reverse-charge", false, "reverse charge mechanism")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	return cli.JournalCommand(opts)
}
