// Command reconciler runs a one-shot reconciliation from the terminal
// and prints a human-readable report.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bakertreasury/expense-reconciler/internal/adapters/ledger"
	"github.com/bakertreasury/expense-reconciler/internal/domain/expense"
	"github.com/bakertreasury/expense-reconciler/internal/domain/reconciler"
	"github.com/bakertreasury/expense-reconciler/internal/domain/similarity"
	"github.com/bakertreasury/expense-reconciler/internal/infrastructure/config"
	"github.com/bakertreasury/expense-reconciler/internal/infrastructure/logging"
)

const divider = "================================================================================"

func main() {
	sheetURL := flag.String("sheet", "", "Google Sheets share link of the purchase spreadsheet (required)")
	cardholder := flag.String("cardholder", "", "Cardholder name to filter purchases by (required)")
	startStr := flag.String("start", "", "Start date for the reconciliation window (YYYY-MM-DD) (required)")
	expectedPath := flag.String("expected", "-", "Path to the expected-expenses text file, or - for stdin")
	tolerance := flag.Float64("tolerance", 1.00, "Maximum price difference for a fuzzy match")
	threshold := flag.Float64("threshold", 0.75, "Minimum vendor similarity for a fuzzy match, in [0, 1]")
	flag.Parse()

	if *sheetURL == "" || *cardholder == "" || *startStr == "" {
		fmt.Fprintln(os.Stderr, "Error: -sheet, -cardholder, and -start are required.")
		flag.Usage()
		os.Exit(1)
	}
	if *tolerance < 0 || *threshold < 0 || *threshold > 1 {
		log.Fatal("tolerance must be non-negative and threshold in [0, 1]")
	}

	startDate, err := time.Parse(time.DateOnly, *startStr)
	if err != nil {
		log.Fatalf("Error parsing start date: %v", err)
	}

	expectedText, err := readExpected(*expectedPath)
	if err != nil {
		log.Fatalf("Error reading expected expenses: %v", err)
	}

	cfg := config.LoadFromEnv()
	logger := logging.NewLogger(cfg.Logging)

	client := ledger.NewClient(cfg.Ledger.Worksheet, time.Duration(cfg.Ledger.CacheTTLMinutes)*time.Minute, logger)

	fmt.Println("Parsing spreadsheet...")
	entries, err := client.FetchEntries(context.Background(), *sheetURL, *cardholder, startDate)
	if err != nil {
		log.Fatalf("ERROR parsing spreadsheet: %v", err)
	}
	fmt.Printf("Found %d actual expenses\n\n", len(entries))

	fmt.Println("Reconciling expenses...")
	expected := expense.ParseExpected(expectedText)
	result := reconciler.Reconcile(expected, entries, reconciler.Config{
		PriceTolerance:      decimal.NewFromFloat(*tolerance),
		SimilarityThreshold: *threshold,
	})

	printReport(result)
}

func readExpected(path string) (string, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	return string(raw), err
}

func printReport(result reconciler.Result) {
	fmt.Println("\n" + divider)
	fmt.Println("MATCHED EXPENSES")
	fmt.Println(divider)

	if len(result.Matched) == 0 {
		fmt.Println("\nNo matches found")
	}
	for i, pair := range result.Matched {
		fmt.Printf("\n[Match %d]\n", i+1)
		fmt.Printf("  Expected: %s | %-30s | $%8s\n",
			pair.Expected.Date.Format(time.DateOnly), pair.Expected.Vendor, pair.Expected.Price.StringFixed(2))
		fmt.Println("  Actual:")
		printEntry(pair.Actual, "    ")
		fmt.Printf("  Vendor similarity: %.2f%%\n", similarity.Score(pair.Expected.Vendor, pair.Actual.Vendor)*100)
	}

	fmt.Println("\n" + divider)
	fmt.Println("MISSING EXPECTED EXPENSES")
	fmt.Println(divider)

	if len(result.UnmatchedExpected) == 0 {
		fmt.Println("\nAll expected expenses matched!")
	}
	for i, exp := range result.UnmatchedExpected {
		fmt.Printf("\n[Missing %d]\n", i+1)
		fmt.Printf("  Date:   %s\n", exp.Date.Format(time.DateOnly))
		fmt.Printf("  Vendor: %s\n", exp.Vendor)
		fmt.Printf("  Price:  $%s\n", exp.Price.StringFixed(2))
	}

	fmt.Println("\n" + divider)
	fmt.Println("EXTRA ACTUAL EXPENSES")
	fmt.Println(divider)

	if len(result.UnmatchedActual) == 0 {
		fmt.Println("\nNo extra actual expenses")
	}
	for i, act := range result.UnmatchedActual {
		fmt.Printf("\n[Extra %d]\n", i+1)
		printEntry(act, "  ")
	}

	fmt.Println("\n" + divider)
	fmt.Println("SUMMARY")
	fmt.Println(divider)
	fmt.Printf("Matched:             %d\n", len(result.Matched))
	fmt.Printf("Unmatched expected:  %d\n", len(result.UnmatchedExpected))
	fmt.Printf("Unmatched actual:    %d\n", len(result.UnmatchedActual))
	fmt.Println()
}

func printEntry(e expense.LedgerEntry, indent string) {
	fmt.Printf("%sDate:        %s\n", indent, e.Date.Format(time.DateOnly))
	fmt.Printf("%sVendor:      %s\n", indent, e.Vendor)
	fmt.Printf("%sPrice:       $%s\n", indent, e.Price.StringFixed(2))
	fmt.Printf("%sDescription: %s\n", indent, e.Description)
	fmt.Printf("%sActivity:    %s\n", indent, e.Activity)
	fmt.Printf("%sReceipts:\n", indent)
	if len(e.Receipts) == 0 {
		fmt.Printf("%s  (none)\n", indent)
	}
	for _, receipt := range e.Receipts {
		fmt.Printf("%s  - %s\n", indent, receipt)
	}
	fmt.Printf("%sFlyer:       %s\n", indent, e.Flyer)
}
