package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/bakertreasury/expense-reconciler/internal/domain/expense"
)

// Worksheet column positions (0-based) in the purchase form responses.
const (
	colTimestamp  = 0  // A: form submission timestamp
	colVendor     = 1  // B: merchant name
	colAmount     = 2  // C: purchase amount
	colReceipts   = 3  // D: comma-separated receipt filenames
	colName       = 4  // E: purchaser name
	colBudget     = 5  // F: budget category
	colEndowment  = 6  // G: endowment detail when budget is "Other"
	colCardholder = 9  // J: p-card holder
	colFlyer      = 11 // L: flyer link
	colItems      = 12 // M: items purchased
	colEvent      = 13 // N: event name
)

// parseEntries walks the purchases worksheet bottom-up, skipping the
// header row, and builds ledger entries for the given cardholder. Rows
// are assumed newest-last, so the scan stops at the first row dated
// before startDate. A malformed timestamp or amount aborts the parse
// with an error rather than silently dropping the row: the sheet is the
// source of truth being audited against.
func parseEntries(f *excelize.File, worksheet, cardholder string, startDate time.Time) ([]expense.LedgerEntry, error) {
	rows, err := f.GetRows(worksheet)
	if err != nil {
		return nil, fmt.Errorf("reading worksheet %q: %w", worksheet, err)
	}

	entries := make([]expense.LedgerEntry, 0)

	for i := len(rows) - 1; i >= 1; i-- {
		row := rows[i]

		timestamp := cell(row, colTimestamp)
		if timestamp == "" {
			continue
		}

		rowDate, err := parseRowDate(timestamp)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if rowDate.Before(startDate) {
			break
		}

		if cell(row, colCardholder) != cardholder {
			continue
		}

		price, err := parseAmount(cell(row, colAmount))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		budget := cell(row, colBudget)
		descriptionParts := []string{
			cell(row, colName),
			"Baker College",
			rowDate.Format("01/02/2006"),
			cell(row, colEvent),
			cell(row, colItems),
			budget,
		}
		if endowment := cell(row, colEndowment); budget == "Other" && endowment != "" {
			descriptionParts = append(descriptionParts, endowment)
		}

		entries = append(entries, expense.LedgerEntry{
			Description: strings.Join(descriptionParts, " | "),
			Activity:    activityFor(budget),
			Date:        rowDate,
			Price:       price,
			Vendor:      cell(row, colVendor),
			Receipts:    splitReceipts(cell(row, colReceipts)),
			Flyer:       cell(row, colFlyer),
		})
	}

	return entries, nil
}

// cell returns the trimmed value at idx, tolerating the short rows
// GetRows produces when trailing cells are empty.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRowDate extracts the date portion of a form timestamp. The
// sheet stores timestamps as "YYYY-MM-DD HH:MM:SS"; cells reformatted
// by hand occasionally show up as "M/D/YYYY" instead.
func parseRowDate(value string) (time.Time, error) {
	datePart, _, _ := strings.Cut(value, " ")

	for _, layout := range []string{"2006-01-02", "1/2/2006", "1/2/06"} {
		if d, err := time.Parse(layout, datePart); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// parseAmount parses a purchase amount cell, tolerating a currency
// sign and grouping commas.
func parseAmount(value string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(value, "$", ""), ",", ""))
	price, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("unparsable amount %q", value)
	}
	return price, nil
}

// splitReceipts splits a comma-separated receipt cell into filenames,
// dropping empties.
func splitReceipts(value string) []string {
	if value == "" {
		return []string{}
	}

	receipts := make([]string, 0)
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			receipts = append(receipts, part)
		}
	}
	return receipts
}
