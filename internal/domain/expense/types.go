// Package expense defines the records flowing through reconciliation:
// the treasurer's claimed purchases and the entries pulled from the
// shared purchase ledger.
package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpectedExpense is one claimed purchase from the treasurer's
// free-text expense list, before verification against the ledger.
type ExpectedExpense struct {
	Date   time.Time
	Vendor string
	Price  decimal.Decimal
}

// LedgerEntry is a purchase as recorded in the shared purchase
// spreadsheet, normalized by the ledger gateway. Description, Activity,
// Receipts, and Flyer are passed through to the report untouched;
// matching only looks at Date, Price, and Vendor.
type LedgerEntry struct {
	Description string
	Activity    string
	Date        time.Time
	Price       decimal.Decimal
	Vendor      string
	Receipts    []string
	Flyer       string
}
