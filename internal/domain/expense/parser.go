package expense

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayout accepts both padded and unpadded month/day, e.g. 11/1/25
// and 11/16/25.
const dateLayout = "1/2/06"

// ParseExpected converts a free-text block of claimed purchases into
// structured records. Two line formats are accepted:
//
//	11/16/25 - Cheesecake - $138.36
//	11/16/25 - $214.20 - Burger Chan
//
// Whichever of the two trailing fields starts with a dollar sign is the
// price; the other is the vendor. Lines that don't split into exactly
// three hyphen-delimited fields, or whose date or price won't parse,
// are skipped without error. Two known limitations of this grammar are
// kept as-is: a vendor name that itself starts with "$" is read as the
// price field, and a hyphen inside a vendor name (e.g. "Trader Joe's -
// Downtown") breaks the three-field split and drops the line. Callers
// that need stricter behavior must validate the block before parsing.
func ParseExpected(text string) []ExpectedExpense {
	var expenses []ExpectedExpense

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, "-")
		if len(parts) != 3 {
			continue
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		date, err := time.Parse(dateLayout, parts[0])
		if err != nil {
			continue
		}

		var vendor, priceStr string
		if strings.HasPrefix(parts[1], "$") {
			priceStr, vendor = parts[1], parts[2]
		} else {
			vendor, priceStr = parts[1], parts[2]
		}

		price, err := parsePrice(priceStr)
		if err != nil {
			continue
		}

		expenses = append(expenses, ExpectedExpense{
			Date:   date,
			Vendor: vendor,
			Price:  price,
		})
	}

	return expenses
}

// parsePrice strips the currency sign and grouping commas, then parses
// the remainder as a fixed-point decimal ("$1,075.50" -> 1075.50).
func parsePrice(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	return decimal.NewFromString(strings.TrimSpace(s))
}
