// Package affidavit renders the signed missing-receipt affidavit PDF
// the college requires for ledger entries that have no receipt on
// file.
package affidavit

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

const statementText = "I certify that the expense(s) listed below were incurred for official " +
	"college business, that no receipt or other record of the transaction is " +
	"available, and that no reimbursement for these expense(s) has been or will " +
	"be claimed elsewhere."

// now is stubbed in tests so the signature date is stable.
var now = time.Now

// Generate renders a one-page missing-receipt affidavit. The signature
// line carries the cardholder's first and last name only, with any
// role suffix like "(Treasurer)" stripped.
func Generate(vendor string, price decimal.Decimal, date time.Time, cardholder string) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(54, 72, 54)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 24, "MISSING RECEIPT AFFIDAVIT", "", 1, "C", false, 0, "")
	pdf.Ln(24)

	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, 18, statementText, "", "L", false)
	pdf.Ln(24)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 18, "Receipt detail(s):", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 14)
	details := fmt.Sprintf("%s, $%s, %s", vendor, price.StringFixed(2), date.Format("01/02/2006"))
	pdf.CellFormat(0, 22, details, "B", 1, "L", false, 0, "")
	pdf.Ln(60)

	// Oblique stands in for a cursive signature face.
	pdf.SetFont("Helvetica", "I", 16)
	pdf.CellFormat(280, 22, signatoryName(cardholder), "B", 0, "L", false, 0, "")
	pdf.SetX(360)
	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(160, 22, now().Format("01/02/2006"), "B", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(280, 16, "Signature", "", 0, "L", false, 0, "")
	pdf.SetX(360)
	pdf.CellFormat(160, 16, "Date", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering affidavit: %w", err)
	}
	return &buf, nil
}

// signatoryName keeps the first two words of the cardholder name:
// "Gavin Firestone (Treasurer)" -> "Gavin Firestone".
func signatoryName(cardholder string) string {
	words := strings.Fields(cardholder)
	if len(words) < 2 {
		return strings.TrimSpace(cardholder)
	}
	return words[0] + " " + words[1]
}

// Filename builds the download filename for an affidavit:
// "affidavit_Burger_Chan_2025-11-16.pdf".
func Filename(vendor string, date time.Time) string {
	return fmt.Sprintf("affidavit_%s_%s.pdf",
		strings.ReplaceAll(vendor, " ", "_"),
		date.Format(time.DateOnly))
}
