package ledger

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const testWorksheet = "Purchases 2023-2024"

// purchaseRow mirrors the columns the parser reads.
type purchaseRow struct {
	timestamp  string
	vendor     string
	amount     string
	receipts   string
	name       string
	budget     string
	endowment  string
	cardholder string
	flyer      string
	items      string
	event      string
}

func buildWorkbook(t *testing.T, rows []purchaseRow) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", testWorksheet))
	t.Cleanup(func() { _ = f.Close() })

	require.NoError(t, f.SetCellValue(testWorksheet, "A1", "Timestamp"))

	for i, row := range rows {
		n := i + 2 // header is row 1
		cells := map[string]string{
			"A": row.timestamp,
			"B": row.vendor,
			"C": row.amount,
			"D": row.receipts,
			"E": row.name,
			"F": row.budget,
			"G": row.endowment,
			"J": row.cardholder,
			"L": row.flyer,
			"M": row.items,
			"N": row.event,
		}
		for col, val := range cells {
			if val != "" {
				require.NoError(t, f.SetCellValue(testWorksheet, fmt.Sprintf("%s%d", col, n), val))
			}
		}
	}

	return f
}

func november(d int) time.Time {
	return time.Date(2025, time.November, d, 0, 0, 0, 0, time.UTC)
}

func TestParseEntries_BuildsEntry(t *testing.T) {
	f := buildWorkbook(t, []purchaseRow{{
		timestamp:  "2025-11-16 10:04:00",
		vendor:     "Cheesecake Factory",
		amount:     "$138.36",
		receipts:   "receipt1.pdf, receipt2.pdf",
		name:       "Jordan Li",
		budget:     "Socials",
		cardholder: "Gavin Firestone (Treasurer)",
		flyer:      "flyer.png",
		items:      "Dinner for retreat",
		event:      "Fall Social",
	}})

	entries, err := parseEntries(f, testWorksheet, "Gavin Firestone (Treasurer)", november(1))

	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, november(16), e.Date)
	assert.Equal(t, "Cheesecake Factory", e.Vendor)
	assert.True(t, e.Price.Equal(decimal.RequireFromString("138.36")))
	assert.Equal(t, "Jordan Li | Baker College | 11/16/2025 | Fall Social | Dinner for retreat | Socials", e.Description)
	assert.Equal(t, "4600", e.Activity)
	assert.Equal(t, []string{"receipt1.pdf", "receipt2.pdf"}, e.Receipts)
	assert.Equal(t, "flyer.png", e.Flyer)
}

func TestParseEntries_FiltersByCardholder(t *testing.T) {
	f := buildWorkbook(t, []purchaseRow{
		{timestamp: "2025-11-10 09:00:00", vendor: "Target", amount: "9.99", cardholder: "Gavin Firestone (Treasurer)"},
		{timestamp: "2025-11-11 09:00:00", vendor: "HEB", amount: "26.80", cardholder: "Someone Else (President)"},
	})

	entries, err := parseEntries(f, testWorksheet, "Gavin Firestone (Treasurer)", november(1))

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Target", entries[0].Vendor)
}

func TestParseEntries_StopsAtStartDate(t *testing.T) {
	// Rows are chronological top to bottom; the scan runs bottom-up and
	// must stop at the first row before the start date, even if older
	// rows for the cardholder exist above it.
	f := buildWorkbook(t, []purchaseRow{
		{timestamp: "2025-10-20 09:00:00", vendor: "Old Purchase", amount: "5.00", cardholder: "Gavin Firestone (Treasurer)"},
		{timestamp: "2025-11-03 09:00:00", vendor: "Target", amount: "9.99", cardholder: "Gavin Firestone (Treasurer)"},
		{timestamp: "2025-11-09 09:00:00", vendor: "Target", amount: "40.81", cardholder: "Gavin Firestone (Treasurer)"},
	})

	entries, err := parseEntries(f, testWorksheet, "Gavin Firestone (Treasurer)", november(1))

	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Bottom-up scan: newest first.
	assert.Equal(t, november(9), entries[0].Date)
	assert.Equal(t, november(3), entries[1].Date)
}

func TestParseEntries_SkipsRowsWithoutTimestamp(t *testing.T) {
	f := buildWorkbook(t, []purchaseRow{
		{timestamp: "2025-11-03 09:00:00", vendor: "Target", amount: "9.99", cardholder: "Gavin Firestone (Treasurer)"},
		{vendor: "No Timestamp", amount: "1.00", cardholder: "Gavin Firestone (Treasurer)"},
	})

	entries, err := parseEntries(f, testWorksheet, "Gavin Firestone (Treasurer)", november(1))

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Target", entries[0].Vendor)
}

func TestParseEntries_OtherBudgetAppendsEndowment(t *testing.T) {
	f := buildWorkbook(t, []purchaseRow{{
		timestamp:  "2025-11-05 09:00:00",
		vendor:     "Custom Ink",
		amount:     "1,075.50",
		name:       "Jordan Li",
		budget:     "Other",
		endowment:  "Class of 1998 Endowment",
		cardholder: "Gavin Firestone (Treasurer)",
		items:      "Shirts",
		event:      "Merch Drop",
	}})

	entries, err := parseEntries(f, testWorksheet, "Gavin Firestone (Treasurer)", november(1))

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Price.Equal(decimal.RequireFromString("1075.50")))
	assert.Contains(t, entries[0].Description, "Class of 1998 Endowment")
	assert.Equal(t, "", entries[0].Activity, "unmapped budget has no program number")
}

func TestParseEntries_MalformedAmount(t *testing.T) {
	f := buildWorkbook(t, []purchaseRow{{
		timestamp:  "2025-11-05 09:00:00",
		vendor:     "Target",
		amount:     "nine dollars",
		cardholder: "Gavin Firestone (Treasurer)",
	}})

	_, err := parseEntries(f, testWorksheet, "Gavin Firestone (Treasurer)", november(1))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unparsable amount")
}

func TestParseEntries_MalformedTimestamp(t *testing.T) {
	f := buildWorkbook(t, []purchaseRow{{
		timestamp:  "sometime in november",
		vendor:     "Target",
		amount:     "9.99",
		cardholder: "Gavin Firestone (Treasurer)",
	}})

	_, err := parseEntries(f, testWorksheet, "Gavin Firestone (Treasurer)", november(1))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized timestamp")
}

func TestParseEntries_EmptyReceiptsCell(t *testing.T) {
	f := buildWorkbook(t, []purchaseRow{{
		timestamp:  "2025-11-05 09:00:00",
		vendor:     "Target",
		amount:     "9.99",
		cardholder: "Gavin Firestone (Treasurer)",
	}})

	entries, err := parseEntries(f, testWorksheet, "Gavin Firestone (Treasurer)", november(1))

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Receipts)
	assert.NotNil(t, entries[0].Receipts)
}

func TestSpreadsheetID(t *testing.T) {
	t.Run("share link", func(t *testing.T) {
		id, err := spreadsheetID("https://docs.google.com/spreadsheets/d/1DVerqZwwyPQY0aLVS2PI/edit?gid=0#gid=0")
		require.NoError(t, err)
		assert.Equal(t, "1DVerqZwwyPQY0aLVS2PI", id)
	})

	t.Run("bare link", func(t *testing.T) {
		id, err := spreadsheetID("https://docs.google.com/spreadsheets/d/abc123/")
		require.NoError(t, err)
		assert.Equal(t, "abc123", id)
	})

	t.Run("not a sheets link", func(t *testing.T) {
		_, err := spreadsheetID("https://example.com/whatever")
		assert.Error(t, err)
	})
}
