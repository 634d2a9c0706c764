// Package ledger fetches the shared purchase spreadsheet and turns its
// rows into ledger entries for reconciliation. The spreadsheet is a
// Google Sheet backed by a purchase form; it is downloaded through the
// xlsx export endpoint and parsed per cardholder.
package ledger

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/xuri/excelize/v2"

	"github.com/bakertreasury/expense-reconciler/internal/domain/expense"
)

// ErrFetch marks failures reaching the spreadsheet export endpoint, as
// opposed to failures interpreting its contents. The API layer maps it
// to an upstream-dependency error.
var ErrFetch = errors.New("spreadsheet fetch failed")

// Client downloads and parses the purchase spreadsheet. Downloads are
// cached for a short TTL so back-to-back reconciles don't refetch the
// whole workbook.
type Client struct {
	httpClient *http.Client
	cache      *gocache.Cache
	worksheet  string
	baseURL    string // export host, overridden in tests
	logger     *slog.Logger
}

// NewClient creates a ledger client reading the named worksheet.
func NewClient(worksheet string, cacheTTL time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cache:      gocache.New(cacheTTL, 2*cacheTTL),
		worksheet:  worksheet,
		baseURL:    "https://docs.google.com",
		logger:     logger,
	}
}

// FetchEntries downloads the spreadsheet behind sheetURL and returns
// the ledger entries for cardholder dated on or after startDate. The
// sheet is scanned bottom-up, so entries come back newest first.
func (c *Client) FetchEntries(ctx context.Context, sheetURL, cardholder string, startDate time.Time) ([]expense.LedgerEntry, error) {
	raw, err := c.fetchWorkbook(ctx, sheetURL)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	entries, err := parseEntries(f, c.worksheet, cardholder, startDate)
	if err != nil {
		return nil, fmt.Errorf("parsing worksheet: %w", err)
	}

	c.logger.Debug("parsed ledger entries",
		"cardholder", cardholder,
		"start_date", startDate.Format(time.DateOnly),
		"entries", len(entries))

	return entries, nil
}

// fetchWorkbook downloads the xlsx export of the sheet, serving from
// cache when a recent copy exists.
func (c *Client) fetchWorkbook(ctx context.Context, sheetURL string) ([]byte, error) {
	id, err := spreadsheetID(sheetURL)
	if err != nil {
		return nil, err
	}

	if cached, ok := c.cache.Get(id); ok {
		return cached.([]byte), nil
	}

	exportURL := fmt.Sprintf("%s/spreadsheets/d/%s/export?format=xlsx", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exportURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building export request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrFetch, resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading export body: %v", ErrFetch, err)
	}

	c.cache.Set(id, raw, gocache.DefaultExpiration)
	c.logger.Debug("fetched spreadsheet export", "spreadsheet_id", id, "bytes", len(raw))

	return raw, nil
}

// spreadsheetID extracts the document ID from a Google Sheets share
// link ("https://docs.google.com/spreadsheets/d/<id>/edit...").
func spreadsheetID(sheetURL string) (string, error) {
	_, rest, found := strings.Cut(sheetURL, "/d/")
	if !found {
		return "", fmt.Errorf("no spreadsheet ID in %q", sheetURL)
	}
	id, _, _ := strings.Cut(rest, "/")
	if id == "" {
		return "", fmt.Errorf("no spreadsheet ID in %q", sheetURL)
	}
	return id, nil
}
