package ledger

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSheetURL = "https://docs.google.com/spreadsheets/d/test-sheet/edit#gid=0"

// newTestClient points a client at a stub export server.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(testWorksheet, time.Minute, nil)
	c.baseURL = srv.URL
	return c
}

func workbookBytes(t *testing.T, rows []purchaseRow) []byte {
	t.Helper()

	f := buildWorkbook(t, rows)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestClient_FetchEntries(t *testing.T) {
	raw := workbookBytes(t, []purchaseRow{{
		timestamp:  "2025-11-03 09:00:00",
		vendor:     "Target",
		amount:     "9.99",
		cardholder: "Gavin Firestone (Treasurer)",
	}})

	var requests atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "/spreadsheets/d/test-sheet/export", r.URL.Path)
		assert.Equal(t, "xlsx", r.URL.Query().Get("format"))
		_, _ = w.Write(raw)
	})

	entries, err := c.FetchEntries(context.Background(), testSheetURL, "Gavin Firestone (Treasurer)", november(1))

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Target", entries[0].Vendor)
	assert.Equal(t, int32(1), requests.Load())
}

func TestClient_CachesDownloads(t *testing.T) {
	raw := workbookBytes(t, []purchaseRow{{
		timestamp:  "2025-11-03 09:00:00",
		vendor:     "Target",
		amount:     "9.99",
		cardholder: "Gavin Firestone (Treasurer)",
	}})

	var requests atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write(raw)
	})

	for i := 0; i < 3; i++ {
		_, err := c.FetchEntries(context.Background(), testSheetURL, "Gavin Firestone (Treasurer)", november(1))
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), requests.Load(), "repeat fetches within the TTL should hit the cache")
}

func TestClient_FetchErrorIsDistinguished(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "forbidden", http.StatusForbidden)
		})

		_, err := c.FetchEntries(context.Background(), testSheetURL, "anyone", november(1))

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrFetch))
	})

	t.Run("unreachable host", func(t *testing.T) {
		c := NewClient(testWorksheet, time.Minute, nil)
		c.baseURL = "http://127.0.0.1:1"

		_, err := c.FetchEntries(context.Background(), testSheetURL, "anyone", november(1))

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrFetch))
	})
}

func TestClient_BadWorkbookIsNotAFetchError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not an xlsx file"))
	})

	_, err := c.FetchEntries(context.Background(), testSheetURL, "anyone", november(1))

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrFetch))
}

func TestClient_RejectsNonSheetURL(t *testing.T) {
	c := NewClient(testWorksheet, time.Minute, nil)

	_, err := c.FetchEntries(context.Background(), "https://example.com/budget.xlsx", "anyone", november(1))

	assert.Error(t, err)
}
