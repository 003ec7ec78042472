// Package client is the HTTP consumer of the lithology API: one request per
// invocation, no retry, no background refresh.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"litholog/models"
	"litholog/view"
)

// Client fetches the entry collection from a litholog server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the given server base URL (e.g.
// "http://localhost:8000").
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// FetchEntries issues a single GET against /api/lithology and decodes the
// response. A non-200 status or malformed body is an error; a well-formed body
// that is not an array counts as zero entries.
func (c *Client) FetchEntries(ctx context.Context) ([]models.Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/lithology", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	var entries []models.Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			if typeErr.Field == "" && entries == nil {
				// Valid JSON that is not an array at all: treat as no logs
				// rather than a failure.
				return nil, nil
			}
			// A mistyped field inside a valid array only blanks that field;
			// the rest of the catalog decoded and placeholders cover the gap.
			return entries, nil
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return entries, nil
}

// LoadPage runs the full pipeline: fetch, filter, classify, format. Fetch
// failures become the error state; everything else maps onto success or empty.
func (c *Client) LoadPage(ctx context.Context) view.Page {
	entries, err := c.FetchEntries(ctx)
	if err != nil {
		return view.ErrorPage(err)
	}
	return view.BuildPage(entries)
}
