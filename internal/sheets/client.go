// Package sheets fetches the journal spreadsheet through the Google Sheets
// gviz export endpoint.
package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/rs/zerolog"

	"github.com/rgleason/trading-journal/internal/gviz"
)

var sheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// ConfigError means the sheet URL is absent or unusable. It is raised before
// any network call.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("sheet configuration: %s", e.Reason)
}

// NetworkError is a transport-level load failure. It carries a retryable
// implication but the client performs no retries itself.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("sheet fetch: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ExtractSheetID pulls the spreadsheet id out of a user-supplied URL. Both
// edit and view URLs work.
func ExtractSheetID(sheetURL string) (string, error) {
	if sheetURL == "" {
		return "", &ConfigError{Reason: "sheet URL is not set"}
	}
	matches := sheetIDPattern.FindStringSubmatch(sheetURL)
	if matches == nil {
		return "", &ConfigError{Reason: "sheet URL has no spreadsheet id"}
	}
	return matches[1], nil
}

// Client fetches and decodes gviz tables.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        zerolog.Logger
}

// NewClient creates a Client against docs.google.com.
func NewClient(log zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    "https://docs.google.com",
		log:        log.With().Str("component", "sheets").Logger(),
	}
}

// WithBaseURL points the client at a different host. Used by tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// FetchTable downloads one sheet of the spreadsheet as a decoded table.
func (c *Client) FetchTable(ctx context.Context, sheetURL string, sheetIndex int) (*gviz.Table, error) {
	sheetID, err := ExtractSheetID(sheetURL)
	if err != nil {
		return nil, err
	}

	exportURL := fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq?tqx=out:json&sheet=%d",
		c.baseURL, sheetID, sheetIndex)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exportURL, nil)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	c.log.Debug().Str("sheet_id", sheetID).Int("sheet", sheetIndex).Msg("fetching sheet")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &NetworkError{Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	return gviz.Decode(string(body))
}
