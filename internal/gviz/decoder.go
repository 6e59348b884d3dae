// Package gviz decodes the Google Visualization ("gviz") table export that
// Google Sheets serves at /gviz/tq?tqx=out:json. The response is JSON wrapped
// in a fixed callback envelope that has to be stripped by offset before
// parsing.
package gviz

import (
	"encoding/json"
	"fmt"
)

// The envelope is byte-stable across the gviz endpoint:
//
//	/*O_o*/
//	google.visualization.Query.setResponse({...});
const (
	envelopePrefixLen = 47 // "/*O_o*/\ngoogle.visualization.Query.setResponse("
	envelopeSuffixLen = 2  // ");"
)

// FeedFormatError reports a response body that is not a well-formed gviz
// table: the envelope cannot be stripped or the remainder is not valid JSON.
type FeedFormatError struct {
	Reason string
	Err    error
}

func (e *FeedFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("feed format: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("feed format: %s", e.Reason)
}

func (e *FeedFormatError) Unwrap() error { return e.Err }

// Table is the decoded feed: ordered column labels and rows keyed by label.
// Cell values are the JSON primitives the feed carries (string, float64,
// bool) or nil for an empty cell. Date cells stay as raw pseudo-constructor
// strings like "Date(2025,2,19)"; interpreting them is the normalizer's job.
type Table struct {
	Columns []string
	Rows    []Row
}

// Row maps a column label to its cell value. Lookup is by label because the
// feed does not guarantee a stable column order across reloads.
type Row map[string]any

// Internal shape of the gviz table JSON.
type rawResponse struct {
	Table rawTable `json:"table"`
}

type rawTable struct {
	Cols []rawCol `json:"cols"`
	Rows []rawRow `json:"rows"`
}

type rawCol struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

type rawRow struct {
	C []*rawCell `json:"c"`
}

type rawCell struct {
	V any `json:"v"`
}

// Decode strips the callback envelope from a raw response body and parses the
// table inside it.
func Decode(body string) (*Table, error) {
	if len(body) < envelopePrefixLen+envelopeSuffixLen {
		return nil, &FeedFormatError{Reason: "response shorter than callback envelope"}
	}

	payload := body[envelopePrefixLen : len(body)-envelopeSuffixLen]

	var resp rawResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return nil, &FeedFormatError{Reason: "invalid table JSON", Err: err}
	}

	table := &Table{
		Columns: make([]string, len(resp.Table.Cols)),
		Rows:    make([]Row, 0, len(resp.Table.Rows)),
	}
	for i, col := range resp.Table.Cols {
		table.Columns[i] = col.Label
	}

	for _, raw := range resp.Table.Rows {
		row := make(Row, len(table.Columns))
		for i, cell := range raw.C {
			if i >= len(table.Columns) {
				break
			}
			if cell == nil {
				continue
			}
			row[table.Columns[i]] = cell.V
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
