package gviz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wrap(payload string) string {
	return "/*O_o*/\ngoogle.visualization.Query.setResponse(" + payload + ");"
}

func TestDecode(t *testing.T) {
	t.Run("decodes a wrapped table", func(t *testing.T) {
		body := wrap(`{"table":{"cols":[{"id":"A","label":"Date","type":"string"},{"id":"B","label":"Symbol","type":"string"},{"id":"C","label":"Net Total","type":"number"}],"rows":[{"c":[{"v":"Date(2025,2,19)"},{"v":"ABC"},{"v":50}]},{"c":[null,{"v":"DEF"},{"v":-12.5}]}]}}`)

		table, err := Decode(body)
		require.NoError(t, err)

		assert.Equal(t, []string{"Date", "Symbol", "Net Total"}, table.Columns)
		require.Len(t, table.Rows, 2)

		assert.Equal(t, "Date(2025,2,19)", table.Rows[0]["Date"])
		assert.Equal(t, "ABC", table.Rows[0]["Symbol"])
		assert.Equal(t, 50.0, table.Rows[0]["Net Total"])

		// Null cell leaves the label absent.
		assert.Nil(t, table.Rows[1]["Date"])
		assert.Equal(t, "DEF", table.Rows[1]["Symbol"])
	})

	t.Run("lookup is by label regardless of column order", func(t *testing.T) {
		body := wrap(`{"table":{"cols":[{"id":"A","label":"Symbol","type":"string"},{"id":"B","label":"Date","type":"string"}],"rows":[{"c":[{"v":"XYZ"},{"v":"Date(2025,0,2)"}]}]}}`)

		table, err := Decode(body)
		require.NoError(t, err)
		assert.Equal(t, "Date(2025,0,2)", table.Rows[0]["Date"])
		assert.Equal(t, "XYZ", table.Rows[0]["Symbol"])
	})

	t.Run("rows with fewer cells than columns are tolerated", func(t *testing.T) {
		body := wrap(`{"table":{"cols":[{"id":"A","label":"Date","type":"string"},{"id":"B","label":"Symbol","type":"string"}],"rows":[{"c":[{"v":"Date(2025,2,19)"}]}]}}`)

		table, err := Decode(body)
		require.NoError(t, err)
		assert.Equal(t, "Date(2025,2,19)", table.Rows[0]["Date"])
		_, present := table.Rows[0]["Symbol"]
		assert.False(t, present)
	})

	t.Run("body shorter than the envelope fails", func(t *testing.T) {
		_, err := Decode("nope")
		var formatErr *FeedFormatError
		require.True(t, errors.As(err, &formatErr))
	})

	t.Run("invalid JSON inside the envelope fails", func(t *testing.T) {
		_, err := Decode(wrap(`{"table":`))
		var formatErr *FeedFormatError
		require.True(t, errors.As(err, &formatErr))
		assert.Contains(t, err.Error(), "invalid table JSON")
	})
}
