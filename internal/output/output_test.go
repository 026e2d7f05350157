package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/formlens/formlens/internal/dialog"
	"github.com/formlens/formlens/internal/reshape"
)

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("table")
	require.NoError(t, err)
	require.Equal(t, FormatTable, format)

	format, err = ParseFormat("JSON")
	require.NoError(t, err)
	require.Equal(t, FormatJSON, format)

	format, err = ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, FormatTable, format)

	_, err = ParseFormat("csv")
	require.Error(t, err)
}

func TestFormatPairsTable(t *testing.T) {
	pairs := []reshape.Pair{
		{Key: "A", Value: 1},
		{Key: "B", Value: "x"},
	}

	rendered := FormatPairsTable(pairs, reshape.Columns{Key: "Property", Value: "Setting"})
	require.Contains(t, rendered, "PROPERTY")
	require.Contains(t, rendered, "SETTING")
	require.Contains(t, rendered, "A")
	require.Contains(t, rendered, "x")
}

func TestFormatPairsJSON(t *testing.T) {
	pairs := []reshape.Pair{
		{Key: "A", Value: json.Number("1")},
		{Key: "B", Value: "x"},
	}

	rendered, err := FormatPairsJSON(pairs, reshape.DefaultColumns())
	require.NoError(t, err)
	require.Contains(t, rendered, `{"Name": "A", "Value": 1}`)
	require.Contains(t, rendered, `{"Name": "B", "Value": "x"}`)

	// Still valid JSON with order intact.
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(rendered), &decoded))
	require.Len(t, decoded, 2)
	require.Equal(t, "A", decoded[0]["Name"])
}

func TestFormatPairsJSONEmpty(t *testing.T) {
	rendered, err := FormatPairsJSON(nil, reshape.DefaultColumns())
	require.NoError(t, err)
	require.Equal(t, "[\n]", rendered)
}

func TestFormatSpec(t *testing.T) {
	height := 3
	spec := &dialog.PromptSpec{
		InputType:      dialog.InputTypeText,
		Message:        "Enter value",
		LineHeight:     &height,
		ValidateSet:    []string{"a", "b"},
		ValidateScript: func(string) bool { return true },
	}

	rendered := FormatSpecTable(spec)
	require.Contains(t, rendered, "Enter value")
	require.Contains(t, rendered, "LineHeight")

	jsonOut, err := FormatSpecJSON(spec)
	require.NoError(t, err)
	require.Contains(t, jsonOut, `"input_type": "text"`)
	require.Contains(t, jsonOut, `"line_height": 3`)
	require.Contains(t, jsonOut, `"has_validate_script": true`)
	require.False(t, strings.Contains(jsonOut, "ValidateScript"))
}

func TestFormatFieldsTable(t *testing.T) {
	fields := []dialog.Field{
		{Name: "agree", Spec: &dialog.PromptSpec{InputType: dialog.InputTypeCheckbox, Message: "OK?"}},
		{Name: "gone", Spec: nil},
	}

	rendered := FormatFieldsTable(fields)
	require.Contains(t, rendered, "agree")
	require.Contains(t, rendered, "checkbox")
	require.False(t, strings.Contains(rendered, "gone"))
}
