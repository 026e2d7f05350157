package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/formlens/formlens/internal/dialog"
	"github.com/formlens/formlens/internal/reshape"
)

// specJSON is the wire shape of a prompt spec. The validate script is a
// stored predicate and cannot be serialized; only its presence is reported.
type specJSON struct {
	InputType        string   `json:"input_type"`
	Message          string   `json:"message,omitempty"`
	DefaultValue     string   `json:"default_value,omitempty"`
	LineHeight       *int     `json:"line_height,omitempty"`
	ReadOnly         bool     `json:"read_only"`
	ValidateNotEmpty bool     `json:"validate_not_empty"`
	ValidateSet      []string `json:"validate_set,omitempty"`
	HasScript        bool     `json:"has_validate_script,omitempty"`
}

// SpecJSONValue converts a spec into its JSON-marshalable shape.
func SpecJSONValue(spec *dialog.PromptSpec) any {
	if spec == nil {
		return nil
	}
	return specJSON{
		InputType:        string(spec.InputType),
		Message:          spec.Message,
		DefaultValue:     spec.DefaultValue,
		LineHeight:       spec.LineHeight,
		ReadOnly:         spec.ReadOnly,
		ValidateNotEmpty: spec.ValidateNotEmpty,
		ValidateSet:      spec.ValidateSet,
		HasScript:        spec.ValidateScript != nil,
	}
}

// FormatSpecJSON renders one prompt spec as indented JSON.
func FormatSpecJSON(spec *dialog.PromptSpec) (string, error) {
	data, err := json.MarshalIndent(SpecJSONValue(spec), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatPairsJSON renders pairs as a JSON array of objects keyed by the
// configured column names, preserving pair order.
func FormatPairsJSON(pairs []reshape.Pair, cols reshape.Columns) (string, error) {
	cols = cols.Normalize()

	keyName, err := json.Marshal(cols.Key)
	if err != nil {
		return "", err
	}
	valueName, err := json.Marshal(cols.Value)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i, pair := range pairs {
		key, err := json.Marshal(pair.Key)
		if err != nil {
			return "", err
		}
		value, err := json.Marshal(pair.Value)
		if err != nil {
			return "", fmt.Errorf("pair %q: %w", pair.Key, err)
		}
		if i > 0 {
			buf.WriteString(",\n")
		}
		fmt.Fprintf(&buf, "  {%s: %s, %s: %s}", keyName, key, valueName, value)
	}
	if len(pairs) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteByte(']')
	return buf.String(), nil
}
