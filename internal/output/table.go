package output

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/formlens/formlens/internal/dialog"
	"github.com/formlens/formlens/internal/reshape"
)

// FormatPairsTable renders reshaped pairs as an ASCII table using the
// configured column names as headers.
func FormatPairsTable(pairs []reshape.Pair, cols reshape.Columns) string {
	cols = cols.Normalize()

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{cols.Key, cols.Value})

	for _, pair := range pairs {
		t.AppendRow(table.Row{pair.Key, formatValue(pair.Value)})
	}

	return t.Render()
}

// FormatSpecTable renders one prompt spec as a property table.
func FormatSpecTable(spec *dialog.PromptSpec) string {
	if spec == nil {
		return ""
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Field", "Value"})

	t.AppendRow(table.Row{"InputType", string(spec.InputType)})
	t.AppendRow(table.Row{"Message", spec.Message})
	t.AppendRow(table.Row{"DefaultValue", spec.DefaultValue})
	if spec.LineHeight != nil {
		t.AppendRow(table.Row{"LineHeight", *spec.LineHeight})
	}
	t.AppendRow(table.Row{"ReadOnly", spec.ReadOnly})
	t.AppendRow(table.Row{"ValidateNotEmpty", spec.ValidateNotEmpty})
	if len(spec.ValidateSet) > 0 {
		t.AppendRow(table.Row{"ValidateSet", fmt.Sprintf("%v", spec.ValidateSet)})
	}
	if spec.ValidateScript != nil {
		t.AppendRow(table.Row{"ValidateScript", "(set)"})
	}

	return t.Render()
}

// FormatFieldsTable renders a list of named specs, one row per field.
func FormatFieldsTable(fields []dialog.Field) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Name", "Type", "Message", "ReadOnly"})

	for _, field := range fields {
		if field.Spec == nil {
			continue
		}
		t.AppendRow(table.Row{
			field.Name,
			string(field.Spec.InputType),
			field.Spec.Message,
			field.Spec.ReadOnly,
		})
	}

	return t.Render()
}

func formatValue(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%v", value)
}
