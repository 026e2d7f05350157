package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReshapeCommandFromStdin(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetIn(strings.NewReader(`{"A": 1, "B": "x"}`))
	rootCmd.SetArgs([]string{"reshape", "--output", "json"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	out := buf.String()
	require.Contains(t, out, `"Name": "A"`)
	require.Contains(t, out, `"Value": "x"`)

	// A comes before B, matching property encounter order.
	require.Less(t, strings.Index(out, `"A"`), strings.Index(out, `"B"`))
}

func TestReshapeCommandCustomColumns(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetIn(strings.NewReader(`[{"k": "v"}]`))
	rootCmd.SetArgs([]string{"reshape", "--output", "json", "--key-column", "Property", "--value-column", "Setting"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	require.Contains(t, buf.String(), `"Property": "k"`)
	require.Contains(t, buf.String(), `"Setting": "v"`)
}
