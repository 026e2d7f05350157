package dialog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleFields = `
fields:
  - name: username
    type: text
    message: "User name"
    line_height: 1
    validate_not_empty: true
  - name: secret
    type: password
    message: "Password"
    default: "leaked"
  - name: skipped
    type: none
  - name: agree
    type: checkbox
`

func TestLoadFields(t *testing.T) {
	fields, diags, err := Load("sample.yaml", []byte(sampleFields))
	require.NoError(t, err)

	// The none field is dropped; the other three survive.
	require.Len(t, fields, 3)
	require.Equal(t, "username", fields[0].Name)
	require.Equal(t, InputTypeText, fields[0].Spec.InputType)
	require.True(t, fields[0].Spec.ValidateNotEmpty)

	require.Equal(t, "secret", fields[1].Name)
	require.Empty(t, fields[1].Spec.DefaultValue)

	require.Equal(t, "agree", fields[2].Name)
	require.Equal(t, DefaultCheckboxMessage, fields[2].Spec.Message)

	// Password default discarded + checkbox message substituted.
	require.Len(t, diags, 2)
	require.Equal(t, "secret.DefaultValue", diags[0].Field)
	require.Equal(t, "agree.Message", diags[1].Field)
}

func TestLoadRejectsMissingName(t *testing.T) {
	_, _, err := Load("bad.yaml", []byte("fields:\n  - type: text\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing name")
}

func TestLoadRejectsUnknownType(t *testing.T) {
	_, _, err := Load("bad.yaml", []byte("fields:\n  - name: x\n    type: slider\n"))
	require.Error(t, err)
}

func TestLoadRejectsInvalidLineHeight(t *testing.T) {
	_, _, err := Load("bad.yaml", []byte("fields:\n  - name: x\n    line_height: 0\n"))
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestLoadRejectsEmptyDocument(t *testing.T) {
	_, _, err := Load("empty.yaml", []byte(""))
	require.Error(t, err)
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fields.yaml"), []byte(sampleFields), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	fields, _, err := LoadFromDir(dir)
	require.NoError(t, err)
	require.Len(t, fields, 3)
}

func TestRegistry(t *testing.T) {
	fields, _, err := Load("sample.yaml", []byte(sampleFields))
	require.NoError(t, err)

	reg, err := NewRegistry(fields)
	require.NoError(t, err)

	spec, err := reg.Get("username")
	require.NoError(t, err)
	require.Equal(t, InputTypeText, spec.InputType)

	_, err = reg.Get("missing")
	require.Error(t, err)

	_, err = reg.Get("")
	require.Error(t, err)

	listed := reg.List()
	require.Len(t, listed, 3)
	require.Equal(t, "agree", listed[0].Name)
	require.Equal(t, "secret", listed[1].Name)
	require.Equal(t, "username", listed[2].Name)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	spec := &PromptSpec{InputType: InputTypeText}
	_, err := NewRegistry([]Field{
		{Name: "dup", Spec: spec},
		{Name: "dup", Spec: spec},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate")
}
