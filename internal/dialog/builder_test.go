package dialog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestParseInputType(t *testing.T) {
	it, err := ParseInputType("")
	require.NoError(t, err)
	require.Equal(t, InputTypeText, it)

	it, err = ParseInputType("Checkbox")
	require.NoError(t, err)
	require.Equal(t, InputTypeCheckbox, it)

	it, err = ParseInputType(" password ")
	require.NoError(t, err)
	require.Equal(t, InputTypePassword, it)

	_, err = ParseInputType("dropdown")
	require.Error(t, err)
}

func TestBuildText(t *testing.T) {
	spec, diags, err := Build(Options{
		InputType:  InputTypeText,
		Message:    "Enter value",
		LineHeight: intPtr(3),
	})
	require.NoError(t, err)
	require.Empty(t, diags)
	require.NotNil(t, spec)
	require.Equal(t, InputTypeText, spec.InputType)
	require.Equal(t, "Enter value", spec.Message)
	require.NotNil(t, spec.LineHeight)
	require.Equal(t, 3, *spec.LineHeight)
}

func TestBuildDefaultsToText(t *testing.T) {
	spec, diags, err := Build(Options{Message: "hi"})
	require.NoError(t, err)
	require.Empty(t, diags)
	require.Equal(t, InputTypeText, spec.InputType)
}

func TestBuildNoneYieldsNoSpec(t *testing.T) {
	spec, diags, err := Build(Options{
		InputType:    InputTypeNone,
		Message:      "ignored",
		DefaultValue: "ignored too",
		ReadOnly:     true,
	})
	require.NoError(t, err)
	require.Empty(t, diags)
	require.Nil(t, spec)
}

func TestBuildLineHeightMustBePositive(t *testing.T) {
	for _, height := range []int{0, -1, -100} {
		_, _, err := Build(Options{InputType: InputTypeText, LineHeight: intPtr(height)})
		require.Error(t, err)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "LineHeight", verr.Field)
	}

	// The range check runs before the none short-circuit.
	_, _, err := Build(Options{InputType: InputTypeNone, LineHeight: intPtr(0)})
	require.Error(t, err)
}

func TestBuildLineHeightOnNonTextIsAdvisory(t *testing.T) {
	spec, diags, err := Build(Options{
		InputType:  InputTypeCheckbox,
		Message:    "Accept terms?",
		LineHeight: intPtr(2),
	})
	require.NoError(t, err)
	require.NotNil(t, spec)
	require.Len(t, diags, 1)
	require.Equal(t, "LineHeight", diags[0].Field)
	require.NotNil(t, spec.LineHeight)
	require.Equal(t, 2, *spec.LineHeight)
}

func TestBuildCheckboxSubstitutesMessage(t *testing.T) {
	spec, diags, err := Build(Options{InputType: InputTypeCheckbox})
	require.NoError(t, err)
	require.NotNil(t, spec)
	require.Len(t, diags, 1)
	require.Equal(t, "Message", diags[0].Field)
	require.Equal(t, DefaultCheckboxMessage, spec.Message)
	require.NotEmpty(t, spec.Message)
}

func TestBuildCheckboxKeepsMessage(t *testing.T) {
	spec, diags, err := Build(Options{InputType: InputTypeCheckbox, Message: "Enable?"})
	require.NoError(t, err)
	require.Empty(t, diags)
	require.Equal(t, "Enable?", spec.Message)
}

func TestBuildPasswordDiscardsDefault(t *testing.T) {
	spec, diags, err := Build(Options{
		InputType:    InputTypePassword,
		Message:      "Password",
		DefaultValue: "hunter2",
	})
	require.NoError(t, err)
	require.NotNil(t, spec)
	require.Len(t, diags, 1)
	require.Equal(t, "DefaultValue", diags[0].Field)
	require.Empty(t, spec.DefaultValue)
}

func TestBuildStoresValidationRules(t *testing.T) {
	called := false
	spec, diags, err := Build(Options{
		InputType:        InputTypeText,
		Message:          "Color",
		ValidateNotEmpty: true,
		ValidateSet:      []string{"red", "green"},
		ValidateScript: func(value string) bool {
			called = true
			return value != ""
		},
	})
	require.NoError(t, err)
	require.Empty(t, diags)
	require.True(t, spec.ValidateNotEmpty)
	require.Equal(t, []string{"red", "green"}, spec.ValidateSet)
	require.NotNil(t, spec.ValidateScript)
	// The builder stores the predicate, it never invokes it.
	require.False(t, called)
	require.True(t, spec.ValidateScript("red"))
}

func TestBuildCopiesValidateSet(t *testing.T) {
	set := []string{"a", "b"}
	spec, _, err := Build(Options{InputType: InputTypeText, ValidateSet: set})
	require.NoError(t, err)
	set[0] = "mutated"
	require.Equal(t, "a", spec.ValidateSet[0])
}
