// Package dialog builds declarative descriptions of dialog input fields.
// The builder validates configuration against the chosen input type and
// produces an immutable PromptSpec; rendering and submit-time evaluation
// of the stored validation rules belong to the dialog renderer, not here.
package dialog

import (
	"fmt"
	"strings"
)

// InputType enumerates the supported kinds of input field.
type InputType string

const (
	InputTypeText     InputType = "text"
	InputTypeCheckbox InputType = "checkbox"
	InputTypePassword InputType = "password"
	InputTypeNone     InputType = "none"
)

// ParseInputType resolves a user-supplied type string. The empty string
// resolves to text, the default input type.
func ParseInputType(value string) (InputType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "text":
		return InputTypeText, nil
	case "checkbox":
		return InputTypeCheckbox, nil
	case "password":
		return InputTypePassword, nil
	case "none":
		return InputTypeNone, nil
	default:
		return "", fmt.Errorf("unknown input type: %q", value)
	}
}

// ValidateFunc is an opaque submit-time acceptance predicate. It is stored
// on the spec for the renderer to invoke; the builder never calls it.
type ValidateFunc func(value string) bool

// Options carries every configurable field for one input field. Fields that
// are meaningless for the chosen InputType are ignored or adjusted by Build.
type Options struct {
	InputType        InputType
	Message          string
	DefaultValue     string
	LineHeight       *int
	ReadOnly         bool
	ValidateNotEmpty bool
	ValidateSet      []string
	ValidateScript   ValidateFunc
}

// PromptSpec is the immutable description of one dialog input field,
// consumed read-only by a dialog renderer.
type PromptSpec struct {
	InputType        InputType
	Message          string
	DefaultValue     string
	LineHeight       *int
	ReadOnly         bool
	ValidateNotEmpty bool
	ValidateSet      []string
	ValidateScript   ValidateFunc
}
