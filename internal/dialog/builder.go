package dialog

import "fmt"

// DefaultCheckboxMessage is substituted when a checkbox field is requested
// without a message; a checkbox with no label is unusable.
const DefaultCheckboxMessage = "Please confirm"

// Diagnostic is an advisory adjustment made during Build. Diagnostics never
// fail construction; callers surface them through their logging channel.
type Diagnostic struct {
	Field   string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Field, d.Message)
}

// ValidationError is a hard construction failure; no PromptSpec is produced.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Build validates opts against the input type's rules and assembles a
// PromptSpec. An InputType of none yields a nil spec with no error and no
// diagnostics: the caller requested no input field, so nothing else about
// opts is inspected.
func Build(opts Options) (*PromptSpec, []Diagnostic, error) {
	if opts.InputType == "" {
		opts.InputType = InputTypeText
	}

	// LineHeight is range-checked before any type-specific rule runs.
	if opts.LineHeight != nil && *opts.LineHeight <= 0 {
		return nil, nil, &ValidationError{
			Field:  "LineHeight",
			Reason: fmt.Sprintf("must be a positive integer, got %d", *opts.LineHeight),
		}
	}

	if opts.InputType == InputTypeNone {
		return nil, nil, nil
	}

	var diags []Diagnostic

	if opts.InputType != InputTypeText && opts.LineHeight != nil {
		diags = append(diags, Diagnostic{
			Field:   "LineHeight",
			Message: fmt.Sprintf("only meaningful for text input, ignored for %s", opts.InputType),
		})
	}

	switch opts.InputType {
	case InputTypeCheckbox:
		if opts.Message == "" {
			diags = append(diags, Diagnostic{
				Field:   "Message",
				Message: fmt.Sprintf("checkbox requires a message, substituting %q", DefaultCheckboxMessage),
			})
			opts.Message = DefaultCheckboxMessage
		}
	case InputTypePassword:
		if opts.DefaultValue != "" {
			diags = append(diags, Diagnostic{
				Field:   "DefaultValue",
				Message: "password fields must not carry a pre-filled value, discarding",
			})
			opts.DefaultValue = ""
		}
	}

	spec := &PromptSpec{
		InputType:        opts.InputType,
		Message:          opts.Message,
		DefaultValue:     opts.DefaultValue,
		ReadOnly:         opts.ReadOnly,
		ValidateNotEmpty: opts.ValidateNotEmpty,
		ValidateScript:   opts.ValidateScript,
	}
	if opts.LineHeight != nil {
		height := *opts.LineHeight
		spec.LineHeight = &height
	}
	if len(opts.ValidateSet) > 0 {
		spec.ValidateSet = append([]string(nil), opts.ValidateSet...)
	}

	return spec, diags, nil
}
