package dialog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FieldConfig is the YAML shape of one field definition.
type FieldConfig struct {
	Name             string   `yaml:"name"`
	Type             string   `yaml:"type,omitempty"`
	Message          string   `yaml:"message,omitempty"`
	Default          string   `yaml:"default,omitempty"`
	LineHeight       *int     `yaml:"line_height,omitempty"`
	ReadOnly         bool     `yaml:"read_only,omitempty"`
	ValidateNotEmpty bool     `yaml:"validate_not_empty,omitempty"`
	ValidateSet      []string `yaml:"validate_set,omitempty"`
}

// FieldFile is a YAML document holding a list of field definitions.
type FieldFile struct {
	Fields []FieldConfig `yaml:"fields"`
}

// Field pairs a built spec with the name it was declared under. Fields whose
// type is none produce a nil Spec and are dropped by Load.
type Field struct {
	Name string
	Spec *PromptSpec
}

// Load parses field definitions from YAML bytes and builds each one.
// Diagnostics from all fields are collected and returned together.
func Load(source string, data []byte) ([]Field, []Diagnostic, error) {
	var file FieldFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("parse fields %s: %w", source, err)
	}
	if len(file.Fields) == 0 {
		return nil, nil, fmt.Errorf("fields %s: no field definitions", source)
	}

	var (
		fields []Field
		diags  []Diagnostic
	)
	for i, fc := range file.Fields {
		name := strings.TrimSpace(fc.Name)
		if name == "" {
			return nil, nil, fmt.Errorf("fields %s: field %d missing name", source, i)
		}

		inputType, err := ParseInputType(fc.Type)
		if err != nil {
			return nil, nil, fmt.Errorf("fields %s: field %q: %w", source, name, err)
		}

		spec, fieldDiags, err := Build(Options{
			InputType:        inputType,
			Message:          fc.Message,
			DefaultValue:     fc.Default,
			LineHeight:       fc.LineHeight,
			ReadOnly:         fc.ReadOnly,
			ValidateNotEmpty: fc.ValidateNotEmpty,
			ValidateSet:      fc.ValidateSet,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("fields %s: field %q: %w", source, name, err)
		}
		for _, d := range fieldDiags {
			d.Field = name + "." + d.Field
			diags = append(diags, d)
		}
		if spec == nil {
			continue
		}
		fields = append(fields, Field{Name: name, Spec: spec})
	}

	return fields, diags, nil
}

// LoadFromDir reads all *.yaml field files from a directory.
func LoadFromDir(dir string) ([]Field, []Diagnostic, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, nil, fmt.Errorf("scan fields: %w", err)
	}

	var (
		fields []Field
		diags  []Diagnostic
	)
	for _, path := range paths {
		data, err := os.ReadFile(path) // #nosec G304 -- field path is user-provided
		if err != nil {
			return nil, nil, fmt.Errorf("read fields %s: %w", path, err)
		}
		loaded, loadedDiags, err := Load(path, data)
		if err != nil {
			return nil, nil, err
		}
		fields = append(fields, loaded...)
		diags = append(diags, loadedDiags...)
	}

	return fields, diags, nil
}
