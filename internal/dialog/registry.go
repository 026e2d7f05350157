package dialog

import (
	"fmt"
	"sort"
	"strings"
)

// Registry provides access to named field specs.
type Registry interface {
	Get(name string) (*PromptSpec, error)
	List() []Field
}

// InMemoryRegistry stores field specs by name.
type InMemoryRegistry struct {
	fields map[string]*PromptSpec
}

// NewRegistry builds a registry from loaded fields.
func NewRegistry(fields []Field) (*InMemoryRegistry, error) {
	reg := &InMemoryRegistry{fields: make(map[string]*PromptSpec)}
	for _, field := range fields {
		if field.Spec == nil {
			continue
		}
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return nil, fmt.Errorf("field missing name")
		}
		if _, ok := reg.fields[name]; ok {
			return nil, fmt.Errorf("duplicate field name: %s", name)
		}
		reg.fields[name] = field.Spec
	}
	return reg, nil
}

// Get returns the spec for the name.
func (r *InMemoryRegistry) Get(name string) (*PromptSpec, error) {
	if r == nil {
		return nil, fmt.Errorf("field registry not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("field name is required")
	}
	spec, ok := r.fields[name]
	if !ok {
		return nil, fmt.Errorf("field %q not found", name)
	}
	return spec, nil
}

// List returns fields sorted by name.
func (r *InMemoryRegistry) List() []Field {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	result := make([]Field, 0, len(names))
	for _, name := range names {
		result = append(result, Field{Name: name, Spec: r.fields[name]})
	}
	return result
}
