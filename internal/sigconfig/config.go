// Package sigconfig holds the process-wide constants of spec.md §3.3 (MAX_ARGS,
// the legal parameter-name pattern) and loads pycall.yaml: a file of named
// signatures' default and partial-binding values, so a deployment can supply
// those without recompiling the Go binary that calls Def/Bind.
package sigconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the top-level shape of pycall.yaml.
type File struct {
	// Signatures lists the named default/partial value sets this file
	// supplies, keyed by the name under which the signature was registered
	// in internal/sigregistry.
	Signatures []NamedValues `yaml:"signatures"`
}

// NamedValues carries one signature's configured default and partial
// values, both keyed by parameter name.
type NamedValues struct {
	// Name is the registry name this entry configures.
	Name string `yaml:"name"`

	// Defaults supplies values for the signature's optional parameters.
	Defaults map[string]any `yaml:"defaults,omitempty"`

	// Partial supplies values to pre-bind via .Bind before any call-site
	// arguments are applied.
	Partial map[string]any `yaml:"partial,omitempty"`
}

// Load parses path into a File.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sigconfig: reading %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("sigconfig: parsing %s: %w", path, err)
	}
	return &f, nil
}

// Lookup returns the NamedValues entry for name, if the file carries one.
func (f *File) Lookup(name string) (NamedValues, bool) {
	if f == nil {
		return NamedValues{}, false
	}
	for _, nv := range f.Signatures {
		if nv.Name == name {
			return nv, true
		}
	}
	return NamedValues{}, false
}
