// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package familygen generates monomorphic Optional and Result family types
// from a YAML manifest.
//
// The generator handles:
//   - Parsing and validating the family manifest
//   - Resolving payload type expressions to go/types types, loading
//     imported packages via go/packages
//   - Enforcing the single pointer-sized slot limit where requested
//   - Rendering and formatting the generated Go source
package familygen

import (
	"fmt"
	"go/build"
	"go/token"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultOutput is the generated file name used when the manifest sets none.
const DefaultOutput = "variant_families.go"

// Kind selects the container a family member is generated from.
type Kind string

const (
	KindOptional Kind = "optional"
	KindResult   Kind = "result"
)

// Manifest is the top-level family manifest.
type Manifest struct {
	// Package is the Go package name of the generated file.
	Package string `yaml:"package"`

	// Output is the generated file name, relative to the manifest directory.
	// Defaults to DefaultOutput.
	Output string `yaml:"output,omitempty"`

	// GoArch selects the size model used for width checks.
	// A command-line override wins; the build target architecture is
	// used when neither is set. See Arch.
	GoArch string `yaml:"goarch,omitempty"`

	// Imports lists the Go import paths whose exported types payload
	// expressions may name, qualified by package name (e.g. models.User).
	Imports []string `yaml:"imports,omitempty"`

	// WordSized applies the single-slot payload limit to every family.
	WordSized bool `yaml:"word_sized,omitempty"`

	// Families lists the types to generate.
	Families []Family `yaml:"families"`
}

// Family describes one generated type.
type Family struct {
	// Name is the exported Go name of the generated type.
	Name string `yaml:"name"`

	// Kind is optional or result.
	Kind Kind `yaml:"kind"`

	// Payload is a Go type expression for the payload, e.g. "string",
	// "*models.User" or "[]byte".
	Payload string `yaml:"payload"`

	// Alias emits a type alias of variant.OptionOf/ResultOf instead of a
	// standalone struct.
	Alias bool `yaml:"alias,omitempty"`

	// WordSized rejects payloads wider than one pointer-sized slot and
	// adds a compile-time width assertion to the generated code.
	WordSized bool `yaml:"word_sized,omitempty"`
}

// Arch returns the architecture for width checks: override if non-empty,
// then m.GoArch, then the build target.
func (m *Manifest) Arch(override string) string {
	switch {
	case override != "":
		return override
	case m.GoArch != "":
		return m.GoArch
	default:
		return build.Default.GOARCH
	}
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return ParseManifest(data, path)
}

// ParseManifest parses manifest content from bytes.
// The path argument is used only for error messages.
func ParseManifest(data []byte, path string) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := m.validate(path); err != nil {
		return nil, err
	}
	m.setDefaults()
	return &m, nil
}

// validate checks the manifest for semantic errors.
func (m *Manifest) validate(path string) error {
	if m.Package == "" {
		return fmt.Errorf("%s: package is required", path)
	}
	if !token.IsIdentifier(m.Package) {
		return fmt.Errorf("%s: package %q is not a valid identifier", path, m.Package)
	}
	if len(m.Families) == 0 {
		return fmt.Errorf("%s: no families defined", path)
	}

	seenImports := make(map[string]bool)
	for i, imp := range m.Imports {
		if imp == "" {
			return fmt.Errorf("%s: imports[%d]: empty import path", path, i)
		}
		if seenImports[imp] {
			return fmt.Errorf("%s: imports[%d]: duplicate import %q", path, i, imp)
		}
		seenImports[imp] = true
	}

	seenNames := make(map[string]int)
	for i, f := range m.Families {
		if f.Name == "" {
			return fmt.Errorf("%s: families[%d]: name is required", path, i)
		}
		if !token.IsIdentifier(f.Name) || !token.IsExported(f.Name) {
			return fmt.Errorf("%s: families[%d]: name %q must be an exported identifier", path, i, f.Name)
		}
		if prev, ok := seenNames[f.Name]; ok {
			return fmt.Errorf("%s: families[%d]: name %q already used by families[%d]", path, i, f.Name, prev)
		}
		seenNames[f.Name] = i

		switch f.Kind {
		case KindOptional, KindResult:
		case "":
			return fmt.Errorf("%s: families[%d] (%s): kind is required", path, i, f.Name)
		default:
			return fmt.Errorf("%s: families[%d] (%s): unknown kind %q (want optional or result)", path, i, f.Name, f.Kind)
		}

		if f.Payload == "" {
			return fmt.Errorf("%s: families[%d] (%s): payload is required", path, i, f.Name)
		}
	}
	return nil
}

// setDefaults fills in optional fields.
func (m *Manifest) setDefaults() {
	if m.Output == "" {
		m.Output = DefaultOutput
	}
	if m.WordSized {
		for i := range m.Families {
			m.Families[i].WordSized = true
		}
	}
}
