// Package manifest loads the optional vane.yaml describing the helpers a
// host application registers at startup.
//
// The manifest exists for validation, not discovery: hosts that ship one
// get their helper names, authoring kinds, and capability versions checked
// before any rendering activity, so a typo fails at boot instead of at
// first invocation.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-vane/vane/pkg/manager"
)

// Helper kinds accepted in a manifest entry.
const (
	KindFunction = "function"
	KindClass    = "class"
)

// Manifest represents the optional vane.yaml configuration.
type Manifest struct {
	Helpers []Entry `yaml:"helpers"`
}

// Entry declares one helper the host intends to register.
type Entry struct {
	// Name is the template-facing helper name.
	Name string `yaml:"name"`
	// Kind is the authoring style: "function" or "class".
	Kind string `yaml:"kind"`
	// Capabilities optionally pins the capability protocol revision the
	// helper's manager must support. Empty means the built-in revision.
	Capabilities string `yaml:"capabilities,omitempty"`
}

// LoadOptional reads vane.yaml from dir if present. A missing file yields
// an empty manifest.
func LoadOptional(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "vane.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Manifest{}, nil
		}
		return nil, fmt.Errorf("failed to read vane.yaml: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse vane.yaml: %w", err)
	}

	return &m, nil
}

// Validate checks every entry for a usable name, a known kind, and a
// recognized capability revision. The first problem found is returned.
func (m *Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Helpers))
	for _, entry := range m.Helpers {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return fmt.Errorf("manifest entry with empty helper name")
		}
		if seen[name] {
			return fmt.Errorf("helper %q declared more than once", name)
		}
		seen[name] = true

		switch entry.Kind {
		case KindFunction, KindClass:
		default:
			return fmt.Errorf("helper %q has unknown kind %q (want %q or %q)",
				name, entry.Kind, KindFunction, KindClass)
		}

		if entry.Capabilities != "" && !manager.IsRecognizedVersion(entry.Capabilities) {
			return fmt.Errorf("helper %q requires unrecognized capabilities version %q",
				name, entry.Capabilities)
		}
	}
	return nil
}

// Lookup returns the entry declared under name, if any.
func (m *Manifest) Lookup(name string) (Entry, bool) {
	for _, entry := range m.Helpers {
		if entry.Name == name {
			return entry, true
		}
	}
	return Entry{}, false
}
