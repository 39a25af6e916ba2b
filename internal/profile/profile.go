// Package profile handles loading built-in example scenarios.
package profile

import (
	"embed"
	"fmt"
	"strings"

	"github.com/dshills/planbalance/internal/scenario"
	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// LoadBuiltin loads a built-in scenario by name.
func LoadBuiltin(name string) (*scenario.Site, error) {
	filename := name + ".yaml"
	data, err := builtinFS.ReadFile("builtin/" + filename)
	if err != nil {
		return nil, fmt.Errorf("profile.LoadBuiltin: unknown profile %q: %w", name, err)
	}
	var site scenario.Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("profile.LoadBuiltin: parse %q: %w", name, err)
	}
	return &site, nil
}

// List returns the names of all available built-in scenarios.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	return names, nil
}
