// Package manifest resolves the paths listed in a YAML manifest relative to
// the manifest file.
package manifest

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/d2verb/resolvepath"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "manifest.schema.json"

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return c.Compile(schemaURL)
})

// Manifest is a named set of paths.
//
//	base: ~/projects/app   # optional, defaults to the manifest file
//	paths:
//	  cache: ./cache
//	  vimrc: ~/.vimrc
type Manifest struct {
	Base  string            `yaml:"base,omitempty"`
	Paths map[string]string `yaml:"paths"`
}

// Entry is a resolved manifest path.
type Entry struct {
	Name     string
	Raw      string
	Resolved string
}

// Result is a fully resolved manifest.
type Result struct {
	File    string
	Base    string
	Entries []Entry // sorted by name
}

// Parse validates data against the manifest schema and decodes it.
func Parse(data []byte) (*Manifest, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	schema, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	if err := schema.Validate(raw); err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &m, nil
}

// Load reads and parses the manifest at file.
func Load(file string) (*Manifest, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, &InvalidError{File: file, Err: err}
	}
	return m, nil
}

// Resolve resolves every entry of m.
//
// Entries are resolved against m.Base, which is itself resolved against
// file. Without a base, entries are resolved against file directly, which
// makes them relative to the directory holding the manifest.
func Resolve(r *resolvepath.Resolver, file string, m *Manifest) (*Result, error) {
	file, err := r.TryResolve(file)
	if err != nil {
		return nil, fmt.Errorf("resolve manifest path: %w", err)
	}

	base := file
	if m.Base != "" {
		base, err = r.TryResolveIn(m.Base, file)
		if err != nil {
			return nil, &EntryError{Name: "base", Err: err}
		}
	}

	names := make([]string, 0, len(m.Paths))
	for name := range m.Paths {
		names = append(names, name)
	}
	sort.Strings(names)

	res := &Result{File: file, Base: base, Entries: make([]Entry, 0, len(names))}
	for _, name := range names {
		raw := m.Paths[name]
		resolved, err := r.TryResolveIn(raw, base)
		if err != nil {
			return nil, &EntryError{Name: name, Err: err}
		}
		res.Entries = append(res.Entries, Entry{Name: name, Raw: raw, Resolved: resolved})
	}
	return res, nil
}

// LoadAndResolve loads the manifest at file and resolves it.
func LoadAndResolve(r *resolvepath.Resolver, file string) (*Result, error) {
	file, err := r.TryResolve(file)
	if err != nil {
		return nil, fmt.Errorf("resolve manifest path: %w", err)
	}
	m, err := Load(file)
	if err != nil {
		return nil, err
	}
	return Resolve(r, file, m)
}
