// Package manifest loads JSON program manifests for the nada-array tooling.
// A manifest declares the computation parties and the audited input arrays to
// build for them; it never carries input values.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// InputArray declares one audited input array: Length inputs named
// Prefix0..Prefix{Length-1}, owned by Party.
type InputArray struct {
	Party  string `json:"party"`
	Prefix string `json:"prefix"`
	Length int    `json:"length"`
}

// Manifest describes the parties and input arrays of a program.
type Manifest struct {
	Parties []string     `json:"parties"`
	Arrays  []InputArray `json:"arrays"`
}

// Load reads and parses a manifest JSON file, then validates it.
func Load(path string) (*Manifest, error) {
	absPath, err := SecurePath(path)
	if err != nil {
		return nil, fmt.Errorf("secure path: %w", err)
	}
	data, err := os.ReadFile(absPath) // #nosec G304 -- absPath validated by SecurePath
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	if err := Validate(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate performs structural checks on a Manifest: at least one party,
// unique party names, and every array bound to a known party with a usable
// prefix and positive length.
func Validate(m *Manifest) error {
	if m == nil {
		return errors.New("nil manifest")
	}
	if len(m.Parties) == 0 {
		return errors.New("manifest must declare at least one party")
	}

	seen := make(map[string]struct{}, len(m.Parties))
	for i, name := range m.Parties {
		if name == "" {
			return fmt.Errorf("party[%d]: empty name", i)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("duplicate party name %q", name)
		}
		seen[name] = struct{}{}
	}

	for i, arr := range m.Arrays {
		if _, ok := seen[arr.Party]; !ok {
			return fmt.Errorf("array[%d]: unknown party %q", i, arr.Party)
		}
		if arr.Prefix == "" {
			return fmt.Errorf("array[%d]: empty prefix", i)
		}
		if arr.Length <= 0 {
			return fmt.Errorf("array[%d]: length must be positive, got %d", i, arr.Length)
		}
	}
	return nil
}

// SecurePath validates that a file path doesn't escape the working directory.
// This prevents path traversal when loading user-specified manifest files.
func SecurePath(path string) (string, error) {
	clean := filepath.Clean(path)
	absPath, err := filepath.Abs(clean)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}
	base, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	rel, err := filepath.Rel(base, absPath)
	if err != nil {
		return "", fmt.Errorf("relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("path %q escapes working directory", path)
	}
	return absPath, nil
}
