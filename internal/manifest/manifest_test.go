package manifest

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	m, err := Load(filepath.Join("testdata", "program.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(m.Parties) != 2 {
		t.Errorf("Parties = %v, want 2 entries", m.Parties)
	}
	if len(m.Arrays) != 2 {
		t.Fatalf("Arrays = %v, want 2 entries", m.Arrays)
	}
	if m.Arrays[0].Party != "alice" || m.Arrays[0].Prefix != "a" || m.Arrays[0].Length != 3 {
		t.Errorf("Arrays[0] = %+v", m.Arrays[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "nope.json")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		m       *Manifest
		wantErr string
	}{
		{"nil manifest", nil, "nil manifest"},
		{"no parties", &Manifest{}, "at least one party"},
		{"empty party name", &Manifest{Parties: []string{""}}, "empty name"},
		{
			"duplicate party",
			&Manifest{Parties: []string{"alice", "alice"}},
			"duplicate party",
		},
		{
			"unknown party",
			&Manifest{
				Parties: []string{"alice"},
				Arrays:  []InputArray{{Party: "bob", Prefix: "x", Length: 1}},
			},
			"unknown party",
		},
		{
			"empty prefix",
			&Manifest{
				Parties: []string{"alice"},
				Arrays:  []InputArray{{Party: "alice", Length: 1}},
			},
			"empty prefix",
		},
		{
			"non-positive length",
			&Manifest{
				Parties: []string{"alice"},
				Arrays:  []InputArray{{Party: "alice", Prefix: "x", Length: 0}},
			},
			"length must be positive",
		},
		{
			"valid",
			&Manifest{
				Parties: []string{"alice"},
				Arrays:  []InputArray{{Party: "alice", Prefix: "x", Length: 2}},
			},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.m)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate failed: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestSecurePathRejectsEscape(t *testing.T) {
	if _, err := SecurePath("../../etc/passwd"); err == nil {
		t.Error("SecurePath should reject paths escaping the working directory")
	}
}

func TestSecurePathAcceptsRelative(t *testing.T) {
	got, err := SecurePath("testdata/program.json")
	if err != nil {
		t.Fatalf("SecurePath failed: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("SecurePath returned non-absolute path %q", got)
	}
}
