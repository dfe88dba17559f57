package nav

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trailing slash stripped", "/patients/", "/patients"},
		{"no trailing slash unchanged", "/patients", "/patients"},
		{"nested trailing slash", "/bills/new/service/", "/bills/new/service"},
		{"missing leading slash added", "patients/", "/patients"},
		{"root stays root", "/", "/"},
		{"empty becomes root", "", "/"},
		{"multiple trailing slashes", "/patients//", "/patients"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.in); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRegistry_Group(t *testing.T) {
	reg := DefaultRegistry()

	g, ok := reg.Group("patients")
	if !ok {
		t.Fatal("patients group should exist")
	}
	if g.Title != "Patients" {
		t.Errorf("Expected title Patients, got %s", g.Title)
	}

	if _, ok := reg.Group("nonexistent"); ok {
		t.Error("unknown group ID should not resolve")
	}
}

func TestRegistry_LinkByPath_TrailingSlash(t *testing.T) {
	reg := DefaultRegistry()

	// The registry stores "/patients/new/"; a path without the trailing
	// slash must still match.
	link, group, ok := reg.LinkByPath("/patients/new")
	if !ok {
		t.Fatal("path without trailing slash should match href with one")
	}
	if link.ID != "patient-new" {
		t.Errorf("Expected patient-new, got %s", link.ID)
	}
	if group.ID != "patients" {
		t.Errorf("Expected containing group patients, got %s", group.ID)
	}
}

func TestRegistry_LinkByPath_NoMatch(t *testing.T) {
	reg := DefaultRegistry()

	if _, _, ok := reg.LinkByPath("/not/a/route/"); ok {
		t.Error("unknown path should not match any link")
	}
}

func TestRegistry_LinkByFragment_FirstMatchWins(t *testing.T) {
	reg := DefaultRegistry()

	// "bills" appears in four hrefs; the first in display order wins.
	link, _, ok := reg.LinkByFragment("bills")
	if !ok {
		t.Fatal("fragment should match")
	}
	if link.ID != "service-bills" {
		t.Errorf("Expected first match service-bills, got %s", link.ID)
	}
}

func TestRegistry_Leaves(t *testing.T) {
	reg := DefaultRegistry()

	tests := []struct {
		id   string
		leaf bool
	}{
		{"dashboard", true},
		{"reports", true},
		{"patients", false},
		{"billing", false},
	}

	for _, tt := range tests {
		g, ok := reg.Group(tt.id)
		if !ok {
			t.Fatalf("group %s should exist", tt.id)
		}
		if g.IsLeaf() != tt.leaf {
			t.Errorf("Group(%s).IsLeaf() = %v, want %v", tt.id, g.IsLeaf(), tt.leaf)
		}
	}
}

func TestRegistry_AllHrefsUnique(t *testing.T) {
	reg := DefaultRegistry()

	seen := make(map[string]string)
	for _, g := range reg.Groups() {
		for _, l := range g.Links {
			norm := NormalizePath(l.Href)
			if prev, dup := seen[norm]; dup {
				t.Errorf("href %s used by both %s and %s", norm, prev, l.ID)
			}
			seen[norm] = l.ID
		}
	}
}
