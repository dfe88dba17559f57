package nav

import "testing"

func TestHistory_EmptyStack(t *testing.T) {
	var h history

	if h.current() != "" {
		t.Errorf("Expected empty current, got %q", h.current())
	}
	if _, ok := h.back(); ok {
		t.Error("back on an empty stack should report false")
	}
	if _, ok := h.forward(); ok {
		t.Error("forward on an empty stack should report false")
	}
}

func TestHistory_RevisitCurrentIsNoOp(t *testing.T) {
	var h history

	h.visit("/patients")
	h.visit("/patients")

	if len(h.entries) != 1 {
		t.Errorf("Expected a single entry, got %d", len(h.entries))
	}
	if _, ok := h.back(); ok {
		t.Error("re-visiting should not create a back entry")
	}
}

func TestHistory_WalkAndTruncate(t *testing.T) {
	var h history

	h.visit("/dashboard")
	h.visit("/patients")
	h.visit("/leads")

	if path, ok := h.back(); !ok || path != "/patients" {
		t.Fatalf("back = %q, %v; want /patients", path, ok)
	}
	if path, ok := h.back(); !ok || path != "/dashboard" {
		t.Fatalf("back = %q, %v; want /dashboard", path, ok)
	}
	if _, ok := h.back(); ok {
		t.Error("back at the start of the stack should report false")
	}

	// Visiting mid-stack drops the forward entries.
	h.visit("/staff")
	if _, ok := h.forward(); ok {
		t.Error("forward entries should be gone after a mid-stack visit")
	}
	if h.current() != "/staff" {
		t.Errorf("current = %q, want /staff", h.current())
	}
}
