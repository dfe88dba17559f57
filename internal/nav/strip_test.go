package nav

import "testing"

func TestStripLimit_Tiers(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"wide viewport", 180, 24},
		{"wide tier lower edge", 140, 24},
		{"medium viewport", 120, 48},
		{"medium tier lower edge", 100, 48},
		{"narrow viewport", 99, 72},
		{"tiny viewport", 40, 72},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripLimit(tt.width); got != tt.want {
				t.Errorf("StripLimit(%d) = %d, want %d", tt.width, got, tt.want)
			}
		})
	}
}

func TestClamp_Bounds(t *testing.T) {
	limit := StripLimit(120)

	// No number of right presses pushes the offset past -limit.
	offset := 0
	for i := 0; i < 50; i++ {
		offset = Clamp(offset, StripStep, ScrollRight, limit)
		if offset < -limit || offset > 0 {
			t.Fatalf("offset %d escaped [-%d, 0] after %d right presses", offset, limit, i+1)
		}
	}
	if offset != -limit {
		t.Errorf("Expected offset pinned at -%d, got %d", limit, offset)
	}

	// And no number of left presses pushes it past 0.
	for i := 0; i < 50; i++ {
		offset = Clamp(offset, StripStep, ScrollLeft, limit)
		if offset < -limit || offset > 0 {
			t.Fatalf("offset %d escaped [-%d, 0] after %d left presses", offset, limit, i+1)
		}
	}
	if offset != 0 {
		t.Errorf("Expected offset back at 0, got %d", offset)
	}
}

func TestClamp_PartialStep(t *testing.T) {
	// A limit that is not a multiple of the step still pins exactly at -limit.
	offset := Clamp(-20, StripStep, ScrollRight, 25)
	if offset != -25 {
		t.Errorf("Expected -25, got %d", offset)
	}
	offset = Clamp(-5, StripStep, ScrollLeft, 25)
	if offset != 0 {
		t.Errorf("Expected 0, got %d", offset)
	}
}

func TestCanScroll(t *testing.T) {
	limit := 48

	tests := []struct {
		name   string
		offset int
		dir    Direction
		want   bool
	}{
		{"at rest, right enabled", 0, ScrollRight, true},
		{"at rest, left disabled", 0, ScrollLeft, false},
		{"mid-strip, both enabled right", -24, ScrollRight, true},
		{"mid-strip, both enabled left", -24, ScrollLeft, true},
		{"at limit, right disabled", -48, ScrollRight, false},
		{"at limit, left enabled", -48, ScrollLeft, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanScroll(tt.offset, tt.dir, limit); got != tt.want {
				t.Errorf("CanScroll(%d, %v, %d) = %v, want %v", tt.offset, tt.dir, limit, got, tt.want)
			}
		})
	}
}
