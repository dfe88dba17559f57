package nav

// The quick-access strip above the content panel lays its links out
// horizontally and pages them with a left/right arrow pair. The offset is the
// number of columns the strip is shifted left of its natural position, kept in
// [-limit, 0]; the limit depends on which of three discrete viewport tiers the
// current width falls into.

// Direction selects which arrow was pressed.
type Direction int

const (
	ScrollLeft Direction = iota
	ScrollRight
)

// Strip paging geometry, in columns.
const (
	StripStep = 12 // shift per arrow press

	stripTierWideMin   = 140
	stripTierMediumMin = 100

	stripLimitWide   = 24
	stripLimitMedium = 48
	stripLimitNarrow = 72
)

// StripLimit returns the maximum leftward shift for the given viewport width.
func StripLimit(width int) int {
	switch {
	case width >= stripTierWideMin:
		return stripLimitWide
	case width >= stripTierMediumMin:
		return stripLimitMedium
	default:
		return stripLimitNarrow
	}
}

// Clamp applies one arrow press to the strip offset. The result never exceeds
// 0 (natural position) and never goes below -limit, no matter how many
// presses arrive.
func Clamp(offset, step int, dir Direction, limit int) int {
	switch dir {
	case ScrollRight:
		offset -= step
	case ScrollLeft:
		offset += step
	}
	if offset > 0 {
		offset = 0
	}
	if offset < -limit {
		offset = -limit
	}
	return offset
}

// CanScroll reports whether an arrow press in the given direction would move
// the strip; the arrows render disabled when it returns false.
func CanScroll(offset int, dir Direction, limit int) bool {
	switch dir {
	case ScrollRight:
		return offset > -limit
	case ScrollLeft:
		return offset < 0
	}
	return false
}
