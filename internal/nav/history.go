package nav

// history is a browser-style back/forward stack. Visiting while the cursor is
// mid-stack truncates the forward entries, matching popstate semantics.
type history struct {
	entries []string
	pos     int // index of the current entry; -1 before the first visit
}

func (h *history) visit(path string) {
	if len(h.entries) == 0 {
		h.entries = []string{path}
		h.pos = 0
		return
	}
	if h.entries[h.pos] == path {
		return // re-visiting the current page is not a new entry
	}
	h.entries = append(h.entries[:h.pos+1], path)
	h.pos = len(h.entries) - 1
}

func (h *history) back() (string, bool) {
	if h.pos <= 0 {
		return "", false
	}
	h.pos--
	return h.entries[h.pos], true
}

func (h *history) forward() (string, bool) {
	if h.pos < 0 || h.pos >= len(h.entries)-1 {
		return "", false
	}
	h.pos++
	return h.entries[h.pos], true
}

func (h *history) current() string {
	if h.pos < 0 || len(h.entries) == 0 {
		return ""
	}
	return h.entries[h.pos]
}
