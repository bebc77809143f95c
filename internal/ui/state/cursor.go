package state

// AdvanceCursor moves the selection one entry forward. The cursor is not
// bounded by the match set; past the end it means "no selection".
func (m *Menu) AdvanceCursor() {
	m.Cursor++
}

// HasSelection reports whether the cursor points at a matching entry.
func (m *Menu) HasSelection() bool {
	_, ok := m.Selected()
	return ok
}
