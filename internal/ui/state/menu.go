package state

// Menu is the interactive selection state: candidates, query, matcher and
// the selection cursor.
type Menu struct {
	Store   *Store
	Query   *Query
	Matcher Matcher
	Cursor  int
}

// NewMenu constructs a Menu over candidates and performs the initial filter
// pass so the match set is ranked before the first render.
func NewMenu(candidates []string, capacity int, matcher Matcher) *Menu {
	m := &Menu{
		Store:   NewStore(candidates),
		Query:   NewQuery(capacity),
		Matcher: matcher,
	}
	m.Refilter()
	return m
}

// Refilter recomputes the match set for the current query.
func (m *Menu) Refilter() {
	m.Store.Refilter(m.Query.String(), m.Matcher)
}

// AppendQuery adds c to the query buffer.
func (m *Menu) AppendQuery(c byte) error {
	return m.Query.Append(c)
}

// ClearQuery empties the query and resets the cursor.
func (m *Menu) ClearQuery() {
	m.Query.Clear()
	m.Cursor = 0
}

// Selected returns the entry under the cursor, if the cursor lies inside the
// match set.
func (m *Menu) Selected() (Entry, bool) {
	if m.Cursor < 0 || m.Cursor >= m.Store.Matches() {
		return Entry{}, false
	}
	return m.Store.At(m.Cursor), true
}

// Commit returns the text to emit: the selected entry, or the raw query when
// nothing is selected.
func (m *Menu) Commit() string {
	if e, ok := m.Selected(); ok {
		return e.Text
	}
	return m.Query.String()
}
