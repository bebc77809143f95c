package state

// NoMatch marks an entry that does not match the current query.
const NoMatch = -1

// Entry is one candidate string together with its current match state.
type Entry struct {
	Text   string
	Index  int
	Offset int
}

// Matched reports whether the entry matched the last filter pass.
func (e Entry) Matched() bool {
	return e.Offset != NoMatch
}

// Store owns the candidate entries. Matching entries occupy the prefix
// [0, Matches()) in rank order; the rest follow in unspecified order.
type Store struct {
	entries []Entry
	matches int
}

// NewStore builds one entry per candidate, preserving order.
func NewStore(candidates []string) *Store {
	entries := make([]Entry, len(candidates))
	for i, text := range candidates {
		entries[i] = Entry{Text: text, Index: i, Offset: NoMatch}
	}
	return &Store{entries: entries, matches: len(entries)}
}

// Len returns the total number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Matches returns the size of the match set.
func (s *Store) Matches() int {
	return s.matches
}

// At returns the entry currently stored at position i.
func (s *Store) At(i int) Entry {
	return s.entries[i]
}

// Swap exchanges the entries at positions i and j.
func (s *Store) Swap(i, j int) {
	s.entries[i], s.entries[j] = s.entries[j], s.entries[i]
}

// MatchSet returns the ranked match prefix. The slice aliases the store and
// is only valid until the next Refilter.
func (s *Store) MatchSet() []Entry {
	return s.entries[:s.matches]
}

// CloneMatches produces a copy of the match set that survives refiltering.
func (s *Store) CloneMatches() []Entry {
	dup := make([]Entry, s.matches)
	copy(dup, s.entries[:s.matches])
	return dup
}
