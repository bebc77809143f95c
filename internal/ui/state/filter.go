package state

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MatchMode selects how a query is compared against entry text.
type MatchMode int

const (
	// MatchSubstring requires the query to occur contiguously.
	MatchSubstring MatchMode = iota
	// MatchFuzzy requires the query runes to occur in order.
	MatchFuzzy
)

// ErrUnknownMatchMode is returned by ParseMatchMode for unsupported names.
var ErrUnknownMatchMode = errors.New("unknown match mode")

// ParseMatchMode converts a configuration value into a MatchMode.
func ParseMatchMode(name string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "substring":
		return MatchSubstring, nil
	case "fuzzy":
		return MatchFuzzy, nil
	}
	return MatchSubstring, fmt.Errorf("%w: %q", ErrUnknownMatchMode, name)
}

func (m MatchMode) String() string {
	switch m {
	case MatchFuzzy:
		return "fuzzy"
	default:
		return "substring"
	}
}

// Matcher computes the match offset of a query within an entry.
type Matcher struct {
	Mode     MatchMode
	FoldCase bool
}

// Offset returns the byte offset at which query matches text, or NoMatch.
// An empty query matches everything at offset 0.
func (m Matcher) Offset(query, text string) int {
	if query == "" {
		return 0
	}
	if len(query) > len(text) {
		return NoMatch
	}
	switch m.Mode {
	case MatchFuzzy:
		return m.fuzzyOffset(query, text)
	default:
		return m.substringOffset(query, text)
	}
}

func (m Matcher) substringOffset(query, text string) int {
	if m.FoldCase {
		return strings.Index(strings.ToLower(text), strings.ToLower(query))
	}
	return strings.Index(text, query)
}

func (m Matcher) fuzzyOffset(query, text string) int {
	first, _ := utf8.DecodeRuneInString(query)
	if !m.FoldCase {
		if !fuzzy.Match(query, text) {
			return NoMatch
		}
		return strings.IndexRune(text, first)
	}
	if !fuzzy.MatchFold(query, text) {
		return NoMatch
	}
	lower := unicode.ToLower(first)
	idx := strings.IndexFunc(text, func(r rune) bool {
		return unicode.ToLower(r) == lower
	})
	if idx < 0 {
		return 0
	}
	return idx
}

// Refilter recomputes the match set for query. Matching entries are swapped
// into the front of the store in a single pass, then the prefix is ordered by
// offset, text length and original position.
func (s *Store) Refilter(query string, matcher Matcher) {
	s.matches = 0
	for i := range s.entries {
		e := &s.entries[i]
		e.Offset = matcher.Offset(query, e.Text)
		if e.Offset == NoMatch {
			continue
		}
		s.Swap(i, s.matches)
		s.matches++
	}
	slices.SortStableFunc(s.entries[:s.matches], compareEntries)
}

func compareEntries(a, b Entry) int {
	if c := cmp.Compare(a.Offset, b.Offset); c != 0 {
		return c
	}
	if c := cmp.Compare(len(a.Text), len(b.Text)); c != 0 {
		return c
	}
	return cmp.Compare(a.Index, b.Index)
}
