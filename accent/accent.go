// Package accent holds the pitch-accent store: an exact-match mapping from
// headword to pronunciation entries, loadable from a TSV source or a
// compiled gob cache.
package accent

// Entry is one pronunciation of a headword. Entries compare by value; two
// entries with identical fields are duplicates.
type Entry struct {
	KatakanaReading string
	PitchNumber     string
	HTMLNotation    string
}

// Store maps headwords to their ordered, duplicate-free pronunciation
// entries. A populated Store is read-only and safe to share between
// goroutines.
type Store struct {
	entries map[string][]Entry
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[string][]Entry)}
}

// Add appends an entry under word, silently dropping empty words and
// value-duplicates.
func (s *Store) Add(word string, e Entry) {
	if word == "" {
		return
	}
	for _, existing := range s.entries[word] {
		if existing == e {
			return
		}
	}
	s.entries[word] = append(s.entries[word], e)
}

// Lookup returns the entries for an exact headword match.
func (s *Store) Lookup(word string) ([]Entry, bool) {
	entries, ok := s.entries[word]
	return entries, ok
}

// Contains reports whether word is a key of the store.
func (s *Store) Contains(word string) bool {
	_, ok := s.entries[word]
	return ok
}

// Len returns the number of distinct keys.
func (s *Store) Len() int {
	return len(s.entries)
}

// Merge copies every entry of other into s, deduplicating by value.
func (s *Store) Merge(other *Store) {
	for word, entries := range other.entries {
		for _, e := range entries {
			s.Add(word, e)
		}
	}
}

// AddReadingKeys indexes every entry under its own katakana reading as an
// additional key, enabling katakana fallback lookups for words whose
// written form is not in the store.
func (s *Store) AddReadingKeys() {
	words := make([]string, 0, len(s.entries))
	for w := range s.entries {
		words = append(words, w)
	}
	for _, w := range words {
		for _, e := range s.entries[w] {
			if e.KatakanaReading != "" && e.KatakanaReading != w {
				s.Add(e.KatakanaReading, e)
			}
		}
	}
}
