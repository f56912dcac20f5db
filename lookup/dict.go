package lookup

import (
	"github.com/HUYDGD/Japanese-Ajatt-Tools/accent"
)

// AccentDict maps expressions (or sub-expressions of the resolved input)
// to pronunciation entries. Key insertion order is preserved and shows in
// formatted output. A dict returned by the engine may be cached; callers
// must treat it as read-only.
type AccentDict struct {
	words   []string
	entries map[string][]accent.Entry
}

func newAccentDict() AccentDict {
	return AccentDict{entries: make(map[string][]accent.Entry)}
}

// ensure registers word as a key, keeping its current entries.
func (d *AccentDict) ensure(word string) {
	if word == "" {
		return
	}
	if _, ok := d.entries[word]; !ok {
		d.words = append(d.words, word)
		d.entries[word] = nil
	}
}

// add appends an entry under word, dropping value-duplicates.
func (d *AccentDict) add(word string, e accent.Entry) {
	if word == "" {
		return
	}
	d.ensure(word)
	for _, existing := range d.entries[word] {
		if existing == e {
			return
		}
	}
	d.entries[word] = append(d.entries[word], e)
}

// merge folds another dict into this one, preserving first-seen key order.
func (d *AccentDict) merge(other AccentDict) {
	for _, word := range other.words {
		d.ensure(word)
		for _, e := range other.entries[word] {
			d.add(word, e)
		}
	}
}

// Words returns the keys in insertion order.
func (d AccentDict) Words() []string {
	return d.words
}

// Entries returns the entries recorded for word.
func (d AccentDict) Entries(word string) []accent.Entry {
	return d.entries[word]
}

// Contains reports whether word is a key.
func (d AccentDict) Contains(word string) bool {
	_, ok := d.entries[word]
	return ok
}

// Empty reports whether the dict has no keys at all.
func (d AccentDict) Empty() bool {
	return len(d.words) == 0
}
