package accent

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// LoadTSV reads a tab-separated accent source. Each line holds
// headword, katakana reading and pitch number; an optional fourth column
// overrides the rendered HTML notation. Lines starting with '#' and blank
// lines are skipped.
func LoadTSV(r io.Reader) (*Store, error) {
	store := NewStore()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: expected at least 3 columns, got %d", lineNo, len(fields))
		}
		entry := Entry{
			KatakanaReading: strings.TrimSpace(fields[1]),
			PitchNumber:     strings.TrimSpace(fields[2]),
		}
		if len(fields) > 3 && strings.TrimSpace(fields[3]) != "" {
			entry.HTMLNotation = strings.TrimSpace(fields[3])
		} else {
			entry.HTMLNotation = RenderNotation(entry.KatakanaReading, entry.PitchNumber)
		}
		store.Add(strings.TrimSpace(fields[0]), entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan accent source: %w", err)
	}
	return store, nil
}

// LoadGob reads a store previously written with SaveGob.
func LoadGob(r io.Reader) (*Store, error) {
	var entries map[string][]Entry
	if err := gob.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode accent cache: %w", err)
	}
	return &Store{entries: entries}, nil
}

// SaveGob writes the store as a gob blob for fast reloads.
func (s *Store) SaveGob(w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(s.entries); err != nil {
		return fmt.Errorf("failed to encode accent cache: %w", err)
	}
	return nil
}

// LoadFile loads an accent dictionary, sniffing the format: binary content
// (or a .gob suffix) selects the gob cache loader, anything else the TSV
// loader.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open accent dictionary: %w", err)
	}
	defer f.Close()

	sniff := make([]byte, 512)
	n, readErr := io.ReadFull(f, sniff)
	if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("failed to sniff %s: %w", path, readErr)
	}
	sniff = sniff[:n]
	reader := io.MultiReader(strings.NewReader(string(sniff)), f)

	if strings.HasSuffix(path, ".gob") || looksBinary(sniff) {
		return LoadGob(reader)
	}
	return LoadTSV(reader)
}

// looksBinary reports whether the sniffed prefix is not a text dictionary:
// invalid UTF-8 or embedded NUL bytes point at a gob payload.
func looksBinary(sniff []byte) bool {
	if len(sniff) == 0 {
		return false
	}
	// The sniff window may cut a multi-byte rune; trim the truncated tail
	// before judging validity.
	trimmed := sniff
	for i := 0; i < 3 && len(trimmed) > 0 && !utf8.Valid(trimmed); i++ {
		trimmed = trimmed[:len(trimmed)-1]
	}
	if !utf8.Valid(trimmed) {
		return true
	}
	for _, b := range sniff {
		if b == 0 {
			return true
		}
	}
	return false
}
