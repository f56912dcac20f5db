// Package notes applies field-to-field generation tasks to notes: per
// configured profile it fills a destination field with pitch-accent
// notation or furigana derived from a source field.
package notes

import (
	"regexp"
	"strings"

	"github.com/HUYDGD/Japanese-Ajatt-Tools/config"
)

// Note is one record with named fields.
type Note struct {
	Type   string
	Fields map[string]string
}

// Has reports whether the note carries a field with this name.
func (n *Note) Has(field string) bool {
	_, ok := n.Fields[field]
	return ok
}

// Get returns a field's current content.
func (n *Note) Get(field string) string {
	return n.Fields[field]
}

// Set overwrites a field.
func (n *Note) Set(field, value string) {
	if n.Fields == nil {
		n.Fields = make(map[string]string)
	}
	n.Fields[field] = value
}

// Task is one field-to-field generation request.
type Task struct {
	SrcField string
	DstField string
	Mode     config.TaskMode
}

// TasksFor derives the tasks applying to a note from the configured
// profiles. A profile matches when its note type is contained in the
// note's type, case-insensitively. When srcField is non-empty only tasks
// reading from that field are returned.
func TasksFor(cfg *config.Config, note *Note, srcField string) []Task {
	var tasks []Task
	noteType := strings.ToLower(note.Type)
	for _, p := range cfg.Profiles {
		if p.NoteType != "" && !strings.Contains(noteType, strings.ToLower(p.NoteType)) {
			continue
		}
		if srcField != "" && p.Source != srcField {
			continue
		}
		tasks = append(tasks, Task{SrcField: p.Source, DstField: p.Destination, Mode: p.Mode})
	}
	return tasks
}

// [sound:...] references embedded in a field are media, not text.
var soundTagRe = regexp.MustCompile(`\[sound:[^\[\]]*\]`)

// StripMedia removes embedded media references from field text.
func StripMedia(text string) string {
	return strings.TrimSpace(soundTagRe.ReplaceAllString(text, ""))
}
