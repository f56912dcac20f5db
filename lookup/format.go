package lookup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/HUYDGD/Japanese-Ajatt-Tools/accent"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/config"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/kana"
)

// ErrUnknownMode signals a formatting mode the formatter does not
// understand. It marks a caller or configuration bug, not a data
// condition, so it fails loudly instead of producing empty output.
var ErrUnknownMode = errors.New("unknown formatting mode")

// FormatOptions control how a resolved AccentDict is rendered into one
// field value.
type FormatOptions struct {
	// MaxResultsPerWord drops a word's contribution entirely when it has
	// more distinct notations than this. Zero disables the cap.
	MaxResultsPerWord int
	// SepSingle joins notations of one word.
	SepSingle string
	// SepMulti joins the per-word strings.
	SepMulti string
	// ExprSep, when non-empty, prefixes each word's notations with
	// "word{ExprSep}".
	ExprSep string
}

// Notation renders one entry in the given task mode.
func (e *Engine) Notation(entry accent.Entry, mode config.TaskMode) (string, error) {
	switch mode {
	case config.ModeHTML:
		return e.updateHTML(entry.HTMLNotation), nil
	case config.ModeNumber:
		return entry.PitchNumber, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

// updateHTML maps style classes to their user-configured inline versions
// and optionally converts the notation to hiragana.
func (e *Engine) updateHTML(notation string) string {
	for class, style := range e.cfg.Styles {
		notation = strings.ReplaceAll(notation, class, style)
	}
	if e.cfg.PitchAccent.OutputHiragana {
		notation = kana.ToHiragana(notation)
	}
	return notation
}

// FormatPronunciations renders a resolved dict: per word the distinct
// notations joined with SepSingle, words joined with SepMulti. A word
// whose deduped notation count exceeds the cap contributes nothing at
// all.
func (e *Engine) FormatPronunciations(dict AccentDict, mode config.TaskMode, opts FormatOptions) (string, error) {
	var parts []string
	for _, word := range dict.Words() {
		var notations []string
		seen := make(map[string]struct{})
		for _, entry := range dict.Entries(word) {
			notation, err := e.Notation(entry, mode)
			if err != nil {
				return "", err
			}
			if _, dup := seen[notation]; dup {
				continue
			}
			seen[notation] = struct{}{}
			notations = append(notations, notation)
		}
		if opts.MaxResultsPerWord > 0 && len(notations) > opts.MaxResultsPerWord {
			continue
		}
		joined := strings.Join(notations, opts.SepSingle)
		if opts.ExprSep != "" {
			joined = word + opts.ExprSep + joined
		}
		parts = append(parts, joined)
	}
	return strings.Join(parts, opts.SepMulti), nil
}
