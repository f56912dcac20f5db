// Package furigana composes reading annotations for parsed tokens and
// whole texts, in the bracket notation "漢字[かんじ]" understood by note
// renderers.
package furigana

import (
	"fmt"
	"sort"
	"strings"

	"github.com/HUYDGD/Japanese-Ajatt-Tools/accent"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/config"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/kana"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/lookup"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/morph"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/tokenize"
)

// Composer turns parsed tokens into furigana-annotated strings by querying
// the lookup engine and merging the surviving candidate readings.
type Composer struct {
	engine   *lookup.Engine
	analyzer morph.Analyzer
	cfg      *config.Config
}

// NewComposer builds a Composer sharing the engine's store and analyzer.
func NewComposer(engine *lookup.Engine, analyzer morph.Analyzer, cfg *config.Config) (*Composer, error) {
	if engine == nil || analyzer == nil || cfg == nil {
		return nil, fmt.Errorf("engine, analyzer and config must not be nil")
	}
	return &Composer{engine: engine, analyzer: analyzer, cfg: cfg}, nil
}

// ComposeToken annotates one token with its readings. Pure kana words and
// blocklisted words come back unchanged, as does anything without a
// usable reading or with more readings than the configured maximum.
func (c *Composer) ComposeToken(tok morph.ParsedToken) string {
	if kana.IsKanaWord(tok.Word) || c.cfg.Furigana.IsBlocklisted(tok.Word) {
		return tok.Word
	}
	readings := c.candidates(tok)
	switch {
	case len(readings) == 0:
		return tok.Word
	case len(readings) == 1:
		return readings[0]
	case len(readings) <= c.cfg.Furigana.MaximumResults:
		return mingleReadings(readings, c.cfg.Furigana.ReadingSeparator, c.cfg.Furigana.WrapReadings)
	default:
		return tok.Word
	}
}

// candidates collects the annotated variants of a token: the analyzer's
// own reading first, then the store's entries with their readings aligned
// to the surface form. Phonetically identical readings collapse, first
// occurrence wins.
func (c *Composer) candidates(tok morph.ParsedToken) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(reading string) {
		key := kana.Unify(reading)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, formatReading(tok.Word, reading))
	}

	if tok.KatakanaReading != "" {
		add(tok.HiraganaReading())
	}
	if c.cfg.Furigana.CanLookupInDB(tok.Headword) {
		entries := append([]accent.Entry(nil), c.engine.WordAccents(tok.Headword)...)
		c.orderByLongVowelPreference(entries)
		for _, entry := range entries {
			add(kana.AdjustReading(tok.Word, tok.Headword, kana.ToHiragana(entry.KatakanaReading)))
		}
	}
	return out
}

// orderByLongVowelPreference stably moves entries whose reading carries
// the prolonged sound mark to the front or back, per configuration.
func (c *Composer) orderByLongVowelPreference(entries []accent.Entry) {
	prefer := c.cfg.Furigana.PreferLongVowelMark
	hasMark := func(e accent.Entry) bool {
		return strings.ContainsRune(e.KatakanaReading, kana.LongVowelMark)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if prefer {
			return hasMark(entries[i]) && !hasMark(entries[j])
		}
		return !hasMark(entries[i]) && hasMark(entries[j])
	})
}

// Generate annotates free text: parseable spans are resolved (whole-span
// first, morphologically on miss) while literal spans pass through
// verbatim, concatenated in original order.
func (c *Composer) Generate(text string) string {
	var b strings.Builder
	for _, span := range tokenize.Tokenize(text, c.cfg.Furigana.Counters) {
		if span.Kind != tokenize.Parseable {
			b.WriteString(span.Text)
			continue
		}
		if out, ok := c.tryFullText(span.Text); ok {
			b.WriteString(out)
			continue
		}
		for _, tok := range c.analyzer.Translate(span.Text) {
			b.WriteString(c.ComposeToken(tok))
		}
	}
	return strings.TrimSpace(b.String())
}

// tryFullText looks the whole span up as one expression, skipping the
// analyzer when the text is a single dictionary form or several of them
// joined by punctuation.
func (c *Composer) tryFullText(text string) (string, bool) {
	dummy := morph.ParsedToken{Word: text, Headword: text}
	out := c.ComposeToken(dummy)
	return out, out != text
}
