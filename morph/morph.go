// Package morph adapts a morphological analyzer to the triples the
// resolution engine consumes: surface form, katakana reading and
// dictionary headword.
package morph

import (
	"strings"

	"github.com/HUYDGD/Japanese-Ajatt-Tools/kana"
)

// ParsedToken is one analyzed word of an expression.
type ParsedToken struct {
	Word            string
	KatakanaReading string
	Headword        string
}

// HiraganaReading returns the reading converted to hiragana.
func (t ParsedToken) HiraganaReading() string {
	return kana.ToHiragana(t.KatakanaReading)
}

// Analyzer produces the ordered morphological decomposition of one
// parseable expression.
type Analyzer interface {
	Translate(expr string) []ParsedToken
}

// newParsedToken builds a token from raw analyzer output, dropping the
// reading when it adds nothing: the surface is already pure kana, or the
// reading is just the surface respelled in katakana.
func newParsedToken(surface, reading, headword string) ParsedToken {
	if headword == "" {
		headword = surface
	}
	if kana.IsKanaWord(surface) || kana.ToKatakana(surface) == kana.ToKatakana(reading) {
		reading = ""
	}
	return ParsedToken{Word: surface, KatakanaReading: reading, Headword: headword}
}

// escapeText removes characters known to confuse analyzers: newlines
// become spaces, the full-width tilde is replaced and half-width kana are
// folded to full-width.
func escapeText(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "～", "~")
	return kana.FoldWidth(text)
}
