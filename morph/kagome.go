package morph

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// KagomeAnalyzer implements Analyzer on top of the kagome morphological
// tokenizer.
type KagomeAnalyzer struct {
	t *tokenizer.Tokenizer
}

var _ Analyzer = (*KagomeAnalyzer)(nil)

// NewKagomeAnalyzer builds an analyzer backed by the named system
// dictionary, "ipa" or "uni".
func NewKagomeAnalyzer(dictionary string) (*KagomeAnalyzer, error) {
	var d *dict.Dict
	switch dictionary {
	case "", "ipa":
		d = ipa.Dict()
	case "uni":
		d = uni.Dict()
	default:
		return nil, fmt.Errorf("unknown morph dictionary %q", dictionary)
	}
	t, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("failed to build tokenizer: %w", err)
	}
	return &KagomeAnalyzer{t: t}, nil
}

// Translate returns the dictionary form and katakana reading for each word
// in expr.
func (a *KagomeAnalyzer) Translate(expr string) []ParsedToken {
	expr = escapeText(expr)
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	ktoks := a.t.Tokenize(expr)
	out := make([]ParsedToken, 0, len(ktoks))
	for _, kt := range ktoks {
		surface := kt.Surface
		if strings.TrimSpace(surface) == "" {
			continue
		}
		headword, ok := kt.BaseForm()
		if !ok || headword == "" || headword == "*" {
			headword = surface
		}
		reading, ok := kt.Reading()
		if !ok || reading == "*" {
			reading = ""
		}
		out = append(out, newParsedToken(surface, reading, headword))
	}
	return out
}
