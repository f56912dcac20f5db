// Package tokenize splits free text into spans that a morphological
// analyzer can handle and spans that must be carried through verbatim.
// It also provides the helpers for bracket furigana notation and for
// splitting expressions on separator punctuation.
package tokenize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/HUYDGD/Japanese-Ajatt-Tools/kana"
)

// SpanKind classifies a span of input text.
type SpanKind int

const (
	// Literal spans (punctuation, latin, bare numerals) are reproduced
	// verbatim in the output.
	Literal SpanKind = iota
	// Parseable spans carry kanji or kana and are fed to the analyzer.
	Parseable
)

// Span is a run of input text of a single kind.
type Span struct {
	Text string
	Kind SpanKind
}

func parseableRune(r rune) bool {
	return kana.IsKana(r) || kana.IsKanji(r) || r == 'ヵ' || r == 'ヶ'
}

func digitRune(r rune) bool {
	return unicode.IsDigit(r)
}

// Tokenize splits text into alternating parseable and literal spans.
// A numeral run followed by one of the counter suffixes is kept attached
// to the counter, so e.g. "5本" stays one parseable span.
func Tokenize(text string, counters []string) []Span {
	var spans []Span
	var cur strings.Builder
	curKind := Literal
	flush := func() {
		if cur.Len() > 0 {
			spans = append(spans, Span{Text: cur.String(), Kind: curKind})
			cur.Reset()
		}
	}
	for _, r := range text {
		kind := Literal
		if parseableRune(r) {
			kind = Parseable
		}
		if kind != curKind {
			flush()
			curKind = kind
		}
		cur.WriteRune(r)
	}
	flush()
	return attachCounters(spans, counters)
}

// attachCounters moves the trailing digit run of a literal span into the
// following parseable span when that span opens with a counter suffix.
func attachCounters(spans []Span, counters []string) []Span {
	if len(counters) == 0 {
		return spans
	}
	var out []Span
	for _, sp := range spans {
		if sp.Kind != Parseable || len(out) == 0 {
			out = append(out, sp)
			continue
		}
		prev := &out[len(out)-1]
		if prev.Kind != Literal || !startsWithCounter(sp.Text, counters) {
			out = append(out, sp)
			continue
		}
		digits := trailingDigits(prev.Text)
		if digits == "" {
			out = append(out, sp)
			continue
		}
		prev.Text = prev.Text[:len(prev.Text)-len(digits)]
		merged := Span{Text: digits + sp.Text, Kind: Parseable}
		if prev.Text == "" {
			out[len(out)-1] = merged
		} else {
			out = append(out, merged)
		}
	}
	return out
}

func startsWithCounter(s string, counters []string) bool {
	for _, c := range counters {
		if c != "" && strings.HasPrefix(s, c) {
			return true
		}
	}
	return false
}

func trailingDigits(s string) string {
	end := len(s)
	for end > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:end])
		if !digitRune(r) {
			break
		}
		end -= size
	}
	return s[end:]
}

// SplitSeparators splits an expression on separator punctuation and
// whitespace. Single words pass through as a one-element slice.
func SplitSeparators(expr string) []string {
	return strings.FieldsFunc(expr, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

var readingRe = regexp.MustCompile(`\[([^\[\]]*)\]`)

// WordReading splits bracket furigana notation into the bare expression and
// its reading: "食べた[たべた]" yields ("食べた", "たべた"). Multiple
// bracket groups are concatenated: " 食[た]べ物[もの]" yields
// ("食べ物", "たもの"). Text without brackets comes back with an empty
// reading.
func WordReading(expr string) (word, reading string) {
	matches := readingRe.FindAllStringSubmatch(expr, -1)
	if len(matches) == 0 {
		return expr, ""
	}
	word = strings.ReplaceAll(readingRe.ReplaceAllString(expr, ""), " ", "")
	var b strings.Builder
	for _, m := range matches {
		b.WriteString(m[1])
	}
	return word, b.String()
}
