package furigana

import (
	"regexp"
	"strings"

	"github.com/HUYDGD/Japanese-Ajatt-Tools/config"
)

// formatReading renders word with its reading in bracket notation,
// trimming kana shared with the reading so the annotation covers exactly
// the opaque part: ("食べた", "たべた") gives " 食[た]べた". A leading
// space delimits the group from preceding text in the note field.
func formatReading(word, reading string) string {
	if reading == "" || word == reading {
		return word
	}
	w, r := []rune(word), []rune(reading)

	suffix := 0
	for suffix < len(w) && suffix < len(r) && w[len(w)-1-suffix] == r[len(r)-1-suffix] {
		suffix++
	}
	prefix := 0
	for prefix < len(w)-suffix && prefix < len(r)-suffix && w[prefix] == r[prefix] {
		prefix++
	}

	stem := string(w[prefix : len(w)-suffix])
	stemReading := string(r[prefix : len(r)-suffix])
	if stem == "" || stemReading == "" {
		return word
	}
	return string(w[:prefix]) + " " + stem + "[" + stemReading + "]" + string(w[len(w)-suffix:])
}

var bracketRe = regexp.MustCompile(`\[([^\[\]]*)\]`)

// mingleReadings merges annotated variants of the same word into one
// string: [" 強[つよ]い", " 強[こわ]い"] becomes " 強[つよ, こわ]い".
// Variants whose text outside the brackets differs cannot be merged; the
// first one wins.
func mingleReadings(readings []string, sep string, wrap config.WrapStyle) string {
	first := readings[0]
	skeleton := bracketRe.ReplaceAllString(first, "[]")
	groups := extractGroups(first)

	merged := make([][]string, len(groups))
	for i, g := range groups {
		merged[i] = []string{g}
	}
	for _, other := range readings[1:] {
		if bracketRe.ReplaceAllString(other, "[]") != skeleton {
			return first
		}
		for i, g := range extractGroups(other) {
			if !containsString(merged[i], g) {
				merged[i] = append(merged[i], g)
			}
		}
	}

	i := 0
	return bracketRe.ReplaceAllStringFunc(first, func(string) string {
		out := "[" + joinGroup(merged[i], sep, wrap) + "]"
		i++
		return out
	})
}

func joinGroup(parts []string, sep string, wrap config.WrapStyle) string {
	if wrap == config.WrapParentheses && len(parts) > 1 {
		return parts[0] + "(" + strings.Join(parts[1:], sep) + ")"
	}
	return strings.Join(parts, sep)
}

func extractGroups(s string) []string {
	matches := bracketRe.FindAllStringSubmatch(s, -1)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m[1]
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
