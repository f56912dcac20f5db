package accent

import (
	"strconv"
	"strings"
)

// Kana that attach to the preceding rune within a single mora.
const smallKana = "ぁぃぅぇぉゃゅょゎァィゥェォャュョヮ"

func splitMorae(reading string) []string {
	var morae []string
	for _, r := range reading {
		if len(morae) > 0 && strings.ContainsRune(smallKana, r) {
			morae[len(morae)-1] += string(r)
			continue
		}
		morae = append(morae, string(r))
	}
	return morae
}

// RenderNotation builds the HTML pitch pattern for a katakana reading and
// its accent number: the high portion of the word is wrapped in
// pitch_high spans and the mora carrying the downstep in a
// pitch_high_drop span. Unparseable accent numbers yield the bare
// reading.
func RenderNotation(reading, pitchNumber string) string {
	accent, err := strconv.Atoi(strings.TrimSpace(pitchNumber))
	if err != nil || accent < 0 {
		return reading
	}
	morae := splitMorae(reading)
	if len(morae) == 0 {
		return reading
	}

	var b strings.Builder
	switch {
	case accent == 0:
		// Heiban: low first mora, the rest stays high with no drop.
		b.WriteString(morae[0])
		if len(morae) > 1 {
			b.WriteString(`<span class="pitch_high">`)
			b.WriteString(strings.Join(morae[1:], ""))
			b.WriteString(`</span>`)
		}
	case accent == 1:
		// Atamadaka: high first mora, drop immediately after.
		b.WriteString(`<span class="pitch_high_drop">`)
		b.WriteString(morae[0])
		b.WriteString(`</span>`)
		b.WriteString(strings.Join(morae[1:], ""))
	default:
		// Nakadaka/odaka: low first mora, high until the accent mora,
		// drop after it.
		if accent > len(morae) {
			accent = len(morae)
		}
		b.WriteString(morae[0])
		if accent > 2 {
			b.WriteString(`<span class="pitch_high">`)
			b.WriteString(strings.Join(morae[1:accent-1], ""))
			b.WriteString(`</span>`)
		}
		b.WriteString(`<span class="pitch_high_drop">`)
		b.WriteString(morae[accent-1])
		b.WriteString(`</span>`)
		b.WriteString(strings.Join(morae[accent:], ""))
	}
	return b.String()
}
