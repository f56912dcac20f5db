// Package kana provides script predicates and conversions for Japanese text:
// hiragana/katakana conversion, width folding, phonetic unification of
// reading variants, and conjugation-aware reading adjustment.
package kana

import (
	"strings"

	"golang.org/x/text/width"
)

// LongVowelMark is the katakana-hiragana prolonged sound mark.
const LongVowelMark = 'ー'

const kanaOffset = 0x60 // distance between hiragana and katakana blocks

// IsKanji reports whether r is a CJK unified ideograph or an ideographic
// iteration mark (々, 〆).
func IsKanji(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || r == '々' || r == '〆'
}

// IsKana reports whether r is hiragana, katakana or the prolonged sound mark.
func IsKana(r rune) bool {
	return isHiragana(r) || isKatakana(r) || r == LongVowelMark
}

func isHiragana(r rune) bool {
	return r >= 0x3041 && r <= 0x3096
}

func isKatakana(r rune) bool {
	return r >= 0x30A1 && r <= 0x30FA
}

// IsKanaWord reports whether s is non-empty and consists of kana only.
func IsKanaWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsKana(r) {
			return false
		}
	}
	return true
}

// ToKatakana converts hiragana runes in s to katakana, leaving everything
// else untouched.
func ToKatakana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if isHiragana(r) {
			runes[i] = r + kanaOffset
		}
	}
	return string(runes)
}

// ToHiragana converts katakana runes in s to hiragana, leaving everything
// else (including the prolonged sound mark) untouched.
func ToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - kanaOffset
		}
	}
	return string(runes)
}

// FoldWidth normalizes half-width katakana to full-width and full-width
// latin letters and digits to their ASCII forms.
func FoldWidth(s string) string {
	return width.Fold.String(s)
}

// vowelOf maps each hiragana rune to its vowel column (a, i, u, e, o).
var vowelOf = map[rune]rune{}

func init() {
	columns := map[rune]string{
		'a': "あかがさざただなはばぱまやらわゃぁゎ",
		'i': "いきぎしじちぢにひびぴみりぃ",
		'u': "うくぐすずつづぬふぶぷむゆるゅぅゔっ",
		'e': "えけげせぜてでねへべぺめれぇ",
		'o': "おこごそぞとどのほぼぽもよろをょぉ",
	}
	for vowel, kanas := range columns {
		for _, r := range kanas {
			vowelOf[r] = vowel
		}
	}
}

// Unify returns a phonetic key for a reading: long-vowel spellings are
// collapsed into the prolonged sound mark and cosmetic voicing variants
// (ぢ/じ, づ/ず) are merged. Readings that sound the same map to the same
// key even when written differently, e.g. とーきょー and とうきょう.
func Unify(reading string) string {
	runes := []rune(ToHiragana(reading))
	var b strings.Builder
	b.Grow(len(reading))
	for i, r := range runes {
		switch r {
		case 'ぢ':
			r = 'じ'
		case 'づ':
			r = 'ず'
		}
		if i > 0 && isLongVowel(runes[i-1], r) {
			b.WriteRune(LongVowelMark)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isLongVowel reports whether cur extends the vowel of prev, i.e. the pair
// is an alternative spelling of a prolonged sound.
func isLongVowel(prev, cur rune) bool {
	if cur == LongVowelMark {
		return true
	}
	pv, ok := vowelOf[prev]
	if !ok && prev != LongVowelMark {
		return false
	}
	if prev == LongVowelMark {
		// ーー never occurs, but treat a repeated mark as still long.
		return false
	}
	switch cur {
	case 'あ':
		return pv == 'a'
	case 'い':
		return pv == 'i' || pv == 'e'
	case 'う':
		return pv == 'u' || pv == 'o'
	case 'え':
		return pv == 'e'
	case 'お':
		return pv == 'o'
	}
	return false
}

// AdjustReading aligns the dictionary reading of headword with the actual,
// possibly conjugated surface form. E.g. ("食べた", "食べる", "たべる")
// yields "たべた". When the forms cannot be aligned the reading is returned
// unchanged.
func AdjustReading(word, headword, headwordReading string) string {
	if word == headword {
		return headwordReading
	}
	w, h, r := []rune(word), []rune(headword), []rune(headwordReading)

	// Shared stem between the surface and the headword.
	stem := 0
	for stem < len(w) && stem < len(h) && w[stem] == h[stem] {
		stem++
	}
	if stem == 0 {
		return headwordReading
	}

	// The tails must be kana for the reading to be alignable: kana read as
	// themselves, so the headword tail maps 1:1 onto the reading tail.
	headTail, wordTail := string(h[stem:]), string(w[stem:])
	if headTail != "" && !IsKanaWord(headTail) {
		return headwordReading
	}
	if wordTail != "" && !IsKanaWord(wordTail) {
		return headwordReading
	}
	tailLen := len(h) - stem
	if tailLen > len(r) {
		return headwordReading
	}
	if ToKatakana(string(r[len(r)-tailLen:])) != ToKatakana(headTail) && tailLen > 0 {
		return headwordReading
	}
	return string(r[:len(r)-tailLen]) + wordTail
}
