package tokenize

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		counters []string
		want     []Span
	}{
		{
			name: "plain japanese",
			in:   "食べる",
			want: []Span{{Text: "食べる", Kind: Parseable}},
		},
		{
			name: "mixed scripts",
			in:   "今日はABC、明日。",
			want: []Span{
				{Text: "今日は", Kind: Parseable},
				{Text: "ABC、", Kind: Literal},
				{Text: "明日", Kind: Parseable},
				{Text: "。", Kind: Literal},
			},
		},
		{
			name:     "counter attaches digits",
			in:       "りんごを5本買った",
			counters: []string{"本", "個"},
			want: []Span{
				{Text: "りんごを", Kind: Parseable},
				{Text: "5本買った", Kind: Parseable},
			},
		},
		{
			name:     "counter after text keeps prefix literal",
			in:       "全部で12個です!",
			counters: []string{"個"},
			want: []Span{
				{Text: "全部で", Kind: Parseable},
				{Text: "12個です", Kind: Parseable},
				{Text: "!", Kind: Literal},
			},
		},
		{
			name: "digits without counter stay literal",
			in:   "テスト123",
			want: []Span{
				{Text: "テスト", Kind: Parseable},
				{Text: "123", Kind: Literal},
			},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in, tt.counters)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitSeparators(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"昨日・今日", []string{"昨日", "今日"}},
		{"はい、そうです", []string{"はい", "そうです"}},
		{"単語", []string{"単語"}},
		{"セーター", []string{"セーター"}},
		{"", nil},
	}
	for _, tt := range tests {
		got := SplitSeparators(tt.in)
		if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("SplitSeparators(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestWordReading(t *testing.T) {
	tests := []struct {
		name, in, word, reading string
	}{
		{"single group", "食べた[たべた]", "食べた", "たべた"},
		{"multiple groups", " 食[た]べ 物[もの]", "食べ物", "たもの"},
		{"no reading", "食べた", "食べた", ""},
		{"numeric marker", "テスト[1]", "テスト", "1"},
		{"empty", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, reading := WordReading(tt.in)
			if word != tt.word || reading != tt.reading {
				t.Errorf("WordReading(%q) = (%q, %q), want (%q, %q)",
					tt.in, word, reading, tt.word, tt.reading)
			}
		})
	}
}
