package lookup

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/HUYDGD/Japanese-Ajatt-Tools/accent"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/config"
)

var (
	entryA = accent.Entry{KatakanaReading: "ヒ", PitchNumber: "1", HTMLNotation: "hi1"}
	entryB = accent.Entry{KatakanaReading: "ミズ", PitchNumber: "0", HTMLNotation: "mizu0"}
)

func formatEngine(t *testing.T, cfg *config.Config) *Engine {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	engine, err := New(accent.NewStore(), testAnalyzer(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	return engine
}

func dictOf(words map[string][]accent.Entry, order ...string) AccentDict {
	d := newAccentDict()
	for _, w := range order {
		d.ensure(w)
		for _, e := range words[w] {
			d.add(w, e)
		}
	}
	return d
}

func TestFormatPronunciations(t *testing.T) {
	engine := formatEngine(t, nil)

	t.Run("number mode joins words in order", func(t *testing.T) {
		dict := dictOf(map[string][]accent.Entry{
			"火": {entryA},
			"水": {entryB},
		}, "火", "水")
		got, err := engine.FormatPronunciations(dict, config.ModeNumber, FormatOptions{
			SepSingle: "・", SepMulti: "、",
		})
		if err != nil {
			t.Fatalf("FormatPronunciations() error = %v", err)
		}
		if got != "1、0" {
			t.Errorf("got %q, want %q", got, "1、0")
		}
	})

	t.Run("identical notations dedupe", func(t *testing.T) {
		same := accent.Entry{KatakanaReading: "ヒ", PitchNumber: "1", HTMLNotation: "hi1"}
		other := accent.Entry{KatakanaReading: "ヒー", PitchNumber: "1", HTMLNotation: "hi1"}
		dict := dictOf(map[string][]accent.Entry{"火": {same, other}}, "火")
		got, err := engine.FormatPronunciations(dict, config.ModeHTML, FormatOptions{SepSingle: "・"})
		if err != nil {
			t.Fatal(err)
		}
		if got != "hi1" {
			t.Errorf("got %q, want a single notation", got)
		}
	})

	t.Run("over the cap drops the word entirely", func(t *testing.T) {
		dict := dictOf(map[string][]accent.Entry{
			"火": {entryA},
			"水": {entryA, entryB},
		}, "火", "水")
		got, err := engine.FormatPronunciations(dict, config.ModeNumber, FormatOptions{
			MaxResultsPerWord: 1, SepSingle: "・", SepMulti: "、",
		})
		if err != nil {
			t.Fatal(err)
		}
		if got != "1" {
			t.Errorf("got %q, want only 火's notation", got)
		}
	})

	t.Run("expr separator prefixes the word", func(t *testing.T) {
		dict := dictOf(map[string][]accent.Entry{"火": {entryA}}, "火")
		got, err := engine.FormatPronunciations(dict, config.ModeNumber, FormatOptions{
			SepSingle: "・", SepMulti: "、", ExprSep: ":",
		})
		if err != nil {
			t.Fatal(err)
		}
		if got != "火:1" {
			t.Errorf("got %q, want %q", got, "火:1")
		}
	})

	t.Run("unknown mode fails fast", func(t *testing.T) {
		dict := dictOf(map[string][]accent.Entry{"火": {entryA}}, "火")
		_, err := engine.FormatPronunciations(dict, config.TaskMode("bogus"), FormatOptions{})
		if !errors.Is(err, ErrUnknownMode) {
			t.Errorf("error = %v, want ErrUnknownMode", err)
		}
	})

	t.Run("furigana mode is not a notation mode", func(t *testing.T) {
		dict := dictOf(map[string][]accent.Entry{"火": {entryA}}, "火")
		_, err := engine.FormatPronunciations(dict, config.ModeFurigana, FormatOptions{})
		if !errors.Is(err, ErrUnknownMode) {
			t.Errorf("error = %v, want ErrUnknownMode", err)
		}
	})
}

func TestUpdateHTML(t *testing.T) {
	t.Run("style classes replaced", func(t *testing.T) {
		cfg := config.Default()
		cfg.Styles = map[string]string{`class="pitch_high"`: `style="overline"`}
		engine := formatEngine(t, cfg)
		entry := accent.Entry{HTMLNotation: `ハ<span class="pitch_high">ナ</span>`}
		got, err := engine.Notation(entry, config.ModeHTML)
		if err != nil {
			t.Fatal(err)
		}
		if got != `ハ<span style="overline">ナ</span>` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("hiragana output", func(t *testing.T) {
		cfg := config.Default()
		cfg.Styles = nil
		cfg.PitchAccent.OutputHiragana = true
		engine := formatEngine(t, cfg)
		entry := accent.Entry{HTMLNotation: `タ<span class="pitch_high_drop">ベ</span>ル`}
		got, err := engine.Notation(entry, config.ModeHTML)
		if err != nil {
			t.Fatal(err)
		}
		if got != `た<span class="pitch_high_drop">べ</span>る` {
			t.Errorf("got %q", got)
		}
	})
}
