package notes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/HUYDGD/Japanese-Ajatt-Tools/accent"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/config"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/furigana"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/lookup"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/morph"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Profiles = []config.Profile{
		{NoteType: "japanese", Source: "VocabKanji", Destination: "VocabPitchNum", Mode: config.ModeNumber},
		{NoteType: "japanese", Source: "VocabKanji", Destination: "VocabFurigana", Mode: config.ModeFurigana},
	}
	return cfg
}

func testRunner(t *testing.T, cfg *config.Config) *Runner {
	t.Helper()
	store := accent.NewStore()
	store.Add("食べる", accent.Entry{KatakanaReading: "タベル", PitchNumber: "2"})
	analyzer := &morph.TableAnalyzer{Tokens: map[string][]morph.ParsedToken{
		"食べた": {{Word: "食べた", KatakanaReading: "タベタ", Headword: "食べる"}},
	}}
	engine, err := lookup.New(store, analyzer, cfg, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	composer, err := furigana.NewComposer(engine, analyzer, cfg)
	if err != nil {
		t.Fatal(err)
	}
	runner, err := NewRunner(cfg, engine, composer, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	return runner
}

func sampleNote() *Note {
	return &Note{
		Type: "Japanese vocab",
		Fields: map[string]string{
			"VocabKanji":    "食べる",
			"VocabPitchNum": "",
			"VocabFurigana": "",
		},
	}
}

func TestTasksFor(t *testing.T) {
	cfg := testConfig()

	t.Run("matching note type", func(t *testing.T) {
		got := TasksFor(cfg, sampleNote(), "")
		want := []Task{
			{SrcField: "VocabKanji", DstField: "VocabPitchNum", Mode: config.ModeNumber},
			{SrcField: "VocabKanji", DstField: "VocabFurigana", Mode: config.ModeFurigana},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("TasksFor() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("other note type", func(t *testing.T) {
		note := sampleNote()
		note.Type = "Sentence cards"
		if got := TasksFor(cfg, note, ""); len(got) != 0 {
			t.Errorf("TasksFor() = %v, want none", got)
		}
	})

	t.Run("source field filter", func(t *testing.T) {
		if got := TasksFor(cfg, sampleNote(), "Other"); len(got) != 0 {
			t.Errorf("TasksFor() = %v, want none", got)
		}
	})
}

func TestRunnerRun(t *testing.T) {
	t.Run("fills empty destinations", func(t *testing.T) {
		cfg := testConfig()
		runner := testRunner(t, cfg)
		note := sampleNote()
		changed, err := runner.Run(note, RunOptions{})
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if !changed {
			t.Error("Run() = false, want changed")
		}
		if got := note.Get("VocabPitchNum"); got != "2" {
			t.Errorf("VocabPitchNum = %q, want %q", got, "2")
		}
		if got := note.Get("VocabFurigana"); got != "食[た]べる" {
			t.Errorf("VocabFurigana = %q, want %q", got, "食[た]べる")
		}
	})

	t.Run("idempotent on unchanged source", func(t *testing.T) {
		cfg := testConfig()
		cfg.RegenerateReadings = true
		runner := testRunner(t, cfg)
		note := sampleNote()
		if _, err := runner.Run(note, RunOptions{}); err != nil {
			t.Fatal(err)
		}
		first := note.Get("VocabPitchNum")
		changed, err := runner.Run(note, RunOptions{})
		if err != nil {
			t.Fatal(err)
		}
		if changed {
			t.Error("second Run() reported a change")
		}
		if note.Get("VocabPitchNum") != first {
			t.Error("destination drifted between runs")
		}
	})

	t.Run("occupied destination untouched without overwrite", func(t *testing.T) {
		runner := testRunner(t, testConfig())
		note := sampleNote()
		note.Set("VocabPitchNum", "handwritten")
		if _, err := runner.Run(note, RunOptions{}); err != nil {
			t.Fatal(err)
		}
		if got := note.Get("VocabPitchNum"); got != "handwritten" {
			t.Errorf("VocabPitchNum = %q, want untouched", got)
		}
	})

	t.Run("overwrite replaces content", func(t *testing.T) {
		runner := testRunner(t, testConfig())
		note := sampleNote()
		note.Set("VocabPitchNum", "handwritten")
		if _, err := runner.Run(note, RunOptions{Overwrite: true}); err != nil {
			t.Fatal(err)
		}
		if got := note.Get("VocabPitchNum"); got != "2" {
			t.Errorf("VocabPitchNum = %q, want %q", got, "2")
		}
	})

	t.Run("placeholder counts as vacant", func(t *testing.T) {
		runner := testRunner(t, testConfig())
		note := sampleNote()
		note.Set("VocabPitchNum", "no pitch accent data")
		if _, err := runner.Run(note, RunOptions{}); err != nil {
			t.Fatal(err)
		}
		if got := note.Get("VocabPitchNum"); got != "2" {
			t.Errorf("VocabPitchNum = %q, want regenerated", got)
		}
	})

	t.Run("missing fields skip the task", func(t *testing.T) {
		runner := testRunner(t, testConfig())
		note := &Note{Type: "Japanese", Fields: map[string]string{"VocabKanji": "食べる"}}
		changed, err := runner.Run(note, RunOptions{})
		if err != nil {
			t.Fatal(err)
		}
		if changed {
			t.Error("Run() = true, want false for missing destination")
		}
	})

	t.Run("media-only source is empty", func(t *testing.T) {
		runner := testRunner(t, testConfig())
		note := sampleNote()
		note.Set("VocabKanji", "[sound:taberu.mp3]")
		changed, err := runner.Run(note, RunOptions{})
		if err != nil {
			t.Fatal(err)
		}
		if changed {
			t.Error("Run() = true, want false for media-only source")
		}
	})
}

func TestStripMedia(t *testing.T) {
	if got := StripMedia("食べる [sound:taberu.mp3]"); got != "食べる" {
		t.Errorf("StripMedia() = %q", got)
	}
}
