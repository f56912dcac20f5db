// Package config holds the user-facing configuration bundle: blocklists,
// lookup toggles, output separators and per-note-type task profiles.
// Defaults mirror sensible out-of-the-box behavior; a YAML file merges
// over them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TaskMode selects what a generation task writes into its destination
// field.
type TaskMode string

const (
	ModeHTML     TaskMode = "html"
	ModeNumber   TaskMode = "number"
	ModeFurigana TaskMode = "furigana"
)

// WrapStyle selects how secondary readings are decorated when several
// readings are merged into one furigana annotation.
type WrapStyle string

const (
	WrapNone        WrapStyle = "none"
	WrapParentheses WrapStyle = "parentheses"
)

// Profile binds a source and destination field of a note type to a task
// mode.
type Profile struct {
	NoteType    string   `yaml:"note_type"`
	Source      string   `yaml:"source"`
	Destination string   `yaml:"destination"`
	Mode        TaskMode `yaml:"mode"`
}

// PitchAccent configures the pronunciation lookup and its field output.
type PitchAccent struct {
	Blocklist        []string `yaml:"blocklist"`
	KanaLookups      bool     `yaml:"kana_lookups"`
	UseMorphAnalyzer bool     `yaml:"use_morph_analyzer"`
	OutputHiragana   bool     `yaml:"output_hiragana"`
	MaximumResults   int      `yaml:"maximum_results"`
	ReadingSeparator string   `yaml:"reading_separator"`
	WordSeparator    string   `yaml:"word_separator"`

	blockset map[string]struct{}
}

// Furigana configures the furigana composer.
type Furigana struct {
	Blocklist           []string  `yaml:"blocklist"`
	DatabaseLookups     bool      `yaml:"database_lookups"`
	ReadingSeparator    string    `yaml:"reading_separator"`
	WrapReadings        WrapStyle `yaml:"wrap_readings"`
	MaximumResults      int       `yaml:"maximum_results"`
	PreferLongVowelMark bool      `yaml:"prefer_long_vowel_mark"`
	Counters            []string  `yaml:"counters"`

	blockset map[string]struct{}
}

// Morph configures the morphological analyzer.
type Morph struct {
	// Dictionary selects the kagome system dictionary: "ipa" or "uni".
	Dictionary string `yaml:"dictionary"`
	CacheSize  int    `yaml:"cache_size"`
}

// Config is the full configuration snapshot consumed by the engine, the
// composer and the task runner.
type Config struct {
	PitchAccent        PitchAccent       `yaml:"pitch_accent"`
	Furigana           Furigana          `yaml:"furigana"`
	Morph              Morph             `yaml:"morph"`
	CacheLookups       int               `yaml:"cache_lookups"`
	RegenerateReadings bool              `yaml:"regenerate_readings"`
	GenerateOnNoteAdd  bool              `yaml:"generate_on_note_add"`
	Styles             map[string]string `yaml:"styles"`
	Placeholders       []string          `yaml:"placeholders"`
	Profiles           []Profile         `yaml:"profiles"`
}

// Default returns the coded defaults.
func Default() *Config {
	cfg := &Config{
		PitchAccent: PitchAccent{
			KanaLookups:      true,
			UseMorphAnalyzer: true,
			MaximumResults:   3,
			ReadingSeparator: "・",
			WordSeparator:    "、",
		},
		Furigana: Furigana{
			DatabaseLookups:  true,
			ReadingSeparator: ", ",
			WrapReadings:     WrapNone,
			MaximumResults:   3,
			Counters: []string{
				"つ", "個", "本", "冊", "匹", "枚", "台", "人", "回",
				"円", "年", "月", "日", "時", "分", "秒",
			},
		},
		Morph: Morph{
			Dictionary: "ipa",
			CacheSize:  1024,
		},
		CacheLookups: 1024,
		Styles: map[string]string{
			`class="pitch_high"`:      `style="text-decoration:overline;"`,
			`class="pitch_high_drop"`: `style="text-decoration:overline; border-right:1px solid;"`,
		},
		Placeholders: []string{"No pitch accent data"},
	}
	cfg.Compile()
	return cfg
}

// Load reads a YAML file and merges it over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Compile()
	return cfg, nil
}

// Compile rebuilds the derived blocklist sets. Call it after mutating
// blocklists programmatically.
func (c *Config) Compile() {
	c.PitchAccent.blockset = toSet(c.PitchAccent.Blocklist)
	c.Furigana.blockset = toSet(c.Furigana.Blocklist)
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

// IsBlocklisted reports whether word is excluded from pitch accent lookups.
func (p *PitchAccent) IsBlocklisted(word string) bool {
	_, ok := p.blockset[word]
	return ok
}

// IsBlocklisted reports whether word is excluded from furigana generation.
func (f *Furigana) IsBlocklisted(word string) bool {
	_, ok := f.blockset[word]
	return ok
}

// CanLookupInDB reports whether the composer may query the accent store for
// this headword.
func (f *Furigana) CanLookupInDB(headword string) bool {
	return f.DatabaseLookups && !f.IsBlocklisted(headword)
}
