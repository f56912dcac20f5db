// Package lookup resolves an arbitrary expression to the pitch-accent
// pronunciations of the expression or its sub-expressions, applying
// normalization, separator splitting and morphological fallback in a
// fixed priority order, and formats the result for note fields.
package lookup

import (
	"fmt"
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/HUYDGD/Japanese-Ajatt-Tools/accent"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/config"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/htmltext"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/kana"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/morph"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/tokenize"
)

// cacheKey identifies a memoized resolution. Sanitizing and recursion
// permissions change the result, so they are part of the key; the two
// terminal modes are interchangeable and collapse into one class.
type cacheKey struct {
	expr     string
	sanitize bool
	recurse  bool
}

// Engine resolves expressions against an accent store with a
// morphological analyzer as fallback. It memoizes results in a bounded
// LRU and runs strictly synchronously; give each concurrent worker its
// own Engine (the store may be shared).
type Engine struct {
	store    *accent.Store
	analyzer morph.Analyzer
	cfg      *config.Config
	cache    *lru.Cache[cacheKey, AccentDict]
	log      zerolog.Logger
}

// New builds an Engine. The analyzer may be nil when morphological
// fallback is disabled in the configuration.
func New(store *accent.Store, analyzer morph.Analyzer, cfg *config.Config, log zerolog.Logger) (*Engine, error) {
	if store == nil {
		return nil, fmt.Errorf("accent store must not be nil")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if analyzer == nil && cfg.PitchAccent.UseMorphAnalyzer {
		return nil, fmt.Errorf("morph fallback enabled but no analyzer given")
	}
	size := cfg.CacheLookups
	if size < 1 {
		size = 128
	}
	cache, err := lru.New[cacheKey, AccentDict](size)
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup cache: %w", err)
	}
	return &Engine{store: store, analyzer: analyzer, cfg: cfg, cache: cache, log: log}, nil
}

// Resolve searches pronunciations for an expression, returning a mapping
// from the expression (or sub-expressions contained in it) to accent
// entries. Absence of data yields an empty dict, never an error.
func (e *Engine) Resolve(expr string) AccentDict {
	return e.resolve(expr, ModeInitial)
}

// WordAccents returns the entries for a single word without any
// decomposition. Used by the furigana composer.
func (e *Engine) WordAccents(word string) []accent.Entry {
	return e.resolve(word, ModeNormalized).Entries(word)
}

func (e *Engine) resolve(expr string, mode Mode) AccentDict {
	key := cacheKey{expr: expr, sanitize: mode.sanitize(), recurse: mode.recurse()}
	if dict, ok := e.cache.Get(key); ok {
		return dict
	}
	dict := e.resolveUncached(expr, mode)
	e.cache.Add(key, dict)
	return dict
}

func (e *Engine) resolveUncached(expr string, mode Mode) AccentDict {
	ret := newAccentDict()

	if mode.sanitize() {
		expr = htmltext.TextLine(expr)
	}

	// Bracket furigana carries an explicit reading; split it off.
	word, reading := tokenize.WordReading(expr)

	if word == "" || e.cfg.PitchAccent.IsBlocklisted(word) {
		return ret
	}

	// Bracket notation is sometimes used to distinguish otherwise
	// duplicate notes, e.g. テスト[1] and テスト[2]. Numeric readings and
	// readings carrying the configured separator are markers, not real
	// readings.
	if reading != "" && (isNumeric(reading) || containsSeparator(reading, e.cfg.Furigana.ReadingSeparator)) {
		reading = ""
	}

	if entries, ok := e.store.Lookup(word); ok {
		ret.ensure(word)
		for _, entry := range entries {
			// An explicit reading filters out mismatching homographs.
			if reading != "" && kana.ToKatakana(entry.KatakanaReading) != kana.ToKatakana(reading) {
				continue
			}
			ret.add(word, entry)
		}
	} else if katakana := kana.ToKatakana(word); e.cfg.PitchAccent.KanaLookups && e.store.Contains(katakana) {
		ret.merge(e.resolve(katakana, ModeNormalized))
	} else if mode.recurse() {
		e.decompose(word, &ret)
	}

	e.log.Debug().
		Str("expr", expr).
		Stringer("mode", mode).
		Int("words", len(ret.Words())).
		Msg("resolved expression")
	return ret
}

// decompose tries separator splitting, then morphological reduction.
func (e *Engine) decompose(word string, ret *AccentDict) {
	if segments := tokenize.SplitSeparators(word); len(segments) > 1 {
		for _, segment := range segments {
			// Segments that fail individually do not block the others.
			ret.merge(e.resolve(segment, ModeSegment))
		}
	}

	if !ret.Empty() || !e.cfg.PitchAccent.UseMorphAnalyzer || e.analyzer == nil {
		return
	}
	for _, token := range e.analyzer.Translate(word) {
		// Reduced forms resolve in a terminal mode so a morphological
		// result can never trigger another morphological pass.
		ret.merge(e.resolve(token.Headword, ModeMorphResult))

		// Conjugated forms miss on the headword; as a last resort the
		// literal kana reading may exist verbatim in the store.
		if len(ret.Entries(token.Headword)) == 0 &&
			token.KatakanaReading != "" &&
			e.cfg.PitchAccent.KanaLookups {
			ret.merge(e.resolve(token.KatakanaReading, ModeNormalized))
		}
	}
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

func containsSeparator(reading, separator string) bool {
	return separator != "" && strings.Contains(reading, separator)
}
