package notes

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/HUYDGD/Japanese-Ajatt-Tools/config"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/furigana"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/htmltext"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/lookup"
)

// Runner executes the tasks configured for a note. Writing is idempotent:
// unchanged source text and policy produce the same destination value.
type Runner struct {
	cfg      *config.Config
	engine   *lookup.Engine
	composer *furigana.Composer
	log      zerolog.Logger
}

// NewRunner builds a Runner over a shared engine and composer.
func NewRunner(cfg *config.Config, engine *lookup.Engine, composer *furigana.Composer, log zerolog.Logger) (*Runner, error) {
	if cfg == nil || engine == nil || composer == nil {
		return nil, fmt.Errorf("config, engine and composer must not be nil")
	}
	return &Runner{cfg: cfg, engine: engine, composer: composer, log: log}, nil
}

// RunOptions narrow one Run invocation.
type RunOptions struct {
	// SrcField restricts tasks to those reading from this field, e.g. the
	// field the user just edited. Empty runs every matching task.
	SrcField string
	// Overwrite fills destinations that already hold content.
	Overwrite bool
}

// Run applies all configured tasks to the note and reports whether any
// field changed.
func (r *Runner) Run(note *Note, opts RunOptions) (bool, error) {
	changed := false
	for _, task := range TasksFor(r.cfg, note, opts.SrcField) {
		ok, err := r.doTask(note, task, opts.Overwrite)
		if err != nil {
			return changed, err
		}
		changed = changed || ok
	}
	return changed, nil
}

func (r *Runner) doTask(note *Note, task Task, overwrite bool) (bool, error) {
	if !r.canFillDestination(note, task, overwrite) {
		return false, nil
	}
	srcText := StripMedia(note.Get(task.SrcField))
	if srcText == "" {
		return false, nil
	}

	var out string
	if task.Mode == config.ModeFurigana {
		out = r.composer.Generate(srcText)
	} else {
		formatted, err := r.engine.FormatPronunciations(
			r.engine.Resolve(srcText),
			task.Mode,
			lookup.FormatOptions{
				MaxResultsPerWord: r.cfg.PitchAccent.MaximumResults,
				SepSingle:         r.cfg.PitchAccent.ReadingSeparator,
				SepMulti:          r.cfg.PitchAccent.WordSeparator,
			},
		)
		if err != nil {
			return false, fmt.Errorf("failed to format %q: %w", task.SrcField, err)
		}
		out = formatted
	}

	before := note.Get(task.DstField)
	note.Set(task.DstField, out)
	r.log.Debug().
		Str("src", task.SrcField).
		Str("dst", task.DstField).
		Str("mode", string(task.Mode)).
		Msg("filled field")
	return out != before, nil
}

/// canFillDestination gates writing per the fill policy: both fields must
// exist, and the destination must be vacant (empty or placeholder) unless
// overwriting or regenerating was requested.
func (r *Runner) canFillDestination(note *Note, task Task, overwrite bool) bool {
	if task.SrcField == "" || task.DstField == "" {
		return false
	}
	if !note.Has(task.SrcField) || !note.Has(task.DstField) {
		return false
	}

	dst := note.Get(task.DstField)
	lower := strings.ToLower(dst)
	for _, marker := range r.cfg.Placeholders {
		if marker != "" && strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	if len(htmltext.TextLine(dst)) == 0 || overwrite {
		return true
	}
	return r.cfg.RegenerateReadings
}
