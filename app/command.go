package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/HUYDGD/Japanese-Ajatt-Tools/accent"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/config"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/furigana"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/logger"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/lookup"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/morph"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/notes"
)

func NewFuriganaCommand() *cli.Command {
	return &cli.Command{
		Name:      "furigana",
		Usage:     "annotate text with bracket furigana",
		ArgsUsage: "[text ...]",
		Flags: []cli.Flag{
			configFlag,
			requiredDictFlag,
			debugFlag,
			outputFlag,
		},
		Action: func(cCtx *cli.Context) error {
			env, err := buildEnv(cCtx)
			if err != nil {
				return err
			}
			engine, analyzer, err := env.newEngine()
			if err != nil {
				return err
			}
			composer, err := furigana.NewComposer(engine, analyzer, env.cfg)
			if err != nil {
				return fmt.Errorf("failed to build composer: %w", err)
			}

			lines, err := inputLines(cCtx)
			if err != nil {
				return err
			}
			out, closeOut, err := outputWriter(cCtx)
			if err != nil {
				return err
			}
			defer closeOut()

			for _, line := range lines {
				fmt.Fprintln(out, composer.Generate(line))
			}
			return nil
		},
	}
}

func NewPitchCommand() *cli.Command {
	return &cli.Command{
		Name:      "pitch",
		Usage:     "print pitch accent notation for expressions",
		ArgsUsage: "[expression ...]",
		Flags: []cli.Flag{
			configFlag,
			requiredDictFlag,
			debugFlag,
			outputFlag,
			modeFlag,
			dumpDirFlag,
		},
		Action: func(cCtx *cli.Context) error {
			env, err := buildEnv(cCtx)
			if err != nil {
				return err
			}
			engine, _, err := env.newEngine()
			if err != nil {
				return err
			}

			lines, err := inputLines(cCtx)
			if err != nil {
				return err
			}
			out, closeOut, err := outputWriter(cCtx)
			if err != nil {
				return err
			}
			defer closeOut()

			mode := config.TaskMode(cCtx.String(modeFlag.Name))
			opts := lookup.FormatOptions{
				MaxResultsPerWord: env.cfg.PitchAccent.MaximumResults,
				SepSingle:         env.cfg.PitchAccent.ReadingSeparator,
				SepMulti:          env.cfg.PitchAccent.WordSeparator,
			}
			for i, line := range lines {
				dict := engine.Resolve(line)
				formatted, err := engine.FormatPronunciations(dict, mode, opts)
				if err != nil {
					return fmt.Errorf("failed to format %q: %w", line, err)
				}
				fmt.Fprintf(out, "%s\t%s\n", line, formatted)

				if dir := cCtx.String(dumpDirFlag.Name); dir != "" {
					dump := make(map[string][]accent.Entry, len(dict.Words()))
					for _, w := range dict.Words() {
						dump[w] = dict.Entries(w)
					}
					name := fmt.Sprintf("pronunciations-%04d", i)
					if err := logger.DumpJSON(dir, name, dump); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}

func NewCompileDictCommand() *cli.Command {
	return &cli.Command{
		Name:      "compile-dict",
		Usage:     "compile a TSV pitch accent table into a gob cache",
		ArgsUsage: "SOURCE.tsv DEST.gob",
		Flags: []cli.Flag{
			debugFlag,
		},
		Action: func(cCtx *cli.Context) error {
			if cCtx.NArg() != 2 {
				return fmt.Errorf("expected source and destination paths, got %d arguments", cCtx.NArg())
			}
			src, dst := cCtx.Args().Get(0), cCtx.Args().Get(1)
			log := logger.New(cCtx.Bool(debugFlag.Name))

			store, err := accent.LoadFile(src)
			if err != nil {
				return fmt.Errorf("failed to load dictionary %q: %w", src, err)
			}
			f, err := os.Create(dst)
			if err != nil {
				return fmt.Errorf("failed to create %q: %w", dst, err)
			}
			defer f.Close()
			if err := store.SaveGob(f); err != nil {
				return fmt.Errorf("failed to write %q: %w", dst, err)
			}
			log.Info().Str("src", src).Str("dst", dst).Int("words", store.Len()).Msg("compiled dictionary")
			return nil
		},
	}
}

type env struct {
	cfg   *config.Config
	store *accent.Store
	log   zerolog.Logger
}

func buildEnv(cCtx *cli.Context) (*env, error) {
	log := logger.New(cCtx.Bool(debugFlag.Name))

	cfg := config.Default()
	if path := cCtx.String(configFlag.Name); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	store := accent.NewStore()
	for _, path := range cCtx.StringSlice(dictFlag.Name) {
		part, err := accent.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load dictionary %q: %w", path, err)
		}
		store.Merge(part)
	}
	store.AddReadingKeys()
	log.Debug().Int("words", store.Len()).Msg("dictionary loaded")

	return &env{cfg: cfg, store: store, log: log}, nil
}

// newEngine builds a fresh engine with its own analyzer. Engines are not
// safe for concurrent use; callers running in parallel build one per
// worker and share only the store.
func (e *env) newEngine() (*lookup.Engine, morph.Analyzer, error) {
	kagome, err := morph.NewKagomeAnalyzer(e.cfg.Morph.Dictionary)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load %q analyzer: %w", e.cfg.Morph.Dictionary, err)
	}
	analyzer := morph.Cached(kagome, e.cfg.Morph.CacheSize)
	engine, err := lookup.New(e.store, analyzer, e.cfg, e.log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build engine: %w", err)
	}
	return engine, analyzer, nil
}

// inputLines returns the command arguments, or the lines of stdin when no
// arguments were given.
func inputLines(cCtx *cli.Context) ([]string, error) {
	if cCtx.NArg() > 0 {
		return cCtx.Args().Slice(), nil
	}
	var lines []string
	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return lines, nil
}

// outputWriter opens the --output file, or hands back stdout with a no-op
// closer.
func outputWriter(cCtx *cli.Context) (io.Writer, func() error, error) {
	path := cCtx.String(outputFlag.Name)
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %q: %w", path, err)
	}
	return f, f.Close, nil
}

// runnerOptions translates CLI flags into task runner options.
func runnerOptions(cCtx *cli.Context) notes.RunOptions {
	return notes.RunOptions{
		SrcField:  cCtx.String(srcFieldFlag.Name),
		Overwrite: cCtx.Bool(overwriteFlag.Name),
	}
}
