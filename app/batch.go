package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/HUYDGD/Japanese-Ajatt-Tools/furigana"
	"github.com/HUYDGD/Japanese-Ajatt-Tools/notes"
)

func NewNotesCommand() *cli.Command {
	return &cli.Command{
		Name:      "notes",
		Usage:     "fill pitch accent and furigana fields of a note file",
		ArgsUsage: "NOTES.tsv",
		Flags: []cli.Flag{
			configFlag,
			requiredDictFlag,
			debugFlag,
			outputFlag,
			srcFieldFlag,
			overwriteFlag,
			workersFlag,
		},
		Action: func(cCtx *cli.Context) error {
			if cCtx.NArg() != 1 {
				return fmt.Errorf("expected a note file path, got %d arguments", cCtx.NArg())
			}
			env, err := buildEnv(cCtx)
			if err != nil {
				return err
			}

			f, err := os.Open(cCtx.Args().First())
			if err != nil {
				return fmt.Errorf("failed to open note file: %w", err)
			}
			header, batch, err := readNotes(f)
			f.Close()
			if err != nil {
				return err
			}

			changed, err := processNotes(cCtx, env, batch)
			if err != nil {
				return err
			}
			env.log.Info().Int("notes", len(batch)).Int("changed", changed).Msg("notes processed")

			out, closeOut, err := outputWriter(cCtx)
			if err != nil {
				return err
			}
			defer closeOut()
			return writeNotes(out, header, batch)
		},
	}
}

// processNotes runs the task runner over the batch with a pool of workers.
// Each worker builds its own engine, composer and runner; the accent store
// is the only shared state. Returns the number of notes that changed.
func processNotes(cCtx *cli.Context, env *env, batch []*notes.Note) (int, error) {
	workers := cCtx.Int(workersFlag.Name)
	if workers < 1 {
		workers = 1
	}
	if workers > len(batch) {
		workers = len(batch)
	}
	if len(batch) == 0 {
		return 0, nil
	}

	opts := runnerOptions(cCtx)
	changed := make([]bool, len(batch))
	jobs := make(chan int)

	g, ctx := errgroup.WithContext(cCtx.Context)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			engine, analyzer, err := env.newEngine()
			if err != nil {
				return err
			}
			composer, err := furigana.NewComposer(engine, analyzer, env.cfg)
			if err != nil {
				return fmt.Errorf("failed to build composer: %w", err)
			}
			runner, err := notes.NewRunner(env.cfg, engine, composer, env.log)
			if err != nil {
				return fmt.Errorf("failed to build runner: %w", err)
			}
			for i := range jobs {
				ok, err := runner.Run(batch[i], opts)
				if err != nil {
					return fmt.Errorf("failed to process note %d: %w", i+1, err)
				}
				changed[i] = ok
			}
			return nil
		})
	}
	g.Go(func() error {
		defer close(jobs)
		for i := range batch {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, ok := range changed {
		if ok {
			total++
		}
	}
	return total, nil
}

// readNotes parses a tab-separated note file. The first row is the
// header: the literal column "note_type" followed by field names. Every
// following row is one note; short rows leave the remaining fields empty.
func readNotes(r io.Reader) ([]string, []*notes.Note, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, nil, fmt.Errorf("failed to read note file: %w", err)
		}
		return nil, nil, fmt.Errorf("note file is empty")
	}
	header := strings.Split(sc.Text(), "\t")
	if len(header) < 2 || header[0] != "note_type" {
		return nil, nil, fmt.Errorf("note file header must start with \"note_type\" followed by field names")
	}

	var batch []*notes.Note
	for sc.Scan() {
		if sc.Text() == "" {
			continue
		}
		cols := strings.Split(sc.Text(), "\t")
		note := &notes.Note{Type: cols[0], Fields: make(map[string]string, len(header)-1)}
		for i, field := range header[1:] {
			if i+1 < len(cols) {
				note.Fields[field] = cols[i+1]
			} else {
				note.Fields[field] = ""
			}
		}
		batch = append(batch, note)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read note file: %w", err)
	}
	return header, batch, nil
}

// writeNotes emits the batch back in the header's column order.
func writeNotes(w io.Writer, header []string, batch []*notes.Note) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, strings.Join(header, "\t"))
	for _, note := range batch {
		cols := make([]string, 0, len(header))
		cols = append(cols, note.Type)
		for _, field := range header[1:] {
			cols = append(cols, note.Fields[field])
		}
		fmt.Fprintln(bw, strings.Join(cols, "\t"))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write note file: %w", err)
	}
	return nil
}
