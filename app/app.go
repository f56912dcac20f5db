// Package app assembles the command line interface: text-level furigana
// and pitch accent generation, batch processing of note files, and
// dictionary compilation.
package app

import (
	"github.com/urfave/cli/v2"
)

func New() *cli.App {
	return &cli.App{
		Name:  "ajatt",
		Usage: "pitch accent and furigana generation for Japanese study notes",
		Commands: []*cli.Command{
			NewFuriganaCommand(),
			NewPitchCommand(),
			NewNotesCommand(),
			NewCompileDictCommand(),
		},
	}
}
