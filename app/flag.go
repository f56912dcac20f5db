package app

import "github.com/urfave/cli/v2"

var configFlag = &cli.StringFlag{
	Name:    "config",
	Aliases: []string{"c"},
	Usage:   "Configuration file path (YAML)",
}

var dictFlag = &cli.StringSliceFlag{
	Name:    "dict",
	Aliases: []string{"d"},
	Usage:   "Pitch accent dictionary file, TSV or compiled gob, possibly multiple",
}

var requiredDictFlag = &cli.StringSliceFlag{
	Name:     dictFlag.Name,
	Aliases:  dictFlag.Aliases,
	Usage:    dictFlag.Usage,
	Required: true,
}

var debugFlag = &cli.BoolFlag{
	Name:  "debug",
	Usage: "Enable debug log",
	Value: false,
}

var outputFlag = &cli.StringFlag{
	Name:    "output",
	Aliases: []string{"o"},
	Usage:   "Output file path",
}

var modeFlag = &cli.StringFlag{
	Name:  "mode",
	Usage: "Notation mode, html or number",
	Value: "html",
}

var srcFieldFlag = &cli.StringFlag{
	Name:  "src-field",
	Usage: "Only run tasks reading from this field",
}

var overwriteFlag = &cli.BoolFlag{
	Name:  "overwrite",
	Usage: "Overwrite occupied destination fields",
}

var workersFlag = &cli.IntFlag{
	Name:  "workers",
	Usage: "Number of parallel workers",
	Value: 4,
}

var dumpDirFlag = &cli.StringFlag{
	Name:  "dump-dir",
	Usage: "Directory for JSON debug dumps",
}
