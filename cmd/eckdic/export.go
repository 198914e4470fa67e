// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-eckdic"
	"github.com/ianlewis/go-eckdic/export"
)

const (
	formatSQLite  = "sqlite"
	formatTSV     = "tsv"
	formatDictZip = "tsv.dz"
)

// newSink returns the sink for the --format and --output flags.
func newSink(c *cli.Context) (export.Sink, error) {
	out := c.String("output")
	switch c.String("format") {
	case formatSQLite:
		return &export.SQLite{Path: out}, nil
	case formatTSV:
		return &export.TSV{Path: out}, nil
	case formatDictZip:
		return &export.TSV{Path: out, DictZip: true}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrFlagParse, c.String("format"))
	}
}

var exportCommand = &cli.Command{
	Name:      "export",
	Usage:     "Export the dictionary as a bilingual glossary",
	ArgsUsage: "[FILE]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Usage:   "write the glossary to `PATH`",
			Aliases: []string{"o"},
			Value:   "biyak.db",
			EnvVars: []string{"ECKDIC_OUTPUT"},
		},
		&cli.StringFlag{
			Name:    "format",
			Usage:   "output `FORMAT` (sqlite, tsv, tsv.dz)",
			Aliases: []string{"f"},
			Value:   formatSQLite,
			EnvVars: []string{"ECKDIC_FORMAT"},
		},
		&cli.StringFlag{
			Name:    "name",
			Usage:   "store the glossary under `NAME`",
			Value:   eckdic.DefaultName,
			EnvVars: []string{"ECKDIC_NAME"},
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() > 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}

		logger, err := newLogger(c)
		if err != nil {
			return err
		}
		sink, err := newSink(c)
		if err != nil {
			return err
		}
		path, err := dictionaryArg(c)
		if err != nil {
			return err
		}

		stats, err := eckdic.Export(c.Context, path, c.String("name"), sink, &eckdic.Options{
			Logger: logger,
		})
		if err != nil {
			return err
		}

		logger.Info("exported glossary", "output", c.String("output"), "entries", stats.Entries)
		return nil
	},
}
