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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-eckdic"
	"github.com/ianlewis/go-eckdic/wordlist"
)

var statsCommand = &cli.Command{
	Name:      "stats",
	Usage:     "Print dictionary statistics",
	ArgsUsage: "[FILE]",
	Action: func(c *cli.Context) error {
		if c.NArg() > 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}

		logger, err := newLogger(c)
		if err != nil {
			return err
		}
		path, err := dictionaryArg(c)
		if err != nil {
			return err
		}

		d, err := eckdic.Open(path)
		if err != nil {
			return err
		}
		defer d.Close()

		tbl := table.New("Table", "Count").WithWriter(c.App.Writer)
		for _, lang := range wordlist.Languages() {
			t, err := d.WordTable(lang)
			if err != nil {
				return err
			}
			tbl.AddRow(lang.String()+" words", t.Len())
		}

		res, err := d.Build(&eckdic.Options{
			Logger: logger,
		})
		if err != nil {
			return err
		}
		tbl.AddRow("Records", res.Stats.Records)
		tbl.AddRow("Substitution units", res.Stats.Units)
		tbl.AddRow("Substitution misses", res.Stats.Misses)
		tbl.AddRow("Glossary entries", res.Stats.Entries)
		tbl.Print()

		return nil
	},
}
