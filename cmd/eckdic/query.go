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
	"github.com/ianlewis/go-eckdic/glossary"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "Query the glossary",
	ArgsUsage: "FILE QUERY",
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}

		logger, err := newLogger(c)
		if err != nil {
			return err
		}
		path, err := findDictionary(c.Args().Get(0))
		if err != nil {
			return err
		}

		res, err := eckdic.BuildFile(path, &eckdic.Options{
			Logger: logger,
		})
		if err != nil {
			return err
		}
		g, err := glossary.New(res.Entries, nil)
		if err != nil {
			return err
		}

		entries, err := g.Search(c.Args().Get(1))
		if err != nil {
			return err
		}
		for _, e := range entries {
			if _, err := fmt.Fprintf(c.App.Writer, "%s\n\n", e); err != nil {
				return fmt.Errorf("%w: printing entry: %w", ErrEckdic, err)
			}
		}
		return nil
	},
}
