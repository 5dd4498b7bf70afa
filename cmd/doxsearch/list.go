// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
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

	"github.com/ianlewis/go-doxsearch"
)

var listCommand = &cli.Command{
	Name:         "list",
	Usage:        "list the search indexes under DIR",
	ArgsUsage:    "[DIR]",
	OnUsageError: usageError,
	Action: func(c *cli.Context) error {
		if c.NArg() > 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}
		root := "."
		if c.NArg() == 1 {
			root = c.Args().First()
		}

		indexes, errs := doxsearch.OpenAll(root, nil)
		for _, err := range errs {
			logger(c).Warn("skipping search index", "err", err)
		}
		defer func() {
			for _, x := range indexes {
				x.Close()
			}
		}()

		tbl := table.New("Directory", "Sections", "Entries").WithWriter(c.App.Writer)
		for _, x := range indexes {
			entries := "-"
			if t, err := x.Table(doxsearch.AllSection); err == nil {
				entries = fmt.Sprint(t.Len())
			}
			tbl.AddRow(x.Dir(), len(x.Sections()), entries)
		}
		tbl.Print()

		if len(errs) > 0 {
			return fmt.Errorf("%w: %d search indexes could not be opened", ErrDoxsearch, len(errs))
		}
		return nil
	},
}
