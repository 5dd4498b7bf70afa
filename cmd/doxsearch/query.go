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

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "find symbols whose name starts with QUERY",
	ArgsUsage: "QUERY",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "section",
			Usage:   "search the section named `NAME`",
			Aliases: []string{"s"},
			Value:   doxsearch.AllSection,
		},
	},
	OnUsageError: usageError,
	Action: func(c *cli.Context) error {
		query, err := queryArg(c)
		if err != nil {
			return err
		}

		x, err := openIndex(c)
		if err != nil {
			return err
		}
		defer x.Close()

		entries, err := x.LookupEntries(c.String("section"), query)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDoxsearch, err)
		}
		if len(entries) == 0 {
			logger(c).Info("no matching symbols", "query", query)
			return nil
		}

		// Records are grouped under the symbol they belong to.
		tbl := table.New("Symbol", "Scope", "URL").WithWriter(c.App.Writer)
		for _, e := range entries {
			for i, r := range e.Records {
				symbol := ""
				if i == 0 {
					symbol = r.Text()
				}
				tbl.AddRow(symbol, r.ScopeText(), r.URL)
			}
		}
		tbl.Print()

		return nil
	},
}
