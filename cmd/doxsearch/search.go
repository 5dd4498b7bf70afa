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
)

var searchCommand = &cli.Command{
	Name:      "search",
	Usage:     "full text search of symbol names and scopes",
	ArgsUsage: "QUERY",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "limit",
			Usage:   "print at most `N` results",
			Aliases: []string{"n"},
			Value:   10,
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

		hits, err := x.FullTextSearch(query, c.Int("limit"))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDoxsearch, err)
		}
		if len(hits) == 0 {
			logger(c).Info("no matching symbols", "query", query)
			return nil
		}

		tbl := table.New("Score", "Symbol", "Scope", "URL").WithWriter(c.App.Writer)
		for _, h := range hits {
			tbl.AddRow(fmt.Sprintf("%.3f", h.Score), h.Record.Text(), h.Record.ScopeText(), h.Record.URL)
		}
		tbl.Print()

		return nil
	},
}
