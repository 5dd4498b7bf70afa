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

	"github.com/ianlewis/go-doxsearch/linkcheck"
)

var checkCommand = &cli.Command{
	Name:  "check",
	Usage: "verify that every indexed page and anchor exists",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "concurrency",
			Usage: "check at most `N` pages in parallel",
			Value: linkcheck.DefaultOptions.Concurrency,
		},
	},
	OnUsageError: usageError,
	Action: func(c *cli.Context) error {
		x, err := openIndex(c)
		if err != nil {
			return err
		}
		defer x.Close()

		problems, err := x.Check(c.Context, &linkcheck.Options{
			Concurrency: c.Int("concurrency"),
		})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDoxsearch, err)
		}
		if len(problems) == 0 {
			logger(c).Info("all links ok", "dir", x.Dir())
			return nil
		}

		tbl := table.New("Symbol", "URL", "Problem").WithWriter(c.App.Writer)
		for _, p := range problems {
			tbl.AddRow(p.Record.Text(), p.Record.URL, p.Err)
		}
		tbl.Print()

		return fmt.Errorf("%w: %d broken links", ErrCheckFailed, len(problems))
	},
}
