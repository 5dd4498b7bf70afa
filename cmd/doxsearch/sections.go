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

var sectionsCommand = &cli.Command{
	Name:         "sections",
	Usage:        "list the sections of the search index",
	OnUsageError: usageError,
	Action: func(c *cli.Context) error {
		x, err := openIndex(c)
		if err != nil {
			return err
		}
		defer x.Close()

		tbl := table.New("Name", "Label", "Buckets", "Entries").WithWriter(c.App.Writer)
		for _, s := range x.Sections() {
			t, err := x.Table(s.Name)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrDoxsearch, err)
			}
			buckets := "-"
			if n := s.Buckets(); n >= 0 {
				buckets = fmt.Sprint(n)
			}
			tbl.AddRow(s.Name, s.Label, buckets, t.Len())
		}
		tbl.Print()

		return nil
	},
}
