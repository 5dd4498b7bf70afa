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

package fulltext_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-doxsearch/fulltext"
	"github.com/ianlewis/go-doxsearch/searchdata"
)

func newFixtureIndex(t *testing.T) *fulltext.Index {
	t.Helper()

	table, err := searchdata.NewFromPath("../testdata/html/search/all_1.js", nil)
	if err != nil {
		t.Fatalf("NewFromPath: %v", err)
	}
	x, err := fulltext.New(table.Entries())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() {
		if err := x.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return x
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	x := newFixtureIndex(t)
	if want, got := 27, x.Len(); want != got {
		t.Fatalf("Len; want: %d, got: %d", want, got)
	}

	tests := []struct {
		name  string
		query string
		limit int

		count int

		// contains must be in the scope of every hit.
		contains string
	}{
		{
			name:     "scope word",
			query:    "interval",
			limit:    10,
			count:    4,
			contains: "Interval",
		},
		{
			name:     "class name",
			query:    "VertexContainer",
			limit:    10,
			count:    1,
			contains: "hypro::VertexContainer",
		},
		{
			name:  "limit",
			query: "boxt",
			limit: 2,
			count: 2,
		},
		{
			name:  "no match",
			query: "polytope",
			limit: 10,
			count: 0,
		},
		{
			name:  "empty query",
			query: "  ",
			limit: 10,
			count: 0,
		},
		{
			name:  "zero limit",
			query: "boxt",
			limit: 0,
			count: 0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			hits, err := x.Search(test.query, test.limit)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if want, got := test.count, len(hits); want != got {
				t.Fatalf("Search(%q): want %d hits, got %d", test.query, want, got)
			}
			for i, h := range hits {
				if !strings.Contains(h.Record.ScopeText(), test.contains) {
					t.Errorf("hit %d: scope %q does not contain %q", i, h.Record.ScopeText(), test.contains)
				}
				if i > 0 && hits[i-1].Score < h.Score {
					t.Errorf("hit %d: not ordered by score", i)
				}
			}
		})
	}
}

func TestIndex_SearchDeterministic(t *testing.T) {
	t.Parallel()

	x := newFixtureIndex(t)

	first, err := x.Search("boxt", 50)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	second, err := x.Search("boxt", 50)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Search not stable (-first, +second):\n%s", diff)
	}
}
