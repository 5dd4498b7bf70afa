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

// Package fulltext provides full text search over search data records using
// an in-memory Bleve index.
//
// Prefix lookup only matches the start of a symbol name. Full text search
// matches any word of a record's label or scope, so "interval" finds every
// constructor taking a carl::Interval argument.
//
// Results are ranked by score. Ties are broken by the position of the
// record in the search data so results are deterministic.
package fulltext

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/blevesearch/bleve/v2"

	"github.com/ianlewis/go-doxsearch/searchdata"
)

// idWidth is the width of zero padded document IDs. Padding keeps the
// lexical order of IDs equal to record order.
const idWidth = 10

var errBadID = errors.New("unexpected document id")

// Hit is a full text search result.
type Hit struct {
	Record *searchdata.Record
	Score  float64
}

type document struct {
	Label string `json:"label"`
	Scope string `json:"scope"`
}

// Index is a full text index over records. It is safe for concurrent use.
type Index struct {
	index   bleve.Index
	records []*searchdata.Record
}

// New indexes the records of entries.
func New(entries []*searchdata.Entry) (*Index, error) {
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating index: %w", err)
	}

	x := &Index{
		index:   index,
		records: searchdata.Records(entries),
	}

	batch := index.NewBatch()
	for i, r := range x.records {
		if err := batch.Index(docID(i), document{
			Label: r.Text(),
			Scope: r.ScopeText(),
		}); err != nil {
			_ = index.Close()
			return nil, fmt.Errorf("indexing record %d: %w", i, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		_ = index.Close()
		return nil, fmt.Errorf("indexing records: %w", err)
	}

	return x, nil
}

// Len returns the number of indexed records.
func (x *Index) Len() int {
	return len(x.records)
}

// Search returns at most limit records matching query ordered by score. An
// empty query or a limit less than one returns no hits.
func (x *Index) Search(query string, limit int) ([]*Hit, error) {
	if strings.TrimSpace(query) == "" || limit < 1 {
		return nil, nil
	}

	req := bleve.NewSearchRequestOptions(bleve.NewMatchQuery(query), limit, 0, false)
	req.SortBy([]string{"-_score", "_id"})

	res, err := x.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}

	type ranked struct {
		hit *Hit
		pos int
	}
	hits := make([]ranked, 0, len(res.Hits))
	for _, h := range res.Hits {
		pos, err := strconv.Atoi(h.ID)
		if err != nil || pos < 0 || pos >= len(x.records) {
			return nil, fmt.Errorf("%w: %q", errBadID, h.ID)
		}
		hits = append(hits, ranked{
			hit: &Hit{Record: x.records[pos], Score: h.Score},
			pos: pos,
		})
	}
	slices.SortStableFunc(hits, func(a, b ranked) int {
		switch {
		case a.hit.Score > b.hit.Score:
			return -1
		case a.hit.Score < b.hit.Score:
			return 1
		default:
			return a.pos - b.pos
		}
	})

	result := make([]*Hit, len(hits))
	for i, h := range hits {
		result[i] = h.hit
	}
	return result, nil
}

// Close closes the underlying index.
func (x *Index) Close() error {
	if err := x.index.Close(); err != nil {
		return fmt.Errorf("closing index: %w", err)
	}
	return nil
}

func docID(i int) string {
	s := strconv.Itoa(i)
	if len(s) >= idWidth {
		return s
	}
	return strings.Repeat("0", idWidth-len(s)) + s
}
