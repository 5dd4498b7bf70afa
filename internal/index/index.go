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

package index

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
	"strings"
)

type item[V fmt.Stringer] struct {
	value V
	pos   int
}

// Index is a generic sorted array index. Items are ordered by their String
// value. Every search returns items in their input order.
type Index[V fmt.Stringer] struct {
	// items is sorted by String value and then by input position.
	items []item[V]
}

// New creates an index from the given slice. The slice is not modified.
func New[V fmt.Stringer](values []V) *Index[V] {
	items := make([]item[V], len(values))
	for i, v := range values {
		items[i] = item[V]{value: v, pos: i}
	}
	slices.SortFunc(items, func(a, b item[V]) int {
		if c := strings.Compare(a.value.String(), b.value.String()); c != 0 {
			return c
		}
		return cmp.Compare(a.pos, b.pos)
	})

	return &Index[V]{
		items: items,
	}
}

// Len returns the number of items in the index.
func (idx *Index[V]) Len() int {
	return len(idx.items)
}

// Search performs a binary search over the index and returns the items
// equal to query.
func (idx *Index[V]) Search(query string) []V {
	i, found := sort.Find(len(idx.items), func(i int) int {
		return strings.Compare(query, idx.items[i].value.String())
	})
	if !found {
		return nil
	}

	j := i
	for j < len(idx.items) && idx.items[j].value.String() == query {
		j++
	}
	return values(idx.items[i:j], false)
}

// SearchPrefix returns the items whose value starts with prefix. An empty
// prefix matches nothing.
func (idx *Index[V]) SearchPrefix(prefix string) []V {
	if prefix == "" {
		return nil
	}

	i := sort.Search(len(idx.items), func(i int) bool {
		return idx.items[i].value.String() >= prefix
	})

	j := i
	for j < len(idx.items) && strings.HasPrefix(idx.items[j].value.String(), prefix) {
		j++
	}
	if i == j {
		return nil
	}
	return values(idx.items[i:j], true)
}

// values returns the values of items, sorted by input position if
// reorder is true. Items with equal values are already in position order.
func values[V fmt.Stringer](items []item[V], reorder bool) []V {
	if reorder {
		items = slices.Clone(items)
		slices.SortFunc(items, func(a, b item[V]) int {
			return cmp.Compare(a.pos, b.pos)
		})
	}

	result := make([]V, len(items))
	for i, it := range items {
		result[i] = it.value
	}
	return result
}
