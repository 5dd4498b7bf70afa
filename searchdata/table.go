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

package searchdata

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-doxsearch/internal/folding"
	"github.com/ianlewis/go-doxsearch/internal/index"
)

// Exts are the file extensions recognized for search data files in the
// order they are looked for.
var Exts = []string{".js", ".js.gz", ".js.dz"}

// Options are options for the search data table.
type Options struct {
	// Scanner are options for reading the search data file.
	Scanner *ScannerOptions

	// Folder returns a [transform.Transformer] that turns a query into a
	// search key. It must produce keys in the same form as the keys in the
	// search data.
	Folder func() transform.Transformer
}

// DefaultOptions is the default options for a Table.
var DefaultOptions = &Options{
	Scanner: DefaultScannerOptions,
	Folder:  folding.Doxygen,
}

// Table is an in-memory search data table. A Table is immutable and safe
// for concurrent use.
type Table struct {
	// entries are in file order.
	entries []*Entry

	// index is sorted by entry key.
	index *index.Index[*Entry]

	folder func() transform.Transformer
}

// New reads all entries from r and returns a new in-memory table. The reader
// is closed when reading completes.
func New(r io.ReadCloser, options *Options) (*Table, error) {
	if options == nil {
		options = DefaultOptions
	}

	s, err := NewScanner(r, options.Scanner)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	var entries []*Entry
	for s.Scan() {
		entries = append(entries, s.Entry())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning search data: %w", err)
	}

	return NewFromEntries(entries, options), nil
}

// NewFromPath returns a new in-memory table for the search data file at
// path.
func NewFromPath(path string, options *Options) (*Table, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}

	t, err := New(f, options)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return t, nil
}

// NewFromEntries returns a table for entries that have already been read.
// The table keeps the given order.
func NewFromEntries(entries []*Entry, options *Options) *Table {
	if options == nil {
		options = DefaultOptions
	}

	t := &Table{
		entries: entries,
		index:   index.New(entries),
		folder:  DefaultOptions.Folder,
	}
	if options.Folder != nil {
		t.folder = options.Folder
	}
	return t
}

// Open opens the search data file at path. Files ending in .gz are read
// with gzip and files ending in .dz with dictzip.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening search data file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("creating gzip reader for %q: %w", path, err)
		}
		return &readCloser{Reader: z, closers: []io.Closer{z, f}}, nil
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("creating dictzip reader for %q: %w", path, err)
		}
		return &readCloser{Reader: z, closers: []io.Closer{f}}, nil
	default:
		return f, nil
	}
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns all entries in file order.
func (t *Table) Entries() []*Entry {
	entries := make([]*Entry, len(t.entries))
	copy(entries, t.entries)
	return entries
}

// Normalize returns the search key for query.
func (t *Table) Normalize(query string) (string, error) {
	key, _, err := transform.String(t.folder(), query)
	if err != nil {
		return "", fmt.Errorf("folding query %q: %w", query, err)
	}
	return key, nil
}

// Lookup returns the records of every entry whose key starts with the
// normalized query, in table order. An empty result is not an error.
func (t *Table) Lookup(query string) ([]*Record, error) {
	entries, err := t.LookupEntries(query)
	if err != nil {
		return nil, err
	}
	return Records(entries), nil
}

// LookupEntries returns every entry whose key starts with the normalized
// query, in table order.
func (t *Table) LookupEntries(query string) ([]*Entry, error) {
	key, err := t.Normalize(query)
	if err != nil {
		return nil, err
	}
	return t.index.SearchPrefix(key), nil
}

// Exact returns every entry whose key equals the normalized query, in table
// order.
func (t *Table) Exact(query string) ([]*Entry, error) {
	key, err := t.Normalize(query)
	if err != nil {
		return nil, err
	}
	return t.index.Search(key), nil
}

// Records returns the records of entries in order.
func Records(entries []*Entry) []*Record {
	var records []*Record
	for _, e := range entries {
		records = append(records, e.Records...)
	}
	return records
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var firstErr error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
