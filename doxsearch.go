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

package doxsearch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ianlewis/go-doxsearch/fulltext"
	"github.com/ianlewis/go-doxsearch/linkcheck"
	"github.com/ianlewis/go-doxsearch/searchdata"
	"github.com/ianlewis/go-doxsearch/sections"
)

// AllSection is the name of the section containing every symbol.
const AllSection = "all"

var (
	// ErrNoSearchData indicates that a directory contains no search data.
	ErrNoSearchData = errors.New("no search data")

	// ErrUnknownSection indicates that the requested section does not exist.
	ErrUnknownSection = errors.New("unknown section")

	// ErrClosed indicates that the index has been closed.
	ErrClosed = errors.New("index closed")

	// ErrMissingBucket indicates that a bucket file listed in searchdata.js
	// does not exist.
	ErrMissingBucket = errors.New("missing bucket file")
)

// Options are options for opening an Index.
type Options struct {
	// Table are options for the search data tables.
	Table *searchdata.Options

	// Concurrency is the maximum number of search data files read in
	// parallel.
	Concurrency int
}

// DefaultOptions is the default options for an Index.
var DefaultOptions = &Options{
	Table:       searchdata.DefaultOptions,
	Concurrency: 8,
}

// Index is a Doxygen search index loaded from a search directory. An Index
// is safe for concurrent use.
type Index struct {
	dir  string
	info *sections.Info

	// tables holds the table of each section by name.
	tables map[string]*searchdata.Table

	// fulltext and fulltextErr are set once by fulltextOnce and only read
	// after it.
	fulltextOnce sync.Once
	fulltext     *fulltext.Index
	fulltextErr  error

	closeOnce sync.Once
	closeErr  error
}

// OpenAll opens all search indexes under a directory. A directory is opened
// if it contains a searchdata.js file or search data bucket files. This
// function will return all successfully opened indexes along with any
// errors that occurred.
func OpenAll(path string, options *Options) ([]*Index, []error) {
	var dirs []string
	seen := map[string]bool{}
	var errs []error
	if err := filepath.WalkDir(path, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if _, _, ok := sections.ParseBucketFileName(info.Name()); ok || info.Name() == sections.FileName {
			dir := filepath.Dir(path)
			if !seen[dir] {
				seen[dir] = true
				dirs = append(dirs, dir)
			}
		}
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}

	var indexes []*Index
	for _, dir := range dirs {
		x, err := Open(dir, options)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		indexes = append(indexes, x)
	}
	return indexes, errs
}

// Open opens the search index in the given search directory. Every section
// is loaded into memory.
func Open(dir string, options *Options) (*Index, error) {
	if options == nil {
		options = DefaultOptions
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", dir, err)
	}

	// files maps a section name to its bucket files by bucket number.
	files := map[string]map[int]string{}
	var fileNames []string
	hasInfo := false
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		fileNames = append(fileNames, de.Name())
		if de.Name() == sections.FileName {
			hasInfo = true
			continue
		}
		name, bucket, ok := sections.ParseBucketFileName(de.Name())
		if !ok {
			continue
		}
		if files[name] == nil {
			files[name] = map[int]string{}
		}
		path := filepath.Join(dir, de.Name())
		if prev, ok := files[name][bucket]; !ok || extRank(path) < extRank(prev) {
			files[name][bucket] = path
		}
	}

	var info *sections.Info
	if hasInfo {
		info, err = sections.Open(dir)
		if err != nil {
			return nil, err
		}
	} else {
		info = sections.Infer(fileNames)
	}
	if len(info.Sections()) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoSearchData, dir)
	}

	x := &Index{
		dir:    dir,
		info:   info,
		tables: map[string]*searchdata.Table{},
	}

	// All bucket files are resolved before any is read so that no reader
	// outlives a failed Open.
	secs := info.Sections()
	paths := make([][]string, len(secs))
	for i, s := range secs {
		paths[i], err = bucketPaths(s, files[s.Name])
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", dir, err)
		}
	}

	// buckets holds the entries of every bucket file by section position
	// and bucket position. Each file is read by its own goroutine.
	buckets := make([][][]*searchdata.Entry, len(secs))
	var g errgroup.Group
	g.SetLimit(concurrency(options))
	for i := range secs {
		buckets[i] = make([][]*searchdata.Entry, len(paths[i]))
		for j, path := range paths[i] {
			g.Go(func() error {
				t, err := searchdata.NewFromPath(path, options.Table)
				if err != nil {
					//nolint:wrapcheck // error includes the path
					return err
				}
				buckets[i][j] = t.Entries()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("opening %q: %w", dir, err)
	}

	for i, s := range secs {
		var entries []*searchdata.Entry
		for _, b := range buckets[i] {
			entries = append(entries, b...)
		}
		x.tables[s.Name] = searchdata.NewFromEntries(entries, options.Table)
	}

	return x, nil
}

// Dir returns the search directory.
func (x *Index) Dir() string {
	return x.dir
}

// Sections returns the sections of the index ordered by ID.
func (x *Index) Sections() []*sections.Section {
	return x.info.Sections()
}

// Table returns the search data table for the named section.
func (x *Index) Table(section string) (*searchdata.Table, error) {
	t, ok := x.tables[section]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	return t, nil
}

// Lookup returns the records of every entry in the section whose key starts
// with the normalized query, in index order.
func (x *Index) Lookup(section, query string) ([]*searchdata.Record, error) {
	t, err := x.Table(section)
	if err != nil {
		return nil, err
	}
	//nolint:wrapcheck // error is already descriptive
	return t.Lookup(query)
}

// LookupEntries returns every entry in the section whose key starts with the
// normalized query, in index order.
func (x *Index) LookupEntries(section, query string) ([]*searchdata.Entry, error) {
	t, err := x.Table(section)
	if err != nil {
		return nil, err
	}
	//nolint:wrapcheck // error is already descriptive
	return t.LookupEntries(query)
}

// FullTextSearch performs a full text search of symbol labels and scopes and
// returns at most limit ranked hits. The full text index is built on first
// use.
func (x *Index) FullTextSearch(query string, limit int) ([]*fulltext.Hit, error) {
	x.fulltextOnce.Do(func() {
		t, err := x.primary()
		if err != nil {
			x.fulltextErr = err
			return
		}
		x.fulltext, x.fulltextErr = fulltext.New(t.Entries())
	})
	if x.fulltextErr != nil {
		return nil, fmt.Errorf("building full text index: %w", x.fulltextErr)
	}
	//nolint:wrapcheck // error is already descriptive
	return x.fulltext.Search(query, limit)
}

// Check verifies that the page and anchor of every record exist in the
// generated HTML.
func (x *Index) Check(ctx context.Context, options *linkcheck.Options) ([]*linkcheck.Problem, error) {
	t, err := x.primary()
	if err != nil {
		return nil, err
	}
	//nolint:wrapcheck // error is already descriptive
	return linkcheck.New(x.dir, options).Check(ctx, searchdata.Records(t.Entries()))
}

// Close releases resources held by the index. Close waits for a full text
// index being built by a concurrent FullTextSearch. Full text searches after
// Close return an error, ErrClosed if the full text index was never built.
func (x *Index) Close() error {
	x.closeOnce.Do(func() {
		// Either wait for a concurrent build or keep any later one from
		// starting.
		x.fulltextOnce.Do(func() {
			x.fulltextErr = ErrClosed
		})
		if x.fulltext != nil {
			x.closeErr = x.fulltext.Close()
		}
	})
	//nolint:wrapcheck // error is already descriptive
	return x.closeErr
}

// primary returns the table of the "all" section, or of the first section
// if there is no "all" section.
func (x *Index) primary() (*searchdata.Table, error) {
	if t, ok := x.tables[AllSection]; ok {
		return t, nil
	}
	s := x.info.Sections()
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoSearchData, x.dir)
	}
	return x.Table(s[0].Name)
}

// bucketPaths returns the bucket file paths of a section in bucket order.
func bucketPaths(s *sections.Section, files map[int]string) ([]string, error) {
	if n := s.Buckets(); n >= 0 {
		paths := make([]string, 0, n)
		for i := range n {
			path, ok := files[i]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrMissingBucket, s.BucketName(i))
			}
			paths = append(paths, path)
		}
		return paths, nil
	}

	buckets := make([]int, 0, len(files))
	for b := range files {
		buckets = append(buckets, b)
	}
	slices.Sort(buckets)

	paths := make([]string, 0, len(buckets))
	for _, b := range buckets {
		paths = append(paths, files[b])
	}
	return paths, nil
}

// extRank orders files of the same bucket by preferred extension.
func extRank(path string) int {
	lower := strings.ToLower(path)
	for i, ext := range searchdata.Exts {
		if strings.HasSuffix(lower, ext) {
			return i
		}
	}
	return len(searchdata.Exts)
}

func concurrency(options *Options) int {
	if options.Concurrency > 0 {
		return options.Concurrency
	}
	return DefaultOptions.Concurrency
}
