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

// Package linkcheck verifies that the locations in a search index exist in
// the generated HTML documentation.
//
// Record URLs are relative to the search directory. Each referenced page is
// read once and parsed with goquery; a record's anchor must match the id
// attribute of an element, or the name attribute of an <a> element, on that
// page.
package linkcheck

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/ianlewis/go-doxsearch/searchdata"
)

var (
	// ErrMissingPage indicates that a record's page could not be read.
	ErrMissingPage = errors.New("page not found")

	// ErrMissingAnchor indicates that a record's anchor is not on its page.
	ErrMissingAnchor = errors.New("anchor not found")
)

// Problem is a record whose location does not exist.
type Problem struct {
	Record *searchdata.Record

	// Path is the file system path of the record's page.
	Path string

	Err error
}

func (p *Problem) String() string {
	return fmt.Sprintf("%s: %v", p.Record.URL, p.Err)
}

// Options are options for a Checker.
type Options struct {
	// Concurrency is the maximum number of pages read in parallel.
	Concurrency int
}

// DefaultOptions is the default options for a Checker.
var DefaultOptions = &Options{
	Concurrency: 8,
}

// Checker checks record locations against the files under a search
// directory.
type Checker struct {
	dir         string
	concurrency int
}

// New returns a Checker resolving record URLs relative to dir.
func New(dir string, options *Options) *Checker {
	if options == nil {
		options = DefaultOptions
	}
	c := &Checker{
		dir:         dir,
		concurrency: options.Concurrency,
	}
	if c.concurrency <= 0 {
		c.concurrency = DefaultOptions.Concurrency
	}
	return c
}

// page is the result of reading one page.
type page struct {
	path    string
	anchors map[string]bool
	err     error
}

// Check returns a Problem for every record whose page or anchor does not
// exist, in record order. Records linking outside the documentation (with a
// URL scheme) are skipped.
func (c *Checker) Check(ctx context.Context, records []*searchdata.Record) ([]*Problem, error) {
	// pages are in order of first reference.
	var pages []*page
	byURL := map[string]*page{}
	for _, r := range records {
		p := r.Page()
		if isExternal(p) {
			continue
		}
		if _, ok := byURL[p]; !ok {
			pg := &page{path: c.Path(r)}
			byURL[p] = pg
			pages = append(pages, pg)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for _, pg := range pages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				//nolint:wrapcheck // context errors are not wrapped
				return err
			}
			pg.anchors, pg.err = readAnchors(pg.path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("checking links: %w", err)
	}

	var problems []*Problem
	for _, r := range records {
		if isExternal(r.Page()) {
			continue
		}
		pg := byURL[r.Page()]
		switch {
		case pg.err != nil:
			problems = append(problems, &Problem{Record: r, Path: pg.path, Err: pg.err})
		case r.Anchor() != "" && !pg.anchors[r.Anchor()]:
			problems = append(problems, &Problem{
				Record: r,
				Path:   pg.path,
				Err:    fmt.Errorf("%w: %q", ErrMissingAnchor, r.Anchor()),
			})
		}
	}
	return problems, nil
}

// Path returns the file system path of the record's page.
func (c *Checker) Path(r *searchdata.Record) string {
	p := r.Page()
	if u, err := url.PathUnescape(p); err == nil {
		p = u
	}
	return filepath.Join(c.dir, filepath.FromSlash(p))
}

// readAnchors returns the set of anchor targets on the page at path.
func readAnchors(path string) (map[string]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingPage, err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}

	anchors := map[string]bool{}
	doc.Find("[id]").Each(func(_ int, sel *goquery.Selection) {
		if id, ok := sel.Attr("id"); ok && id != "" {
			anchors[id] = true
		}
	})
	doc.Find("a[name]").Each(func(_ int, sel *goquery.Selection) {
		if name, ok := sel.Attr("name"); ok && name != "" {
			anchors[name] = true
		}
	})
	return anchors, nil
}

func isExternal(p string) bool {
	u, err := url.Parse(p)
	return err == nil && u.Scheme != ""
}
