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

// Package sections implements reading the searchdata.js file that describes
// the sections of a Doxygen search index.
//
// The file assigns three objects keyed by section number:
//
//	var indexSectionsWithContent = { 0: "abv", 1: "bv" };
//	var indexSectionNames = { 0: "all", 1: "classes" };
//	var indexSectionLabels = { 0: "All", 1: "Classes" };
//
// The name selects the search data files of a section (all_0.js, all_1.js,
// ...) and each character of the content is the first character of the keys
// in the bucket file with the same position. Older output has no
// searchdata.js; sections can then be inferred from file names.
package sections

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ianlewis/go-doxsearch/internal/jslit"
)

// FileName is the name of the section metadata file.
const FileName = "searchdata.js"

var (
	// ErrMissingNames indicates the metadata has no section names.
	ErrMissingNames = errors.New("missing indexSectionNames")

	// ErrMalformed indicates the metadata does not have the expected shape.
	ErrMalformed = errors.New("malformed section data")
)

var bucketFileRegex = regexp.MustCompile(`^([A-Za-z]+)_([0-9a-fA-F]+)\.(?i:js(\.gz|\.dz)?)$`)

// Section is a section of the search index.
type Section struct {
	// ID is the section number.
	ID int

	// Name is the section name used in file names (e.g. "all").
	Name string

	// Label is the display label (e.g. "All").
	Label string

	// Content lists the first character of the keys in each bucket. It is
	// empty if unknown.
	Content string
}

// Buckets returns the number of bucket files, or -1 if unknown.
func (s *Section) Buckets() int {
	if s.Content == "" {
		return -1
	}
	return utf8.RuneCountInString(s.Content)
}

// BucketName returns the base name of bucket file i without extension.
func (s *Section) BucketName(i int) string {
	return fmt.Sprintf("%s_%x", s.Name, i)
}

// Info holds the sections of a search index ordered by ID.
type Info struct {
	sections []*Section
}

// New returns section info read from r.
func New(r io.Reader) (*Info, error) {
	d := jslit.NewDecoder(r)

	content := map[int]string{}
	names := map[int]string{}
	labels := map[int]string{}
	for {
		name, err := d.Assignment()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading section data: %w", err)
		}

		v, err := d.Value()
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", name, err)
		}

		var m map[int]string
		switch name {
		case "indexSectionsWithContent":
			m = content
		case "indexSectionNames":
			m = names
		case "indexSectionLabels":
			m = labels
		default:
			continue
		}
		if err := readMap(name, v, m); err != nil {
			return nil, err
		}
	}

	if len(names) == 0 {
		return nil, ErrMissingNames
	}

	info := &Info{}
	for id, name := range names {
		label := labels[id]
		if label == "" {
			label = name
		}
		info.sections = append(info.sections, &Section{
			ID:      id,
			Name:    name,
			Label:   label,
			Content: content[id],
		})
	}
	slices.SortFunc(info.sections, func(a, b *Section) int {
		return a.ID - b.ID
	})

	return info, nil
}

// Open reads the section info from the searchdata.js file in dir.
func Open(dir string) (*Info, error) {
	path := filepath.Join(dir, FileName)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening section data: %w", err)
	}
	defer f.Close()

	info, err := New(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return info, nil
}

// Infer returns section info derived from search data file names such as
// all_0.js or classes_1a.js.gz. Names that do not match are ignored. The
// "all" section is ordered first, other sections by name.
func Infer(fileNames []string) *Info {
	seen := map[string]bool{}
	var names []string
	for _, fn := range fileNames {
		m := bucketFileRegex.FindStringSubmatch(fn)
		if m == nil {
			continue
		}
		name := strings.ToLower(m[1])
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	slices.SortFunc(names, func(a, b string) int {
		switch {
		case a == b:
			return 0
		case a == "all":
			return -1
		case b == "all":
			return 1
		default:
			return strings.Compare(a, b)
		}
	})

	info := &Info{}
	for i, name := range names {
		info.sections = append(info.sections, &Section{
			ID:    i,
			Name:  name,
			Label: name,
		})
	}
	return info
}

// ParseBucketFileName returns the section name and bucket number of a
// search data file name.
func ParseBucketFileName(fileName string) (string, int, bool) {
	m := bucketFileRegex.FindStringSubmatch(fileName)
	if m == nil {
		return "", 0, false
	}
	n, err := strconv.ParseInt(m[2], 16, 0)
	if err != nil {
		return "", 0, false
	}
	return strings.ToLower(m[1]), int(n), true
}

// Sections returns the sections ordered by ID.
func (i *Info) Sections() []*Section {
	return slices.Clone(i.sections)
}

// Section returns the section with the given name or nil.
func (i *Info) Section(name string) *Section {
	for _, s := range i.sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

func readMap(name string, v jslit.Value, m map[int]string) error {
	o, ok := v.(jslit.Object)
	if !ok {
		return fmt.Errorf("%w: %q is not an object", ErrMalformed, name)
	}
	for _, member := range o {
		id, err := strconv.Atoi(member.Key)
		if err != nil {
			return fmt.Errorf("%w: %q: invalid section number %q", ErrMalformed, name, member.Key)
		}
		s, ok := member.Value.(jslit.String)
		if !ok {
			return fmt.Errorf("%w: %q: section %d is not a string", ErrMalformed, name, id)
		}
		m[id] = string(s)
	}
	return nil
}
