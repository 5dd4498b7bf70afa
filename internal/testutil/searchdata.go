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

package testutil

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-doxsearch/searchdata"
)

// MakeSearchDataOptions are options for writing a test search data file.
type MakeSearchDataOptions struct {
	// Ext is an optional file extension for the file. Defaults to '.js.dz'
	// if DictZip is true, '.js.gz' if Gzip is true, and '.js' otherwise.
	Ext string

	// DictZip indicates that the file should be compressed with DictZip.
	DictZip bool

	// Gzip indicates that the file should be compressed with gzip.
	Gzip bool
}

// GetExt returns the file extension to use.
func (o *MakeSearchDataOptions) GetExt() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		if o.DictZip {
			return ".js.dz"
		}
		if o.Gzip {
			return ".js.gz"
		}
	}
	return ".js"
}

// MakeSearchData creates the contents of a search data file in the format
// written by Doxygen.
func MakeSearchData(t *testing.T, entries []*searchdata.Entry) []byte {
	t.Helper()

	var b strings.Builder
	b.WriteString("var searchData=\n[\n")
	for i, e := range entries {
		fmt.Fprintf(&b, "  [%s,[%s", quote(e.Key), quote(e.Label))
		for _, r := range e.Records {
			parent := 0
			if r.Parent {
				parent = 1
			}
			fmt.Fprintf(&b, ",[%s,%d,%s]", quote(r.URL), parent, quote(r.Scope))
		}
		b.WriteString("]]")
		if i < len(entries)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("];\n")
	return []byte(b.String())
}

// WriteSearchData writes a search data file named name+ext to dir and
// returns its path.
func WriteSearchData(t *testing.T, dir, name string, entries []*searchdata.Entry, opts *MakeSearchDataOptions) string {
	t.Helper()

	path := filepath.Join(dir, name+opts.GetExt())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	writeData(t, f, MakeSearchData(t, entries), opts)
	return path
}

// MakeTempSearchData creates a temporary search data file and returns the
// file positioned at its start.
func MakeTempSearchData(t *testing.T, entries []*searchdata.Entry, opts *MakeSearchDataOptions) *os.File {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "all_0.*"+opts.GetExt())
	if err != nil {
		t.Fatal(err)
	}

	writeData(t, f, MakeSearchData(t, entries), opts)

	_, err = f.Seek(0, io.SeekStart)
	if err != nil {
		t.Fatal(err)
	}

	return f
}

// WriteFile writes raw contents to dir/name and returns the path.
func WriteFile(t *testing.T, dir, name, contents string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeData(t *testing.T, f *os.File, d []byte, opts *MakeSearchDataOptions) {
	t.Helper()

	switch {
	case opts != nil && opts.DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(d); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case opts != nil && opts.Gzip:
		z := gzip.NewWriter(f)
		if _, err := z.Write(d); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.Write(d); err != nil {
			t.Fatal(err)
		}
	}
}

// quote returns s as a single quoted JavaScript string.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}
