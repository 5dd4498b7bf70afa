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

package searchdata_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-doxsearch/internal/jslit"
	"github.com/ianlewis/go-doxsearch/internal/testutil"
	"github.com/ianlewis/go-doxsearch/searchdata"
)

func TestScanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		entries  []*searchdata.Entry
		expected []*searchdata.Entry
	}{
		{
			name:     "empty",
			entries:  []*searchdata.Entry{},
			expected: nil,
		},
		{
			name: "single",
			entries: []*searchdata.Entry{
				{
					Key:   "begin",
					Label: "begin",
					Records: []*searchdata.Record{
						{
							Label:  "begin",
							URL:    "../classA.html#a1",
							Parent: true,
							Scope:  "ns::A",
						},
					},
				},
			},
			expected: []*searchdata.Entry{
				{
					Key:   "begin",
					Label: "begin",
					Records: []*searchdata.Record{
						{
							Label:  "begin",
							URL:    "../classA.html#a1",
							Parent: true,
							Scope:  "ns::A",
						},
					},
				},
			},
		},
		{
			name: "quotes and overloads",
			entries: []*searchdata.Entry{
				{
					Key:   "it_27s",
					Label: "it's",
					Records: []*searchdata.Record{
						{URL: "../a.html#x", Scope: `a\b`},
						{URL: "../a.html#y", Parent: true},
					},
				},
			},
			expected: []*searchdata.Entry{
				{
					Key:   "it_27s",
					Label: "it's",
					Records: []*searchdata.Record{
						{Label: "it's", URL: "../a.html#x", Scope: `a\b`},
						{Label: "it's", URL: "../a.html#y", Parent: true},
					},
				},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			f := testutil.MakeTempSearchData(t, test.entries, nil)

			s, err := searchdata.NewScanner(f, nil)
			if err != nil {
				t.Fatalf("NewScanner: %v", err)
			}
			defer s.Close()

			var entries []*searchdata.Entry
			for s.Scan() {
				entries = append(entries, s.Entry())
			}
			if err := s.Err(); err != nil {
				t.Fatalf("Err: %v", err)
			}

			if diff := cmp.Diff(test.expected, entries); diff != "" {
				t.Fatalf("entries (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestScanner_malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		err  error
	}{
		{
			name: "missing variable",
			data: "var other=[];",
			err:  searchdata.ErrMalformed,
		},
		{
			name: "not an array",
			data: "var searchData={};",
			err:  searchdata.ErrMalformed,
		},
		{
			name: "empty key",
			data: "var searchData=[['',['x',['../x.html',1,'']]]];",
			err:  searchdata.ErrEmptyKey,
		},
		{
			name: "key not a string",
			data: "var searchData=[[1,['x',['../x.html',1,'']]]];",
			err:  searchdata.ErrMalformed,
		},
		{
			name: "no records",
			data: "var searchData=[['x',['x']]];",
			err:  searchdata.ErrMalformed,
		},
		{
			name: "record arity too small",
			data: "var searchData=[['x',['x',['../x.html']]]];",
			err:  searchdata.ErrMalformed,
		},
		{
			name: "record arity too large",
			data: "var searchData=[['x',['x',['../x.html',1,'a','b']]]];",
			err:  searchdata.ErrMalformed,
		},
		{
			name: "bad flag",
			data: "var searchData=[['x',['x',['../x.html','1','a']]]];",
			err:  searchdata.ErrMalformed,
		},
		{
			name: "entry triple",
			data: "var searchData=[['x',['x',['../x.html',1,'a']],'extra']];",
			err:  searchdata.ErrMalformed,
		},
		{
			name: "syntax",
			data: "var searchData=[['x' ['x',['../x.html',1,'a']]]];",
			err:  jslit.ErrSyntax,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			s, err := searchdata.NewScanner(io.NopCloser(strings.NewReader(test.data)), nil)
			if err != nil {
				t.Fatalf("NewScanner: %v", err)
			}
			for s.Scan() {
			}
			if diff := cmp.Diff(test.err, s.Err(), cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("Err (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestScanner_options(t *testing.T) {
	t.Parallel()

	data := "var first=[1,2];\nvar symbols=[['a',['A',['../a.html',0]]]];"
	s, err := searchdata.NewScanner(io.NopCloser(strings.NewReader(data)), &searchdata.ScannerOptions{
		VarName: "symbols",
	})
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}

	var entries []*searchdata.Entry
	for s.Scan() {
		entries = append(entries, s.Entry())
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}

	expected := []*searchdata.Entry{
		{
			Key:   "a",
			Label: "A",
			Records: []*searchdata.Record{
				{Label: "A", URL: "../a.html"},
			},
		},
	}
	if diff := cmp.Diff(expected, entries); diff != "" {
		t.Fatalf("entries (-want, +got):\n%s", diff)
	}
}

func TestScanner_stopsAfterError(t *testing.T) {
	t.Parallel()

	data := "var searchData=[['a',['A',['../a.html',1,'']]],['',['B',['../b.html',1,'']]],['c',['C',['../c.html',1,'']]]];"
	s, err := searchdata.NewScanner(io.NopCloser(strings.NewReader(data)), nil)
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}

	n := 0
	for s.Scan() {
		n++
	}
	if n != 1 {
		t.Errorf("entries before error; want: 1, got: %d", n)
	}
	if !errors.Is(s.Err(), searchdata.ErrEmptyKey) {
		t.Errorf("Err; want: %v, got: %v", searchdata.ErrEmptyKey, s.Err())
	}
	if s.Scan() {
		t.Errorf("Scan after error returned true")
	}
}
