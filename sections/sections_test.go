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

package sections

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const searchdataJS = `var indexSectionsWithContent =
{
  0: "bv",
  1: "bv",
  2: "b"
};

var indexSectionNames =
{
  0: "all",
  1: "classes",
  2: "files"
};

var indexSectionLabels =
{
  0: "All",
  1: "Classes",
  2: "Files"
};

`

// TestNew tests New.
func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		expected []*Section
		err      error
	}{
		{
			name: "full",
			data: searchdataJS,
			expected: []*Section{
				{ID: 0, Name: "all", Label: "All", Content: "bv"},
				{ID: 1, Name: "classes", Label: "Classes", Content: "bv"},
				{ID: 2, Name: "files", Label: "Files", Content: "b"},
			},
		},
		{
			name: "names only",
			data: `var indexSectionNames = { 1: "classes", 0: "all" };`,
			expected: []*Section{
				{ID: 0, Name: "all", Label: "all"},
				{ID: 1, Name: "classes", Label: "classes"},
			},
		},
		{
			name: "unknown assignments",
			data: `var other = [1, 2]; var indexSectionNames = { 0: "all" };`,
			expected: []*Section{
				{ID: 0, Name: "all", Label: "all"},
			},
		},
		{
			name: "missing names",
			data: `var indexSectionLabels = { 0: "All" };`,
			err:  ErrMissingNames,
		},
		{
			name: "not an object",
			data: `var indexSectionNames = ["all"];`,
			err:  ErrMalformed,
		},
		{
			name: "bad section number",
			data: `var indexSectionNames = { x: "all" };`,
			err:  ErrMalformed,
		},
		{
			name: "bad value",
			data: `var indexSectionNames = { 0: 1 };`,
			err:  ErrMalformed,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			info, err := New(strings.NewReader(test.data))
			if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("New err (-want, +got):\n%s", diff)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(test.expected, info.Sections()); diff != "" {
				t.Fatalf("Sections (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestInfo_Section(t *testing.T) {
	t.Parallel()

	info, err := New(strings.NewReader(searchdataJS))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s := info.Section("classes")
	if s == nil {
		t.Fatal("Section(classes): not found")
	}
	if want, got := 2, s.Buckets(); want != got {
		t.Errorf("Buckets; want: %d, got: %d", want, got)
	}
	if want, got := "classes_1", s.BucketName(1); want != got {
		t.Errorf("BucketName; want: %q, got: %q", want, got)
	}
	if info.Section("pages") != nil {
		t.Errorf("Section(pages): expected nil")
	}
}

func TestSection_BucketName(t *testing.T) {
	t.Parallel()

	s := &Section{Name: "all"}
	if want, got := "all_1a", s.BucketName(26); want != got {
		t.Errorf("BucketName; want: %q, got: %q", want, got)
	}
	if want, got := -1, s.Buckets(); want != got {
		t.Errorf("Buckets; want: %d, got: %d", want, got)
	}
}

func TestInfer(t *testing.T) {
	t.Parallel()

	info := Infer([]string{
		"search.js",
		"functions_0.js",
		"all_1.js",
		"all_0.js.gz",
		"classes_a.JS",
		"nomatch.css",
		"searchdata.js",
	})

	expected := []*Section{
		{ID: 0, Name: "all", Label: "all"},
		{ID: 1, Name: "classes", Label: "classes"},
		{ID: 2, Name: "functions", Label: "functions"},
	}
	if diff := cmp.Diff(expected, info.Sections()); diff != "" {
		t.Fatalf("Sections (-want, +got):\n%s", diff)
	}
}

func TestParseBucketFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fileName string
		name     string
		bucket   int
		ok       bool
	}{
		{fileName: "all_1.js", name: "all", bucket: 1, ok: true},
		{fileName: "all_1a.js.dz", name: "all", bucket: 26, ok: true},
		{fileName: "Classes_0.JS.GZ", name: "classes", bucket: 0, ok: true},
		{fileName: "searchdata.js", ok: false},
		{fileName: "all_1.html", ok: false},
	}

	for _, test := range tests {
		t.Run(test.fileName, func(t *testing.T) {
			t.Parallel()

			name, bucket, ok := ParseBucketFileName(test.fileName)
			if diff := cmp.Diff([]any{test.name, test.bucket, test.ok}, []any{name, bucket, ok}); diff != "" {
				t.Fatalf("ParseBucketFileName (-want, +got):\n%s", diff)
			}
		})
	}
}
