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

package folding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/text/transform"
)

func TestDoxygen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain",
			input:    "begin",
			expected: "begin",
		},
		{
			name:     "upper case",
			input:    "BallSupportFunction",
			expected: "ballsupportfunction",
		},
		{
			name:     "file name",
			input:    "Box.h",
			expected: "box_2eh",
		},
		{
			name:     "template",
			input:    "BoxT< double, Converter >",
			expected: "boxt_3c_20double_2c_20converter_20_3e",
		},
		{
			name:     "scoped template",
			input:    "BoxT< Number, hypro::Converter >",
			expected: "boxt_3c_20number_2c_20hypro_3a_3aconverter_20_3e",
		},
		{
			name:     "leading spaces",
			input:    "   boxt",
			expected: "boxt",
		},
		{
			name:     "trailing spaces kept",
			input:    "boxt ",
			expected: "boxt_20",
		},
		{
			name:     "control byte",
			input:    "a\tb",
			expected: "a_09b",
		},
		{
			name:     "underscore",
			input:    "_points",
			expected: "_5fpoints",
		},
		{
			name:     "destructor",
			input:    "~BoxT",
			expected: "_7eboxt",
		},
		{
			name:     "non-ascii",
			input:    "Grüßen",
			expected: "grüßen",
		},
		{
			name:     "only spaces",
			input:    "    ",
			expected: "",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, _, err := transform.String(Doxygen(), test.input)
			if err != nil {
				t.Fatalf("transform.String: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Doxygen (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestLeadingSpaceTrimmer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  []byte
		dst  []byte

		expected []byte
		nDst     int
		nSrc     int
		err      error
	}{
		{
			name: "leading spaces",
			src:  []byte("  foo"),
			dst:  make([]byte, 4),

			expected: []byte{'f', 'o', 'o', 0},
			nDst:     3,
			nSrc:     5,
		},
		{
			name: "tab is not trimmed",
			src:  []byte("\tfoo"),
			dst:  make([]byte, 4),

			expected: []byte{'\t', 'f', 'o', 'o'},
			nDst:     4,
			nSrc:     4,
		},
		{
			name: "short dst",
			src:  []byte(" foobar"),
			dst:  make([]byte, 3),

			expected: []byte{'f', 'o', 'o'},
			nDst:     3,
			nSrc:     4,
			err:      transform.ErrShortDst,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			tr := LeadingSpaceTrimmer{}
			nDst, nSrc, err := tr.Transform(test.dst, test.src, true)
			if diff := cmp.Diff(test.expected, test.dst); diff != "" {
				t.Fatalf("dst (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.nDst, nDst); diff != "" {
				t.Fatalf("nDst (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.nSrc, nSrc); diff != "" {
				t.Fatalf("nSrc (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("err (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestIDEncoder_shortDst(t *testing.T) {
	t.Parallel()

	dst := make([]byte, 2)
	nDst, nSrc, err := IDEncoder{}.Transform(dst, []byte("a.b"), true)
	if diff := cmp.Diff(transform.ErrShortDst, err, cmpopts.EquateErrors()); diff != "" {
		t.Fatalf("err (-want, +got):\n%s", diff)
	}
	if nDst != 1 || nSrc != 1 {
		t.Fatalf("unexpected progress; nDst: %d, nSrc: %d", nDst, nSrc)
	}
}

func TestDecodeID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id       string
		expected string
	}{
		{id: "begin", expected: "begin"},
		{id: "box_2eh", expected: "box.h"},
		{id: "boxt_3c_20double_2c_20converter_20_3e", expected: "boxt< double, converter >"},
		{id: "_5fpoints", expected: "_points"},
		{id: "bad_zz", expected: "bad_zz"},
		{id: "short_2", expected: "short_2"},
	}

	for _, test := range tests {
		t.Run(test.id, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, DecodeID(test.id)); diff != "" {
				t.Fatalf("DecodeID (-want, +got):\n%s", diff)
			}
		})
	}
}
