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

// Package folding implements the text transformations used to turn symbol
// names and user queries into search index keys.
package folding

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

const hexDigits = "0123456789abcdef"

// Doxygen returns a new [transform.Transformer] that normalizes text the
// same way the Doxygen search box does before matching it against index
// keys: leading spaces are removed, the text is lower cased and then
// encoded with [IDEncoder].
//
// The returned transformer is stateful and must not be shared.
func Doxygen() transform.Transformer {
	return transform.Chain(
		&LeadingSpaceTrimmer{},
		cases.Lower(language.Und),
		IDEncoder{},
	)
}

// LeadingSpaceTrimmer removes ASCII spaces from the beginning of the input.
// Other whitespace and spaces after the first non-space byte are kept.
type LeadingSpaceTrimmer struct {
	// notStart is true after encountering the first non-space byte.
	notStart bool
}

// Transform implements [transform.Transformer.Transform].
func (t *LeadingSpaceTrimmer) Transform(dst, src []byte, _ bool) (int, int, error) {
	var nSrc int
	if !t.notStart {
		for nSrc < len(src) && src[nSrc] == ' ' {
			nSrc++
		}
		if nSrc == len(src) {
			return 0, nSrc, nil
		}
		t.notStart = true
	}

	nDst := copy(dst, src[nSrc:])
	nSrc += nDst
	if nSrc < len(src) {
		return nDst, nSrc, transform.ErrShortDst
	}
	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (t *LeadingSpaceTrimmer) Reset() {
	*t = LeadingSpaceTrimmer{}
}

// IDEncoder escapes text into the identifier alphabet used by search index
// keys. ASCII lower case letters and digits are kept, every other ASCII byte
// is written as '_' followed by its value in two lower case hex digits.
// Bytes of multi-byte UTF-8 sequences are passed through unchanged.
type IDEncoder struct {
	transform.NopResetter
}

// Transform implements [transform.Transformer.Transform].
func (IDEncoder) Transform(dst, src []byte, _ bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		c := src[nSrc]
		if c >= 0x80 || isIDByte(c) {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}

		if nDst+3 > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = '_'
		dst[nDst+1] = hexDigits[c>>4]
		dst[nDst+2] = hexDigits[c&0x0f]
		nDst += 3
		nSrc++
	}
	return nDst, nSrc, nil
}

// DecodeID reverses the escaping done by [IDEncoder]. Escape sequences that
// are not well formed are left as is.
func DecodeID(id string) string {
	if !strings.Contains(id, "_") {
		return id
	}

	var b strings.Builder
	b.Grow(len(id))
	for i := 0; i < len(id); i++ {
		if id[i] == '_' && i+2 < len(id) {
			hi := strings.IndexByte(hexDigits, id[i+1])
			lo := strings.IndexByte(hexDigits, id[i+2])
			if hi >= 0 && lo >= 0 {
				b.WriteByte(byte(hi<<4 | lo))
				i += 2
				continue
			}
		}
		b.WriteByte(id[i])
	}
	return b.String()
}

func isIDByte(c byte) bool {
	return ('a' <= c && c <= 'z') || ('0' <= c && c <= '9')
}
