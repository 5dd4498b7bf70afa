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

package jslit

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

var errBadEscape = errors.New("invalid escape sequence")

// unquote decodes a single or double quoted string literal including its
// quotes. Unknown escapes decode to the escaped character.
func unquote(b []byte) (string, error) {
	s := string(b[1 : len(b)-1])
	if !strings.Contains(s, `\`) {
		return s, nil
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}

		i++
		if i >= len(s) {
			return "", errBadEscape
		}
		switch s[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'v':
			sb.WriteByte('\v')
		case '0':
			sb.WriteByte(0)
		case '\n':
			// Line continuation.
		case 'x':
			r, err := parseHex(s, i+1, 2)
			if err != nil {
				return "", err
			}
			sb.WriteRune(r)
			i += 2
		case 'u':
			r, err := parseHex(s, i+1, 4)
			if err != nil {
				return "", err
			}
			i += 4
			if utf16.IsSurrogate(r) && strings.HasPrefix(s[i+1:], `\u`) {
				if r2, err := parseHex(s, i+3, 4); err == nil {
					if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
						r = dec
						i += 6
					}
				}
			}
			sb.WriteRune(r)
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String(), nil
}

func parseHex(s string, start, n int) (rune, error) {
	if start+n > len(s) {
		return 0, errBadEscape
	}
	v, err := strconv.ParseUint(s[start:start+n], 16, 32)
	if err != nil {
		return 0, errBadEscape
	}
	return rune(v), nil
}
