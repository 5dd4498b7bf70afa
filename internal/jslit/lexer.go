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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrSyntax indicates that the input is not a supported literal.
var ErrSyntax = errors.New("syntax error")

// maxTokenSize is the largest single token (usually a string) accepted.
const maxTokenSize = 1 << 20

// Kind is the kind of a token.
type Kind int

const (
	// KindEOF is returned at the end of the input.
	KindEOF Kind = iota

	// KindIdent is an identifier such as var, true or searchData.
	KindIdent

	// KindNumber is a numeric literal. The text is not interpreted.
	KindNumber

	// KindString is a quoted string literal. The text is the decoded value.
	KindString

	// KindPunct is a single punctuation character.
	KindPunct
)

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindIdent:
		return "identifier"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindPunct:
		return "punctuation"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is a lexical token.
type Token struct {
	Kind Kind
	Text string

	// Offset is the byte offset of the token in the input.
	Offset int64
}

func (t Token) String() string {
	if t.Kind == KindEOF {
		return "EOF"
	}
	return fmt.Sprintf("%v %q", t.Kind, t.Text)
}

// Lexer splits its input into tokens. Whitespace and comments are skipped.
type Lexer struct {
	s *bufio.Scanner

	// offset is the number of bytes consumed so far.
	offset int64
	start  int64
}

// NewLexer returns a new Lexer reading from r.
func NewLexer(r io.Reader) *Lexer {
	l := &Lexer{
		s: bufio.NewScanner(r),
	}
	l.s.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	l.s.Split(l.split)
	return l
}

// Next returns the next token. At the end of the input it returns a token
// of kind KindEOF.
func (l *Lexer) Next() (Token, error) {
	if !l.s.Scan() {
		if err := l.s.Err(); err != nil {
			//nolint:wrapcheck // split errors are already wrapped
			return Token{}, err
		}
		return Token{Kind: KindEOF, Offset: l.offset}, nil
	}

	b := l.s.Bytes()
	tok := Token{Offset: l.start}
	switch c := b[0]; {
	case c == '\'' || c == '"':
		s, err := unquote(b)
		if err != nil {
			return Token{}, fmt.Errorf("%w: offset %d: %w", ErrSyntax, l.start, err)
		}
		tok.Kind = KindString
		tok.Text = s
	case isPunct(c):
		tok.Kind = KindPunct
		tok.Text = string(b)
	case isIdentStart(c):
		tok.Kind = KindIdent
		tok.Text = string(b)
	default:
		tok.Kind = KindNumber
		tok.Text = string(b)
	}
	return tok, nil
}

// split is a [bufio.SplitFunc] returning one token at a time. Leading
// whitespace and comments are consumed in the same call as the token that
// follows them. bufio.Scanner stops at EOF on the first call that returns no
// token, so an advance without a token is only returned when nothing but
// ignored input is buffered or more data is needed.
func (l *Lexer) split(data []byte, atEOF bool) (int, []byte, error) {
	skipped, more, err := l.skipIgnored(data, atEOF)
	if err != nil {
		return 0, nil, err
	}
	l.offset += int64(skipped)
	if more || skipped == len(data) {
		return skipped, nil, nil
	}

	n, err := l.tokenLen(data[skipped:], atEOF)
	if err != nil {
		return 0, nil, err
	}
	if n == 0 {
		return skipped, nil, nil
	}

	l.start = l.offset
	l.offset += int64(n)
	return skipped + n, data[skipped : skipped+n], nil
}

// skipIgnored returns the length of the whitespace and complete comments at
// the start of data. more is true if a comment may continue past the end of
// data.
func (l *Lexer) skipIgnored(data []byte, atEOF bool) (int, bool, error) {
	i := 0
	for i < len(data) {
		switch c := data[i]; {
		case isSpace(c):
			i++

		case c == '/':
			if i+1 >= len(data) {
				// A lone '/' at EOF is reported by tokenLen.
				return i, !atEOF, nil
			}
			switch data[i+1] {
			case '/':
				j := bytes.IndexByte(data[i:], '\n')
				if j < 0 {
					if atEOF {
						return len(data), false, nil
					}
					return i, true, nil
				}
				i += j + 1
			case '*':
				j := bytes.Index(data[i+2:], []byte("*/"))
				if j < 0 {
					if atEOF {
						return 0, false, l.errorfAt(int64(i), "unterminated comment")
					}
					return i, true, nil
				}
				i += j + 4
			default:
				return i, false, nil
			}

		default:
			return i, false, nil
		}
	}
	return i, false, nil
}

// tokenLen returns the length of the token at the start of data, or zero if
// more data is needed.
func (l *Lexer) tokenLen(data []byte, atEOF bool) (int, error) {
	switch c := data[0]; {
	case c == '\'' || c == '"':
		for i := 1; i < len(data); i++ {
			switch data[i] {
			case '\\':
				i++
			case c:
				return i + 1, nil
			case '\n':
				return 0, l.errorf("newline in string")
			}
		}
		if atEOF {
			return 0, l.errorf("unterminated string")
		}
		return 0, nil

	case isPunct(c):
		return 1, nil

	case isIdentStart(c), isNumberStart(c):
		i := 1
		for i < len(data) && isWordByte(data[i]) {
			i++
		}
		if i == len(data) && !atEOF {
			return 0, nil
		}
		return i, nil

	default:
		return 0, l.errorf("unexpected %q", c)
	}
}

func (l *Lexer) errorf(format string, args ...any) error {
	return l.errorfAt(0, format, args...)
}

// errorfAt reports an error at offset bytes past the consumed input.
func (l *Lexer) errorfAt(offset int64, format string, args ...any) error {
	return fmt.Errorf("%w: offset %d: %s", ErrSyntax, l.offset+offset, fmt.Sprintf(format, args...))
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isPunct(c byte) bool {
	switch c {
	case '[', ']', '{', '}', ',', ':', '=', ';', '(', ')':
		return true
	}
	return false
}

func isIdentStart(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_' || c == '$'
}

func isNumberStart(c byte) bool {
	return ('0' <= c && c <= '9') || c == '-' || c == '+' || c == '.'
}

func isWordByte(c byte) bool {
	return isIdentStart(c) || isNumberStart(c)
}
