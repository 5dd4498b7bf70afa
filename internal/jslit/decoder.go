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
	"fmt"
	"io"
)

// Value is a decoded literal. It is one of String, Number, Ident, Array or
// Object.
type Value interface {
	isValue()
}

// String is a string literal.
type String string

// Number is a numeric literal in its source form.
type Number string

// Ident is a bare identifier used as a value, such as true or null.
type Ident string

// Array is an array literal.
type Array []Value

// Object is an object literal. Members are kept in source order.
type Object []Member

// Member is a key and value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

func (String) isValue() {}
func (Number) isValue() {}
func (Ident) isValue()  {}
func (Array) isValue()  {}
func (Object) isValue() {}

// Decoder reads literal values and assignments from a token stream.
type Decoder struct {
	lex    *Lexer
	peeked *Token
}

// NewDecoder returns a new Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		lex: NewLexer(r),
	}
}

// Token returns the next token.
func (d *Decoder) Token() (Token, error) {
	if d.peeked != nil {
		t := *d.peeked
		d.peeked = nil
		return t, nil
	}
	return d.lex.Next()
}

// Peek returns the next token without consuming it.
func (d *Decoder) Peek() (Token, error) {
	if d.peeked != nil {
		return *d.peeked, nil
	}
	t, err := d.lex.Next()
	if err != nil {
		return Token{}, err
	}
	d.peeked = &t
	return t, nil
}

// Expect consumes the next token and returns an error if it is not a
// punctuation token with the given text.
func (d *Decoder) Expect(punct string) error {
	t, err := d.Token()
	if err != nil {
		return err
	}
	if t.Kind != KindPunct || t.Text != punct {
		return fmt.Errorf("%w: offset %d: expected %q, found %v", ErrSyntax, t.Offset, punct, t)
	}
	return nil
}

// Skip consumes the next token if it is a punctuation token with the given
// text. It reports whether a token was consumed.
func (d *Decoder) Skip(punct string) (bool, error) {
	t, err := d.Peek()
	if err != nil {
		return false, err
	}
	if t.Kind == KindPunct && t.Text == punct {
		d.peeked = nil
		return true, nil
	}
	return false, nil
}

// Assignment reads the left hand side of an assignment statement such as
// "var name =" and returns the variable name. Stray semicolons are skipped.
// It returns [io.EOF] if the input ends before a statement.
func (d *Decoder) Assignment() (string, error) {
	for {
		ok, err := d.Skip(";")
		if err != nil {
			return "", err
		}
		if !ok {
			break
		}
	}

	t, err := d.Token()
	if err != nil {
		return "", err
	}
	if t.Kind == KindEOF {
		return "", io.EOF
	}
	if t.Kind == KindIdent && (t.Text == "var" || t.Text == "let" || t.Text == "const") {
		t, err = d.Token()
		if err != nil {
			return "", err
		}
	}
	if t.Kind != KindIdent {
		return "", fmt.Errorf("%w: offset %d: expected variable name, found %v", ErrSyntax, t.Offset, t)
	}
	if err := d.Expect("="); err != nil {
		return "", err
	}
	return t.Text, nil
}

// Value reads the next complete literal value.
func (d *Decoder) Value() (Value, error) {
	t, err := d.Token()
	if err != nil {
		return nil, err
	}

	switch t.Kind {
	case KindString:
		return String(t.Text), nil
	case KindNumber:
		return Number(t.Text), nil
	case KindIdent:
		return Ident(t.Text), nil
	case KindPunct:
		switch t.Text {
		case "[":
			a, err := d.array()
			if err != nil {
				return nil, err
			}
			return a, nil
		case "{":
			o, err := d.object()
			if err != nil {
				return nil, err
			}
			return o, nil
		}
	case KindEOF:
		return nil, fmt.Errorf("%w: unexpected EOF", ErrSyntax)
	}
	return nil, fmt.Errorf("%w: offset %d: unexpected %v", ErrSyntax, t.Offset, t)
}

// More reports whether another element follows in the array or object being
// read. It consumes a separating comma and returns false, consuming the
// closing punctuation, when end is found.
func (d *Decoder) More(end string) (bool, error) {
	t, err := d.Peek()
	if err != nil {
		return false, err
	}
	if t.Kind == KindPunct && t.Text == end {
		d.peeked = nil
		return false, nil
	}
	return true, nil
}

// Separator consumes the comma after an element, or checks the element was
// the last one before end.
func (d *Decoder) Separator(end string) error {
	t, err := d.Peek()
	if err != nil {
		return err
	}
	if t.Kind == KindPunct && t.Text == "," {
		d.peeked = nil
		return nil
	}
	if t.Kind == KindPunct && t.Text == end {
		return nil
	}
	return fmt.Errorf("%w: offset %d: expected %q or %q, found %v", ErrSyntax, t.Offset, ",", end, t)
}

func (d *Decoder) array() (Array, error) {
	a := Array{}
	for {
		more, err := d.More("]")
		if err != nil {
			return nil, err
		}
		if !more {
			return a, nil
		}
		v, err := d.Value()
		if err != nil {
			return nil, err
		}
		a = append(a, v)
		if err := d.Separator("]"); err != nil {
			return nil, err
		}
	}
}

func (d *Decoder) object() (Object, error) {
	o := Object{}
	for {
		more, err := d.More("}")
		if err != nil {
			return nil, err
		}
		if !more {
			return o, nil
		}

		k, err := d.Token()
		if err != nil {
			return nil, err
		}
		if k.Kind != KindString && k.Kind != KindNumber && k.Kind != KindIdent {
			return nil, fmt.Errorf("%w: offset %d: expected object key, found %v", ErrSyntax, k.Offset, k)
		}
		if err := d.Expect(":"); err != nil {
			return nil, err
		}
		v, err := d.Value()
		if err != nil {
			return nil, err
		}
		o = append(o, Member{Key: k.Text, Value: v})
		if err := d.Separator("}"); err != nil {
			return nil, err
		}
	}
}
