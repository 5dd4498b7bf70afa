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

package searchdata

import (
	"errors"
	"fmt"
	"io"

	"github.com/ianlewis/go-doxsearch/internal/jslit"
)

var (
	// ErrMalformed indicates that the search data does not have the expected
	// shape.
	ErrMalformed = errors.New("malformed search data")

	// ErrEmptyKey indicates that an entry has an empty search key.
	ErrEmptyKey = errors.New("empty search key")
)

// Scanner scans search data entries from start to end.
type Scanner struct {
	r       io.ReadCloser
	d       *jslit.Decoder
	varName string

	started bool
	done    bool
	entry   *Entry
	err     error

	// n is the number of entries read.
	n int
}

// ScannerOptions are options for scanning a search data file.
type ScannerOptions struct {
	// VarName is the name of the variable the entries are assigned to.
	// Other assignments in the file are skipped.
	VarName string
}

// DefaultScannerOptions is the default options for a Scanner.
var DefaultScannerOptions = &ScannerOptions{
	VarName: "searchData",
}

// NewScanner return a new scanner that scans the search data from start to
// end. The Scanner assumes ownership of the reader and should be closed with
// the Close method.
func NewScanner(r io.ReadCloser, options *ScannerOptions) (*Scanner, error) {
	if options == nil {
		options = DefaultScannerOptions
	}

	varName := options.VarName
	if varName == "" {
		varName = DefaultScannerOptions.VarName
	}

	return &Scanner{
		r:       r,
		d:       jslit.NewDecoder(r),
		varName: varName,
	}, nil
}

// NewScannerFromPath returns a new scanner for the search data file at path.
func NewScannerFromPath(path string, options *ScannerOptions) (*Scanner, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewScanner(f, options)
}

// Scan advances to the next entry. It returns false if the scan stops either
// by reaching the end of the search data or an error.
func (s *Scanner) Scan() bool {
	if s.done || s.err != nil {
		return false
	}

	if !s.started {
		s.started = true
		if err := s.header(); err != nil {
			s.err = err
			return false
		}
	}

	more, err := s.d.More("]")
	if err != nil {
		s.err = err
		return false
	}
	if !more {
		s.done = true
		s.entry = nil
		return false
	}

	v, err := s.d.Value()
	if err != nil {
		s.err = fmt.Errorf("entry %d: %w", s.n, err)
		return false
	}
	e, err := parseEntry(v)
	if err != nil {
		s.err = fmt.Errorf("entry %d: %w", s.n, err)
		return false
	}
	if err := s.d.Separator("]"); err != nil {
		s.err = fmt.Errorf("entry %d: %w", s.n, err)
		return false
	}

	s.n++
	s.entry = e
	return true
}

// Entry returns the most recent entry read by Scan.
func (s *Scanner) Entry() *Entry {
	return s.entry
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	return s.err
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	err := s.r.Close()
	if err != nil {
		return fmt.Errorf("closing search data file: %w", err)
	}
	return nil
}

// header reads up to and including the opening bracket of the entry array.
func (s *Scanner) header() error {
	for {
		name, err := s.d.Assignment()
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: variable %q not found", ErrMalformed, s.varName)
		}
		if err != nil {
			return fmt.Errorf("reading search data: %w", err)
		}

		if name == s.varName {
			break
		}

		if _, err := s.d.Value(); err != nil {
			return fmt.Errorf("skipping %q: %w", name, err)
		}
	}

	if err := s.d.Expect("["); err != nil {
		return fmt.Errorf("%w: %q is not an array: %w", ErrMalformed, s.varName, err)
	}
	return nil
}

// parseEntry converts a decoded ['key', ['label', record...]] value.
func parseEntry(v jslit.Value) (*Entry, error) {
	a, ok := v.(jslit.Array)
	if !ok || len(a) != 2 {
		return nil, fmt.Errorf("%w: entry is not a key and data pair", ErrMalformed)
	}

	key, ok := a[0].(jslit.String)
	if !ok {
		return nil, fmt.Errorf("%w: key is not a string", ErrMalformed)
	}
	if key == "" {
		return nil, ErrEmptyKey
	}

	data, ok := a[1].(jslit.Array)
	if !ok || len(data) < 2 {
		return nil, fmt.Errorf("%w: %q: entry has no records", ErrMalformed, key)
	}
	label, ok := data[0].(jslit.String)
	if !ok {
		return nil, fmt.Errorf("%w: %q: label is not a string", ErrMalformed, key)
	}

	e := &Entry{
		Key:     string(key),
		Label:   string(label),
		Records: make([]*Record, 0, len(data)-1),
	}
	for i, rv := range data[1:] {
		r, err := parseRecord(rv)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: record %d: %w", ErrMalformed, key, i, err)
		}
		r.Label = e.Label
		e.Records = append(e.Records, r)
	}
	return e, nil
}

var (
	errRecordArity = errors.New("expected 2 or 3 fields")
	errRecordField = errors.New("unexpected field type")
)

// parseRecord converts a decoded ['url', flag, 'scope'] value. The scope is
// optional.
func parseRecord(v jslit.Value) (*Record, error) {
	a, ok := v.(jslit.Array)
	if !ok {
		return nil, errRecordField
	}
	if len(a) != 2 && len(a) != 3 {
		return nil, fmt.Errorf("%w, found %d", errRecordArity, len(a))
	}

	url, ok := a[0].(jslit.String)
	if !ok {
		return nil, fmt.Errorf("%w: url", errRecordField)
	}

	var parent bool
	switch flag := a[1].(type) {
	case jslit.Number:
		parent = flag != "0"
	case jslit.Ident:
		switch flag {
		case "true":
			parent = true
		case "false":
		default:
			return nil, fmt.Errorf("%w: flag %q", errRecordField, string(flag))
		}
	default:
		return nil, fmt.Errorf("%w: flag", errRecordField)
	}

	r := &Record{
		URL:    string(url),
		Parent: parent,
	}
	if len(a) == 3 {
		scope, ok := a[2].(jslit.String)
		if !ok {
			return nil, fmt.Errorf("%w: scope", errRecordField)
		}
		r.Scope = string(scope)
	}
	return r, nil
}
