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
	"strings"

	"github.com/k3a/html2text"
)

// Record is a single location where a symbol is documented.
type Record struct {
	// Label is the display name of the symbol. It is shared by every record
	// of an entry and is HTML escaped.
	Label string

	// URL is the documentation page, relative to the search data directory,
	// with an optional "#anchor" fragment.
	URL string

	// Parent is true if the link should be opened in the parent frame.
	Parent bool

	// Scope is the enclosing namespace, class or signature. It is HTML
	// escaped and may be empty.
	Scope string
}

// Text returns the label as plain text.
func (r *Record) Text() string {
	return html2text.HTML2Text(r.Label)
}

// ScopeText returns the scope as plain text.
func (r *Record) ScopeText() string {
	return html2text.HTML2Text(r.Scope)
}

// Page returns the URL without its anchor.
func (r *Record) Page() string {
	page, _, _ := strings.Cut(r.URL, "#")
	return page
}

// Anchor returns the anchor of the URL, if any.
func (r *Record) Anchor() string {
	_, anchor, _ := strings.Cut(r.URL, "#")
	return anchor
}

// Entry is a search data entry.
type Entry struct {
	// Key is the normalized search key.
	Key string

	// Label is the HTML escaped display name shared by the records.
	Label string

	// Records are the documentation locations for the entry in file order.
	Records []*Record
}

// String returns the entry's key.
func (e *Entry) String() string {
	return e.Key
}
