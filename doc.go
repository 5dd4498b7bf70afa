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

// Package doxsearch implements a library for reading Doxygen search indexes
// in pure Go.
//
// Doxygen writes its search index as JavaScript files next to the generated
// HTML documentation, usually in html/search:
//  1. A searchdata.js file that names the index sections (all, classes,
//     functions, ...) and lists the first characters of the keys in each
//     section. Older versions of Doxygen do not write this file.
//  2. One or more bucket files per section (all_0.js, all_1.js, ...). Each
//     bucket file holds the entries whose keys start with the same
//     character. Entries map a normalized key to the label and locations of
//     a documented symbol.
//
// An [Index] loads a whole search directory and answers the same prefix
// queries as the search box in the generated documentation. It also
// provides full text search over symbol labels and scopes and can check
// that every location in the index exists in the generated HTML.
package doxsearch
