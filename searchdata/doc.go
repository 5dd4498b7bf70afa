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

// Package searchdata implements reading Doxygen search data files.
//
// A search data file (for example html/search/all_1.js) assigns a literal
// array to the searchData variable. Each element of the array is an entry:
//
//	['boxt',['BoxT',['../classhypro_1_1BoxT.html',1,'hypro']]]
//
// An entry comes in two parts:
//  1. The key: the symbol name normalized for matching. Keys are lower
//     case and every character outside [a-z0-9] is written as '_' followed
//     by two hex digits. Keys are not unique; overloads repeat them.
//  2. The data: the display label followed by one or more records. Each
//     record is a relative URL (optionally with an #anchor), a number
//     indicating the link opens in the parent frame, and an optional
//     scope label.
//
// Labels and scopes are HTML escaped.
package searchdata
