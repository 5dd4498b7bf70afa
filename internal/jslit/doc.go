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

// Package jslit reads the small subset of JavaScript used by generated
// documentation search data: top-level variable assignments of array,
// object, string and number literals.
//
// A typical input looks like:
//
//	var searchData=
//	[
//	  ['begin',['begin',['../classA.html#a1',1,'A']]]
//	];
//
// Expressions, function calls and regular expression literals are not
// supported.
package jslit
