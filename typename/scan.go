// Copyright 2026 Mintgate Labs
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

package typename

// substring returns s[start:end] after validating the requested bounds. All
// offsets are byte offsets: the grammar's structural delimiters are single
// bytes, so byte arithmetic is exact regardless of the payload encoding
func substring(s string, start int, end int) (string, error) {
	if start < 0 || end < start || end > len(s) {
		return "", InvalidSliceError{Start: start, End: end}
	}
	return s[start:end], nil
}

// SplitAngleBrackets splits s at its outermost matching angle bracket pair
// and returns the prefix before the opening bracket along with the content
// between the brackets. If s contains no brackets, or the brackets never
// close, the whole string is returned with empty content. A missing bracket
// region is not an error: non-generic names are the common case
func SplitAngleBrackets(s string) (string, string) {
	depth := 0
	start := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			if depth == 0 && start == -1 {
				start = i
			}
			depth++
		case '>':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && start != -1 {
				return s[:start], s[start+1 : i]
			}
		}
	}
	return s, ""
}

// SplitTopLevel splits s at commas separating sibling arguments, tracking
// bracket depth so that commas inside a nested argument's own bracket region
// are never split points. A single space immediately following a comma is
// treated as formatting and stripped from the next segment. A string with no
// top-level comma yields a single-element result, including the empty string:
// callers that want "zero arguments" must special-case empty input
func SplitTopLevel(s string) []string {
	ret := []string{}
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				ret = append(ret, s[start:i])
				start = i + 1
				if start < len(s) && s[start] == ' ' {
					start++
				}
			}
		}
	}
	return append(ret, s[start:])
}

// DecomposeStruct splits a struct name with an optional generic argument
// list, e.g. "Pair<u8, u16>", into the bare name and its ordered arguments.
// A name with no brackets (or an empty bracket region) yields a nil argument
// list, never a single empty-string argument
func DecomposeStruct(s string) (string, []string) {
	name, inner := SplitAngleBrackets(s)
	if inner == "" {
		return name, nil
	}
	return name, SplitTopLevel(inner)
}
