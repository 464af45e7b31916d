/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package words implements the camelCase word-boundary rule shared by the
// dasherized and underscored key formatters.
package words

import (
	"strings"
	"unicode"
)

// Separate inserts sep at every detected camelCase word boundary in s,
// lowercases the result, and strips leading/trailing separator characters.
//
// Boundary rule: a boundary exists immediately before an uppercase letter
// that either follows a lowercase letter, or precedes a lowercase letter.
// The second (lookahead) case splits trailing words off all-caps runs
// ("HTTPCode" -> "http-code") while staying conservative for pure all-caps
// tokens at string edges ("URL" -> "url", no separator inserted).
//
// Separate is pure and deterministic: the same input always yields the
// same output.
//
//	Separate("userId", '-')    == "user-id"
//	Separate("userID", '-')    == "user-id"
//	Separate("createdAt", '_') == "created_at"
//	Separate("URL", '-')       == "url"
func Separate(s string, sep rune) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)

	var b strings.Builder
	b.Grow(len(s) + len(s)/2)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || nextLower {
				b.WriteRune(sep)
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}

	// A source name may itself start or end with a separator character;
	// wire keys must not.
	return strings.Trim(b.String(), string(sep))
}
