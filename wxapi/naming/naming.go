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

package naming

import (
	"fmt"
	"strings"
)

// Convention selects the wire-key naming convention of a schema mapping.
//
// # Overview
//
// Convention is a small enumerated type that describes how a field's
// serialized name is converted into the key string actually written to and
// read from the wire. It decouples in-model naming conventions (typically
// camelCase Go-ish property names) from API conventions (dash-case or
// underscore_case keys).
//
// Convention is intentionally minimal and format-agnostic: it does not
// define the word-boundary algorithm itself, but selects one of the
// concrete key-formatting strategies that share it.
//
// # Values
//
// The following conventions are defined:
//
//   - AsIs        — serialized names pass through unchanged.
//   - Dasherized  — camelCase boundaries become "-", result lowercased.
//   - Underscored — camelCase boundaries become "_", result lowercased.
//
// # Contract
//
//   - Convention values MUST be safe to use concurrently across goroutines
//     (they are plain integers).
//   - The mapping from known Convention values to tokens returned by
//     String MUST remain stable; changing the spelling or casing is a
//     breaking change for systems that persist or parse these strings.
type Convention int

const (
	// AsIs selects pass-through naming: the wire key is the field's
	// serialized name, verbatim and unconditionally.
	AsIs Convention = iota

	// Dasherized selects dash-case naming: a separator "-" is inserted at
	// every detected camelCase word boundary and the result is lowercased
	// (for example "createdAt" -> "created-at").
	Dasherized

	// Underscored selects underscore_case naming: a separator "_" is
	// inserted at every detected camelCase word boundary and the result is
	// lowercased (for example "createdAt" -> "created_at").
	Underscored
)

// String returns a human-readable representation of the Convention value.
//
// For all defined enum values, the returned strings are:
//
//   - AsIs        -> "AsIs"
//   - Dasherized  -> "Dasherized"
//   - Underscored -> "Underscored"
//
// For unknown or out-of-range values, String returns a diagnostic form
// "Unknown(<n>)", where <n> is the underlying integer value. This behavior
// is intentional and MUST NOT panic, so that corrupted or unexpected values
// can still be surfaced safely in logs and diagnostics.
func (c Convention) String() string {
	switch c {
	case AsIs:
		return "AsIs"
	case Dasherized:
		return "Dasherized"
	case Underscored:
		return "Underscored"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// Parse parses a textual representation of a Convention.
//
// It accepts the same canonical tokens that are produced by
// Convention.String() for known values, with case-insensitive matching
// and optional surrounding whitespace:
//
//   - "AsIs"        -> AsIs
//   - "Dasherized"  -> Dasherized
//   - "Underscored" -> Underscored
//
// Any other input results in a non-nil error. On failure, Parse returns
// AsIs and a non-nil error; callers MUST NOT rely on the returned
// Convention value in the error case. Parse MUST NOT panic for any input.
//
// Parse is suitable for parsing configuration values, environment
// variables, CLI flags, and other human-authored or external inputs. For
// hard-coded values that are expected to be valid, callers MAY prefer
// MustParse for brevity.
func Parse(s string) (Convention, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return AsIs, fmt.Errorf("naming: empty convention")
	}

	switch strings.ToUpper(trimmed) {
	case "ASIS":
		return AsIs, nil
	case "DASHERIZED":
		return Dasherized, nil
	case "UNDERSCORED":
		return Underscored, nil
	default:
		return AsIs, fmt.Errorf("naming: unknown convention %q", s)
	}
}

// MustParse is like Parse but panics on invalid input.
//
// It is intended for hard-coded configuration in Go code, tests, and
// initialization code where failing fast with a panic is acceptable.
// Callers MUST NOT use MustParse on untrusted or user-supplied data; they
// SHOULD use Parse instead and handle errors.
func MustParse(s string) Convention {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MarshalText implements encoding.TextMarshaler for Convention.
//
// For all defined Convention values, MarshalText returns the same tokens
// as Convention.String(). For unknown or out-of-range values it returns a
// non-nil error and MUST NOT silently serialize an "Unknown(...)" form;
// this avoids persisting potentially invalid states.
func (c Convention) MarshalText() ([]byte, error) {
	switch c {
	case AsIs, Dasherized, Underscored:
		return []byte(c.String()), nil
	default:
		return nil, fmt.Errorf("naming: cannot marshal unknown convention %d", c)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for Convention. It
// accepts the same textual tokens as Parse, with case-insensitive matching
// and whitespace trimming. On failure, *c is left unchanged and a non-nil
// error is returned. UnmarshalText MUST NOT panic for any input.
func (c *Convention) UnmarshalText(text []byte) error {
	trimmed := strings.TrimSpace(string(text))
	if trimmed == "" {
		return fmt.Errorf("naming: empty convention")
	}

	value, err := Parse(trimmed)
	if err != nil {
		return err
	}

	*c = value
	return nil
}
