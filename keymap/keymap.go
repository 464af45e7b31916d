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

// Package keymap precomputes the wire-key tables a (de)serializer consults
// when encoding or decoding a resource: field name -> wire key for writes,
// wire key -> field for reads.
package keymap

import "dirpx.dev/wfx/apis"

// New builds the key tables for schema s under formatter kf. All keys are
// computed once here; lookups afterwards are map reads.
//
// Duplicate wire keys after formatting are not detected: the last field
// formatted to a given key wins the reverse table. Wire-key uniqueness is
// the schema author's responsibility.
//
// A nil formatter behaves as pass-through.
func New(s apis.Schema, kf apis.KeyFormatter) Map {
	m := Map{
		keys:   make(map[string]string, len(s)),
		fields: make(map[string]apis.Field, len(s)),
		all:    make([]apis.Field, 0, len(s)),
	}
	for _, f := range s {
		if f == nil {
			continue
		}
		key := f.SerializedName()
		if kf != nil {
			key = kf.FormatKey(f)
		}
		m.keys[f.Name()] = key
		m.fields[key] = f
		m.all = append(m.all, f)
	}
	return m
}

// Map is an immutable, read-only view of one (schema, formatter) pairing.
// It is safe for concurrent use.
type Map struct {
	// keys maps model-facing field name to wire key.
	keys map[string]string
	// fields maps wire key back to the bound field.
	fields map[string]apis.Field
	// all preserves the schema's fields for iteration.
	all []apis.Field
}

// WireKey returns the wire key for a model-facing field name.
func (m Map) WireKey(name string) (string, bool) {
	k, ok := m.keys[name]
	return k, ok
}

// FieldByKey returns the field a wire key decodes into.
func (m Map) FieldByKey(key string) (apis.Field, bool) {
	f, ok := m.fields[key]
	return f, ok
}

// Writable returns the fields a serializer may write back to the wire,
// excluding read-only fields. Order follows the schema.
func (m Map) Writable() []apis.Field {
	out := make([]apis.Field, 0, len(m.all))
	for _, f := range m.all {
		if !f.IsReadOnly() {
			out = append(out, f)
		}
	}
	return out
}

// Len returns the number of mapped fields.
func (m Map) Len() int {
	return len(m.all)
}
