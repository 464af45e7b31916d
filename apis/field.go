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

package apis

import (
	"fmt"
	"net/url"
)

// FieldKind tags the variant of a mapped field. Consumers switch on the
// kind to decide how a wire value is coerced (plain value, URL, date,
// single linked resource, or a collection of linked resources).
type FieldKind int

const (
	// KindAttribute is a plain scalar/opaque attribute.
	KindAttribute FieldKind = iota
	// KindURLAttribute is an attribute holding a URL, optionally resolved
	// against a base URL.
	KindURLAttribute
	// KindDateAttribute is an attribute holding a timestamp rendered and
	// parsed with a fixed layout.
	KindDateAttribute
	// KindToOne is a relationship to a single resource of the linked type.
	KindToOne
	// KindToMany is a relationship to a collection of resources of the
	// linked type.
	KindToMany
)

// String returns a stable token for the kind, or a diagnostic form
// "Unknown(<n>)" for out-of-range values. It never panics.
func (k FieldKind) String() string {
	switch k {
	case KindAttribute:
		return "Attribute"
	case KindURLAttribute:
		return "URLAttribute"
	case KindDateAttribute:
		return "DateAttribute"
	case KindToOne:
		return "ToOne"
	case KindToMany:
		return "ToMany"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// IsRelationship reports whether the kind carries a relationship
// cardinality tag (to-one or to-many).
func (k FieldKind) IsRelationship() bool {
	return k == KindToOne || k == KindToMany
}

// Field is the read contract for one bound, mapped resource property.
//
// A Field is produced by the field binder and is immutable afterwards:
// all accessors are pure reads and safe for concurrent use once binding
// has completed. Variant-specific accessors return zero values for kinds
// they do not apply to (nil BaseURL, empty DateFormat/LinkedType).
type Field interface {
	// Name returns the model-facing property name. Guaranteed non-empty:
	// only the binder constructs Fields, and it always assigns a name.
	Name() string

	// SerializedName returns the wire-format key before formatter
	// transformation. Defaults to Name when no override was configured.
	SerializedName() string

	// IsReadOnly reports whether the (de)serializer must never write this
	// field back to the wire.
	IsReadOnly() bool

	// Kind returns the variant tag of the field.
	Kind() FieldKind

	// BaseURL returns the base URL for relative value resolution, or nil.
	// Meaningful for KindURLAttribute only.
	BaseURL() *url.URL

	// DateFormat returns the Go time layout governing parse and render.
	// Meaningful for KindDateAttribute only; empty otherwise.
	DateFormat() string

	// LinkedType returns the resource type name the relationship targets.
	// Meaningful for KindToOne/KindToMany only; empty otherwise.
	LinkedType() string
}

// Schema is the bound field set of one resource type. Order is not
// significant. Callers must treat schemas obtained from a Registry as
// read-only.
type Schema []Field

// Lookup returns the field with the given model-facing name, if present.
func (s Schema) Lookup(name string) (Field, bool) {
	for _, f := range s {
		if f != nil && f.Name() == name {
			return f, true
		}
	}
	return nil, false
}
