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

// Package field defines the per-property metadata of a resource schema:
// field declarations (mutable, fluent builders without a name), the bound,
// immutable field values produced by Bind, and the binder itself.
//
// A schema declaration is a mapping from model-facing property name to a
// *Field declaration. Declarations deliberately carry no name and expose
// no name accessor; the name exists only as the mapping key until Bind
// assigns it. Reading metadata off an unbound field is therefore a
// compile-time impossibility rather than a runtime error.
//
//	decls := map[string]*field.Field{
//	    "firstName": field.Attribute(),
//	    "createdAt": field.DateAttribute().ReadOnly(),
//	    "avatarURL": field.URLAttributeWithBase(base).SerializeAs("avatar"),
//	    "author":    field.ToOne("authors"),
//	    "comments":  field.ToMany("comments"),
//	}
//
//	schema, err := field.BindSchema(decls)
package field

import (
	"errors"
	"net/url"

	"dirpx.dev/wfx/apis"
)

// DefaultDateFormat is the layout bound to date attributes when neither
// the declaration nor the binding config supplies one: ISO-8601 with
// fractional seconds and a zone offset.
const DefaultDateFormat = "2006-01-02T15:04:05.000Z07:00"

var (
	// ErrEmptyName is returned when a declaration is keyed by an empty name.
	ErrEmptyName = errors.New("wfx(field): empty field name provided")
	// ErrNilField is returned when a nil field declaration is provided.
	ErrNilField = errors.New("wfx(field): nil field declaration provided")
	// ErrMissingLinkedType is returned when a relationship is declared
	// without a target resource type.
	ErrMissingLinkedType = errors.New("wfx(field): relationship declared without linked type")
	// ErrNotURLAttribute indicates a URL operation on a non-URL field.
	ErrNotURLAttribute = errors.New("wfx(field): field is not a URL attribute")
	// ErrNotDateAttribute indicates a date operation on a non-date field.
	ErrNotDateAttribute = errors.New("wfx(field): field is not a date attribute")
)

// Field is an unbound field declaration. It is created by one of the
// variant constructors, optionally configured via the fluent builder
// methods, and turned into an immutable Bound value by Bind.
//
// A Field has no model-facing name; the name is the key under which the
// declaration appears in the schema mapping. Declarations are not safe for
// concurrent mutation; configure them where they are declared.
type Field struct {
	kind        apis.FieldKind
	serializeAs string
	readOnly    bool

	// Variant payloads, fixed at construction.
	baseURL    *url.URL
	dateFormat string
	linkedType string
}

// Attribute declares a plain scalar/opaque attribute.
func Attribute() *Field {
	return &Field{kind: apis.KindAttribute}
}

// URLAttribute declares a URL attribute with no base URL; wire values are
// taken as-is.
func URLAttribute() *Field {
	return &Field{kind: apis.KindURLAttribute}
}

// URLAttributeWithBase declares a URL attribute whose relative wire values
// resolve against base. A nil base behaves like URLAttribute.
func URLAttributeWithBase(base *url.URL) *Field {
	return &Field{kind: apis.KindURLAttribute, baseURL: base}
}

// DateAttribute declares a date attribute with no explicit layout. The
// layout is resolved when the declaration is bound: the binding config's
// DateFormat, or DefaultDateFormat when binding without a config.
func DateAttribute() *Field {
	return &Field{kind: apis.KindDateAttribute}
}

// DateAttributeWithFormat declares a date attribute with an explicit Go
// time layout, overriding any bind-time default. An empty layout behaves
// like DateAttribute.
func DateAttributeWithFormat(layout string) *Field {
	return &Field{kind: apis.KindDateAttribute, dateFormat: layout}
}

// ToOne declares a to-one relationship targeting the resource type named
// linkedType. The target is a non-owning reference resolved by identity
// against the schema registry.
func ToOne(linkedType string) *Field {
	return &Field{kind: apis.KindToOne, linkedType: linkedType}
}

// ToMany declares a to-many relationship targeting the resource type named
// linkedType.
func ToMany(linkedType string) *Field {
	return &Field{kind: apis.KindToMany, linkedType: linkedType}
}

// SerializeAs overrides the wire-format key the field serializes under.
// It returns the receiver for chaining; calling it again overwrites the
// previous override.
func (f *Field) SerializeAs(key string) *Field {
	f.serializeAs = key
	return f
}

// ReadOnly marks the field as never written back to the wire by the
// (de)serializer. It returns the receiver for chaining and is idempotent.
func (f *Field) ReadOnly() *Field {
	f.readOnly = true
	return f
}
