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

package field

import (
	"net/url"
	"time"

	"dirpx.dev/wfx/apis"
)

// Bound is a fully-named, immutable field: the result of binding one
// declaration under its mapping key. It is a comparable value type and is
// safe for concurrent reads.
//
// Only Bind constructs Bound values, so Name is non-empty by construction.
type Bound struct {
	name        string
	serializeAs string
	readOnly    bool
	kind        apis.FieldKind
	baseURL     *url.URL
	dateFormat  string
	linkedType  string
}

// Ensure Bound implements apis.Field.
var _ apis.Field = Bound{}

// Name returns the model-facing property name assigned by the binder.
func (b Bound) Name() string { return b.name }

// SerializedName returns the configured wire-key override, falling back to
// the field name when no override was set. The fallback is computed at
// read time, not stored.
func (b Bound) SerializedName() string {
	if b.serializeAs != "" {
		return b.serializeAs
	}
	return b.name
}

// IsReadOnly reports whether the field must never be written back to the
// wire.
func (b Bound) IsReadOnly() bool { return b.readOnly }

// Kind returns the variant tag of the field.
func (b Bound) Kind() apis.FieldKind { return b.kind }

// BaseURL returns the base URL of a URL attribute, or nil.
func (b Bound) BaseURL() *url.URL { return b.baseURL }

// DateFormat returns the Go time layout of a date attribute, or "".
func (b Bound) DateFormat() string { return b.dateFormat }

// LinkedType returns the target resource type of a relationship, or "".
func (b Bound) LinkedType() string { return b.linkedType }

// ResolveURL parses a wire value for a URL attribute, resolving relative
// values against the field's base URL when one is present. Absolute values
// and fields without a base URL pass through parsing unchanged.
func (b Bound) ResolveURL(raw string) (*url.URL, error) {
	if b.kind != apis.KindURLAttribute {
		return nil, ErrNotURLAttribute
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if b.baseURL == nil || u.IsAbs() {
		return u, nil
	}
	return b.baseURL.ResolveReference(u), nil
}

// ParseDate parses a wire value for a date attribute using the field's
// layout.
func (b Bound) ParseDate(s string) (time.Time, error) {
	if b.kind != apis.KindDateAttribute {
		return time.Time{}, ErrNotDateAttribute
	}
	return time.Parse(b.layout(), s)
}

// FormatDate renders t using the field's layout. Like ParseDate, it
// rejects non-date fields instead of guessing a representation.
func (b Bound) FormatDate(t time.Time) (string, error) {
	if b.kind != apis.KindDateAttribute {
		return "", ErrNotDateAttribute
	}
	return t.Format(b.layout()), nil
}

func (b Bound) layout() string {
	if b.dateFormat != "" {
		return b.dateFormat
	}
	return DefaultDateFormat
}
