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
	"dirpx.dev/wfx/apis"
	"dirpx.dev/wfx/wxapi/common"
)

// Declarer is implemented by resource models that self-describe their
// schema. The field mapping returned by DeclareFields is bound and
// registered under the model's resource type name.
type Declarer interface {
	common.Typer

	// DeclareFields returns the mapping of model-facing property name to
	// field declaration. Implementations should build a fresh mapping per
	// call; bound schemas never alias declarations.
	DeclareFields() map[string]*Field
}

// Bind assigns each declaration its model-facing name — the key under
// which it appears in decls — and returns one Bound field per entry.
//
// Bind performs no renaming of serialized-name overrides and no validation
// of duplicate wire keys after formatting; callers composing multiple
// field sets are responsible for wire-key uniqueness. The order of the
// result is unspecified.
//
// Bind fails fast on invalid declarations: an empty-string key, a nil
// declaration, or a relationship without a linked type.
//
// Date attributes declared without a layout are bound with
// DefaultDateFormat; BindConfig takes the default layout from a config
// instead.
func Bind(decls map[string]*Field) ([]Bound, error) {
	return bind(decls, DefaultDateFormat)
}

// BindConfig is Bind with bind-time defaults taken from cfg: date
// attributes declared without a layout receive cfg.DateFormat. An empty
// cfg.DateFormat means DefaultDateFormat.
func BindConfig(decls map[string]*Field, cfg apis.Config) ([]Bound, error) {
	layout := cfg.DateFormat
	if layout == "" {
		layout = DefaultDateFormat
	}
	return bind(decls, layout)
}

func bind(decls map[string]*Field, defaultLayout string) ([]Bound, error) {
	out := make([]Bound, 0, len(decls))
	for name, f := range decls {
		if name == "" {
			return nil, ErrEmptyName
		}
		if f == nil {
			return nil, ErrNilField
		}
		if f.kind.IsRelationship() && f.linkedType == "" {
			return nil, ErrMissingLinkedType
		}

		layout := f.dateFormat
		if f.kind == apis.KindDateAttribute && layout == "" {
			layout = defaultLayout
		}

		out = append(out, Bound{
			name:        name,
			serializeAs: f.serializeAs,
			readOnly:    f.readOnly,
			kind:        f.kind,
			baseURL:     f.baseURL,
			dateFormat:  layout,
			linkedType:  f.linkedType,
		})
	}
	return out, nil
}

// BindSchema is Bind with the result widened to an apis.Schema, ready for
// registration.
func BindSchema(decls map[string]*Field) (apis.Schema, error) {
	bound, err := Bind(decls)
	if err != nil {
		return nil, err
	}
	return widen(bound), nil
}

// BindSchemaConfig is BindConfig widened to an apis.Schema.
func BindSchemaConfig(decls map[string]*Field, cfg apis.Config) (apis.Schema, error) {
	bound, err := BindConfig(decls, cfg)
	if err != nil {
		return nil, err
	}
	return widen(bound), nil
}

func widen(bound []Bound) apis.Schema {
	s := make(apis.Schema, 0, len(bound))
	for _, b := range bound {
		s = append(s, b)
	}
	return s
}
