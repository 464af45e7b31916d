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

package field_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/wfx/apis"
	"dirpx.dev/wfx/field"
)

// bindOne binds a single declaration under the given name.
func bindOne(t *testing.T, name string, f *field.Field) field.Bound {
	t.Helper()
	bound, err := field.Bind(map[string]*field.Field{name: f})
	require.NoError(t, err)
	require.Len(t, bound, 1)
	return bound[0]
}

func TestSerializedNameDefaultsToName(t *testing.T) {
	b := bindOne(t, "firstName", field.Attribute())
	assert.Equal(t, "firstName", b.Name())
	assert.Equal(t, "firstName", b.SerializedName())
}

func TestSerializeAsOverridesAndChains(t *testing.T) {
	f := field.Attribute()

	// Fluent chaining returns the same declaration.
	assert.Same(t, f, f.SerializeAs("given-name"))
	assert.Same(t, f, f.ReadOnly())

	b := bindOne(t, "firstName", f)
	assert.Equal(t, "firstName", b.Name())
	assert.Equal(t, "given-name", b.SerializedName())
	assert.True(t, b.IsReadOnly())
}

func TestSerializeAsLastCallWins(t *testing.T) {
	f := field.Attribute().SerializeAs("one").SerializeAs("two")
	b := bindOne(t, "x", f)
	assert.Equal(t, "two", b.SerializedName())
}

func TestReadOnlyIdempotent(t *testing.T) {
	f := field.Attribute()
	for i := 0; i < 3; i++ {
		f.ReadOnly()
	}
	b := bindOne(t, "x", f)
	assert.True(t, b.IsReadOnly())
}

func TestReadOnlyDefaultsFalse(t *testing.T) {
	b := bindOne(t, "x", field.Attribute())
	assert.False(t, b.IsReadOnly())
}

func TestVariantKinds(t *testing.T) {
	base, err := url.Parse("https://api.example.com/")
	require.NoError(t, err)

	tests := []struct {
		name       string
		decl       *field.Field
		kind       apis.FieldKind
		linkedType string
	}{
		{"attribute", field.Attribute(), apis.KindAttribute, ""},
		{"url", field.URLAttribute(), apis.KindURLAttribute, ""},
		{"url with base", field.URLAttributeWithBase(base), apis.KindURLAttribute, ""},
		{"date", field.DateAttribute(), apis.KindDateAttribute, ""},
		{"to-one", field.ToOne("authors"), apis.KindToOne, "authors"},
		{"to-many", field.ToMany("comments"), apis.KindToMany, "comments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bindOne(t, "f", tt.decl)
			assert.Equal(t, tt.kind, b.Kind())
			assert.Equal(t, tt.linkedType, b.LinkedType())
		})
	}
}

func TestDateAttributeDefaultFormat(t *testing.T) {
	b := bindOne(t, "createdAt", field.DateAttribute())
	assert.Equal(t, field.DefaultDateFormat, b.DateFormat())

	custom := bindOne(t, "day", field.DateAttributeWithFormat("2006-01-02"))
	assert.Equal(t, "2006-01-02", custom.DateFormat())

	fallback := bindOne(t, "ts", field.DateAttributeWithFormat(""))
	assert.Equal(t, field.DefaultDateFormat, fallback.DateFormat())
}

func TestDateParseRenderRoundTrip(t *testing.T) {
	b := bindOne(t, "createdAt", field.DateAttribute())

	in := time.Date(2025, time.March, 14, 9, 26, 53, 589_000_000, time.UTC)
	rendered, err := b.FormatDate(in)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-14T09:26:53.589Z", rendered)

	parsed, err := b.ParseDate(rendered)
	require.NoError(t, err)
	assert.True(t, in.Equal(parsed))
}

func TestDateOpsRejectNonDateField(t *testing.T) {
	b := bindOne(t, "name", field.Attribute())

	_, err := b.ParseDate("2025-03-14T09:26:53.589Z")
	assert.ErrorIs(t, err, field.ErrNotDateAttribute)

	// Render guards the kind the same way parse does.
	_, err = b.FormatDate(time.Now())
	assert.ErrorIs(t, err, field.ErrNotDateAttribute)
}

func TestResolveURL(t *testing.T) {
	base, err := url.Parse("https://api.example.com/v1/")
	require.NoError(t, err)

	withBase := bindOne(t, "avatar", field.URLAttributeWithBase(base))
	noBase := bindOne(t, "avatar", field.URLAttribute())

	// Relative value resolves against the base when present.
	u, err := withBase.ResolveURL("images/7.png")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1/images/7.png", u.String())

	// Absolute values pass through regardless of base.
	u, err = withBase.ResolveURL("https://cdn.example.com/7.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/7.png", u.String())

	// Without a base, relative values are returned as parsed.
	u, err = noBase.ResolveURL("images/7.png")
	require.NoError(t, err)
	assert.Equal(t, "images/7.png", u.String())

	// Non-URL fields reject resolution outright.
	plain := bindOne(t, "name", field.Attribute())
	_, err = plain.ResolveURL("images/7.png")
	assert.ErrorIs(t, err, field.ErrNotURLAttribute)
}
