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

package formatter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/wfx/apis"
	"dirpx.dev/wfx/field"
	"dirpx.dev/wfx/formatter"
	"dirpx.dev/wfx/wxapi/naming"
)

// bound binds a single attribute declaration under name.
func bound(t *testing.T, name string, f *field.Field) field.Bound {
	t.Helper()
	bs, err := field.Bind(map[string]*field.Field{name: f})
	require.NoError(t, err)
	require.Len(t, bs, 1)
	return bs[0]
}

func TestAsIsIsUnconditionalPassThrough(t *testing.T) {
	kf := formatter.NewAsIs()

	fields := []field.Bound{
		bound(t, "firstName", field.Attribute()),
		bound(t, "createdAt", field.DateAttribute()),
		bound(t, "userID", field.Attribute()),
		bound(t, "weird", field.Attribute().SerializeAs("Already-Formatted_KEY")),
	}

	for _, f := range fields {
		assert.Equal(t, f.SerializedName(), kf.FormatKey(f), "field %q", f.Name())
	}
}

func TestDasherized(t *testing.T) {
	kf := formatter.NewDasherized()

	tests := []struct {
		name string
		want string
	}{
		{"userId", "user-id"},
		{"userID", "user-id"},
		{"URL", "url"},
		{"HTTPCode", "http-code"},
		{"createdAt", "created-at"},
		{"firstName", "first-name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := bound(t, tt.name, field.Attribute())
			assert.Equal(t, tt.want, kf.FormatKey(f))
		})
	}
}

func TestUnderscored(t *testing.T) {
	kf := formatter.NewUnderscored()

	tests := []struct {
		name string
		want string
	}{
		{"userId", "user_id"},
		{"createdAt", "created_at"},
		{"URL", "url"},
		{"firstName", "first_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := bound(t, tt.name, field.Attribute())
			assert.Equal(t, tt.want, kf.FormatKey(f))
		})
	}
}

// Overrides still run through the boundary rule: formatters transform
// whatever the serialized name currently is, not the field name.
func TestBoundaryFormattersUseSerializedName(t *testing.T) {
	f := bound(t, "key", field.Attribute().SerializeAs("APIKey"))

	assert.Equal(t, "api-key", formatter.NewDasherized().FormatKey(f))
	assert.Equal(t, "api_key", formatter.NewUnderscored().FormatKey(f))
	assert.Equal(t, "APIKey", formatter.NewAsIs().FormatKey(f))
}

func TestFormatterDeterminism(t *testing.T) {
	f := bound(t, "veryLongFieldName", field.Attribute())

	for _, kf := range []apis.KeyFormatter{
		formatter.NewAsIs(),
		formatter.NewDasherized(),
		formatter.NewUnderscored(),
	} {
		first := kf.FormatKey(f)
		second := kf.FormatKey(f)
		assert.Equal(t, first, second)
	}
}

func TestForConvention(t *testing.T) {
	f := bound(t, "createdAt", field.Attribute())

	tests := []struct {
		convention naming.Convention
		want       string
	}{
		{naming.AsIs, "createdAt"},
		{naming.Dasherized, "created-at"},
		{naming.Underscored, "created_at"},
		{naming.Convention(42), "createdAt"}, // unknown falls back to pass-through
	}

	for _, tt := range tests {
		t.Run(tt.convention.String(), func(t *testing.T) {
			kf := formatter.ForConvention(tt.convention)
			require.NotNil(t, kf)
			assert.Equal(t, tt.want, kf.FormatKey(f))
		})
	}
}
