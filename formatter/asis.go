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

package formatter

import "dirpx.dev/wfx/apis"

// NewAsIs creates the pass-through apis.KeyFormatter.
func NewAsIs() apis.KeyFormatter {
	return asIs{}
}

// asIs returns the field's serialized name verbatim, unconditionally —
// explicit overrides included.
type asIs struct{}

// Ensure asIs implements apis.KeyFormatter.
var _ apis.KeyFormatter = asIs{}

// FormatKey returns f's serialized name unchanged.
func (asIs) FormatKey(f apis.Field) string {
	return f.SerializedName()
}
