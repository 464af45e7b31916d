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

import (
	"dirpx.dev/wfx/apis"
	"dirpx.dev/wfx/utils/words"
)

// NewDasherized creates the dash-case apis.KeyFormatter.
func NewDasherized() apis.KeyFormatter {
	return dasherized{}
}

// dasherized lowers the serialized name and separates camelCase word
// boundaries with "-". It operates on whatever string the serialized name
// currently is, overrides included.
type dasherized struct{}

// Ensure dasherized implements apis.KeyFormatter.
var _ apis.KeyFormatter = dasherized{}

// FormatKey returns the dash-case wire key for f.
func (dasherized) FormatKey(f apis.Field) string {
	return words.Separate(f.SerializedName(), '-')
}
