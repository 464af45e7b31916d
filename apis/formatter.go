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

// KeyFormatter converts a field into the actual wire-format key string.
//
// Implementations must be pure functions of the field's SerializedName:
// stateless, side-effect-free, and deterministic (formatting the same
// unchanged field twice yields identical strings). They are therefore safe
// for concurrent use.
type KeyFormatter interface {
	// FormatKey returns the wire key for f.
	FormatKey(f Field) string
}
