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

// Package formatter provides the concrete apis.KeyFormatter strategies:
// pass-through (as-is), dasherized, and underscored. All strategies are
// stateless and safe for concurrent use.
package formatter

import (
	"dirpx.dev/wfx/apis"
	"dirpx.dev/wfx/wxapi/naming"
)

// ForConvention returns the KeyFormatter implementing the given naming
// convention. Unknown conventions fall back to pass-through; selecting a
// convention is a configuration decision validated at parse time, not
// here.
func ForConvention(c naming.Convention) apis.KeyFormatter {
	switch c {
	case naming.Dasherized:
		return NewDasherized()
	case naming.Underscored:
		return NewUnderscored()
	default:
		return NewAsIs()
	}
}
