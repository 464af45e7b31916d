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

import "dirpx.dev/wfx/wxapi/naming"

// Config carries read-only schema-mapping knobs. It is passed by value and
// should be treated as immutable by implementations.
type Config struct {
	// Naming selects the key-formatting convention used to turn a field's
	// serialized name into its actual wire key.
	Naming naming.Convention

	// DateFormat is the Go time layout bound to date attributes declared
	// without an explicit layout. An empty value selects the library's
	// built-in ISO-8601 layout. Layouts are resolved at bind time, so
	// changing this knob affects subsequent registrations only.
	DateFormat string

	// VerifyLinkedTypes controls whether Register eagerly checks that each
	// relationship's linked type is already registered (self-references are
	// always allowed). Eager checking is order-sensitive; schemas with
	// mutually-linked types should leave this off and call Verify once
	// after setup instead.
	VerifyLinkedTypes bool
}
