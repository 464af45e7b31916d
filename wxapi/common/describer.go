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

package common

// Describer augments Typer with human-oriented metadata about a resource
// type.
//
// # Overview
//
// While Typer focuses on a compact, canonical identifier (for registry
// lookups and wire documents), Describer provides context that is useful
// for:
//
//   - Documentation and API browsers.
//   - Debugging and introspection tools.
//   - Administrative and developer-facing UIs.
//   - Schema evolution and compatibility checks.
//
// All methods on Describer are type-level: they describe the *kind* of
// resource, not any particular instance. Implementations SHOULD return
// values that are stable for a given version of the type's schema and do
// not depend on mutable runtime state.
type Describer interface {
	Typer

	// ResourceDescription returns a short, human-readable description of
	// the resource type.
	//
	// # Contract
	//
	//   - The returned string MAY be empty if no description is modeled,
	//     but infrastructure SHOULD be prepared to handle that case.
	//   - The implementation MUST be safe for concurrent calls and SHOULD
	//     avoid allocations on the hot path (for example, by returning a
	//     string literal or precomputed value).
	ResourceDescription() string

	// SchemaVersion returns a schema or contract version for the resource
	// type.
	//
	// # Semantics
	//
	// SchemaVersion is intended to convey changes in the resource's field
	// set, invariants, or external contract. Typical representations
	// include simple labels ("v1", "v2"), semantic versions ("v1.2.0"), or
	// date-based versions ("2024-01-15").
	//
	// # Contract
	//
	//   - MUST change when the externally visible field set of the
	//     resource changes in an incompatible way.
	//   - SHOULD remain constant across deployments of the same build.
	//   - The returned string MAY be empty if versioning is not modeled;
	//     callers SHOULD treat the empty string as "version unknown".
	SchemaVersion() string
}
