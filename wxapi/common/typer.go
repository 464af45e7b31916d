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

// Typer identifies a resource model by its stable, canonical type name.
//
// # Overview
//
// Typer is the primary contract between a resource model and the wfx
// schema subsystem. The returned type name is the identity under which a
// model's schema is registered, the identity relationship fields link to,
// and (in JSON:API-style documents) the value of the "type" member the
// external (de)serializer writes.
//
// Semantically, Typer is a type-level contract: ResourceType describes the
// *kind* of resource, not a particular instance. The returned name is
// expected to be independent of instance state and to remain stable across
// program executions, deployments, and process restarts, as long as the
// underlying domain model does not change.
//
// # Performance
//
// Implementations are intended to be extremely cheap:
//
//   - SHOULD be constant-time and amortized O(1).
//   - SHOULD avoid heap allocations on the hot path.
//   - MUST NOT perform blocking operations or I/O.
//   - MUST be safe to call from multiple goroutines concurrently.
//
// # Usage
//
//	type Post struct {
//	    ID    string
//	    Title string
//	}
//
//	func (Post) ResourceType() string {
//	    return "posts"
//	}
//
// # Naming guidelines
//
// The ResourceType value is expected to be:
//
//   - Stable across program executions (MUST).
//   - Unique within the application's schema registry (MUST).
//   - Short and human-readable (SHOULD).
//   - Expressed in the API's wire convention, conventionally a lowercase
//     plural noun such as "posts" or "comments" (MAY, but RECOMMENDED).
type Typer interface {
	// ResourceType returns the canonical, type-level name for this
	// resource model.
	//
	// # Contract
	//
	//   - The returned name MUST be non-empty.
	//   - The returned name MUST be deterministic for a given concrete type.
	//   - The returned name MUST NOT depend on mutable instance state.
	//   - The implementation MUST be safe for concurrent calls from
	//     multiple goroutines.
	ResourceType() string
}
