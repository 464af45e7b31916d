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

// Identifier extends Typer with a per-instance resource identifier.
//
// # Overview
//
// Identifier combines:
//
//   - A type-level, canonical resource type name (via Typer.ResourceType),
//     and
//   - An instance-level identifier (via ResourceID).
//
// Together the pair (ResourceType, ResourceID) forms a resource identifier
// in the JSON:API sense: enough information for an external (de)serializer
// to emit a relationship linkage object, and for callers to correlate
// instances across documents, logs, and traces.
//
// The type-level name and the instance-level identifier are conceptually
// orthogonal:
//
//   - ResourceType describes the logical kind of the resource (for
//     example, "posts").
//   - ResourceID distinguishes one instance of that kind from another
//     (for example, "42").
//
// # Usage
//
//	type Post struct {
//	    ID    string
//	    Title string
//	}
//
//	func (Post) ResourceType() string { return "posts" }
//	func (p Post) ResourceID() string { return p.ID }
type Identifier interface {
	Typer

	// ResourceID returns a stable identifier for this resource instance.
	//
	// # Contract
	//
	//   - ResourceID MUST be deterministic for a given instance over its
	//     lifetime (no spontaneous changes).
	//   - ResourceID SHOULD be unique within the scope of the
	//     corresponding ResourceType.
	//   - ResourceID MUST be safe for concurrent calls from multiple
	//     goroutines.
	//   - ResourceID MUST NOT perform blocking operations or I/O.
	//
	// Implementations MAY return an empty string to indicate that the
	// instance has no identifier yet (for example, unsaved resources).
	// Callers MUST be prepared to handle the empty string as "no ID".
	ResourceID() string
}
