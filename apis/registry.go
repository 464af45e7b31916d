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

// Registry is a process-wide mapping from resource type names to their
// bound schemas. Keep it minimal so implementations can be lock-free or
// sync.Map-backed.
type Registry interface {
	// Register associates a resource type name with its bound schema.
	// Implementations should be idempotent for an identical schema;
	// conflicting re-registrations return an error.
	Register(resourceType string, s Schema) error
	// Lookup returns the schema registered for a resource type, if present.
	Lookup(resourceType string) (s Schema, ok bool)
	// Verify checks that every relationship field across all registered
	// schemas links to a registered resource type. Intended to run once,
	// after schema setup completes, so mutually-linked types can be
	// registered in any order.
	Verify() error
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered resource types.
	Count() int
	// Reset clears all registered schemas.
	Reset()
}

// Entry is a single (resource type, schema) association in a Registry
// snapshot.
type Entry struct {
	// ResourceType is the registered resource type name.
	ResourceType string
	// Schema is the bound field set.
	Schema Schema
}
