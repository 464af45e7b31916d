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

// Package wfx provides a global, process-wide wire-field schema service.
//
// wfx is responsible for describing how in-memory resource models map to
// and from a JSON:API-style wire representation. A model author declares,
// per resource type, a set of named fields — plain attributes, typed
// attributes such as URLs and dates, and to-one/to-many relationships —
// each carrying the metadata a (de)serializer needs: the wire-format key,
// read-only status, and type-specific coercion rules. A pluggable
// key-formatting strategy converts field names into wire keys, decoupling
// in-model naming conventions (camelCase) from API conventions
// (dash-case, underscore_case).
//
// wfx only describes how encoding should behave. It performs no JSON
// encoding or decoding and no network I/O; those belong to the transport
// and document layers that consume this metadata.
//
// # Design
//
// The core of wfx is a read-mostly global snapshot (state). The snapshot
// holds four things:
//
//   - Config: knobs that control how schemas are mapped (the naming
//     convention for wire keys, whether relationship targets are verified
//     eagerly at registration).
//
//   - Registry: a process-wide mapping from resource type names to their
//     bound schemas. This is how the (de)serializer learns which wire keys
//     map to which model properties for "posts", "comments", etc. The
//     registry can be written to at runtime (Register).
//
//   - Formatter: the key-formatting strategy that turns a field's
//     serialized name into the actual wire key. Three conventions ship
//     with wfx: pass-through, dasherized, underscored. Formatters are
//     stateless and concurrency-safe.
//
//   - Builder: a pluggable factory that knows how to construct Registry
//     and Formatter instances for a given Config (and optional extension
//     data). The Builder is also allowed to migrate schemas from previous
//     Registry instances.
//
// All of these live inside a single immutable struct called state.
// The package holds an atomic pointer to the current state. Readers load
// that pointer, use it, and never mutate it. Writers build a brand-new
// state and atomically swap it in.
//
// This means wfx lookups are lock-free on the hot path:
//
//	key, ok := wfx.WireKey("posts", "createdAt")
//	schema, ok := wfx.Schema("posts")
//
// and concurrent callers always see a consistent snapshot.
//
// # Declaring schemas
//
// A schema is declared as a mapping from model-facing property name to a
// field declaration, configured fluently and bound in one step:
//
//	err := wfx.Register("posts", map[string]*field.Field{
//	    "title":     field.Attribute(),
//	    "createdAt": field.DateAttribute().ReadOnly(),
//	    "avatarURL": field.URLAttributeWithBase(base).SerializeAs("avatar"),
//	    "author":    field.ToOne("authors"),
//	    "comments":  field.ToMany("comments"),
//	})
//
// Binding assigns each declaration the name it was declared under; only
// bound fields expose a name. The chosen formatter later converts each
// field's serialized name into the wire key:
//
//	wfx.SetConfig(config.NewConfig(config.WithNaming(naming.Underscored)))
//	key, _ := wfx.WireKey("posts", "createdAt") // "created_at"
//
// # Global API
//
// The package exposes three groups of operations:
//
//  1. Read helpers:
//
//     Schema(resourceType string) (apis.Schema, bool)
//     Keys(resourceType string) (keymap.Map, bool)
//     Key(f apis.Field) string
//     WireKey(resourceType, fieldName string) (string, bool)
//     Registry() apis.Registry
//     Formatter() apis.KeyFormatter
//
//     These are safe for concurrent use without additional locking.
//     They always read from the latest published snapshot.
//
//  2. Mutation helpers:
//
//     Register(resourceType string, decls map[string]*field.Field) error
//     RegisterResource(d field.Declarer) error
//     SetConfig(cfg apis.Config)
//     SetBuilder(b apis.Builder)
//     SetExt(ext T)
//     SetRegistry(reg apis.Registry)
//     SetFormatter(kf apis.KeyFormatter)
//     UnpinRegistry()
//     UnpinFormatter()
//     SetAll(...)
//
//     Each of these either registers into the current snapshot's registry
//     or acquires an internal build lock, derives a new snapshot
//     (rebuilding or reusing Registry / Formatter as needed), and then
//     atomically publishes that snapshot.
//
//     Semantics in short:
//
//     - Config affects how wire keys are computed and how registration
//     validates relationships. Calling SetConfig() may trigger a rebuild
//     of Registry and/or Formatter, unless they are explicitly "pinned".
//
//     - Builder controls how Registry and Formatter are constructed.
//     Swapping the Builder lets you replace schema storage or key
//     formatting policy at runtime.
//
//     - Ext is an opaque extension payload. It is not interpreted by wfx
//     itself. It is simply passed down to the Builder so custom builders
//     (in other binaries) can carry extra policy/state.
//
//     - SetRegistry() / SetFormatter() directly overwrite the current
//     Registry / Formatter in the snapshot and "pin" them. Once a layer
//     is pinned, wfx will stop rebuilding that layer automatically until
//     you call UnpinRegistry()/UnpinFormatter().
//
//     - SetAll(...) is the "hard reset" API. It lets a process replace
//     Builder, Config, Ext, Registry, Formatter in one shot. This is
//     mainly used by tests to get a clean deterministic state between
//     test cases.
//
//  3. Introspection:
//
//     ExtAs[T]() (T, bool)
//     Verify() error
//     // plus Registry().Entries(), etc.
//
// # Concurrency model
//
// Reads (Schema, Keys, Key, WireKey, Registry, Formatter) are wait-free:
// they load the current *state atomically and never take locks. The
// Registry and Formatter returned by that state must themselves be
// concurrency-safe for reads.
//
// Writes (SetConfig, SetBuilder, SetExt, SetRegistry, SetFormatter, etc.)
// take a short build mutex, assemble a brand-new state struct, and then
// publish it via an atomic pointer swap. This gives the calling binary
// a predictable "last write wins" behavior without forcing per-lookup
// locking.
//
// Schemas themselves follow a write-once/read-many lifecycle: declare and
// register during setup, read concurrently afterwards. Registration
// completing before concurrent reads is the caller's happens-before
// obligation; schema-registration ordering at startup suffices.
//
// # Pinning
//
// wfx supports the concept of "pinning" a layer:
//
//   - When you call SetRegistry(reg), that exact Registry becomes the
//     process-wide registry and is considered pinned. Further calls to
//     SetConfig() will not attempt to rebuild a new Registry until you
//     explicitly UnpinRegistry().
//
//   - When you call SetFormatter(kf), that Formatter is pinned and will
//     not be rebuilt automatically until UnpinFormatter().
//
// Pinning is there for advanced scenarios where you want full control
// over one layer while still letting other layers evolve. For example,
// you may lock a custom Formatter that implements a house naming style
// while still allowing Config changes to rebuild the Registry.
//
// # Scope
//
// wfx is intentionally small. It does not try to be a serializer, a
// router, or an ORM. It only solves one job:
//
//	"Given a resource type and its declared fields, describe which wire
//	 keys map to which model properties and how values are coerced."
//
// Everything else (documents, transport, instance storage, pagination,
// error payloads, persistence) belongs to higher layers.
package wfx
