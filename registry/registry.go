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

package registry

import (
	"errors"
	"fmt"
	"sync"

	"dirpx.dev/wfx/apis"
)

var (
	// ErrEmptyType is returned when an empty resource type name is provided.
	ErrEmptyType = errors.New("wfx(registry): empty resource type provided")
	// ErrEmptySchema is returned when a nil or empty schema is provided.
	ErrEmptySchema = errors.New("wfx(registry): empty schema provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a resource type with a different schema.
	ErrConflictingRegistration = errors.New("wfx(registry): conflicting schema registration")
	// ErrUnknownLinkedType indicates a relationship targeting a resource
	// type that is not registered.
	ErrUnknownLinkedType = errors.New("wfx(registry): relationship links to unregistered resource type")
)

// New constructs a Registry honoring cfg. Only VerifyLinkedTypes is used
// here (Naming is irrelevant to storage).
func New(cfg apis.Config) apis.Registry {
	return &registry{cfg: cfg}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// cfg controls eager linked-type verification.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps resource type name to apis.Schema.
	m sync.Map // map[string]apis.Schema
	// count tracks the number of registered resource types.
	count int
}

// Register associates a resource type with its bound schema.
// It is idempotent for an identical (type, schema) pair. The schema is
// copied on the way in so later caller-side mutation of the slice cannot
// change published metadata.
func (r *registry) Register(resourceType string, s apis.Schema) error {
	// Validate inputs early.
	if resourceType == "" {
		return ErrEmptyType
	}
	if len(s) == 0 {
		return ErrEmptySchema
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(resourceType); ok {
		if sameSchema(old.(apis.Schema), s) {
			return nil // idempotent re-registration
		}
		return ErrConflictingRegistration
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(resourceType); ok {
		if sameSchema(old.(apis.Schema), s) {
			return nil
		}
		return ErrConflictingRegistration
	}

	if r.cfg.VerifyLinkedTypes {
		if err := r.verifyLinkedLocked(resourceType, s); err != nil {
			return err
		}
	}

	cp := make(apis.Schema, len(s))
	copy(cp, s)
	r.m.Store(resourceType, cp)
	r.count++
	return nil
}

// Lookup returns the schema for a resource type if present. Callers must
// treat the returned schema as read-only.
func (r *registry) Lookup(resourceType string) (apis.Schema, bool) {
	if resourceType == "" {
		return nil, false
	}
	if v, ok := r.m.Load(resourceType); ok {
		return v.(apis.Schema), true
	}
	return nil, false
}

// Verify checks every relationship field across all registered schemas.
// It tolerates any registration order, including mutually-linked types,
// and reports all unresolved targets at once.
func (r *registry) Verify() error {
	var errs []error
	r.m.Range(func(key, value any) bool {
		resourceType := key.(string)
		for _, f := range value.(apis.Schema) {
			if f == nil || !f.Kind().IsRelationship() {
				continue
			}
			if _, ok := r.m.Load(f.LinkedType()); !ok {
				errs = append(errs, fmt.Errorf("%w: %s.%s -> %q",
					ErrUnknownLinkedType, resourceType, f.Name(), f.LinkedType()))
			}
		}
		return true
	})
	return errors.Join(errs...)
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			ResourceType: key.(string),
			Schema:       value.(apis.Schema),
		})
		return true
	})
	return entries
}

// Count returns the number of registered resource types.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered schemas.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = sync.Map{}
	r.count = 0
}

// verifyLinkedLocked performs the eager, order-sensitive check used when
// VerifyLinkedTypes is on. Self-references are always allowed.
func (r *registry) verifyLinkedLocked(resourceType string, s apis.Schema) error {
	for _, f := range s {
		if f == nil || !f.Kind().IsRelationship() {
			continue
		}
		lt := f.LinkedType()
		if lt == resourceType {
			continue
		}
		if _, ok := r.m.Load(lt); !ok {
			return fmt.Errorf("%w: %s.%s -> %q", ErrUnknownLinkedType, resourceType, f.Name(), lt)
		}
	}
	return nil
}

// sameSchema compares two schemas as name-keyed sets; binding order is
// map-iteration order and must not affect idempotency.
func sameSchema(a, b apis.Schema) bool {
	if len(a) != len(b) {
		return false
	}
	byName := make(map[string]apis.Field, len(a))
	for _, f := range a {
		if f == nil {
			return false
		}
		byName[f.Name()] = f
	}
	for _, f := range b {
		if f == nil {
			return false
		}
		other, ok := byName[f.Name()]
		if !ok || !sameField(other, f) {
			return false
		}
	}
	return true
}

// sameField compares fields by their observable metadata rather than by
// interface equality, so mixed Field implementations compare sanely.
func sameField(a, b apis.Field) bool {
	if a.Name() != b.Name() ||
		a.SerializedName() != b.SerializedName() ||
		a.IsReadOnly() != b.IsReadOnly() ||
		a.Kind() != b.Kind() ||
		a.DateFormat() != b.DateFormat() ||
		a.LinkedType() != b.LinkedType() {
		return false
	}
	au, bu := a.BaseURL(), b.BaseURL()
	switch {
	case au == nil && bu == nil:
		return true
	case au == nil || bu == nil:
		return false
	default:
		return au.String() == bu.String()
	}
}
