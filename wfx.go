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

package wfx

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/wfx/apis"
	"dirpx.dev/wfx/builder"
	"dirpx.dev/wfx/config"
	"dirpx.dev/wfx/field"
	"dirpx.dev/wfx/keymap"
)

// init initializes the global wfx state.
func init() {
	// Initialize state with default cfg, reg, and fmtr.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil, nil)
	s.fmtr = b.BuildFormatter(s.cfg, nil, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("wfx: builder returned nil registry")
	// ErrNilFormatter is returned when a builder returns a nil formatter.
	ErrNilFormatter = errors.New("wfx: builder returned nil formatter")
)

// Register binds the given field declarations under the current global
// configuration and registers the resulting schema under resourceType in
// the global registry. Date attributes without an explicit layout receive
// the configuration's DateFormat.
// This is a convenience wrapper around field.BindSchemaConfig and the
// global reg.
func Register(resourceType string, decls map[string]*field.Field) error {
	s := st.Load()
	schema, err := field.BindSchemaConfig(decls, s.cfg)
	if err != nil {
		return err
	}
	return s.reg.Register(resourceType, schema)
}

// RegisterResource registers a self-describing resource model: its schema
// is bound from DeclareFields and registered under its ResourceType.
func RegisterResource(d field.Declarer) error {
	if d == nil {
		return field.ErrNilField
	}
	return Register(d.ResourceType(), d.DeclareFields())
}

// Schema returns the bound schema registered for resourceType.
// This is a convenience wrapper around the global reg.
func Schema(resourceType string) (apis.Schema, bool) {
	return st.Load().reg.Lookup(resourceType)
}

// Keys returns the precomputed wire-key tables for resourceType under the
// currently published formatter. The tables are built per call; callers on
// hot paths should hold on to the result for the duration of a document.
func Keys(resourceType string) (keymap.Map, bool) {
	s := st.Load()
	schema, ok := s.reg.Lookup(resourceType)
	if !ok {
		return keymap.Map{}, false
	}
	return keymap.New(schema, s.fmtr), true
}

// Key formats the wire key for a single bound field using the currently
// published formatter.
func Key(f apis.Field) string {
	return st.Load().fmtr.FormatKey(f)
}

// WireKey resolves the wire key of one field of a registered resource type.
func WireKey(resourceType, fieldName string) (string, bool) {
	s := st.Load()
	schema, ok := s.reg.Lookup(resourceType)
	if !ok {
		return "", false
	}
	f, ok := schema.Lookup(fieldName)
	if !ok {
		return "", false
	}
	return s.fmtr.FormatKey(f), true
}

// Verify checks that every relationship across all registered schemas
// links to a registered resource type. Run it once after schema setup.
// This is a convenience wrapper around the global reg.
func Verify() error {
	return st.Load().reg.Verify()
}

// SetAll explicitly sets all global wfx state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, fmtr apis.KeyFormatter, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Registry
	nreg := reg
	npreg := false
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg, next)
	} else {
		npreg = true
	}

	// Formatter
	nfmtr := fmtr
	npfmt := false
	if nfmtr == nil {
		nfmtr = nbld.BuildFormatter(ncfg, old.fmtr, next)
	} else {
		npfmt = true
	}

	// Ensure non-nil reg and fmtr.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nfmtr == nil {
		panic(ErrNilFormatter)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  ncfg,
			ext:  next,
			reg:  nreg,
			fmtr: nfmtr,
			bld:  nbld,
			preg: npreg,
			pfmt: npfmt,
		},
	)
}

// Config returns the global wfx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global wfx configuration to cfg.
// It rebuilds the global reg and fmtr using the new configuration.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg and fmtr based on the new cfg and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(cfg, old.reg, old.ext)
	}
	nfmtr := old.fmtr
	if !old.pfmt {
		nfmtr = b.BuildFormatter(cfg, old.fmtr, old.ext)
	}

	// Ensure non-nil reg and fmtr.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nfmtr == nil {
		panic(ErrNilFormatter)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  cfg,
			ext:  old.ext,
			reg:  nreg,
			fmtr: nfmtr,
			bld:  b,
			preg: old.preg,
			pfmt: old.pfmt,
		},
	)
}

// Registry returns the global wfx reg.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets the global wfx reg to reg and pins it.
// This is a convenience wrapper around the global state.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  reg,
			fmtr: old.fmtr,
			bld:  old.bld,
			preg: true,
			pfmt: old.pfmt,
		},
	)
}

// Formatter returns the global wfx fmtr.
func Formatter() apis.KeyFormatter {
	return st.Load().fmtr
}

// SetFormatter sets the global wfx fmtr to kf and pins it.
// This is a convenience wrapper around the global state.
func SetFormatter(kf apis.KeyFormatter) {
	if kf == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			fmtr: kf,
			bld:  old.bld,
			preg: old.preg,
			pfmt: true,
		},
	)
}

// Builder returns the global wfx bld.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global wfx bld to b.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new reg and fmtr based on the new bld and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, old.ext)
	}
	nfmtr := old.fmtr
	if !old.pfmt {
		nfmtr = b.BuildFormatter(old.cfg, old.fmtr, old.ext)
	}

	// Ensure non-nil reg and fmtr.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nfmtr == nil {
		panic(ErrNilFormatter)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  nreg,
			fmtr: nfmtr,
			bld:  b,
			preg: old.preg,
			pfmt: old.pfmt,
		},
	)
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg and fmtr based on the new ext and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, ext)
	}
	nfmtr := old.fmtr
	if !old.pfmt {
		nfmtr = b.BuildFormatter(old.cfg, old.fmtr, ext)
	}

	// Ensure non-nil reg and fmtr.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nfmtr == nil {
		panic(ErrNilFormatter)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  ext,
			reg:  nreg,
			fmtr: nfmtr,
			bld:  b,
			preg: old.preg,
			pfmt: old.pfmt,
		},
	)
}

// ExtAs returns the global wfx extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global wfx reg is pinned (immutable).
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry makes the global wfx reg immutable.
func PinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			fmtr: old.fmtr,
			bld:  old.bld,
			preg: true,
			pfmt: old.pfmt,
		},
	)
}

// UnpinRegistry makes the global wfx reg mutable again.
func UnpinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			fmtr: old.fmtr,
			bld:  old.bld,
			preg: false,
			pfmt: old.pfmt,
		},
	)
}

// IsFormatterPinned returns whether the global wfx fmtr is pinned (immutable).
func IsFormatterPinned() bool {
	return st.Load().pfmt
}

// PinFormatter makes the global wfx fmtr immutable.
func PinFormatter() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			fmtr: old.fmtr,
			bld:  old.bld,
			preg: old.preg,
			pfmt: true,
		},
	)
}

// UnpinFormatter makes the global wfx fmtr mutable again.
func UnpinFormatter() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			fmtr: old.fmtr,
			bld:  old.bld,
			preg: old.preg,
			pfmt: false,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global wfx state.
var st atomic.Pointer[state]

// state is the global wfx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global wfx configuration.
	cfg apis.Config
	// ext is the global wfx extension configuration.
	ext any
	// reg is the global wfx reg.
	reg apis.Registry
	// fmtr is the global wfx fmtr.
	fmtr apis.KeyFormatter
	// bld is the global wfx bld.
	bld apis.Builder
	// preg indicates whether the reg is pinned (immutable).
	preg bool
	// pfmt indicates whether the fmtr is pinned (immutable).
	pfmt bool
}
