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

package builder

import (
	"dirpx.dev/wfx/apis"
	"dirpx.dev/wfx/formatter"
	"dirpx.dev/wfx/registry"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry based on the provided
// configuration and pre-existing registry. If a pre-existing registry is
// provided, its schemas are migrated into the new registry.
//
// Migration replays entries in unspecified order. Under a config with
// eager linked-type verification a single pass could reject entries whose
// dependencies have not been replayed yet, so replay retries until a pass
// makes no progress; entries the new config genuinely rejects are dropped,
// matching the best-effort semantics of migration.
func (b *builder) BuildRegistry(cfg apis.Config, preg apis.Registry, _ any) apis.Registry {
	nreg := registry.New(cfg)
	if preg == nil {
		return nreg
	}

	pending := preg.Entries()
	for len(pending) > 0 {
		var failed []apis.Entry
		for _, e := range pending {
			if err := nreg.Register(e.ResourceType, e.Schema); err != nil {
				failed = append(failed, e)
			}
		}
		if len(failed) == len(pending) {
			break // no progress; remainder is rejected by the new config
		}
		pending = failed
	}
	return nreg
}

// BuildFormatter builds and returns the apis.KeyFormatter selected by the
// configuration's naming convention. Formatters are stateless, so nothing
// is reused from the previous instance.
func (b *builder) BuildFormatter(cfg apis.Config, _ apis.KeyFormatter, _ any) apis.KeyFormatter {
	return formatter.ForConvention(cfg.Naming)
}
