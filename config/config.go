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

package config

import (
	"dirpx.dev/wfx/apis"
	"dirpx.dev/wfx/field"
	"dirpx.dev/wfx/wxapi/naming"
)

const (
	// DefaultNaming represents the default for Naming.
	// Pass-through keeps wire keys identical to serialized names unless a
	// convention is chosen explicitly.
	DefaultNaming = naming.AsIs
	// DefaultDateFormat represents the default for DateFormat: ISO-8601
	// with fractional seconds and a zone offset.
	DefaultDateFormat = field.DefaultDateFormat
	// DefaultVerifyLinkedTypes represents the default for VerifyLinkedTypes.
	// Eager verification is order-sensitive, so it is opt-in.
	DefaultVerifyLinkedTypes = false
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Naming:            DefaultNaming,
		DateFormat:        DefaultDateFormat,
		VerifyLinkedTypes: DefaultVerifyLinkedTypes,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithNaming sets the Naming option.
func WithNaming(c naming.Convention) Option {
	return func(cfg *apis.Config) {
		cfg.Naming = c
	}
}

// WithDateFormat sets the DateFormat option. An empty layout restores the
// built-in default.
func WithDateFormat(layout string) Option {
	return func(cfg *apis.Config) {
		if layout == "" {
			layout = DefaultDateFormat
		}
		cfg.DateFormat = layout
	}
}

// WithVerifyLinkedTypes sets the VerifyLinkedTypes option.
func WithVerifyLinkedTypes(verify bool) Option {
	return func(cfg *apis.Config) {
		cfg.VerifyLinkedTypes = verify
	}
}
