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
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"dirpx.dev/wfx/apis"
	"dirpx.dev/wfx/wxapi/naming"
)

// fileConfig is the YAML shape of a wfx configuration document:
//
//	naming: underscored
//	date_format: "2006-01-02"
//	verify_linked_types: true
//
// Absent keys keep their defaults.
type fileConfig struct {
	Naming            string `yaml:"naming"`
	DateFormat        string `yaml:"date_format"`
	VerifyLinkedTypes *bool  `yaml:"verify_linked_types"`
}

// FromYAML parses a configuration document. An unknown naming convention is
// a fatal configuration error: there is no valid fallback to format keys
// with.
func FromYAML(data []byte) (apis.Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return apis.Config{}, fmt.Errorf("wfx(config): parse yaml: %w", err)
	}

	cfg := DefaultConfig()

	if strings.TrimSpace(fc.Naming) != "" {
		c, err := naming.Parse(fc.Naming)
		if err != nil {
			return apis.Config{}, fmt.Errorf("wfx(config): %w", err)
		}
		cfg.Naming = c
	}
	if strings.TrimSpace(fc.DateFormat) != "" {
		cfg.DateFormat = fc.DateFormat
	}
	if fc.VerifyLinkedTypes != nil {
		cfg.VerifyLinkedTypes = *fc.VerifyLinkedTypes
	}

	return cfg, nil
}

// LoadFile reads and parses a YAML configuration file.
func LoadFile(path string) (apis.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return apis.Config{}, fmt.Errorf("wfx(config): read %s: %w", path, err)
	}
	return FromYAML(data)
}
