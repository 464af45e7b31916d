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

package config_test

import (
	"testing"

	"dirpx.dev/wfx/config"
	"dirpx.dev/wfx/wxapi/naming"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.Naming != config.DefaultNaming {
		t.Fatalf("Naming = %v, want %v", got.Naming, config.DefaultNaming)
	}
	if got.DateFormat != config.DefaultDateFormat {
		t.Fatalf("DateFormat = %q, want %q", got.DateFormat, config.DefaultDateFormat)
	}
	if got.VerifyLinkedTypes != config.DefaultVerifyLinkedTypes {
		t.Fatalf("VerifyLinkedTypes = %v, want %v", got.VerifyLinkedTypes, config.DefaultVerifyLinkedTypes)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithNaming(t *testing.T) {
	c := config.NewConfig(config.WithNaming(naming.Dasherized))
	if c.Naming != naming.Dasherized {
		t.Fatalf("Naming = %v, want %v", c.Naming, naming.Dasherized)
	}

	c2 := config.NewConfig(config.WithNaming(naming.Underscored))
	if c2.Naming != naming.Underscored {
		t.Fatalf("Naming = %v, want %v", c2.Naming, naming.Underscored)
	}
}

func TestWithDateFormat(t *testing.T) {
	c := config.NewConfig(config.WithDateFormat("2006-01-02"))
	if c.DateFormat != "2006-01-02" {
		t.Fatalf("DateFormat = %q, want %q", c.DateFormat, "2006-01-02")
	}

	// Empty layout restores the built-in default.
	c2 := config.NewConfig(config.WithDateFormat(""))
	if c2.DateFormat != config.DefaultDateFormat {
		t.Fatalf("DateFormat = %q, want %q", c2.DateFormat, config.DefaultDateFormat)
	}
}

func TestWithVerifyLinkedTypes(t *testing.T) {
	c := config.NewConfig(config.WithVerifyLinkedTypes(true))
	if !c.VerifyLinkedTypes {
		t.Fatalf("VerifyLinkedTypes = %v, want true", c.VerifyLinkedTypes)
	}

	c2 := config.NewConfig(config.WithVerifyLinkedTypes(false))
	if c2.VerifyLinkedTypes {
		t.Fatalf("VerifyLinkedTypes = %v, want false", c2.VerifyLinkedTypes)
	}
}
