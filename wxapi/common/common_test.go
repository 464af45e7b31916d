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

package common_test

import (
	"testing"

	"dirpx.dev/wfx/field"
	"dirpx.dev/wfx/wxapi/common"
)

// post is a resource model implementing the full contract surface: it is a
// Typer (and thereby a field.Declarer), an Identifier, and a Describer.
type post struct {
	ID string
}

func (post) ResourceType() string { return "posts" }

func (p post) ResourceID() string { return p.ID }

func (post) ResourceDescription() string { return "a published blog post" }

func (post) SchemaVersion() string { return "v1" }

func (post) DeclareFields() map[string]*field.Field {
	return map[string]*field.Field{
		"title": field.Attribute(),
	}
}

var (
	_ common.Typer      = post{}
	_ common.Identifier = post{}
	_ common.Describer  = post{}
	_ field.Declarer    = post{}
)

// TestIdentifierPair checks that the (ResourceType, ResourceID) pair is
// stable per instance and that an empty ID reads as "no ID yet".
func TestIdentifierPair(t *testing.T) {
	var i common.Identifier = post{ID: "42"}

	if got := i.ResourceType(); got != "posts" {
		t.Fatalf("ResourceType = %q, want %q", got, "posts")
	}
	if got := i.ResourceID(); got != "42" {
		t.Fatalf("ResourceID = %q, want %q", got, "42")
	}
	if i.ResourceID() != i.ResourceID() {
		t.Fatal("ResourceID not deterministic across calls")
	}

	var unsaved common.Identifier = post{}
	if got := unsaved.ResourceID(); got != "" {
		t.Fatalf("ResourceID of unsaved instance = %q, want empty", got)
	}
}

// TestDescriberMetadata checks that describer metadata is type-level:
// identical across instances regardless of instance state.
func TestDescriberMetadata(t *testing.T) {
	var a common.Describer = post{ID: "1"}
	var b common.Describer = post{ID: "2"}

	if a.ResourceDescription() != b.ResourceDescription() {
		t.Fatal("ResourceDescription varies across instances")
	}
	if a.SchemaVersion() != b.SchemaVersion() {
		t.Fatal("SchemaVersion varies across instances")
	}
	if a.SchemaVersion() == "" {
		t.Fatal("SchemaVersion = empty, want a version label")
	}
}

// TestContractsComposeWithBinder checks that a model carrying the full
// contract surface still binds as a plain Declarer.
func TestContractsComposeWithBinder(t *testing.T) {
	var d field.Declarer = post{ID: "42"}

	s, err := field.BindSchema(d.DeclareFields())
	if err != nil {
		t.Fatalf("BindSchema: %v", err)
	}
	if _, ok := s.Lookup("title"); !ok {
		t.Fatal("bound schema missing declared field")
	}
}
