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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/wfx/config"
	"dirpx.dev/wfx/wxapi/naming"
)

func TestFromYAML(t *testing.T) {
	cfg, err := config.FromYAML([]byte("naming: underscored\ndate_format: \"2006-01-02\"\nverify_linked_types: true\n"))
	require.NoError(t, err)

	assert.Equal(t, naming.Underscored, cfg.Naming)
	assert.Equal(t, "2006-01-02", cfg.DateFormat)
	assert.True(t, cfg.VerifyLinkedTypes)
}

func TestFromYAML_AbsentKeysKeepDefaults(t *testing.T) {
	cfg, err := config.FromYAML([]byte("naming: dasherized\n"))
	require.NoError(t, err)

	assert.Equal(t, naming.Dasherized, cfg.Naming)
	assert.Equal(t, config.DefaultDateFormat, cfg.DateFormat)
	assert.Equal(t, config.DefaultVerifyLinkedTypes, cfg.VerifyLinkedTypes)

	empty, err := config.FromYAML([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), empty)
}

func TestFromYAML_Errors(t *testing.T) {
	_, err := config.FromYAML([]byte("naming: [not, a, scalar"))
	assert.Error(t, err, "malformed yaml")

	_, err = config.FromYAML([]byte("naming: camelized\n"))
	assert.Error(t, err, "unknown convention")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wfx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("naming: underscored\n"), 0o600))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, naming.Underscored, cfg.Naming)

	_, err = config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
