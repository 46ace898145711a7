// Copyright (c) 2025, the mqstatus authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mqops/mqstatus/pkg/errors"
)

func TestValidate_Defaults(t *testing.T) {
	opts := Default()
	assert.NoError(t, opts.Validate())
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"empty registry path", func(o *Options) { o.RegistryPath = "" }},
		{"empty service user", func(o *Options) { o.ServiceUser = "" }},
		{"service user with space", func(o *Options) { o.ServiceUser = "mq m" }},
		{"unknown log level", func(o *Options) { o.LogLevel = "loud" }},
		{"bin dir does not exist", func(o *Options) { o.BinDir = "/no/such/dir/mqstatus" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Default()
			tt.mutate(&opts)
			assert.Error(t, opts.Validate())
		})
	}
}

func TestValidate_LevelCaseInsensitive(t *testing.T) {
	opts := Default()
	opts.LogLevel = "  DEBUG "
	require.NoError(t, opts.Validate())
	assert.Equal(t, "debug", opts.LogLevel)
}

func TestToolPath_BinDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ToolDspmq)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))

	opts := Default()
	opts.BinDir = dir

	got, err := opts.ToolPath(ToolDspmq)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestToolPath_MissingIsFatalCategory(t *testing.T) {
	opts := Default()
	opts.BinDir = t.TempDir()

	_, err := opts.ToolPath(ToolRunmqsc)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeToolMissing, errors.Code(err))
	assert.Equal(t, errors.ExitMissingDependency, errors.ExitCode(err))
}

func TestToolPath_PathLookup(t *testing.T) {
	opts := Default()

	// Any binary guaranteed to exist on the test host works here.
	got, err := opts.ToolPath("sh")
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}
