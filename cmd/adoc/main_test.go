// Copyright 2024 The Go AsciiDoc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"testing"

	charmlog "charm.land/log/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunHTMLBook(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.adoc", []byte("= T\n\nhello *world*\n"), 0o644))

	cfg := &config{backend: "htmlbook", outFile: "out.html"}
	err := run(fs, charmlog.New(os.Stderr), cfg, "in.adoc")
	require.NoError(t, err)

	got, err := afero.ReadFile(fs, "out.html")
	require.NoError(t, err)
	assert.Contains(t, string(got), "<h1>T</h1>")
	assert.Contains(t, string(got), "<strong>world</strong>")
}

func TestRunJSON(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.adoc", []byte("NOTE: be careful\n"), 0o644))

	cfg := &config{backend: "json", outFile: "out.json"}
	err := run(fs, charmlog.New(os.Stderr), cfg, "in.adoc")
	require.NoError(t, err)

	got, err := afero.ReadFile(fs, "out.json")
	require.NoError(t, err)
	assert.Contains(t, string(got), `"name": "admonition"`)
}

func TestRunUnknownBackend(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.adoc", []byte("text"), 0o644))

	cfg := &config{backend: "pdf", outFile: "-"}
	err := run(fs, charmlog.New(os.Stderr), cfg, "in.adoc")
	require.ErrorIs(t, err, ErrUnknownBackend)
}

func TestRunMissingFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	cfg := &config{backend: "htmlbook", outFile: "-"}
	err := run(fs, charmlog.New(os.Stderr), cfg, "missing.adoc")
	require.ErrorIs(t, err, ErrReadInput)
}
