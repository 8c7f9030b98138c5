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

// Package docx is the docx backend named in the CLI's --backend flag
// surface. It is unimplemented: the corpus this module was grounded on
// carries no OOXML writer dependency to build a real one on top of.
package docx

import (
	"errors"
	"io"

	"go.adoc.dev/asciidoc"
)

// ErrUnsupportedBackend is returned by [Render]; the docx backend accepts
// the flag but cannot produce output.
var ErrUnsupportedBackend = errors.New("docx backend not implemented")

// Render always fails with [ErrUnsupportedBackend].
func Render(_ io.Writer, _ *asciidoc.Document) error {
	return ErrUnsupportedBackend
}
