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

package asciidoc

import "errors"

// Sentinel errors recorded in [Diagnostic.Err]. Wrap with fmt.Errorf("%w: ...")
// for line-specific detail; callers can still match with errors.Is.
var (
	// ErrUnmatchedDelimiter indicates a delimited block was opened but
	// was still open at the end of input.
	ErrUnmatchedDelimiter = errors.New("unmatched block delimiter")
	// ErrSectionLevelSkip indicates a section title skipped a level
	// relative to its nearest enclosing section (spec.md §3.2).
	ErrSectionLevelSkip = errors.New("section level skip")
	// ErrMalformedAttributeLine indicates an attribute-list or
	// attribute-entry line that could not be parsed and was discarded.
	ErrMalformedAttributeLine = errors.New("malformed attribute line")
	// ErrMalformedTable indicates a table whose cell count was not a
	// multiple of its declared column count.
	ErrMalformedTable = errors.New("malformed table")
	// ErrUnknownAttributeReference indicates a "{name}" reference to an
	// attribute that is not set, under the warn policy.
	ErrUnknownAttributeReference = errors.New("unknown attribute reference")
	// ErrUnknownXref indicates a "<<id>>" cross-reference to an id that
	// was never assigned to any block. Not fatal: the renderer falls back
	// to displaying the bare id (spec.md §4.5).
	ErrUnknownXref = errors.New("unknown cross-reference id")
	// ErrUnsupportedFeature indicates a recognized but unimplemented
	// AsciiDoc feature was encountered (conditionals, STEM, etc.) and
	// was ignored (spec.md §1, Non-goals).
	ErrUnsupportedFeature = errors.New("unsupported feature")
	// ErrColumnWidthIgnored indicates a "cols=" directive's individual
	// column widths were discarded, keeping only the column count.
	ErrColumnWidthIgnored = errors.New("column width directive ignored")
)
