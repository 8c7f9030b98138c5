// Copyright 2023 Ross Light
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

import "strconv"

// Position is a 1-based line/column pair in the original source,
// used for diagnostics (see [Diagnostic]).
type Position struct {
	Line   int
	Column int
}

// IsValid reports whether the position refers to an actual location.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String returns "line:column", or "-" for an invalid position.
func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Span is a half-open range of source positions, start inclusive and
// end exclusive. A zero Span is invalid; use [NullSpan] to construct one
// explicitly.
type Span struct {
	Start Position
	End   Position
}

// NullSpan returns an invalid span, used as the zero value for nodes that
// were synthesized rather than read from source (e.g. an elided empty
// block, or a post-pass-inserted node).
func NullSpan() Span {
	return Span{}
}

// IsValid reports whether the span's Start position is valid.
func (s Span) IsValid() bool {
	return s.Start.IsValid()
}
