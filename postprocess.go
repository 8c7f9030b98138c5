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

// postProcess runs the single tree walk described in spec.md §4.5. List
// continuations are already attached to their owning item by the block
// parser, and explicit ids already collected by [IDIndex.Extract], so
// this pass's remaining job is cross-reference validation: an xref to an
// id that was never assigned is not an error (spec.md §4.5), but is worth
// a diagnostic so an author notices a typo before the renderer silently
// falls back to displaying the bare id.
func postProcess(doc *Document) {
	doc.Walk(&WalkOptions{
		Pre: func(c *Cursor) bool {
			in := c.Node().Inline()
			if in == nil || in.Kind() != RefKind || in.Variant() != XrefVariant {
				return true
			}
			if doc.Block(in.Target()) == nil {
				doc.Diagnostics = append(doc.Diagnostics, newWarning(in.Span().Start.Line, ErrUnknownXref))
			}
			return true
		},
	})
}
