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

// Document is the root of a parsed AsciiDoc tree. See spec.md §3.1.
//
// A Document is created once per parse, mutated only while parsing, and
// immutable after the post-pass completes — it may then be shared freely
// across any number of concurrent rendering backends.
type Document struct {
	Header     *Header
	Attributes *AttributeStore
	Blocks     []*Block

	// Diagnostics accumulates non-fatal structural errors and warnings
	// encountered while parsing (see spec.md §7). Diagnostics never
	// prevents a Document from being returned.
	Diagnostics []Diagnostic

	// ids maps every explicitly-assigned block id to the block that
	// owns it, used by the post-pass to resolve cross-references.
	ids IDIndex
}

// Header holds the document title line, if any was present.
type Header struct {
	Title []*Inline
	Span  Span
}

// ChildCount returns the number of top-level blocks.
func (d *Document) ChildCount() int {
	if d == nil {
		return 0
	}
	return len(d.Blocks)
}

// Child returns the i'th top-level block, wrapped as a [Node].
func (d *Document) Child(i int) Node {
	return d.Blocks[i].AsNode()
}

// Walk traverses every top-level block of the document with [Walk].
func (d *Document) Walk(opts *WalkOptions) {
	for _, b := range d.Blocks {
		Walk(b.AsNode(), opts)
	}
}

// Block looks up a block by its explicit id, as collected by
// [IDIndex.Extract] after block parsing. It returns nil if no block has
// that id.
func (d *Document) Block(id string) *Block {
	if d == nil {
		return nil
	}
	return d.ids[id]
}
