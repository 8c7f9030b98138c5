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

// ReferenceMatcher reports whether a normalized reference name is known.
// AttributeStore and IDIndex both implement it, so inline substitution and
// cross-reference resolution share one narrow lookup shape.
type ReferenceMatcher interface {
	MatchReference(name string) bool
}

// IDIndex is a side table mapping explicit block ids to the blocks that
// own them. Cross-references are resolved through this table rather than
// by holding pointers between nodes, keeping the document a tree
// (spec.md §9).
type IDIndex map[string]*Block

// MatchReference reports whether id names a known block.
func (idx IDIndex) MatchReference(id string) bool {
	_, ok := idx[id]
	return ok
}

// Extract walks blocks (recursively, depth-first) and adds every
// explicitly-assigned id it finds to the index. In case of conflicting
// duplicate ids, Extract keeps the first occurrence in source order.
func (idx IDIndex) Extract(blocks []*Block) {
	for _, b := range blocks {
		if id := b.Metadata().ID; id != "" {
			if _, exists := idx[id]; !exists {
				idx[id] = b
			}
		}
		if len(b.blockChildren) > 0 {
			idx.Extract(b.blockChildren)
		}
	}
}
