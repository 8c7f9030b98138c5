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

//go:generate stringer -type=BlockKind,InlineKind -output=kind_string.go

package asciidoc

import "strconv"

// A Block is a structural element of an AsciiDoc document: a paragraph,
// a section, a list, a table, and so on. See spec.md §3.2.
//
// Which of blockChildren and inlines is populated depends on Kind: leaf
// blocks and table cells carry inlines, container blocks carry
// blockChildren, lists carry their items (ListItemKind/DListItemKind
// blocks) as blockChildren, and tables carry blockChildren of
// TableCellKind. A list item may carry both: its principal inlines and
// the blocks attached to it by continuations.
type Block struct {
	kind BlockKind
	span Span

	variant string // admonition kind, break kind, or ordered/unordered for lists
	level   int    // section level, 1-5

	meta Metadata

	blockChildren []*Block
	inlines       []*Inline

	// target holds the image path for ImageKind blocks.
	target string

	// terms holds the description-list term inlines for a DListItemKind block.
	terms []*Inline

	// cols is the declared column count for TableKind blocks.
	cols int
}

// Kind returns the block's kind, or zero if the block is nil.
func (b *Block) Kind() BlockKind {
	if b == nil {
		return 0
	}
	return b.kind
}

// Span returns the block's source position.
func (b *Block) Span() Span {
	if b == nil {
		return NullSpan()
	}
	return b.span
}

// Variant returns the sub-kind of the block:
//   - for AdmonitionKind, one of the Admonition* constants;
//   - for BreakKind, one of the Break* constants;
//   - for ListKind, OrderedVariant or UnorderedVariant.
func (b *Block) Variant() string {
	if b == nil {
		return ""
	}
	return b.variant
}

// Level returns the 1-based section nesting level for a SectionKind block,
// or zero otherwise.
func (b *Block) Level() int {
	if b == nil || b.kind != SectionKind {
		return 0
	}
	return b.level
}

// Metadata returns the block's roles/attributes/options/id/title/caption.
func (b *Block) Metadata() *Metadata {
	if b == nil {
		return &Metadata{}
	}
	return &b.meta
}

// Inlines returns the principal text of a leaf block.
// Calling Inlines on nil returns a nil slice.
func (b *Block) Inlines() []*Inline {
	if b == nil {
		return nil
	}
	return b.inlines
}

// Blocks returns the child blocks of a container, list-item, or table
// block. For TableKind, these are flat TableCellKind entries (see Cols).
// Calling Blocks on nil returns a nil slice.
func (b *Block) Blocks() []*Block {
	if b == nil {
		return nil
	}
	return b.blockChildren
}

// Target returns the image path for an ImageKind block, or the empty
// string otherwise.
func (b *Block) Target() string {
	if b == nil || b.kind != ImageKind {
		return ""
	}
	return b.target
}

// Terms returns the term inlines of a DListItemKind block, or nil otherwise.
func (b *Block) Terms() []*Inline {
	if b == nil || b.kind != DListItemKind {
		return nil
	}
	return b.terms
}

// Cols returns the declared column count of a TableKind block.
func (b *Block) Cols() int {
	if b == nil || b.kind != TableKind {
		return 0
	}
	return b.cols
}

// ChildCount returns the number of Node children the block has, preferring
// block children over inline children: a list item that has both
// principal inlines and continuation blocks reports only its blocks.
func (b *Block) ChildCount() int {
	switch {
	case b == nil:
		return 0
	case len(b.blockChildren) > 0:
		return len(b.blockChildren)
	default:
		return len(b.inlines)
	}
}

// Child returns the i'th Node child of the block.
func (b *Block) Child(i int) Node {
	if len(b.blockChildren) > 0 {
		return b.blockChildren[i].AsNode()
	}
	return b.inlines[i].AsNode()
}

func (b *Block) lastBlockChild() *Block {
	if len(b.blockChildren) == 0 {
		return nil
	}
	return b.blockChildren[len(b.blockChildren)-1]
}

// BlockKind is an enumeration of values returned by [*Block.Kind].
type BlockKind uint16

const (
	// ParagraphKind is a block of running text.
	ParagraphKind BlockKind = 1 + iota
	// ListingKind is a preformatted source-code-like block
	// (delimited by "----" or a source-styled paragraph).
	ListingKind
	// LiteralKind is a preformatted block (delimited by "....").
	LiteralKind
	// VerseKind is a leaf verse block (a quote-styled "____" block
	// with the verse style, preserving line breaks).
	VerseKind
	// PassKind is a raw passthrough block (delimited by "++++");
	// its inlines have substitutions disabled.
	PassKind
	// CommentKind is a block comment, discarded before rendering.
	CommentKind
	// SectionKind is a heading-introduced container; see [*Block.Level].
	SectionKind
	// OpenKind is a generic, role-driven container delimited by "--".
	OpenKind
	// ExampleKind is a container delimited by "====".
	ExampleKind
	// QuoteKind is a container block quote delimited by "____".
	QuoteKind
	// SidebarKind is a container delimited by "****".
	SidebarKind
	// AdmonitionKind is a flagged container or paragraph;
	// see [*Block.Variant] for note/tip/warning/caution/important.
	AdmonitionKind
	// ListKind is an ordered or unordered list;
	// see [*Block.Variant]. Its Blocks are ListItemKind.
	ListKind
	// DListKind is a description list. Its Blocks are DListItemKind.
	DListKind
	// ListItemKind is an item of a ListKind list.
	ListItemKind
	// DListItemKind is an item of a DListKind list;
	// see [*Block.Terms] for the term(s) and [*Block.Inlines]/[*Block.Blocks]
	// for the principal/nested body.
	DListItemKind
	// TableKind is a table; see [*Block.Cols]. Its Blocks are
	// TableCellKind entries in row-major order.
	TableKind
	// TableCellKind is a single table cell; its content is carried as
	// inlines (see [*Block.Inlines]).
	TableCellKind
	// ImageKind is a block image; see [*Block.Target].
	ImageKind
	// BreakKind is a page or thematic break; see [*Block.Variant].
	BreakKind

	documentKind
)

// IsLeaf reports whether blocks of this kind carry inlines rather than
// child blocks.
func (k BlockKind) IsLeaf() bool {
	switch k {
	case ParagraphKind, ListingKind, LiteralKind, VerseKind, PassKind, CommentKind:
		return true
	default:
		return false
	}
}

// IsContainer reports whether blocks of this kind carry child blocks.
func (k BlockKind) IsContainer() bool {
	switch k {
	case SectionKind, OpenKind, ExampleKind, QuoteKind, SidebarKind, AdmonitionKind,
		ListItemKind, TableKind:
		return true
	default:
		return false
	}
}

// Admonition variants, returned by [*Block.Variant] for AdmonitionKind blocks.
const (
	AdmonitionNote     = "note"
	AdmonitionTip      = "tip"
	AdmonitionWarning  = "warning"
	AdmonitionCaution  = "caution"
	AdmonitionImportant = "important"
)

// List variants, returned by [*Block.Variant] for ListKind blocks.
const (
	OrderedVariant   = "ordered"
	UnorderedVariant = "unordered"
)

// Break variants, returned by [*Block.Variant] for BreakKind blocks.
const (
	PageBreak      = "page"
	ThematicBreak  = "thematic"
)

// Metadata holds the attachable attributes of a block: roles, named and
// positional attributes, options, id, title, and caption. See spec.md §3.2.
type Metadata struct {
	Roles      []string
	Attributes map[string]string
	Options    map[string]bool
	ID         string
	Title      []*Inline
	Caption    []*Inline
}

// Attribute returns the named attribute's value and whether it was set.
func (m *Metadata) Attribute(name string) (string, bool) {
	if m == nil || m.Attributes == nil {
		return "", false
	}
	v, ok := m.Attributes[name]
	return v, ok
}

// Positional returns the n'th (1-based) positional attribute's value and
// whether it was set. Positional attributes are stored under the key
// "positional_N".
func (m *Metadata) Positional(n int) (string, bool) {
	return m.Attribute(positionalKey(n))
}

// HasOption reports whether the given option token was set via an
// "opts=" attribute or a "%"-prefixed shorthand.
func (m *Metadata) HasOption(name string) bool {
	if m == nil {
		return false
	}
	return m.Options[name]
}

func positionalKey(n int) string {
	return "positional_" + strconv.Itoa(n)
}
