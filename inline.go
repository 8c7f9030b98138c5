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

// Inline represents a run of content inside a block's principal text:
// plain text, styled spans, references, or a hard line break. See
// spec.md §3.3.
type Inline struct {
	kind InlineKind
	span Span

	// variant distinguishes sub-kinds that share the same shape:
	// for SpanKind, the style (strong, emphasis, monospace, mark,
	// superscript, subscript, footnote); for RefKind, the reference
	// kind (link, xref, image).
	variant string

	// text holds the literal value for TextKind nodes, already
	// substitution-processed (escapes resolved, attribute references
	// replaced). Passthrough text is also carried here with
	// substitutions disabled.
	text string

	// target holds the destination for RefKind nodes: a URL for link,
	// an id for xref, a path for image.
	target string

	children []*Inline
}

// NewText returns a new TextKind inline node.
func NewText(text string) *Inline {
	return &Inline{kind: TextKind, text: text}
}

// NewSpan returns a new SpanKind inline node with the given style variant
// and children.
func NewSpan(variant string, children ...*Inline) *Inline {
	return &Inline{kind: SpanKind, variant: variant, children: children}
}

// NewRef returns a new RefKind inline node (link, xref, or inline image)
// with the given target and display-text children.
func NewRef(variant, target string, children ...*Inline) *Inline {
	return &Inline{kind: RefKind, variant: variant, target: target, children: children}
}

// NewLineBreak returns a new LineBreakKind inline node.
func NewLineBreak() *Inline {
	return &Inline{kind: LineBreakKind}
}

// Kind returns the type of inline node, or zero if the node is nil.
func (inline *Inline) Kind() InlineKind {
	if inline == nil {
		return 0
	}
	return inline.kind
}

// Span returns the inline's source position, or an invalid span if the
// node is nil or was synthesized.
func (inline *Inline) Span() Span {
	if inline == nil {
		return NullSpan()
	}
	return inline.span
}

// Variant returns the sub-kind for [SpanKind] and [RefKind] nodes, or the
// empty string otherwise.
func (inline *Inline) Variant() string {
	if inline == nil {
		return ""
	}
	return inline.variant
}

// Text returns the literal text of a [TextKind] node, or the empty string
// for any other kind.
func (inline *Inline) Text() string {
	if inline == nil || inline.kind != TextKind {
		return ""
	}
	return inline.text
}

// Target returns the reference target of a [RefKind] node (a URL, xref id,
// or image path), or the empty string otherwise.
func (inline *Inline) Target() string {
	if inline == nil || inline.kind != RefKind {
		return ""
	}
	return inline.target
}

// Children returns the nested inline sequence of a [SpanKind] or [RefKind]
// node. Calling Children on nil returns a nil slice. An inline image
// (Variant() == "image") carries its alt text, unparsed, as a single
// TextKind child, and has no children when the alt text is empty.
func (inline *Inline) Children() []*Inline {
	if inline == nil {
		return nil
	}
	return inline.children
}

// ChildCount returns the number of children the node has.
// Calling ChildCount on nil returns 0.
func (inline *Inline) ChildCount() int {
	return len(inline.Children())
}

// Child returns the i'th child of the node, wrapped as a [Node].
func (inline *Inline) Child(i int) Node {
	return inline.children[i].AsNode()
}

// PlainText returns the concatenated text of the node and all of its
// descendants, ignoring markup — useful for computing alt text, titles,
// and xref fallback display text.
func (inline *Inline) PlainText() string {
	if inline == nil {
		return ""
	}
	if inline.kind == TextKind {
		return inline.text
	}
	var out []byte
	for _, c := range inline.children {
		out = append(out, c.PlainText()...)
	}
	return string(out)
}

// InlineKind is an enumeration of values returned by [*Inline.Kind].
type InlineKind uint16

const (
	// TextKind is a plain run with a literal string value.
	TextKind InlineKind = 1 + iota
	// SpanKind is a styled run; see [*Inline.Variant] for the style.
	SpanKind
	// RefKind is a link, cross-reference, or inline image;
	// see [*Inline.Variant] for which.
	RefKind
	// LineBreakKind is a hard line break.
	LineBreakKind
)

// Span style variants, returned by [*Inline.Variant] for [SpanKind] nodes.
const (
	StrongVariant      = "strong"
	EmphasisVariant    = "emphasis"
	MonospaceVariant   = "monospace"
	MarkVariant        = "mark"
	SuperscriptVariant = "superscript"
	SubscriptVariant   = "subscript"
	FootnoteVariant    = "footnote"
)

// Ref variants, returned by [*Inline.Variant] for [RefKind] nodes.
const (
	LinkVariant  = "link"
	XrefVariant  = "xref"
	ImageVariant = "image"
)
