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

import (
	"testing"

	"go.adoc.dev/asciidoc/internal/escape"
)

func TestParseDocumentTitleAndStrong(t *testing.T) {
	doc := Parse([]byte("= T\n\nhello *world*"))

	if got := doc.Header.Title[0].Text(); got != "T" {
		t.Fatalf("header title = %q; want %q", got, "T")
	}
	if len(doc.Blocks) != 1 {
		t.Fatalf("len(doc.Blocks) = %d; want 1", len(doc.Blocks))
	}
	p := doc.Blocks[0]
	if p.Kind() != ParagraphKind {
		t.Fatalf("Blocks[0].Kind() = %v; want ParagraphKind", p.Kind())
	}
	in := p.Inlines()
	if len(in) != 2 {
		t.Fatalf("len(inlines) = %d; want 2", len(in))
	}
	if in[0].Kind() != TextKind || in[0].Text() != "hello " {
		t.Errorf("inlines[0] = %v %q; want text %q", in[0].Kind(), in[0].Text(), "hello ")
	}
	if in[1].Kind() != SpanKind || in[1].Variant() != StrongVariant {
		t.Fatalf("inlines[1] = %v/%v; want span/strong", in[1].Kind(), in[1].Variant())
	}
	if got := in[1].PlainText(); got != "world" {
		t.Errorf("inlines[1].PlainText() = %q; want %q", got, "world")
	}
}

func TestParseListContinuationOpenBlock(t *testing.T) {
	doc := Parse([]byte("* a\n* b\n+\n--\nmore\n--\n"))

	if len(doc.Blocks) != 1 {
		t.Fatalf("len(doc.Blocks) = %d; want 1", len(doc.Blocks))
	}
	list := doc.Blocks[0]
	if list.Kind() != ListKind || list.Variant() != UnorderedVariant {
		t.Fatalf("Blocks[0] = %v/%v; want list/unordered", list.Kind(), list.Variant())
	}
	items := list.Blocks()
	if len(items) != 2 {
		t.Fatalf("len(items) = %d; want 2", len(items))
	}
	second := items[1]
	if second.Kind() != ListItemKind {
		t.Fatalf("items[1].Kind() = %v; want ListItemKind", second.Kind())
	}
	children := second.Blocks()
	if len(children) != 1 {
		t.Fatalf("len(items[1].Blocks()) = %d; want 1", len(children))
	}
	open := children[0]
	if open.Kind() != OpenKind {
		t.Fatalf("items[1].Blocks()[0].Kind() = %v; want OpenKind", open.Kind())
	}
	inner := open.Blocks()
	if len(inner) != 1 || inner[0].Kind() != ParagraphKind {
		t.Fatalf("open block children = %v; want one paragraph", inner)
	}
	if got := inner[0].Inlines()[0].Text(); got != "more" {
		t.Errorf("nested paragraph text = %q; want %q", got, "more")
	}
}

// TestParseListWithoutContinuationDoesNotNestFollowingParagraph exercises
// spec.md §3.2's list-item invariant: material following a list item with
// no "+" continuation ends the list instead of nesting into the last item.
func TestParseListWithoutContinuationDoesNotNestFollowingParagraph(t *testing.T) {
	doc := Parse([]byte("* a\n* b\n\nNext paragraph."))

	if len(doc.Blocks) != 2 {
		t.Fatalf("len(doc.Blocks) = %d; want 2", len(doc.Blocks))
	}
	list := doc.Blocks[0]
	if list.Kind() != ListKind {
		t.Fatalf("Blocks[0].Kind() = %v; want ListKind", list.Kind())
	}
	items := list.Blocks()
	if len(items) != 2 {
		t.Fatalf("len(items) = %d; want 2", len(items))
	}
	for i, item := range items {
		if children := item.Blocks(); len(children) != 0 {
			t.Errorf("items[%d] has %d nested blocks; want 0", i, len(children))
		}
	}
	para := doc.Blocks[1]
	if para.Kind() != ParagraphKind {
		t.Fatalf("Blocks[1].Kind() = %v; want ParagraphKind", para.Kind())
	}
	if got := para.Inlines()[0].Text(); got != "Next paragraph." {
		t.Errorf("Blocks[1] text = %q; want %q", got, "Next paragraph.")
	}
}

// TestParseDListAfterListClosesList exercises spec.md §8's invariant that
// every direct child of a list has the matching item kind: a description
// list term following an open unordered/ordered list must close that list
// rather than nest a dlistItem inside it.
func TestParseDListAfterListClosesList(t *testing.T) {
	doc := Parse([]byte("* a\n* b\n\nterm:: body"))

	if len(doc.Blocks) != 2 {
		t.Fatalf("len(doc.Blocks) = %d; want 2", len(doc.Blocks))
	}
	list := doc.Blocks[0]
	if list.Kind() != ListKind {
		t.Fatalf("Blocks[0].Kind() = %v; want ListKind", list.Kind())
	}
	for i, item := range list.Blocks() {
		if item.Kind() != ListItemKind {
			t.Errorf("list item[%d].Kind() = %v; want ListItemKind", i, item.Kind())
		}
	}
	dlist := doc.Blocks[1]
	if dlist.Kind() != DListKind {
		t.Fatalf("Blocks[1].Kind() = %v; want DListKind", dlist.Kind())
	}
	items := dlist.Blocks()
	if len(items) != 1 || items[0].Kind() != DListItemKind {
		t.Fatalf("dlist children = %v; want one DListItemKind", items)
	}
}

func TestParseAttributeSubstitution(t *testing.T) {
	doc := Parse([]byte(":x: Y\n\nHello {x}!"))

	if len(doc.Blocks) != 1 {
		t.Fatalf("len(doc.Blocks) = %d; want 1", len(doc.Blocks))
	}
	in := doc.Blocks[0].Inlines()
	if len(in) != 1 || in[0].Text() != "Hello Y!" {
		t.Fatalf("inlines = %+v; want single text %q", in, "Hello Y!")
	}
}

func TestParseQuoteWithAttribution(t *testing.T) {
	doc := Parse([]byte("[quote, Alice]\n____\nHi\n____"))

	if len(doc.Blocks) != 1 {
		t.Fatalf("len(doc.Blocks) = %d; want 1", len(doc.Blocks))
	}
	q := doc.Blocks[0]
	if q.Kind() != QuoteKind {
		t.Fatalf("Blocks[0].Kind() = %v; want QuoteKind", q.Kind())
	}
	if v, ok := q.Metadata().Attribute("attribution"); !ok || v != "Alice" {
		t.Errorf("attribution attribute = %q, %v; want %q, true", v, ok, "Alice")
	}
	children := q.Blocks()
	if len(children) != 1 || children[0].Kind() != ParagraphKind {
		t.Fatalf("quote children = %v; want one paragraph", children)
	}
	if got := children[0].Inlines()[0].Text(); got != "Hi" {
		t.Errorf("quote paragraph text = %q; want %q", got, "Hi")
	}
}

func TestParseTableWithCols(t *testing.T) {
	doc := Parse([]byte(`[cols="1,1"]
|===
|A |B
|C |D
|===`))

	if len(doc.Blocks) != 1 {
		t.Fatalf("len(doc.Blocks) = %d; want 1", len(doc.Blocks))
	}
	table := doc.Blocks[0]
	if table.Kind() != TableKind {
		t.Fatalf("Blocks[0].Kind() = %v; want TableKind", table.Kind())
	}
	if table.Cols() != 2 {
		t.Fatalf("table.Cols() = %d; want 2", table.Cols())
	}
	cells := table.Blocks()
	if len(cells) != 4 {
		t.Fatalf("len(cells) = %d; want 4", len(cells))
	}
	want := []string{"A", "B", "C", "D"}
	for i, cell := range cells {
		if cell.Kind() != TableCellKind {
			t.Errorf("cells[%d].Kind() = %v; want TableCellKind", i, cell.Kind())
		}
		if got := cell.Inlines()[0].Text(); got != want[i] {
			t.Errorf("cells[%d] text = %q; want %q", i, got, want[i])
		}
	}
}

func TestParseAdmonition(t *testing.T) {
	doc := Parse([]byte("NOTE: be careful"))

	if len(doc.Blocks) != 1 {
		t.Fatalf("len(doc.Blocks) = %d; want 1", len(doc.Blocks))
	}
	adm := doc.Blocks[0]
	if adm.Kind() != AdmonitionKind || adm.Variant() != AdmonitionNote {
		t.Fatalf("Blocks[0] = %v/%v; want admonition/note", adm.Kind(), adm.Variant())
	}
	if got := adm.Inlines()[0].Text(); got != "be careful" {
		t.Errorf("admonition text = %q; want %q", got, "be careful")
	}
}

func TestParseEmptyInput(t *testing.T) {
	doc := Parse([]byte("\n"))
	if doc.Header != nil {
		t.Errorf("Header = %+v; want nil", doc.Header)
	}
	if len(doc.Blocks) != 0 {
		t.Errorf("len(doc.Blocks) = %d; want 0", len(doc.Blocks))
	}
}

func TestParseSectionLevelSkipRecovers(t *testing.T) {
	doc := Parse([]byte("= T\n\n==== Deep\n\ntext"))

	if len(doc.Blocks) != 1 {
		t.Fatalf("len(doc.Blocks) = %d; want 1", len(doc.Blocks))
	}
	sec := doc.Blocks[0]
	if sec.Kind() != SectionKind || sec.Level() != 3 {
		t.Fatalf("Blocks[0] = %v level %d; want section level 3", sec.Kind(), sec.Level())
	}
	foundSkip := false
	for _, d := range doc.Diagnostics {
		if d.Err == ErrSectionLevelSkip {
			foundSkip = true
		}
	}
	if !foundSkip {
		t.Errorf("diagnostics = %v; want an ErrSectionLevelSkip entry", doc.Diagnostics)
	}
}

func TestParseUnterminatedStrongIsLiteral(t *testing.T) {
	doc := Parse([]byte("*strong"))
	in := doc.Blocks[0].Inlines()
	if len(in) != 1 || in[0].Kind() != TextKind || in[0].Text() != "*strong" {
		t.Fatalf("inlines = %+v; want single literal text %q", in, "*strong")
	}
}

func TestParseUnsetAttributeReferenceIsLiteral(t *testing.T) {
	doc := Parse([]byte("Hello {nope}!"))
	in := doc.Blocks[0].Inlines()
	if len(in) != 1 || in[0].Text() != "Hello {nope}!" {
		t.Fatalf("inlines = %+v; want literal %q", in, "Hello {nope}!")
	}
}

func TestParseEscapedMarkupChar(t *testing.T) {
	for _, c := range escape.MarkupChars {
		src := []byte{'\\', byte(c)}
		doc := Parse(src)
		in := doc.Blocks[0].Inlines()
		if len(in) != 1 || in[0].Kind() != TextKind || in[0].Text() != string(c) {
			t.Errorf("Parse(%q) inlines = %+v; want single text %q", src, in, string(c))
		}
	}
}

func TestParseThematicAndPageBreak(t *testing.T) {
	doc := Parse([]byte("para one\n\n'''\n\npara two\n\n<<<\n\npara three"))
	if len(doc.Blocks) != 5 {
		t.Fatalf("len(doc.Blocks) = %d; want 5", len(doc.Blocks))
	}
	if doc.Blocks[1].Kind() != BreakKind || doc.Blocks[1].Variant() != ThematicBreak {
		t.Errorf("Blocks[1] = %v/%v; want break/thematic", doc.Blocks[1].Kind(), doc.Blocks[1].Variant())
	}
	if doc.Blocks[3].Kind() != BreakKind || doc.Blocks[3].Variant() != PageBreak {
		t.Errorf("Blocks[3] = %v/%v; want break/page", doc.Blocks[3].Kind(), doc.Blocks[3].Variant())
	}
}

func TestParseUnknownXrefWarns(t *testing.T) {
	doc := Parse([]byte("see <<missing>>"))
	found := false
	for _, d := range doc.Diagnostics {
		if d.Err == ErrUnknownXref {
			found = true
		}
	}
	if !found {
		t.Errorf("diagnostics = %v; want an ErrUnknownXref entry", doc.Diagnostics)
	}
}

func TestParseKnownXrefDoesNotWarn(t *testing.T) {
	doc := Parse([]byte("[[target]]\nSome text.\n\nsee <<target>>"))
	for _, d := range doc.Diagnostics {
		if d.Err == ErrUnknownXref {
			t.Errorf("unexpected ErrUnknownXref diagnostic: %v", d)
		}
	}
}
