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

// Package html renders a parsed AsciiDoc document to htmlbook, the
// documentation-oriented HTML dialect used as the default backend output
// (spec.md §6.4, GLOSSARY).
package html

import (
	"fmt"
	"io"
	"strings"

	"go4.org/bytereplacer"
	"golang.org/x/net/html/atom"

	"go.adoc.dev/asciidoc"
)

// htmlEscaper escapes the five characters that matter in HTML text and
// attribute-value context, the same fixed-alphabet substitution the
// teacher's internal/normhtml package performs with go4.org/bytereplacer.
var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	`'`, "&#39;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

func escapeHTML(s string) string {
	return string(htmlEscaper.Replace([]byte(s)))
}

// blockTags maps a Block kind to the wrapping htmlbook
// element, interned through golang.org/x/net/html/atom the way the
// upstream HTML renderer interns its own element names.
var blockTags = map[asciidoc.BlockKind]atom.Atom{
	asciidoc.ParagraphKind:    atom.P,
	asciidoc.ListingKind:      atom.Pre,
	asciidoc.LiteralKind:      atom.Pre,
	asciidoc.ExampleKind:      atom.Div,
	asciidoc.OpenKind:         atom.Div,
	asciidoc.QuoteKind:        atom.Blockquote,
	asciidoc.SidebarKind:      atom.Aside,
	asciidoc.AdmonitionKind:   atom.Div,
	asciidoc.TableKind:        atom.Table,
	asciidoc.TableCellKind:    atom.Td,
}

// Renderer converts a fully parsed [asciidoc.Document] into htmlbook.
// It carries no state between calls to [*Renderer.Render] other than its
// configuration, matching the teacher's stateless-per-call HTMLRenderer.
type Renderer struct {
	// SectionHeadingOffset shifts rendered section levels, e.g. to embed
	// a document inside a page that already has its own <h1>.
	SectionHeadingOffset int
}

// Render writes doc as htmlbook to w.
func (r *Renderer) Render(w io.Writer, doc *asciidoc.Document) error {
	var buf []byte
	buf = r.appendDocument(buf, doc)
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("render asciidoc to html: %w", err)
	}
	return nil
}

func (r *Renderer) appendDocument(dst []byte, doc *asciidoc.Document) []byte {
	if doc.Header != nil && len(doc.Header.Title) > 0 {
		dst = append(dst, "<h1>"...)
		dst = r.appendInlines(dst, doc.Header.Title)
		dst = append(dst, "</h1>\n"...)
	}
	for _, b := range doc.Blocks {
		dst = r.appendBlock(dst, b)
		dst = append(dst, '\n')
	}
	return dst
}

func (r *Renderer) appendBlock(dst []byte, b *asciidoc.Block) []byte {
	switch b.Kind() {
	case asciidoc.CommentKind:
		return dst
	case asciidoc.SectionKind:
		return r.appendSection(dst, b)
	case asciidoc.ListKind:
		return r.appendList(dst, b)
	case asciidoc.DListKind:
		return r.appendDList(dst, b)
	case asciidoc.ImageKind:
		return r.appendImage(dst, b)
	case asciidoc.BreakKind:
		return r.appendBreak(dst, b)
	case asciidoc.TableKind:
		return r.appendTable(dst, b)
	case asciidoc.VerseKind, asciidoc.PassKind:
		return r.appendVerbatimLike(dst, b)
	}

	tag, ok := blockTags[b.Kind()]
	if !ok {
		tag = atom.Div
	}
	class := classAttr(b)
	dst = r.openTag(dst, tag, class)
	if b.Kind().IsLeaf() || (b.Kind() == asciidoc.AdmonitionKind && len(b.Blocks()) == 0) {
		if b.Kind() == asciidoc.AdmonitionKind {
			dst = append(dst, `<span class="title">`...)
			dst = append(dst, strings.ToUpper(b.Variant())...)
			dst = append(dst, "</span> "...)
		}
		dst = r.appendInlines(dst, b.Inlines())
	} else {
		dst = r.appendTitle(dst, b)
		for _, c := range b.Blocks() {
			dst = r.appendBlock(dst, c)
		}
	}
	dst = r.closeTag(dst, tag)
	return dst
}

func (r *Renderer) appendVerbatimLike(dst []byte, b *asciidoc.Block) []byte {
	tag := atom.Pre
	if b.Kind() == asciidoc.PassKind {
		// Raw passthrough: emitted verbatim, unescaped, per spec.md §3.3.
		for _, in := range b.Inlines() {
			dst = append(dst, in.PlainText()...)
		}
		return dst
	}
	dst = r.openTag(dst, tag, classAttr(b))
	for _, in := range b.Inlines() {
		dst = append(dst, escapeHTML(in.PlainText())...)
	}
	dst = r.closeTag(dst, tag)
	return dst
}

func (r *Renderer) appendSection(dst []byte, b *asciidoc.Block) []byte {
	level := b.Level() + r.SectionHeadingOffset
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	heading := fmt.Sprintf("h%d", level)
	dst = append(dst, "<section"...)
	dst = appendIDAttr(dst, b)
	dst = append(dst, ">\n<"...)
	dst = append(dst, heading...)
	dst = append(dst, '>')
	dst = r.appendInlines(dst, b.Metadata().Title)
	dst = append(dst, "</"...)
	dst = append(dst, heading...)
	dst = append(dst, ">\n"...)
	for _, c := range b.Blocks() {
		dst = r.appendBlock(dst, c)
		dst = append(dst, '\n')
	}
	dst = append(dst, "</section>"...)
	return dst
}

func (r *Renderer) appendList(dst []byte, b *asciidoc.Block) []byte {
	tag := atom.Ul
	if b.Variant() == asciidoc.OrderedVariant {
		tag = atom.Ol
	}
	dst = r.openTag(dst, tag, classAttr(b))
	for _, item := range b.Blocks() {
		dst = append(dst, "<li>"...)
		dst = r.appendInlines(dst, item.Inlines())
		for _, c := range item.Blocks() {
			dst = r.appendBlock(dst, c)
		}
		dst = append(dst, "</li>\n"...)
	}
	dst = r.closeTag(dst, tag)
	return dst
}

func (r *Renderer) appendDList(dst []byte, b *asciidoc.Block) []byte {
	dst = r.openTag(dst, atom.Dl, classAttr(b))
	for _, item := range b.Blocks() {
		dst = append(dst, "<dt>"...)
		dst = r.appendInlines(dst, item.Terms())
		dst = append(dst, "</dt>\n<dd>"...)
		dst = r.appendInlines(dst, item.Inlines())
		for _, c := range item.Blocks() {
			dst = r.appendBlock(dst, c)
		}
		dst = append(dst, "</dd>\n"...)
	}
	dst = r.closeTag(dst, atom.Dl)
	return dst
}

func (r *Renderer) appendTable(dst []byte, b *asciidoc.Block) []byte {
	dst = r.openTag(dst, atom.Table, classAttr(b))
	cols := b.Cols()
	if cols <= 0 {
		cols = 1
	}
	cells := b.Blocks()
	header := b.Metadata().HasOption("header")
	for i := 0; i < len(cells); i += cols {
		dst = append(dst, "<tr>"...)
		for j := i; j < i+cols && j < len(cells); j++ {
			cellTag := atom.Td
			if header && i == 0 {
				cellTag = atom.Th
			}
			dst = r.openTag(dst, cellTag, "")
			dst = r.appendInlines(dst, cells[j].Inlines())
			dst = r.closeTag(dst, cellTag)
		}
		dst = append(dst, "</tr>\n"...)
	}
	dst = r.closeTag(dst, atom.Table)
	return dst
}

func (r *Renderer) appendImage(dst []byte, b *asciidoc.Block) []byte {
	alt, _ := b.Metadata().Positional(1)
	dst = append(dst, `<img src="`...)
	dst = append(dst, escapeHTML(b.Target())...)
	dst = append(dst, `" alt="`...)
	dst = append(dst, escapeHTML(alt)...)
	dst = append(dst, `">`...)
	return dst
}

func (r *Renderer) appendBreak(dst []byte, b *asciidoc.Block) []byte {
	if b.Variant() == asciidoc.PageBreak {
		return append(dst, `<div style="page-break-after: always;"></div>`...)
	}
	return append(dst, "<hr>"...)
}

func (r *Renderer) appendTitle(dst []byte, b *asciidoc.Block) []byte {
	if len(b.Metadata().Title) == 0 {
		return dst
	}
	dst = append(dst, `<div class="title">`...)
	dst = r.appendInlines(dst, b.Metadata().Title)
	dst = append(dst, "</div>\n"...)
	return dst
}

func (r *Renderer) appendInlines(dst []byte, inlines []*asciidoc.Inline) []byte {
	for _, in := range inlines {
		dst = r.appendInline(dst, in)
	}
	return dst
}

var spanTags = map[string]atom.Atom{
	asciidoc.StrongVariant:      atom.Strong,
	asciidoc.EmphasisVariant:    atom.Em,
	asciidoc.MonospaceVariant:   atom.Code,
	asciidoc.MarkVariant:        atom.Mark,
	asciidoc.SuperscriptVariant: atom.Sup,
	asciidoc.SubscriptVariant:   atom.Sub,
}

func (r *Renderer) appendInline(dst []byte, in *asciidoc.Inline) []byte {
	switch in.Kind() {
	case asciidoc.TextKind:
		return append(dst, escapeHTML(in.Text())...)
	case asciidoc.LineBreakKind:
		return append(dst, "<br>\n"...)
	case asciidoc.SpanKind:
		if in.Variant() == asciidoc.FootnoteVariant {
			dst = append(dst, `<span class="footnote">`...)
			dst = r.appendInlines(dst, in.Children())
			return append(dst, "</span>"...)
		}
		tag := spanTags[in.Variant()]
		dst = r.openTag(dst, tag, "")
		dst = r.appendInlines(dst, in.Children())
		return r.closeTag(dst, tag)
	case asciidoc.RefKind:
		return r.appendRef(dst, in)
	}
	return dst
}

func (r *Renderer) appendRef(dst []byte, in *asciidoc.Inline) []byte {
	switch in.Variant() {
	case asciidoc.ImageVariant:
		dst = append(dst, `<img src="`...)
		dst = append(dst, escapeHTML(in.Target())...)
		dst = append(dst, `" alt="`...)
		dst = append(dst, escapeHTML(in.PlainText())...)
		dst = append(dst, `">`...)
		return dst
	case asciidoc.XrefVariant:
		dst = append(dst, `<a href="#`...)
		dst = append(dst, escapeHTML(in.Target())...)
		dst = append(dst, `">`...)
		text := in.Children()
		if len(text) == 0 {
			dst = append(dst, escapeHTML(in.Target())...)
		} else {
			dst = r.appendInlines(dst, text)
		}
		return append(dst, "</a>"...)
	default: // link
		dst = append(dst, `<a href="`...)
		dst = append(dst, escapeHTML(in.Target())...)
		dst = append(dst, `">`...)
		dst = r.appendInlines(dst, in.Children())
		return append(dst, "</a>"...)
	}
}

func (r *Renderer) openTag(dst []byte, a atom.Atom, class string) []byte {
	dst = append(dst, '<')
	dst = append(dst, a.String()...)
	if class != "" {
		dst = append(dst, ` class="`...)
		dst = append(dst, escapeHTML(class)...)
		dst = append(dst, '"')
	}
	dst = append(dst, '>')
	return dst
}

func (r *Renderer) closeTag(dst []byte, a atom.Atom) []byte {
	dst = append(dst, "</"...)
	dst = append(dst, a.String()...)
	dst = append(dst, '>')
	return dst
}

func classAttr(b *asciidoc.Block) string {
	roles := b.Metadata().Roles
	if len(roles) == 0 {
		return ""
	}
	return strings.Join(roles, " ")
}

func appendIDAttr(dst []byte, b *asciidoc.Block) []byte {
	id := b.Metadata().ID
	if id == "" {
		return dst
	}
	dst = append(dst, ` id="`...)
	dst = append(dst, escapeHTML(id)...)
	dst = append(dst, '"')
	return dst
}
