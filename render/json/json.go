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

// Package json serializes a parsed AsciiDoc document to its JSON AST
// encoding, a structural serialization of the tree rather than a design
// problem in its own right (spec.md §1, §6.1).
package json

import (
	"encoding/json"
	"io"

	"go.adoc.dev/asciidoc"
)

// Render writes doc's JSON AST encoding to w.
func Render(w io.Writer, doc *asciidoc.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toDocument(doc))
}

// docNode, blockNode, and inlineNode mirror the field names spec.md §6.4
// fixes as the template/backend contract: changing them is a breaking
// change regardless of which backend consumes them.
type docNode struct {
	Title  []inlineNode `json:"title,omitempty"`
	Blocks []blockNode  `json:"blocks"`
}

type blockNode struct {
	Name      string       `json:"name"`
	Variant   string       `json:"variant,omitempty"`
	Level     int          `json:"level,omitempty"`
	Metadata  metadataNode `json:"metadata"`
	Target    string       `json:"target,omitempty"`
	Principal []inlineNode `json:"principal,omitempty"`
	Inlines   []inlineNode `json:"inlines,omitempty"`
	Blocks    []blockNode  `json:"blocks,omitempty"`
	Items     []blockNode  `json:"items,omitempty"`
	Terms     []inlineNode `json:"terms,omitempty"`
}

type metadataNode struct {
	Roles      []string          `json:"roles,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Options    []string          `json:"options,omitempty"`
	ID         string            `json:"id,omitempty"`
	Title      []inlineNode      `json:"title,omitempty"`
	Caption    []inlineNode      `json:"caption,omitempty"`
}

type inlineNode struct {
	Kind     string       `json:"kind"`
	Variant  string       `json:"variant,omitempty"`
	Text     string       `json:"text,omitempty"`
	Target   string       `json:"target,omitempty"`
	Children []inlineNode `json:"children,omitempty"`
}

func toDocument(doc *asciidoc.Document) docNode {
	out := docNode{Blocks: toBlocks(doc.Blocks)}
	if doc.Header != nil {
		out.Title = toInlines(doc.Header.Title)
	}
	return out
}

func toBlocks(blocks []*asciidoc.Block) []blockNode {
	out := make([]blockNode, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, toBlock(b))
	}
	return out
}

func toBlock(b *asciidoc.Block) blockNode {
	n := blockNode{
		Name:     kindName(b.Kind()),
		Variant:  b.Variant(),
		Level:    b.Level(),
		Metadata: toMetadata(b.Metadata()),
		Target:   b.Target(),
	}
	switch b.Kind() {
	case asciidoc.ListKind, asciidoc.DListKind:
		n.Items = toBlocks(b.Blocks())
	case asciidoc.DListItemKind:
		// dlistItem's body is "principal" inlines or nested blocks,
		// distinct from a leaf block's "inlines" (spec.md §3.2).
		n.Terms = toInlines(b.Terms())
		n.Principal = toInlines(b.Inlines())
		n.Blocks = toBlocks(b.Blocks())
	default:
		// A list item (and any other container) may carry both
		// principal text and nested continuation blocks.
		n.Inlines = toInlines(b.Inlines())
		n.Blocks = toBlocks(b.Blocks())
	}
	return n
}

func toMetadata(m *asciidoc.Metadata) metadataNode {
	var opts []string
	for k, v := range m.Options {
		if v {
			opts = append(opts, k)
		}
	}
	return metadataNode{
		Roles:      m.Roles,
		Attributes: m.Attributes,
		Options:    opts,
		ID:         m.ID,
		Title:      toInlines(m.Title),
		Caption:    toInlines(m.Caption),
	}
}

func toInlines(inlines []*asciidoc.Inline) []inlineNode {
	if len(inlines) == 0 {
		return nil
	}
	out := make([]inlineNode, 0, len(inlines))
	for _, in := range inlines {
		out = append(out, toInline(in))
	}
	return out
}

func toInline(in *asciidoc.Inline) inlineNode {
	return inlineNode{
		Kind:     inlineKindName(in.Kind()),
		Variant:  in.Variant(),
		Text:     in.Text(),
		Target:   in.Target(),
		Children: toInlines(in.Children()),
	}
}

func kindName(k asciidoc.BlockKind) string {
	switch k {
	case asciidoc.ParagraphKind:
		return "paragraph"
	case asciidoc.ListingKind:
		return "listing"
	case asciidoc.LiteralKind:
		return "literal"
	case asciidoc.VerseKind:
		return "verse"
	case asciidoc.PassKind:
		return "pass"
	case asciidoc.CommentKind:
		return "comment"
	case asciidoc.SectionKind:
		return "section"
	case asciidoc.OpenKind:
		return "open"
	case asciidoc.ExampleKind:
		return "example"
	case asciidoc.QuoteKind:
		return "quote"
	case asciidoc.SidebarKind:
		return "sidebar"
	case asciidoc.AdmonitionKind:
		return "admonition"
	case asciidoc.ListKind:
		return "list"
	case asciidoc.DListKind:
		return "dlist"
	case asciidoc.ListItemKind:
		return "listItem"
	case asciidoc.DListItemKind:
		return "dlistItem"
	case asciidoc.TableKind:
		return "table"
	case asciidoc.TableCellKind:
		return "tableCell"
	case asciidoc.ImageKind:
		return "image"
	case asciidoc.BreakKind:
		return "break"
	default:
		return "unknown"
	}
}

func inlineKindName(k asciidoc.InlineKind) string {
	switch k {
	case asciidoc.TextKind:
		return "text"
	case asciidoc.SpanKind:
		return "span"
	case asciidoc.RefKind:
		return "ref"
	case asciidoc.LineBreakKind:
		return "linebreak"
	default:
		return "unknown"
	}
}
