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
	"strings"

	"go.adoc.dev/asciidoc/internal/escape"
)

// markupDelims maps a constrained/unconstrained markup delimiter byte to
// the span variant it produces (spec.md §4.4).
var markupDelims = map[byte]string{
	'*': StrongVariant,
	'_': EmphasisVariant,
	'`': MonospaceVariant,
	'#': MarkVariant,
	'^': SuperscriptVariant,
	'~': SubscriptVariant,
}

// hardBreakMarker is inserted by buildPrincipalText in place of a
// trailing " +" on a logical line (spec.md §4.4's hard line break rule).
// The reader does not remove NUL bytes from the source; AsciiDoc source
// in practice never contains one, so no extra escaping protects it.
const hardBreakMarker = 0

// inlineParser re-scans a block's principal text into an Inline tree.
// It is re-created per call rather than reused, matching the stateless,
// single-threaded lifecycle described in spec.md §5.
type inlineParser struct {
	attrs *AttributeStore
	line  int
	diags *[]Diagnostic
}

// parseInlines is the entry point used by the block parser: lines is the
// block's principal text, one slice element per logical source line.
func parseInlines(lines []string, startLine int, attrs *AttributeStore, diags *[]Diagnostic) []*Inline {
	if len(lines) == 0 {
		return nil
	}
	p := &inlineParser{attrs: attrs, line: startLine, diags: diags}
	text := p.buildPrincipalText(lines)
	return p.parseRun(text)
}

func (p *inlineParser) buildPrincipalText(lines []string) string {
	var b strings.Builder
	for i, line := range lines {
		l := line
		hard := false
		if strings.HasSuffix(l, " +") {
			l = strings.TrimSuffix(l, " +")
			hard = true
		}
		b.WriteString(l)
		switch {
		case hard:
			b.WriteByte(hardBreakMarker)
		case i != len(lines)-1:
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func (p *inlineParser) warn(err error) {
	if p.diags != nil {
		*p.diags = append(*p.diags, newWarning(p.line, err))
	}
}

// parseRun performs the single left-to-right scan described in spec.md
// §4.4, in strict precedence order: escapes > passthrough > attribute
// substitution > macros/refs > constrained/unconstrained markup > text.
func (p *inlineParser) parseRun(s string) []*Inline {
	var out []*Inline
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			out = append(out, NewText(buf.String()))
			buf.Reset()
		}
	}

	i := 0
	n := len(s)
	for i < n {
		c := s[i]

		switch {
		case c == hardBreakMarker:
			flush()
			out = append(out, NewLineBreak())
			i++
			continue

		case c == '\\' && i+1 < n && escape.IsMarkupChar(s[i+1]):
			buf.WriteByte(s[i+1])
			i += 2
			continue

		case strings.HasPrefix(s[i:], "+++"):
			if end := strings.Index(s[i+3:], "+++"); end >= 0 {
				flush()
				out = append(out, NewText(s[i+3:i+3+end]))
				i = i + 3 + end + 3
				continue
			}

		case c == '{':
			if name, rest, ok := scanAttrRef(s[i:]); ok {
				if v, found := p.attrs.Get(name); found {
					buf.WriteString(v)
				} else {
					if p.attrs.Policy() == AttributeMissingWarn {
						p.warn(ErrUnknownAttributeReference)
					}
					buf.WriteByte('{')
					buf.WriteString(name)
					buf.WriteByte('}')
				}
				i = n - len(rest)
				continue
			}

		case strings.HasPrefix(s[i:], "http://") || strings.HasPrefix(s[i:], "https://"):
			if in, consumed, ok := p.scanAutolink(s[i:]); ok {
				flush()
				out = append(out, in)
				i += consumed
				continue
			}

		case strings.HasPrefix(s[i:], "link:"):
			if in, consumed, ok := p.scanMacroLink(s[i:], len("link:"), LinkVariant); ok {
				flush()
				out = append(out, in)
				i += consumed
				continue
			}

		case strings.HasPrefix(s[i:], "<<"):
			if in, consumed, ok := p.scanXref(s[i:]); ok {
				flush()
				out = append(out, in)
				i += consumed
				continue
			}

		case strings.HasPrefix(s[i:], "image:") && !strings.HasPrefix(s[i:], "image::"):
			if in, consumed, ok := p.scanInlineImage(s[i:]); ok {
				flush()
				out = append(out, in)
				i += consumed
				continue
			}

		case strings.HasPrefix(s[i:], "footnote:["):
			if in, consumed, ok := p.scanFootnote(s[i:]); ok {
				flush()
				out = append(out, in)
				i += consumed
				continue
			}

		default:
			if variant, ok := markupDelims[c]; ok {
				if in, consumed, ok := p.scanMarkup(s, i, c, variant); ok {
					flush()
					out = append(out, in)
					i += consumed
					continue
				}
			}
		}

		buf.WriteByte(c)
		i++
	}
	flush()
	return out
}

// scanAttrRef recognizes "{name}" at the start of s, where name is a run
// of identifier-like characters. It returns the name and the remainder of
// s starting just past the closing brace.
func scanAttrRef(s string) (name, rest string, ok bool) {
	end := strings.IndexByte(s, '}')
	if end < 0 || end == 1 {
		return "", "", false
	}
	candidate := s[1:end]
	for i := 0; i < len(candidate); i++ {
		b := candidate[i]
		if !(b == '-' || b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')) {
			return "", "", false
		}
	}
	return candidate, s[end+1:], true
}

// scanAutolink scans a bare http(s) URL, optionally followed by a
// "[text]" display-text suffix.
func (p *inlineParser) scanAutolink(s string) (*Inline, int, bool) {
	end := 0
	for end < len(s) && !isSpaceByte(s[end]) && s[end] != '[' {
		end++
	}
	target := s[:end]
	rest := s[end:]
	text := target
	consumed := end
	if strings.HasPrefix(rest, "[") {
		if close := strings.IndexByte(rest, ']'); close >= 0 {
			text = rest[1:close]
			consumed += close + 1
		}
	}
	children := p.parseRun(text)
	return NewRef(LinkVariant, target, children...), consumed, true
}

// scanMacroLink scans "link:target[text]" starting after the given
// prefix length, for the variant given (always LinkVariant for "link:").
func (p *inlineParser) scanMacroLink(s string, prefixLen int, variant string) (*Inline, int, bool) {
	rest := s[prefixLen:]
	open := strings.IndexByte(rest, '[')
	if open < 0 {
		return nil, 0, false
	}
	target := rest[:open]
	if target == "" || strings.ContainsAny(target, " \t") {
		return nil, 0, false
	}
	close := strings.IndexByte(rest[open:], ']')
	if close < 0 {
		return nil, 0, false
	}
	text := rest[open+1 : open+close]
	consumed := prefixLen + open + close + 1
	displayText := text
	if displayText == "" {
		displayText = target
	}
	children := p.parseRun(displayText)
	return NewRef(variant, target, children...), consumed, true
}

// scanXref scans "<<id>>" or "<<id,text>>".
func (p *inlineParser) scanXref(s string) (*Inline, int, bool) {
	close := strings.Index(s, ">>")
	if close < 0 {
		return nil, 0, false
	}
	inner := s[2:close]
	id, text := inner, ""
	if comma := strings.IndexByte(inner, ','); comma >= 0 {
		id = inner[:comma]
		text = strings.TrimSpace(inner[comma+1:])
	}
	if id == "" {
		return nil, 0, false
	}
	display := text
	if display == "" {
		display = id
	}
	children := p.parseRun(display)
	return NewRef(XrefVariant, id, children...), close + 2, true
}

// scanInlineImage scans "image:target[alt]". Inline images are
// self-closing: the bracket contents become alt text, not nested markup.
func (p *inlineParser) scanInlineImage(s string) (*Inline, int, bool) {
	rest := s[len("image:"):]
	open := strings.IndexByte(rest, '[')
	if open < 0 {
		return nil, 0, false
	}
	target := rest[:open]
	if target == "" || strings.ContainsAny(target, " \t") {
		return nil, 0, false
	}
	close := strings.IndexByte(rest[open:], ']')
	if close < 0 {
		return nil, 0, false
	}
	alt := rest[open+1 : open+close]
	consumed := len("image:") + open + close + 1
	var children []*Inline
	if alt != "" {
		children = []*Inline{NewText(alt)}
	}
	return NewRef(ImageVariant, target, children...), consumed, true
}

// scanFootnote scans "footnote:[text]".
func (p *inlineParser) scanFootnote(s string) (*Inline, int, bool) {
	rest := s[len("footnote:["):]
	close := strings.IndexByte(rest, ']')
	if close < 0 {
		return nil, 0, false
	}
	text := rest[:close]
	consumed := len("footnote:[") + close + 1
	children := p.parseRun(text)
	return NewSpan(FootnoteVariant, children...), consumed, true
}

// scanMarkup scans a constrained or unconstrained markup span opened by
// ch at s[i]. It returns the produced Inline and the number of bytes
// consumed from s[i:].
func (p *inlineParser) scanMarkup(s string, i int, ch byte, variant string) (*Inline, int, bool) {
	if i+1 < len(s) && s[i+1] == ch {
		// Unconstrained: doubled delimiter, permits mid-word formatting.
		closeAt := strings.Index(s[i+2:], string(ch)+string(ch))
		if closeAt < 0 {
			return nil, 0, false
		}
		inner := s[i+2 : i+2+closeAt]
		children := p.parseRun(inner)
		return NewSpan(variant, children...), 2 + closeAt + 2, true
	}

	// Constrained: opener needs a preceding boundary and a non-space
	// following character; closer needs a preceding non-space character
	// and a following boundary.
	var before byte
	beforeOK := i > 0
	if beforeOK {
		before = s[i-1]
	}
	if beforeOK && !isBoundaryByte(before) {
		return nil, 0, false
	}
	if i+1 >= len(s) || isSpaceByte(s[i+1]) {
		return nil, 0, false
	}

	for j := i + 1; j < len(s); j++ {
		if s[j] != ch {
			continue
		}
		if isSpaceByte(s[j-1]) {
			continue
		}
		after := byte(0)
		afterOK := j+1 < len(s)
		if afterOK {
			after = s[j+1]
		}
		if afterOK && !isBoundaryByte(after) {
			continue
		}
		inner := s[i+1 : j]
		children := p.parseRun(inner)
		return NewSpan(variant, children...), j + 1 - i, true
	}
	return nil, 0, false
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t'
}

func isBoundaryByte(b byte) bool {
	return b == ' ' || b == '\t' || b == hardBreakMarker
}
