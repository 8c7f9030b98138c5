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

import "strings"

// lineKind classifies a single physical line, independent of any
// surrounding parser state (spec.md §4.2). The block parser combines this
// classification with its open-container stack to decide what to do with
// the line.
type lineKind int

const (
	lineBlank lineKind = iota
	lineDelimiter
	lineSectionTitle
	lineAttrList
	lineAnchor
	lineAttrEntry
	lineListMarker
	lineContinuation
	lineComment
	lineBlockMacro
	lineBreakMarker
	lineText
)

// delimKind names a recognized block-delimiter family.
type delimKind int

const (
	delimExample delimKind = iota
	delimSidebar
	delimQuoteVerse
	delimListing
	delimLiteral
	delimPass
	delimTable
	delimOpen
	delimCommentBlock
)

// admonitionPrefixes maps an inline admonition label to the variant it
// produces (spec.md §3.2, §4.2).
var admonitionPrefixes = []struct {
	prefix  string
	variant string
}{
	{"NOTE:", AdmonitionNote},
	{"TIP:", AdmonitionTip},
	{"WARNING:", AdmonitionWarning},
	{"CAUTION:", AdmonitionCaution},
	{"IMPORTANT:", AdmonitionImportant},
}

// scannedLine is the classification result for one physical line.
// Only the fields relevant to kind are populated.
type scannedLine struct {
	kind lineKind
	raw  string

	// lineDelimiter
	delim    delimKind
	delimCh  byte
	delimLen int

	// lineSectionTitle
	level int
	title string

	// lineAttrList / lineAnchor: bracket holds the text between the
	// outer brackets.
	bracket string

	// lineAttrEntry
	attrName  string
	attrValue string
	attrUnset bool

	// lineListMarker: either an ordered/unordered marker (listCh != 0)
	// or a description-list term (dlistTerm != "").
	listCh    byte
	listDepth int
	dlistTerm string
	dlistBody string

	// lineBlockMacro
	macroName   string
	macroTarget string
	macroAttrs  string

	// lineBreakMarker
	breakVariant string

	// lineText, when the text is an inline admonition paragraph starter.
	admonitionVariant string
	admonitionText    string
}

// scanLine classifies a single line. It does not know about verbatim
// block state; callers inside a verbatim delimited block must bypass
// scanLine entirely and treat the line as opaque raw content except for
// delimiter matching against the closing fence (spec.md §4.2 rule 1).
func scanLine(line string) scannedLine {
	trimmed := strings.TrimSpace(line)

	if trimmed == "" {
		return scannedLine{kind: lineBlank, raw: line}
	}

	if trimmed == "+" {
		return scannedLine{kind: lineContinuation, raw: line}
	}

	if b, ok := scanBreakMarker(trimmed); ok {
		b.raw = line
		return b
	}

	if d, ok := scanDelimiter(trimmed); ok {
		return d
	}

	if s, ok := scanSectionTitle(trimmed); ok {
		s.raw = line
		return s
	}

	if strings.HasPrefix(trimmed, "//") {
		return scannedLine{kind: lineComment, raw: line}
	}

	if strings.HasPrefix(trimmed, "[[") && strings.HasSuffix(trimmed, "]]") {
		return scannedLine{
			kind:    lineAnchor,
			raw:     line,
			bracket: trimmed[2 : len(trimmed)-2],
		}
	}

	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		return scannedLine{
			kind:    lineAttrList,
			raw:     line,
			bracket: trimmed[1 : len(trimmed)-1],
		}
	}

	if a, ok := scanAttrEntry(trimmed); ok {
		a.raw = line
		return a
	}

	if m, ok := scanBlockMacro(trimmed); ok {
		m.raw = line
		return m
	}

	if l, ok := scanListMarker(trimmed); ok {
		l.raw = line
		return l
	}

	if d, ok := scanDListTerm(trimmed); ok {
		d.raw = line
		return d
	}

	s := scannedLine{kind: lineText, raw: line}
	for _, a := range admonitionPrefixes {
		if strings.HasPrefix(trimmed, a.prefix) {
			s.admonitionVariant = a.variant
			s.admonitionText = strings.TrimSpace(trimmed[len(a.prefix):])
			break
		}
	}
	return s
}

// scanBreakMarker recognizes a thematic break ("'''") or page break
// ("<<<"), each a run of three or more of its character on a line by
// itself (spec.md §3.2's BreakKind). Neither character is used by any
// other delimiter family, so this can run ahead of scanDelimiter.
func scanBreakMarker(trimmed string) (scannedLine, bool) {
	if len(trimmed) < 3 {
		return scannedLine{}, false
	}
	switch {
	case isRun(trimmed, '\''):
		return scannedLine{kind: lineBreakMarker, breakVariant: ThematicBreak}, true
	case isRun(trimmed, '<'):
		return scannedLine{kind: lineBreakMarker, breakVariant: PageBreak}, true
	}
	return scannedLine{}, false
}

// scanDelimiter recognizes a run-of-identical-characters delimiter line,
// including the two irregular forms ("--" exactly, and "|===" table
// fences of three or more equals signs).
func scanDelimiter(trimmed string) (scannedLine, bool) {
	if trimmed == "--" {
		return scannedLine{kind: lineDelimiter, delim: delimOpen, delimCh: '-', delimLen: 2}, true
	}
	if strings.HasPrefix(trimmed, "|") {
		rest := trimmed[1:]
		if len(rest) >= 3 && isRun(rest, '=') {
			return scannedLine{kind: lineDelimiter, delim: delimTable, delimCh: '=', delimLen: len(rest)}, true
		}
		return scannedLine{}, false
	}
	if len(trimmed) < 4 {
		return scannedLine{}, false
	}
	ch := trimmed[0]
	if !isRun(trimmed, ch) {
		return scannedLine{}, false
	}
	var kind delimKind
	switch ch {
	case '=':
		kind = delimExample
	case '*':
		kind = delimSidebar
	case '_':
		kind = delimQuoteVerse
	case '-':
		kind = delimListing
	case '.':
		kind = delimLiteral
	case '+':
		kind = delimPass
	case '/':
		kind = delimCommentBlock
	default:
		return scannedLine{}, false
	}
	return scannedLine{kind: lineDelimiter, delim: kind, delimCh: ch, delimLen: len(trimmed)}, true
}

func isRun(s string, ch byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ch {
			return false
		}
	}
	return true
}

// scanSectionTitle recognizes one to six leading '=' characters followed
// by a space and title text. The resulting level is n-1: a single '='
// is the document title (level 0, only meaningful as the very first
// line), "==" is a level-1 section, and so on through "======" at level 5,
// matching AsciiDoc's conventional title/section numbering.
func scanSectionTitle(trimmed string) (scannedLine, bool) {
	n := 0
	for n < len(trimmed) && trimmed[n] == '=' && n < 6 {
		n++
	}
	if n == 0 || n >= len(trimmed) || trimmed[n] != ' ' {
		return scannedLine{}, false
	}
	title := strings.TrimSpace(trimmed[n+1:])
	if title == "" {
		return scannedLine{}, false
	}
	return scannedLine{kind: lineSectionTitle, level: n - 1, title: title}, true
}

// scanAttrEntry recognizes ":name: value", ":name:" and ":!name:".
func scanAttrEntry(trimmed string) (scannedLine, bool) {
	if !strings.HasPrefix(trimmed, ":") {
		return scannedLine{}, false
	}
	rest := trimmed[1:]
	end := strings.IndexByte(rest, ':')
	if end < 0 {
		return scannedLine{}, false
	}
	name := rest[:end]
	unset := false
	if strings.HasPrefix(name, "!") {
		unset = true
		name = name[1:]
	}
	if name == "" || strings.ContainsAny(name, " \t") {
		return scannedLine{}, false
	}
	value := strings.TrimSpace(rest[end+1:])
	return scannedLine{
		kind:      lineAttrEntry,
		attrName:  name,
		attrValue: value,
		attrUnset: unset,
	}, true
}

// scanBlockMacro recognizes "name::target[attrs]" where name has no
// whitespace and the line ends with the macro's attribute list.
func scanBlockMacro(trimmed string) (scannedLine, bool) {
	if !strings.HasSuffix(trimmed, "]") {
		return scannedLine{}, false
	}
	sep := strings.Index(trimmed, "::")
	if sep <= 0 {
		return scannedLine{}, false
	}
	name := trimmed[:sep]
	if name == "" || strings.ContainsAny(name, " \t[]") {
		return scannedLine{}, false
	}
	rest := trimmed[sep+2:]
	open := strings.IndexByte(rest, '[')
	if open < 0 {
		return scannedLine{}, false
	}
	target := rest[:open]
	if strings.ContainsAny(target, " \t") {
		return scannedLine{}, false
	}
	attrs := rest[open+1 : len(rest)-1]
	return scannedLine{kind: lineBlockMacro, macroName: name, macroTarget: target, macroAttrs: attrs}, true
}

// scanListMarker recognizes repeated '*'/'-' (unordered) or '.' (ordered)
// markers followed by a mandatory space (spec.md §4.3 tie-breaks).
func scanListMarker(trimmed string) (scannedLine, bool) {
	ch := trimmed[0]
	if ch != '*' && ch != '-' && ch != '.' {
		return scannedLine{}, false
	}
	n := 0
	for n < len(trimmed) && trimmed[n] == ch {
		n++
	}
	if n >= len(trimmed) || trimmed[n] != ' ' {
		return scannedLine{}, false
	}
	return scannedLine{
		kind:      lineListMarker,
		listCh:    ch,
		listDepth: n,
		dlistBody: strings.TrimSpace(trimmed[n+1:]),
	}, true
}

// scanDListTerm recognizes "term:: body", distinguishing it from a block
// macro by the absence of a trailing "]" macro attribute list (scanBlockMacro
// is tried first, so reaching here means no such list was found).
func scanDListTerm(trimmed string) (scannedLine, bool) {
	sep := strings.Index(trimmed, "::")
	if sep <= 0 {
		return scannedLine{}, false
	}
	term := trimmed[:sep]
	body := strings.TrimSpace(trimmed[sep+2:])
	return scannedLine{
		kind:      lineListMarker,
		dlistTerm: term,
		dlistBody: body,
	}, true
}
