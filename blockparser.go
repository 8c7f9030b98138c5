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
	"strconv"
	"strings"
)

// frameKind discriminates the open-container stack entries a blockParser
// maintains (spec.md §4.3's "context stack").
type frameKind int

const (
	frameSection frameKind = iota
	frameContainer               // open/example/quote/sidebar/admonition, closed by a matching delimiter
	frameList
	frameListItem
	frameTable
)

// frame is one entry of the block parser's open-container stack.
type frame struct {
	kind  frameKind
	block *Block

	// frameSection
	level int

	// frameContainer
	delim    delimKind
	delimCh  byte
	delimLen int

	// frameList
	listCh    byte // 0 for description lists
	listDepth int

	// frameTable
	cols int
}

// stagedMeta accumulates attribute-list/anchor lines until the next
// recognized block consumes them (spec.md §4.3 rule 6).
type stagedMeta struct {
	style      string
	attrs      map[string]string
	roles      []string
	opts       map[string]bool
	id         string
	hasStyle   bool
	attrListAt int // line number, for diagnostics
}

func (s *stagedMeta) clear() {
	*s = stagedMeta{}
}

func (s *stagedMeta) toMetadata() Metadata {
	m := Metadata{
		Attributes: s.attrs,
		Roles:      s.roles,
		Options:    s.opts,
		ID:         s.id,
	}
	if m.Attributes == nil {
		m.Attributes = map[string]string{}
	}
	if m.Options == nil {
		m.Options = map[string]bool{}
	}
	return m
}

// verbatimState holds the raw accumulation of an open listing/literal/pass/
// comment (or verse) delimited block awaiting its matching close fence
// (spec.md §4.3 rule 1).
type verbatimState struct {
	kind      BlockKind
	ch        byte
	length    int
	startLine int
	raw       []string
	meta      Metadata
}

// paraBuilder accumulates the lines of an in-progress paragraph
// (including admonition paragraphs and style-retyped paragraphs).
type paraBuilder struct {
	kind       BlockKind
	admonition string
	startLine  int
	lines      []string
	meta       Metadata
}

// blockParser implements spec.md §4.3: it consumes scanned lines and
// builds the Document's block tree, tracking open containers, list depth,
// section levels, and delimited-block state.
type blockParser struct {
	r     *reader
	attrs *AttributeStore
	diags []Diagnostic

	top []*Block // top-level (document-root) blocks

	stack []*frame

	staged            stagedMeta
	lastConsumedStyle string
	verbatim          *verbatimState
	para              *paraBuilder

	pendingContinuation bool
}

func newBlockParser(r *reader, attrs *AttributeStore) *blockParser {
	return &blockParser{
		r:     r,
		attrs: attrs,
	}
}

func (bp *blockParser) error(lineno int, err error) {
	bp.diags = append(bp.diags, newError(lineno, err))
}

func (bp *blockParser) warn(lineno int, err error) {
	bp.diags = append(bp.diags, newWarning(lineno, err))
}

// parse runs the full block-parsing pass and returns the top-level blocks.
func (bp *blockParser) parse() []*Block {
	for {
		line, lineno, ok := bp.r.Advance()
		if !ok {
			break
		}
		bp.handleLine(line, lineno)
	}
	bp.flushParagraph()
	bp.closeAll(bp.r.Position())
	return bp.top
}

func (bp *blockParser) handleLine(line string, lineno int) {
	if bp.verbatim != nil {
		if bp.matchesClose(strings.TrimSpace(line), bp.verbatim.ch, bp.verbatim.length) {
			bp.closeVerbatim(lineno)
			return
		}
		bp.verbatim.raw = append(bp.verbatim.raw, line)
		return
	}

	if f := bp.topFrame(); f != nil && f.kind == frameTable {
		trimmed := strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(trimmed, "|"); ok && bp.matchesClose(rest, '=', f.delimLen) {
			bp.closeTable(lineno)
			return
		}
		bp.addTableRow(line)
		return
	}

	sl := scanLine(line)

	switch sl.kind {
	case lineBlank:
		bp.flushParagraph()
	case lineComment:
		// Discarded entirely (rule 2).
	case lineDelimiter:
		bp.flushParagraph()
		bp.handleDelimiter(sl, lineno)
	case lineSectionTitle:
		bp.flushParagraph()
		bp.handleSectionTitle(sl, lineno)
	case lineAttrEntry:
		bp.flushParagraph()
		bp.handleAttrEntry(sl, lineno)
	case lineAttrList:
		bp.flushParagraph()
		bp.stageAttrList(sl.bracket, lineno)
	case lineAnchor:
		bp.flushParagraph()
		bp.staged.id = sl.bracket
	case lineListMarker:
		bp.flushParagraph()
		bp.handleListMarker(sl, lineno)
	case lineContinuation:
		bp.flushParagraph()
		bp.pendingContinuation = true
	case lineBlockMacro:
		bp.flushParagraph()
		bp.handleBlockMacro(sl, lineno)
	case lineBreakMarker:
		bp.flushParagraph()
		bp.handleBreakMarker(sl, lineno)
	case lineText:
		bp.handleParagraphLine(sl, line, lineno)
	}
}

func (bp *blockParser) topFrame() *frame {
	if len(bp.stack) == 0 {
		return nil
	}
	return bp.stack[len(bp.stack)-1]
}

// appendChild attaches b to whatever container is innermost open: the
// last list item, the top container/table/section frame, or the document
// root. A staged continuation routes the child into the most recent list
// item instead of closing the enclosing list (spec.md §4.3 rule 8).
func (bp *blockParser) appendChild(b *Block) {
	bp.attach(b, false)
}

// attach is appendChild's implementation. openingList is true only when b
// is itself a List/DList being opened by openOrReuseList, which has
// already decided whether it nests under the current item (a deeper
// marker) or needs a shallower list/item popped first; in that case
// closing lists here would undo that decision. Every other caller goes
// through appendChild (openingList false), where a list left open from an
// earlier line must not silently adopt unrelated content.
func (bp *blockParser) attach(b *Block, openingList bool) {
	if bp.pendingContinuation {
		bp.pendingContinuation = false
		if it := bp.innermostListItem(); it != nil {
			it.blockChildren = append(it.blockChildren, b)
			return
		}
	} else if !openingList {
		bp.closeOpenLists()
	}
	for i := len(bp.stack) - 1; i >= 0; i-- {
		f := bp.stack[i]
		switch f.kind {
		case frameListItem, frameSection, frameContainer:
			f.block.blockChildren = append(f.block.blockChildren, b)
			return
		case frameList:
			// A bare child with no open item (shouldn't normally occur;
			// attach to the list itself defensively).
			f.block.blockChildren = append(f.block.blockChildren, b)
			return
		}
	}
	bp.top = append(bp.top, b)
}

func (bp *blockParser) innermostListItem() *Block {
	for i := len(bp.stack) - 1; i >= 0; i-- {
		if bp.stack[i].kind == frameListItem {
			return bp.stack[i].block
		}
	}
	return nil
}

// closeOpenLists pops any open frameListItem/frameList frames from the top
// of the stack. Without a staged continuation, material that follows a
// list item does not nest into it (spec.md §3.2's list-item invariant,
// §4.3 rule 8): it closes the list and attaches as a sibling instead.
func (bp *blockParser) closeOpenLists() {
	for {
		f := bp.topFrame()
		if f == nil || (f.kind != frameListItem && f.kind != frameList) {
			return
		}
		bp.stack = bp.stack[:len(bp.stack)-1]
	}
}

// ---- delimiters ----

func (bp *blockParser) handleDelimiter(sl scannedLine, lineno int) {
	if !bp.pendingContinuation {
		bp.closeOpenLists()
	}
	if f := bp.topFrame(); f != nil && f.kind == frameContainer && f.delim == sl.delim && f.delimCh == sl.delimCh {
		bp.stack = bp.stack[:len(bp.stack)-1]
		return
	}

	switch sl.delim {
	case delimListing, delimLiteral, delimPass, delimCommentBlock:
		kind := map[delimKind]BlockKind{
			delimListing: ListingKind,
			delimLiteral: LiteralKind,
			delimPass:    PassKind,
		}[sl.delim]
		meta := bp.consumeStaged()
		if sl.delim == delimCommentBlock {
			kind = CommentKind
		}
		bp.verbatim = &verbatimState{kind: kind, ch: sl.delimCh, length: sl.delimLen, startLine: lineno, meta: meta}
		return
	case delimTable:
		meta := bp.consumeStaged()
		cols := bp.stagedColsFromMeta(meta)
		block := &Block{kind: TableKind, span: Span{Start: Position{Line: lineno}}, meta: meta, cols: cols}
		bp.appendChild(block)
		bp.stack = append(bp.stack, &frame{kind: frameTable, block: block, delim: sl.delim, delimCh: sl.delimCh, delimLen: sl.delimLen, cols: cols})
		return
	case delimExample, delimSidebar, delimQuoteVerse, delimOpen:
		bp.openContainerDelim(sl, lineno)
		return
	}
}

func (bp *blockParser) stagedColsFromMeta(meta Metadata) int {
	if v, ok := meta.Attribute("cols"); ok {
		parts := strings.Split(v, ",")
		return len(parts)
	}
	return 0
}

func (bp *blockParser) openContainerDelim(sl scannedLine, lineno int) {
	meta := bp.consumeStaged()
	var kind BlockKind
	variant := ""
	switch sl.delim {
	case delimExample:
		kind = ExampleKind
	case delimSidebar:
		kind = SidebarKind
	case delimOpen:
		kind = OpenKind
	case delimQuoteVerse:
		if bp.lastConsumedStyle == "verse" || meta.Attributes["style"] == "verse" {
			// A verse block is a leaf: its lines are kept as raw text,
			// line breaks included, up to the matching closing fence.
			bp.lastConsumedStyle = ""
			bp.verbatim = &verbatimState{kind: VerseKind, ch: sl.delimCh, length: sl.delimLen, startLine: lineno, meta: meta}
			return
		}
		kind = QuoteKind
	}
	if admVariant, ok := admonitionStyleVariant(bp.lastConsumedStyle); ok {
		kind = AdmonitionKind
		variant = admVariant
	}
	bp.lastConsumedStyle = ""
	block := &Block{kind: kind, span: Span{Start: Position{Line: lineno}}, meta: meta, variant: variant}
	bp.appendChild(block)
	bp.stack = append(bp.stack, &frame{kind: frameContainer, block: block, delim: sl.delim, delimCh: sl.delimCh, delimLen: sl.delimLen})
}

func admonitionStyleVariant(style string) (string, bool) {
	switch strings.ToUpper(style) {
	case "NOTE":
		return AdmonitionNote, true
	case "TIP":
		return AdmonitionTip, true
	case "WARNING":
		return AdmonitionWarning, true
	case "CAUTION":
		return AdmonitionCaution, true
	case "IMPORTANT":
		return AdmonitionImportant, true
	}
	return "", false
}

// ---- sections ----

func (bp *blockParser) handleSectionTitle(sl scannedLine, lineno int) {
	bp.closeOpenLists()
	for {
		f := bp.topFrame()
		if f == nil || f.kind != frameSection || f.level < sl.level {
			break
		}
		bp.stack = bp.stack[:len(bp.stack)-1]
	}
	parentLevel := 0
	if f := bp.topFrame(); f != nil && f.kind == frameSection {
		parentLevel = f.level
	}
	if sl.level != parentLevel+1 {
		bp.error(lineno, ErrSectionLevelSkip)
	}
	meta := bp.consumeStaged()
	meta.Title = parseInlines([]string{sl.title}, lineno, bp.attrs, &bp.diags)
	block := &Block{kind: SectionKind, span: Span{Start: Position{Line: lineno}}, level: sl.level, meta: meta}
	bp.appendChild(block)
	bp.stack = append(bp.stack, &frame{kind: frameSection, block: block, level: sl.level})
}

// ---- attribute entries / lists ----

func (bp *blockParser) handleAttrEntry(sl scannedLine, lineno int) {
	if sl.attrUnset {
		bp.attrs.Unset(sl.attrName)
		return
	}
	value := sl.attrValue
	for strings.HasSuffix(value, `\`) {
		next, ok := bp.r.Peek(0)
		if !ok {
			break
		}
		bp.r.Advance()
		value = strings.TrimSuffix(value, `\`) + "\n" + next
	}
	bp.attrs.Set(sl.attrName, value)
}

func (bp *blockParser) stageAttrList(bracket string, lineno int) {
	style, attrs, roles, opts := parseAttrList(bracket)
	bp.staged.hasStyle = style != ""
	bp.staged.style = style
	bp.staged.attrs = attrs
	bp.staged.roles = roles
	bp.staged.opts = opts
	bp.staged.attrListAt = lineno
	bp.lastConsumedStyle = style
}

// lastConsumedStyle is read by handlers that run after consumeStaged has
// already zeroed bp.staged, such as admonition-block retyping.
func (bp *blockParser) consumeStaged() Metadata {
	m := bp.staged.toMetadata()
	bp.staged.clear()
	return m
}

// splitAttrList splits "a, b=\"c, d\", e" on top-level commas, respecting
// double-quoted values.
func splitAttrList(s string) []string {
	var parts []string
	var buf strings.Builder
	inQuote := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			inQuote = !inQuote
			buf.WriteByte(c)
		case c == ',' && !inQuote:
			parts = append(parts, buf.String())
			buf.Reset()
		default:
			buf.WriteByte(c)
		}
	}
	parts = append(parts, buf.String())
	return parts
}

// parseAttrList parses the contents of a "[...]" attribute list line
// (spec.md §4.2, §4.3 rule 6): a leading bare token is a block style; bare
// tokens after that are positional attributes, except a "%name" token,
// which is shorthand for an option (spec.md §3.2's Metadata.Options);
// "key=value" tokens are named, with "role" and "opts"/"options"
// recognized specially.
func parseAttrList(s string) (style string, attrs map[string]string, roles []string, opts map[string]bool) {
	attrs = map[string]string{}
	opts = map[string]bool{}
	posIndex := 0
	for i, tok := range splitAttrList(s) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if eq := strings.IndexByte(tok, '='); eq >= 0 {
			key := strings.TrimSpace(tok[:eq])
			val := strings.Trim(strings.TrimSpace(tok[eq+1:]), `"`)
			switch key {
			case "role":
				roles = append(roles, strings.Fields(val)...)
			case "opts", "options":
				for _, o := range strings.Split(val, "+") {
					o = strings.TrimSpace(o)
					if o != "" {
						opts[o] = true
					}
				}
			default:
				attrs[key] = val
			}
			continue
		}
		if i == 0 {
			style = tok
			continue
		}
		if strings.HasPrefix(tok, "%") {
			if o := tok[1:]; o != "" {
				opts[o] = true
			}
			continue
		}
		posIndex++
		attrs[positionalKey(posIndex)] = strings.Trim(tok, `"`)
	}
	if style == "quote" || style == "verse" {
		if v, ok := attrs[positionalKey(1)]; ok {
			attrs["attribution"] = v
		}
		if v, ok := attrs[positionalKey(2)]; ok {
			attrs["citetitle"] = v
		}
	}
	return style, attrs, roles, opts
}

// ---- list markers ----

func (bp *blockParser) handleListMarker(sl scannedLine, lineno int) {
	meta := bp.consumeStaged()

	if sl.dlistTerm != "" {
		bp.openOrReuseList(0, 0, DListKind, lineno, meta)
		term := parseInlines([]string{sl.dlistTerm}, lineno, bp.attrs, &bp.diags)
		item := &Block{
			kind:  DListItemKind,
			span:  Span{Start: Position{Line: lineno}},
			terms: term,
		}
		if sl.dlistBody != "" {
			item.inlines = parseInlines([]string{sl.dlistBody}, lineno, bp.attrs, &bp.diags)
		}
		bp.topFrame().block.blockChildren = append(bp.topFrame().block.blockChildren, item)
		bp.stack = append(bp.stack, &frame{kind: frameListItem, block: item})
		return
	}

	bp.openOrReuseList(sl.listCh, sl.listDepth, ListKind, lineno, meta)
	item := &Block{kind: ListItemKind, span: Span{Start: Position{Line: lineno}}}
	if sl.dlistBody != "" {
		item.inlines = parseInlines([]string{sl.dlistBody}, lineno, bp.attrs, &bp.diags)
	}
	bp.topFrame().block.blockChildren = append(bp.topFrame().block.blockChildren, item)
	bp.stack = append(bp.stack, &frame{kind: frameListItem, block: item})
}

// openOrReuseList finds or creates the list frame for the given marker
// depth, closing any deeper lists/items first (spec.md §4.3 rule 7).
func (bp *blockParser) openOrReuseList(ch byte, depth int, kind BlockKind, lineno int, meta Metadata) {
	for {
		f := bp.topFrame()
		if f == nil {
			break
		}
		if f.kind == frameListItem {
			// A deeper ordered/unordered marker keeps the current item
			// open so the new list nests inside it.
			if kind == ListKind && len(bp.stack) >= 2 {
				if owner := bp.stack[len(bp.stack)-2]; owner.kind == frameList && owner.listDepth < depth {
					break
				}
			}
			bp.stack = bp.stack[:len(bp.stack)-1]
			continue
		}
		if f.kind == frameList {
			if f.block.kind == kind && f.listCh == ch && f.listDepth == depth {
				return
			}
			if f.listDepth >= depth && kind != DListKind {
				bp.stack = bp.stack[:len(bp.stack)-1]
				continue
			}
			if kind == DListKind {
				// The exact-match check above already returned if this
				// frame were a matching description list; any other list
				// here (e.g. an open ListKind) does not accept a dlist
				// item as a child, so close it instead of nesting into it.
				bp.stack = bp.stack[:len(bp.stack)-1]
				continue
			}
		}
		break
	}
	variant := UnorderedVariant
	if ch == '.' {
		variant = OrderedVariant
	}
	block := &Block{kind: kind, span: Span{Start: Position{Line: lineno}}, variant: variant, meta: meta}
	bp.attach(block, true)
	bp.stack = append(bp.stack, &frame{kind: frameList, block: block, listCh: ch, listDepth: depth})
}

// ---- block macros ----

func (bp *blockParser) handleBlockMacro(sl scannedLine, lineno int) {
	meta := bp.consumeStaged()
	switch sl.macroName {
	case "image":
		style, attrs, roles, opts := parseAttrList(sl.macroAttrs)
		// An image macro has no block style: its first bare token is the
		// alt text, stored as positional_1 ahead of the later positionals.
		if style != "" {
			for n := len(attrs); n >= 1; n-- {
				if v, ok := attrs[positionalKey(n)]; ok {
					attrs[positionalKey(n+1)] = v
				}
			}
			attrs[positionalKey(1)] = strings.Trim(style, `"`)
		}
		for k, v := range attrs {
			meta.Attributes[k] = v
		}
		meta.Roles = append(meta.Roles, roles...)
		for k, v := range opts {
			meta.Options[k] = v
		}
		block := &Block{kind: ImageKind, span: Span{Start: Position{Line: lineno}}, meta: meta, target: sl.macroTarget}
		bp.appendChild(block)
	default:
		bp.warn(lineno, ErrUnsupportedFeature)
	}
}

// ---- breaks ----

func (bp *blockParser) handleBreakMarker(sl scannedLine, lineno int) {
	meta := bp.consumeStaged()
	block := &Block{kind: BreakKind, span: Span{Start: Position{Line: lineno}}, variant: sl.breakVariant, meta: meta}
	bp.appendChild(block)
}

// ---- paragraphs ----

func (bp *blockParser) handleParagraphLine(sl scannedLine, raw string, lineno int) {
	if bp.para == nil {
		style := bp.lastConsumedStyle
		bp.lastConsumedStyle = ""
		meta := bp.consumeStaged()
		kind := ParagraphKind
		switch strings.ToLower(style) {
		case "listing", "source":
			kind = ListingKind
		case "literal":
			kind = LiteralKind
		case "verse":
			kind = VerseKind
		}
		if style, ok := meta.Attribute("style"); ok {
			switch style {
			case "listing", "source":
				kind = ListingKind
			case "literal":
				kind = LiteralKind
			case "verse":
				kind = VerseKind
			}
		}
		bp.para = &paraBuilder{kind: kind, startLine: lineno, meta: meta}
		if sl.admonitionVariant != "" {
			bp.para.admonition = sl.admonitionVariant
			bp.para.lines = append(bp.para.lines, sl.admonitionText)
			return
		}
	}
	bp.para.lines = append(bp.para.lines, raw)
}

func (bp *blockParser) flushParagraph() {
	if bp.para == nil {
		return
	}
	p := bp.para
	bp.para = nil

	var block *Block
	if p.admonition != "" {
		block = &Block{
			kind:    AdmonitionKind,
			span:    Span{Start: Position{Line: p.startLine}},
			variant: p.admonition,
			meta:    p.meta,
			inlines: parseInlines(p.lines, p.startLine, bp.attrs, &bp.diags),
		}
	} else {
		block = &Block{
			kind:    p.kind,
			span:    Span{Start: Position{Line: p.startLine}},
			meta:    p.meta,
			inlines: parseInlines(p.lines, p.startLine, bp.attrs, &bp.diags),
		}
	}
	if len(block.inlines) == 0 {
		return
	}
	bp.appendChild(block)
}

// ---- verbatim blocks ----

func (bp *blockParser) matchesClose(trimmed string, ch byte, length int) bool {
	if len(trimmed) != length {
		return false
	}
	return isRun(trimmed, ch)
}

func (bp *blockParser) closeVerbatim(lineno int) {
	v := bp.verbatim
	bp.verbatim = nil
	if v.kind == CommentKind {
		return
	}
	inlines := []*Inline{NewText(strings.Join(v.raw, "\n"))}
	block := &Block{
		kind:    v.kind,
		span:    Span{Start: Position{Line: v.startLine}, End: Position{Line: lineno}},
		meta:    v.meta,
		inlines: inlines,
	}
	bp.appendChild(block)
}

// ---- tables ----

func (bp *blockParser) addTableRow(line string) {
	f := bp.topFrame()
	cells := splitTableCells(line)
	for _, c := range cells {
		cell := &Block{
			kind:    TableCellKind,
			inlines: parseInlines([]string{c}, 0, bp.attrs, &bp.diags),
		}
		f.block.blockChildren = append(f.block.blockChildren, cell)
	}
}

// splitTableCells splits a table row on "|" at cell starts, the
// simplified first-cut cell grammar described in spec.md §4.3.
func splitTableCells(line string) []string {
	var cells []string
	var buf strings.Builder
	started := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '|' && (i == 0 || line[i-1] != '\\') {
			if started {
				cells = append(cells, strings.TrimSpace(buf.String()))
				buf.Reset()
			}
			started = true
			continue
		}
		if started {
			buf.WriteByte(c)
		}
	}
	if started {
		cells = append(cells, strings.TrimSpace(buf.String()))
	}
	return cells
}

func (bp *blockParser) closeTable(lineno int) {
	f := bp.stack[len(bp.stack)-1]
	bp.stack = bp.stack[:len(bp.stack)-1]
	block := f.block
	block.span.End = Position{Line: lineno}
	if block.cols == 0 {
		block.cols = 1
	}
	if len(block.blockChildren)%block.cols != 0 {
		bp.error(lineno, ErrMalformedTable)
	}
	if block.meta.HasOption("header") && len(block.blockChildren) >= block.cols {
		// Header cells are simply the first row; no distinct kind is
		// needed since HTML rendering consults row index 0 via Cols.
	}
	if v, ok := block.meta.Attribute("cols"); ok {
		if _, err := strconv.Atoi(strings.TrimSpace(strings.Split(v, ",")[0])); err != nil {
			bp.warn(lineno, ErrColumnWidthIgnored)
		} else if strings.Contains(v, ",") {
			bp.warn(lineno, ErrColumnWidthIgnored)
		}
	}
}

// ---- closing at EOF ----

func (bp *blockParser) closeAll(lineno int) {
	if bp.verbatim != nil {
		bp.error(bp.verbatim.startLine, ErrUnmatchedDelimiter)
		bp.closeVerbatim(lineno)
	}
	for len(bp.stack) > 0 {
		f := bp.stack[len(bp.stack)-1]
		bp.stack = bp.stack[:len(bp.stack)-1]
		if f.kind == frameContainer || f.kind == frameTable {
			bp.error(f.block.Span().Start.Line, ErrUnmatchedDelimiter)
		}
	}
}
