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

// Package asciidoc parses AsciiDoc source into a structured Document tree.
package asciidoc

import "strings"

// Parser converts AsciiDoc source into a [Document]. A Parser instance
// carries no state between calls to [*Parser.Parse]; a fresh attribute
// store, context stack, and diagnostics list are built for each parse
// (spec.md §5, §9).
type Parser struct {
	initialAttrs map[string]string
	policy       AttributeMissingPolicy
}

// NewParser returns a Parser with no pre-set attributes and the default
// attribute-missing policy (leave the reference literal).
func NewParser() *Parser {
	return &Parser{}
}

// SetAttribute pre-sets a document attribute before parsing begins, as if
// it had been supplied on the command line.
func (p *Parser) SetAttribute(name, value string) {
	if p.initialAttrs == nil {
		p.initialAttrs = make(map[string]string)
	}
	p.initialAttrs[name] = value
}

// SetAttributeMissingPolicy configures the policy applied when an inline
// attribute reference names an unset attribute (spec.md §3.4).
func (p *Parser) SetAttributeMissingPolicy(policy AttributeMissingPolicy) {
	p.policy = policy
}

// Parse runs the full scan → parse → post-process pipeline over src and
// returns the resulting Document (spec.md §2). Parse never returns an
// error for malformed AsciiDoc; structural problems are recorded as
// [Diagnostic] entries on the returned Document instead.
func Parse(src []byte) *Document {
	return NewParser().Parse(src)
}

// Parse runs the pipeline using p's pre-configured attributes and policy.
func (p *Parser) Parse(src []byte) *Document {
	attrs := NewAttributeStore()
	attrs.SetPolicy(p.policy)
	for k, v := range p.initialAttrs {
		attrs.Set(k, v)
	}

	r := newReader(src)

	header, headerConsumed := parseHeader(r, attrs)

	bp := newBlockParser(r, attrs)
	blocks := bp.parse()

	ids := make(IDIndex)
	ids.Extract(blocks)

	doc := &Document{
		Header:      header,
		Attributes:  attrs,
		Blocks:      blocks,
		Diagnostics: bp.diags,
		ids:         ids,
	}
	_ = headerConsumed
	postProcess(doc)
	return doc
}

// parseHeader consumes an optional document title line ("= Title") at the
// very start of input, plus any immediately following attribute entries,
// before handing the remaining source to the block parser (spec.md §3.1).
func parseHeader(r *reader, attrs *AttributeStore) (*Header, bool) {
	line, ok := r.Peek(0)
	if !ok {
		return nil, false
	}
	if strings.TrimSpace(line) == "" {
		return nil, false
	}
	sl, ok := scanSectionTitle(strings.TrimSpace(line))
	if !ok || sl.level != 0 {
		return nil, false
	}
	r.Advance()
	var diags []Diagnostic
	title := parseInlines([]string{sl.title}, 1, attrs, &diags)

	// Consume immediately-following attribute entries and the blank line
	// that separates the header from the body.
	for {
		next, ok := r.Peek(0)
		if !ok {
			break
		}
		if strings.TrimSpace(next) == "" {
			r.Advance()
			break
		}
		if a, ok := scanAttrEntry(strings.TrimSpace(next)); ok {
			r.Advance()
			if a.attrUnset {
				attrs.Unset(a.attrName)
			} else {
				attrs.Set(a.attrName, a.attrValue)
			}
			continue
		}
		break
	}

	return &Header{Title: title, Span: Span{Start: Position{Line: 1}}}, true
}
